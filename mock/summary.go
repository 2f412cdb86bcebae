package mock

import (
	"context"

	"github.com/mwalczyk/postbrief"
)

var _ postbrief.SummaryService = (*SummaryService)(nil)

// SummaryService is a mock implementation of postbrief.SummaryService.
type SummaryService struct {
	CreateSummaryFn   func(ctx context.Context, summary *postbrief.Summary) error
	FindSummaryByIDFn func(ctx context.Context, id string) (*postbrief.Summary, error)
	FindSummariesFn   func(ctx context.Context, filter postbrief.SummaryFilter) ([]*postbrief.Summary, error)
	DeleteSummaryFn   func(ctx context.Context, id string) error
}

func (s *SummaryService) CreateSummary(ctx context.Context, summary *postbrief.Summary) error {
	return s.CreateSummaryFn(ctx, summary)
}

func (s *SummaryService) FindSummaryByID(ctx context.Context, id string) (*postbrief.Summary, error) {
	return s.FindSummaryByIDFn(ctx, id)
}

func (s *SummaryService) FindSummaries(ctx context.Context, filter postbrief.SummaryFilter) ([]*postbrief.Summary, error) {
	return s.FindSummariesFn(ctx, filter)
}

func (s *SummaryService) DeleteSummary(ctx context.Context, id string) error {
	return s.DeleteSummaryFn(ctx, id)
}
