package main

import (
	"fmt"

	"github.com/mwalczyk/postbrief"
)

// Run executes the "history list" command.
func (c *HistoryListCmd) Run(deps *Dependencies) error {
	filter := postbrief.SummaryFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.PostURL = &c.URL
	}

	summaries, err := deps.Summaries.FindSummaries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postbrief.ErrorMessage(err))
		return err
	}

	if len(summaries) == 0 {
		fmt.Fprintln(deps.Stdout, "No summaries recorded.")
		return nil
	}

	for _, s := range summaries {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.Handle, s.PostURL)
	}

	return nil
}

// Run executes the "history show" command.
func (c *HistoryShowCmd) Run(deps *Dependencies) error {
	summary, err := deps.Summaries.FindSummaryByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postbrief.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Post:      %s\n", summary.PostURL)
	fmt.Fprintf(deps.Stdout, "Author:    %s (%s)\n", summary.AuthorName, summary.Handle)
	fmt.Fprintf(deps.Stdout, "Timestamp: %s\n", summary.Timestamp)
	fmt.Fprintf(deps.Stdout, "Recorded:  %s\n", summary.CreatedAt.Format("2006-01-02 15:04:05"))
	for _, m := range summary.Media {
		fmt.Fprintf(deps.Stdout, "Media:     %s\n", m)
	}
	fmt.Fprintf(deps.Stdout, "\n%s\n", summary.SummaryText)

	return nil
}

// Run executes the "history delete" command.
func (c *HistoryDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Summaries.DeleteSummary(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postbrief.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted summary %s\n", c.ID)
	return nil
}
