// Package postbrief turns a public X (Twitter) post into a clean,
// AI-generated summary. It fetches a markdown rendering of the post page,
// extracts the structured post (author, handle, body, media, timestamp),
// and drives a chat-completions endpoint to produce the summary, which is
// revealed incrementally for display.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, jina/, fireworks/).
package postbrief
