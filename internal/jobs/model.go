package jobs

import "time"

// JobPost is an ingested job posting owned by a user. TextContent holds the
// full posting text; Requirements the lines worth matching a resume against.
type JobPost struct {
	ID           string
	UserID       string
	SourceURL    string
	TextContent  string
	Requirements []string
	CreatedAt    time.Time
}
