package jobs

import "time"

// JobPostResponse is the outward-facing representation of a job posting.
type JobPostResponse struct {
	JobID        string    `json:"jobId"`
	SourceURL    string    `json:"sourceUrl,omitempty"`
	TextContent  string    `json:"textContent"`
	Requirements []string  `json:"requirements"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toResponse(post JobPost) JobPostResponse {
	reqs := post.Requirements
	if reqs == nil {
		reqs = []string{}
	}
	return JobPostResponse{
		JobID:        post.ID,
		SourceURL:    post.SourceURL,
		TextContent:  post.TextContent,
		Requirements: reqs,
		CreatedAt:    post.CreatedAt,
	}
}
