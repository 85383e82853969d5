package models

import "time"

// Report is the result of indexing one domain
type Report struct {
	Input        string    `json:"input"`
	Base         string    `json:"base"`
	Host         string    `json:"host"`
	Indexables   []string  `json:"indexables"`
	FetchedAt    time.Time `json:"fetched_at"`
	ResponseTime int64     `json:"response_time_ms"`
}

// Count returns the number of indexables, duplicates included
func (r *Report) Count() int {
	if r == nil {
		return 0
	}
	return len(r.Indexables)
}
