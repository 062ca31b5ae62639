package dto

import "time"

type HistoryQuery struct {
	Limit int `validate:"min=1,max=100"`
}

type ResolutionRecordResponse struct {
	ID          int64     `json:"id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Outcome     string    `json:"outcome"`
	Duration    string    `json:"duration,omitempty"`
	MapLink     *string   `json:"map_link,omitempty"`
	Endpoint    string    `json:"endpoint,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListHistoryResponse struct {
	Records []ResolutionRecordResponse `json:"records"`
}
