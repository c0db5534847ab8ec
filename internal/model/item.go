package model

import "time"

type Item struct {
	ID          int64      `json:"id"`
	ListID      int64      `json:"list_id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedBy   *string    `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
}
