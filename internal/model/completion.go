package model

import "time"

// Completion is one entry in an item's append-only evidence log. Entries are
// never updated or deleted, even when the item is toggled back to pending.
type Completion struct {
	ID        int64     `json:"id"`
	ItemID    int64     `json:"item_id"`
	Comment   *string   `json:"comment"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}
