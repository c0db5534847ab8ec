package model

import "time"

type List struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Emoji     string    `json:"emoji"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemDetail is an item hydrated with its completion history.
type ItemDetail struct {
	Item
	Completions []Completion `json:"completions"`
}

// ListDetail is the fully hydrated read model for one list.
type ListDetail struct {
	List  List         `json:"list"`
	Items []ItemDetail `json:"items"`
}
