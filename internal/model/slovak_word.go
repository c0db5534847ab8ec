package model

import "time"

// The two people audio clips can belong to.
const (
	PersonMatt  = "matt"
	PersonLeila = "leila"
)

// SlovakWord is the word-of-the-day record. Date is a "2006-01-02" calendar
// key; at most one word exists per date.
type SlovakWord struct {
	ID            int64     `json:"id"`
	WordSlovak    string    `json:"word_slovak"`
	WordEnglish   string    `json:"word_english"`
	Date          string    `json:"date"`
	Notes         *string   `json:"notes"`
	MattAudioURL  *string   `json:"matt_audio_url"`
	LeilaAudioURL *string   `json:"leila_audio_url"`
	CreatedAt     time.Time `json:"created_at"`
}
