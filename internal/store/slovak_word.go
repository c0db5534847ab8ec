package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattlaska/zoznamy/internal/model"
)

// DateFormat is the calendar key format for slovak_words.date.
const DateFormat = "2006-01-02"

// ErrDuplicateDate is returned by Create when a word already exists for the
// requested date.
var ErrDuplicateDate = errors.New("word already exists for date")

type SlovakWordStore struct {
	db *sql.DB
}

func NewSlovakWordStore(db *sql.DB) *SlovakWordStore {
	return &SlovakWordStore{db: db}
}

func scanWord(scanner interface{ Scan(...any) error }) (*model.SlovakWord, error) {
	var w model.SlovakWord
	var notes, mattURL, leilaURL sql.NullString

	err := scanner.Scan(
		&w.ID, &w.WordSlovak, &w.WordEnglish, &w.Date,
		&notes, &mattURL, &leilaURL, &w.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if notes.Valid {
		w.Notes = &notes.String
	}
	if mattURL.Valid {
		w.MattAudioURL = &mattURL.String
	}
	if leilaURL.Valid {
		w.LeilaAudioURL = &leilaURL.String
	}
	return &w, nil
}

const wordCols = `id, word_slovak, word_english, date, notes, matt_audio_url, leila_audio_url, created_at`

func (s *SlovakWordStore) GetByID(id int64) (*model.SlovakWord, error) {
	row := s.db.QueryRow(`SELECT `+wordCols+` FROM slovak_words WHERE id = ?`, id)
	w, err := scanWord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}
	return w, nil
}

// GetByDate returns the word for an exact "2006-01-02" date, or nil if none
// exists for that day.
func (s *SlovakWordStore) GetByDate(date string) (*model.SlovakWord, error) {
	row := s.db.QueryRow(`SELECT `+wordCols+` FROM slovak_words WHERE date = ?`, date)
	w, err := scanWord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get word by date: %w", err)
	}
	return w, nil
}

// GetToday returns the word for the current calendar day, or nil.
func (s *SlovakWordStore) GetToday() (*model.SlovakWord, error) {
	return s.GetByDate(time.Now().UTC().Format(DateFormat))
}

func (s *SlovakWordStore) List() ([]model.SlovakWord, error) {
	rows, err := s.db.Query(`SELECT ` + wordCols + ` FROM slovak_words ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	defer rows.Close()

	var words []model.SlovakWord
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, *w)
	}
	return words, rows.Err()
}

// Create inserts the word for the given date, defaulting to today when date
// is empty. The unique index on date rejects a second word for the same day.
func (s *SlovakWordStore) Create(wordSlovak, wordEnglish, date string, notes *string) (*model.SlovakWord, error) {
	if date == "" {
		date = time.Now().UTC().Format(DateFormat)
	}

	var n sql.NullString
	if notes != nil {
		n = sql.NullString{String: *notes, Valid: true}
	}

	result, err := s.db.Exec(
		`INSERT INTO slovak_words (word_slovak, word_english, date, notes) VALUES (?, ?, ?, ?)`,
		wordSlovak, wordEnglish, date, n,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: slovak_words.date") {
			return nil, ErrDuplicateDate
		}
		return nil, fmt.Errorf("insert word: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

// SetAudio overwrites one person's audio URL, leaving the other untouched.
// Re-recording simply replaces the URL. Returns the updated word, or nil if
// the word does not exist.
func (s *SlovakWordStore) SetAudio(id int64, person, url string) (*model.SlovakWord, error) {
	w, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}

	switch person {
	case model.PersonMatt:
		_, err = s.db.Exec(`UPDATE slovak_words SET matt_audio_url = ? WHERE id = ?`, url, id)
	case model.PersonLeila:
		_, err = s.db.Exec(`UPDATE slovak_words SET leila_audio_url = ? WHERE id = ?`, url, id)
	default:
		return nil, fmt.Errorf("unknown person %q", person)
	}
	if err != nil {
		return nil, fmt.Errorf("set audio: %w", err)
	}
	return s.GetByID(id)
}
