package store

import (
	"database/sql"
	"fmt"

	"github.com/mattlaska/zoznamy/internal/model"
)

// CompletionStore is append-only: entries are evidence of past completion
// events, so there are no update or delete methods.
type CompletionStore struct {
	db *sql.DB
}

func NewCompletionStore(db *sql.DB) *CompletionStore {
	return &CompletionStore{db: db}
}

func scanCompletion(scanner interface{ Scan(...any) error }) (*model.Completion, error) {
	var c model.Completion
	var comment, imageURL sql.NullString

	err := scanner.Scan(&c.ID, &c.ItemID, &comment, &imageURL, &c.CreatedAt)
	if err != nil {
		return nil, err
	}

	if comment.Valid {
		c.Comment = &comment.String
	}
	if imageURL.Valid {
		c.ImageURL = &imageURL.String
	}
	return &c, nil
}

const completionCols = `id, item_id, comment, image_url, created_at`

func (s *CompletionStore) Create(itemID int64, comment, imageURL *string) (*model.Completion, error) {
	var cmt, img sql.NullString
	if comment != nil {
		cmt = sql.NullString{String: *comment, Valid: true}
	}
	if imageURL != nil {
		img = sql.NullString{String: *imageURL, Valid: true}
	}

	result, err := s.db.Exec(
		`INSERT INTO completions (item_id, comment, image_url) VALUES (?, ?, ?)`,
		itemID, cmt, img,
	)
	if err != nil {
		return nil, fmt.Errorf("insert completion: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	row := s.db.QueryRow(`SELECT `+completionCols+` FROM completions WHERE id = ?`, id)
	return scanCompletion(row)
}

func (s *CompletionStore) ListByItem(itemID int64) ([]model.Completion, error) {
	rows, err := s.db.Query(
		`SELECT `+completionCols+` FROM completions WHERE item_id = ? ORDER BY created_at DESC, id DESC`,
		itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}
	defer rows.Close()

	var completions []model.Completion
	for rows.Next() {
		c, err := scanCompletion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan completion: %w", err)
		}
		completions = append(completions, *c)
	}
	return completions, rows.Err()
}
