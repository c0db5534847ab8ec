package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mattlaska/zoznamy/internal/model"
)

type ItemStore struct {
	db *sql.DB
}

func NewItemStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db}
}

func scanItem(scanner interface{ Scan(...any) error }) (*model.Item, error) {
	var item model.Item
	var completed int
	var completedAt sql.NullTime
	var createdBy sql.NullString

	err := scanner.Scan(
		&item.ID, &item.ListID, &item.Text, &completed,
		&completedAt, &createdBy, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Completed = completed != 0
	if completedAt.Valid {
		item.CompletedAt = &completedAt.Time
	}
	if createdBy.Valid {
		item.CreatedBy = &createdBy.String
	}
	return &item, nil
}

const itemCols = `id, list_id, text, completed, completed_at, created_by, created_at`

func (s *ItemStore) GetByID(id int64) (*model.Item, error) {
	row := s.db.QueryRow(`SELECT `+itemCols+` FROM items WHERE id = ?`, id)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

func (s *ItemStore) Create(listID int64, text string, createdBy *string) (*model.Item, error) {
	var cBy sql.NullString
	if createdBy != nil {
		cBy = sql.NullString{String: *createdBy, Valid: true}
	}

	result, err := s.db.Exec(
		`INSERT INTO items (list_id, text, created_by) VALUES (?, ?, ?)`,
		listID, text, cBy,
	)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

// ListByList returns a list's items with pending work first: pending items
// newest-first, then completed items newest-first.
func (s *ItemStore) ListByList(listID int64) ([]model.Item, error) {
	rows, err := s.db.Query(
		`SELECT `+itemCols+` FROM items WHERE list_id = ? ORDER BY completed ASC, created_at DESC, id DESC`,
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (s *ItemStore) UpdateText(id int64, text string) (*model.Item, error) {
	_, err := s.db.Exec(`UPDATE items SET text = ? WHERE id = ?`, text, id)
	if err != nil {
		return nil, fmt.Errorf("update item text: %w", err)
	}
	return s.GetByID(id)
}

// Delete removes the item and, via cascade, its completion log.
func (s *ItemStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// Toggle flips the item between pending and completed. Both columns of the
// (completed, completed_at) pair change in one UPDATE so no reader can see
// them disagree. Completion log entries are never touched here; history
// survives an item being re-opened.
func (s *ItemStore) Toggle(id int64) (*model.Item, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	if item.Completed {
		_, err = s.db.Exec(
			`UPDATE items SET completed = 0, completed_at = NULL WHERE id = ?`,
			id,
		)
	} else {
		_, err = s.db.Exec(
			`UPDATE items SET completed = 1, completed_at = ? WHERE id = ?`,
			time.Now().UTC(), id,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("toggle item: %w", err)
	}
	return s.GetByID(id)
}
