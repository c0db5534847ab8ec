package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mattlaska/zoznamy/internal/model"
)

type ListStore struct {
	db *sql.DB
}

func NewListStore(db *sql.DB) *ListStore {
	return &ListStore{db: db}
}

func scanList(scanner interface{ Scan(...any) error }) (*model.List, error) {
	var l model.List
	err := scanner.Scan(&l.ID, &l.Name, &l.Emoji, &l.Color, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

const listCols = `id, name, emoji, color, created_at, updated_at`

// List returns all lists, most recently created first.
func (s *ListStore) List() ([]model.List, error) {
	rows, err := s.db.Query(`SELECT ` + listCols + ` FROM lists ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	defer rows.Close()

	var lists []model.List
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		lists = append(lists, *l)
	}
	return lists, rows.Err()
}

func (s *ListStore) GetByID(id int64) (*model.List, error) {
	row := s.db.QueryRow(`SELECT `+listCols+` FROM lists WHERE id = ?`, id)
	l, err := scanList(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}
	return l, nil
}

func (s *ListStore) Create(name, emoji, color string) (*model.List, error) {
	result, err := s.db.Exec(
		`INSERT INTO lists (name, emoji, color) VALUES (?, ?, ?)`,
		name, emoji, color,
	)
	if err != nil {
		return nil, fmt.Errorf("insert list: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

// Update replaces the list's name, emoji, and color and refreshes updated_at.
func (s *ListStore) Update(id int64, name, emoji, color string) (*model.List, error) {
	_, err := s.db.Exec(
		`UPDATE lists SET name = ?, emoji = ?, color = ?, updated_at = ? WHERE id = ?`,
		name, emoji, color, time.Now().UTC(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update list: %w", err)
	}
	return s.GetByID(id)
}

// Delete removes the list. Its items and their completions go with it via
// the foreign key cascade.
func (s *ListStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM lists WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}
