package store

import (
	"database/sql"
	"testing"

	"github.com/mattlaska/zoznamy/internal/database"
)

func setupListTestDB(t *testing.T) (*sql.DB, *ListStore, *ItemStore, *CompletionStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, NewListStore(db), NewItemStore(db), NewCompletionStore(db)
}

func TestListCRUD(t *testing.T) {
	_, ls, _, _ := setupListTestDB(t)

	l, err := ls.Create("Voyages", "✈️", "#93C5FD")
	if err != nil {
		t.Fatalf("create list: %v", err)
	}
	if l.Name != "Voyages" {
		t.Errorf("name = %q, want %q", l.Name, "Voyages")
	}
	if l.Emoji != "✈️" {
		t.Errorf("emoji = %q, want %q", l.Emoji, "✈️")
	}
	if l.Color != "#93C5FD" {
		t.Errorf("color = %q, want %q", l.Color, "#93C5FD")
	}

	got, err := ls.GetByID(l.ID)
	if err != nil {
		t.Fatalf("get list: %v", err)
	}
	if got == nil {
		t.Fatal("expected list, got nil")
	}

	updated, err := ls.Update(l.ID, "Restaurants", "🍜", "#FCA5A5")
	if err != nil {
		t.Fatalf("update list: %v", err)
	}
	if updated.Name != "Restaurants" || updated.Emoji != "🍜" || updated.Color != "#FCA5A5" {
		t.Errorf("updated = %+v", updated)
	}
	if updated.UpdatedAt.Before(l.UpdatedAt) {
		t.Errorf("updated_at went backwards: %v -> %v", l.UpdatedAt, updated.UpdatedAt)
	}

	if err := ls.Delete(l.ID); err != nil {
		t.Fatalf("delete list: %v", err)
	}
	gone, err := ls.GetByID(l.ID)
	if err != nil {
		t.Fatalf("get deleted list: %v", err)
	}
	if gone != nil {
		t.Error("expected nil after delete")
	}
}

func TestListGetByIDNotFound(t *testing.T) {
	_, ls, _, _ := setupListTestDB(t)

	l, err := ls.GetByID(999)
	if err != nil {
		t.Fatalf("get list: %v", err)
	}
	if l != nil {
		t.Error("expected nil for nonexistent list")
	}
}

func TestListOrderNewestFirst(t *testing.T) {
	db, ls, _, _ := setupListTestDB(t)

	a, _ := ls.Create("First", "", "")
	b, _ := ls.Create("Second", "", "")
	c, _ := ls.Create("Third", "", "")

	// Spread created_at so the sort key, not just insertion order, is exercised.
	if _, err := db.Exec(`UPDATE lists SET created_at = datetime('now', '-2 days') WHERE id = ?`, a.ID); err != nil {
		t.Fatalf("backdate list: %v", err)
	}
	if _, err := db.Exec(`UPDATE lists SET created_at = datetime('now', '-1 day') WHERE id = ?`, b.ID); err != nil {
		t.Fatalf("backdate list: %v", err)
	}

	lists, err := ls.List()
	if err != nil {
		t.Fatalf("list lists: %v", err)
	}
	if len(lists) != 3 {
		t.Fatalf("len = %d, want 3", len(lists))
	}
	if lists[0].ID != c.ID || lists[1].ID != b.ID || lists[2].ID != a.ID {
		t.Errorf("order = [%d %d %d], want [%d %d %d]",
			lists[0].ID, lists[1].ID, lists[2].ID, c.ID, b.ID, a.ID)
	}
}

func TestListDuplicateNamesAllowed(t *testing.T) {
	_, ls, _, _ := setupListTestDB(t)

	if _, err := ls.Create("Courses", "🛒", ""); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if _, err := ls.Create("Courses", "🛒", ""); err != nil {
		t.Fatalf("create duplicate name: %v", err)
	}
}

func TestListDeleteCascades(t *testing.T) {
	_, ls, is, cs := setupListTestDB(t)

	l, _ := ls.Create("Projets", "🔨", "")
	item, err := is.Create(l.ID, "Repeindre la cuisine", nil)
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	comment := "avant/après"
	if _, err := cs.Create(item.ID, &comment, nil); err != nil {
		t.Fatalf("create completion: %v", err)
	}

	if err := ls.Delete(l.ID); err != nil {
		t.Fatalf("delete list: %v", err)
	}

	gotItem, err := is.GetByID(item.ID)
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if gotItem != nil {
		t.Error("expected item deleted by cascade")
	}

	completions, err := cs.ListByItem(item.ID)
	if err != nil {
		t.Fatalf("list completions: %v", err)
	}
	if len(completions) != 0 {
		t.Errorf("completions = %d, want 0 after cascade", len(completions))
	}
}
