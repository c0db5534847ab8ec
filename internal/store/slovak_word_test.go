package store

import (
	"errors"
	"testing"
	"time"

	"github.com/mattlaska/zoznamy/internal/database"
)

func setupWordTestDB(t *testing.T) *SlovakWordStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSlovakWordStore(db)
}

func TestWordCreateAndGetByDate(t *testing.T) {
	ws := setupWordTestDB(t)

	notes := "dakujem = thank you"
	w, err := ws.Create("ďakujem", "thank you", "2024-03-01", &notes)
	if err != nil {
		t.Fatalf("create word: %v", err)
	}
	if w.WordSlovak != "ďakujem" || w.WordEnglish != "thank you" {
		t.Errorf("word = %+v", w)
	}
	if w.Date != "2024-03-01" {
		t.Errorf("date = %q, want 2024-03-01", w.Date)
	}

	got, err := ws.GetByDate("2024-03-01")
	if err != nil {
		t.Fatalf("get by date: %v", err)
	}
	if got == nil || got.ID != w.ID {
		t.Fatalf("got = %+v, want id %d", got, w.ID)
	}

	miss, err := ws.GetByDate("2024-03-02")
	if err != nil {
		t.Fatalf("get by date: %v", err)
	}
	if miss != nil {
		t.Error("expected nil for a date with no word")
	}
}

func TestWordCreateDefaultsToToday(t *testing.T) {
	ws := setupWordTestDB(t)

	w, err := ws.Create("pes", "dog", "", nil)
	if err != nil {
		t.Fatalf("create word: %v", err)
	}
	today := time.Now().UTC().Format(DateFormat)
	if w.Date != today {
		t.Errorf("date = %q, want %q", w.Date, today)
	}

	got, err := ws.GetToday()
	if err != nil {
		t.Fatalf("get today: %v", err)
	}
	if got == nil || got.ID != w.ID {
		t.Errorf("got = %+v, want id %d", got, w.ID)
	}
}

func TestWordGetTodayEmpty(t *testing.T) {
	ws := setupWordTestDB(t)

	got, err := ws.GetToday()
	if err != nil {
		t.Fatalf("get today: %v", err)
	}
	if got != nil {
		t.Error("expected nil when no word exists for today")
	}
}

func TestWordDateUnique(t *testing.T) {
	ws := setupWordTestDB(t)

	if _, err := ws.Create("mačka", "cat", "2024-05-10", nil); err != nil {
		t.Fatalf("create word: %v", err)
	}
	if _, err := ws.Create("pes", "dog", "2024-05-10", nil); !errors.Is(err, ErrDuplicateDate) {
		t.Errorf("err = %v, want ErrDuplicateDate", err)
	}
}

func TestWordListNewestDateFirst(t *testing.T) {
	ws := setupWordTestDB(t)

	ws.Create("jeden", "one", "2024-01-01", nil)
	ws.Create("tri", "three", "2024-01-03", nil)
	ws.Create("dva", "two", "2024-01-02", nil)

	words, err := ws.List()
	if err != nil {
		t.Fatalf("list words: %v", err)
	}
	if len(words) != 3 {
		t.Fatalf("len = %d, want 3", len(words))
	}
	if words[0].Date != "2024-01-03" || words[1].Date != "2024-01-02" || words[2].Date != "2024-01-01" {
		t.Errorf("order = [%s %s %s]", words[0].Date, words[1].Date, words[2].Date)
	}
}

func TestWordSetAudio(t *testing.T) {
	ws := setupWordTestDB(t)
	w, _ := ws.Create("voda", "water", "2024-06-01", nil)

	got, err := ws.SetAudio(w.ID, "matt", "https://blob.example.com/matt-voda.webm")
	if err != nil {
		t.Fatalf("set audio: %v", err)
	}
	if got.MattAudioURL == nil || *got.MattAudioURL != "https://blob.example.com/matt-voda.webm" {
		t.Errorf("matt_audio_url = %v", got.MattAudioURL)
	}
	if got.LeilaAudioURL != nil {
		t.Errorf("leila_audio_url = %v, want untouched nil", got.LeilaAudioURL)
	}

	// Re-recording overwrites; the other person's clip stays put.
	ws.SetAudio(w.ID, "leila", "https://blob.example.com/leila-voda.webm")
	got, err = ws.SetAudio(w.ID, "matt", "https://blob.example.com/matt-voda-2.webm")
	if err != nil {
		t.Fatalf("set audio again: %v", err)
	}
	if got.MattAudioURL == nil || *got.MattAudioURL != "https://blob.example.com/matt-voda-2.webm" {
		t.Errorf("matt_audio_url = %v", got.MattAudioURL)
	}
	if got.LeilaAudioURL == nil || *got.LeilaAudioURL != "https://blob.example.com/leila-voda.webm" {
		t.Errorf("leila_audio_url = %v", got.LeilaAudioURL)
	}
}

func TestWordSetAudioIdempotent(t *testing.T) {
	ws := setupWordTestDB(t)
	w, _ := ws.Create("chlieb", "bread", "2024-06-02", nil)

	url := "https://blob.example.com/chlieb.webm"
	first, err := ws.SetAudio(w.ID, "leila", url)
	if err != nil {
		t.Fatalf("set audio: %v", err)
	}
	second, err := ws.SetAudio(w.ID, "leila", url)
	if err != nil {
		t.Fatalf("set audio repeat: %v", err)
	}
	if *first.LeilaAudioURL != *second.LeilaAudioURL {
		t.Errorf("repeat changed state: %q vs %q", *first.LeilaAudioURL, *second.LeilaAudioURL)
	}
}

func TestWordSetAudioUnknownPerson(t *testing.T) {
	ws := setupWordTestDB(t)
	w, _ := ws.Create("kniha", "book", "2024-06-03", nil)

	if _, err := ws.SetAudio(w.ID, "bob", "https://blob.example.com/x.webm"); err == nil {
		t.Error("expected error for unknown person")
	}
}

func TestWordSetAudioNotFound(t *testing.T) {
	ws := setupWordTestDB(t)

	got, err := ws.SetAudio(404, "matt", "https://blob.example.com/x.webm")
	if err != nil {
		t.Fatalf("set audio: %v", err)
	}
	if got != nil {
		t.Error("expected nil for nonexistent word")
	}
}
