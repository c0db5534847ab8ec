// Package checklist coordinates the multi-step completion workflow: upload
// the attachment, append to the completion log, then flip the item. The
// ordering is fixed so a crash mid-sequence can only leave a pending item
// with evidence, never evidence pointing at a half-uploaded file.
package checklist

import (
	"context"
	"fmt"
	"io"

	"github.com/mattlaska/zoznamy/internal/model"
	"github.com/mattlaska/zoznamy/internal/store"
)

// Uploader is the blob-store collaborator. *blob.Store satisfies it.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// StorageError wraps a failure from the blob-store collaborator, so callers
// can tell an upstream storage outage apart from a local database error.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("upload attachment: %v", e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

// Attachment is a sealed byte payload handed over by the capture/upload
// boundary (a form file, a finished audio recording).
type Attachment struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// Service runs item completion workflows over the stores.
type Service struct {
	items       *store.ItemStore
	completions *store.CompletionStore
	uploader    Uploader
}

func NewService(items *store.ItemStore, completions *store.CompletionStore, uploader Uploader) *Service {
	return &Service{items: items, completions: completions, uploader: uploader}
}

// Toggle flips an item's completion state. Marking done runs the full
// workflow: upload attachment (if any), append a log entry (if there is any
// evidence), flip the item — strictly in that order, aborting on the first
// failure with no later writes. Marking an item back to pending only flips
// it; the completion log is history and stays.
//
// Returns (nil, nil) when the item does not exist.
func (s *Service) Toggle(ctx context.Context, itemID int64, comment string, att *Attachment) (*model.Item, error) {
	item, err := s.items.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	if item.Completed {
		return s.items.Toggle(itemID)
	}

	imageURL, err := s.uploadIfPresent(ctx, att)
	if err != nil {
		return nil, err
	}

	if comment != "" || imageURL != "" {
		if _, err := s.appendCompletion(itemID, comment, imageURL); err != nil {
			return nil, err
		}
	}

	return s.items.Toggle(itemID)
}

// AddEvidence appends to an item's completion log without changing its
// state, uploading the attachment first. Empty evidence is allowed; the log
// records the event either way.
//
// Returns (nil, nil) when the item does not exist.
func (s *Service) AddEvidence(ctx context.Context, itemID int64, comment string, att *Attachment) (*model.Completion, error) {
	item, err := s.items.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	imageURL, err := s.uploadIfPresent(ctx, att)
	if err != nil {
		return nil, err
	}

	return s.appendCompletion(itemID, comment, imageURL)
}

func (s *Service) uploadIfPresent(ctx context.Context, att *Attachment) (string, error) {
	if att == nil {
		return "", nil
	}
	url, err := s.uploader.Upload(ctx, att.Filename, att.ContentType, att.Body)
	if err != nil {
		return "", &StorageError{Err: err}
	}
	return url, nil
}

func (s *Service) appendCompletion(itemID int64, comment, imageURL string) (*model.Completion, error) {
	var cmt, img *string
	if comment != "" {
		cmt = &comment
	}
	if imageURL != "" {
		img = &imageURL
	}
	return s.completions.Create(itemID, cmt, img)
}
