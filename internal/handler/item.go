package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/mattlaska/zoznamy/internal/checklist"
	"github.com/mattlaska/zoznamy/internal/model"
	"github.com/mattlaska/zoznamy/internal/store"
)

// maxAttachmentSize caps in-memory multipart parsing for completion photos.
const maxAttachmentSize = 10 << 20

type ItemHandler struct {
	items       *store.ItemStore
	completions *store.CompletionStore
	workflow    *checklist.Service
	logger      *slog.Logger
}

func NewItemHandler(is *store.ItemStore, cs *store.CompletionStore, workflow *checklist.Service, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{items: is, completions: cs, workflow: workflow, logger: logger}
}

type itemRequest struct {
	Text      string  `json:"text"`
	CreatedBy *string `json:"created_by"`
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	listID, err := strconv.ParseInt(r.PathValue("list_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid list_id"})
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "text is required"})
		return
	}

	item, err := h.items.Create(listID, req.Text, req.CreatedBy)
	if err != nil {
		h.logger.Error("create item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create item"})
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	existing, err := h.items.GetByID(id)
	if err != nil {
		h.logger.Error("get item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get item"})
		return
	}
	if existing == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "text is required"})
		return
	}

	item, err := h.items.UpdateText(id, req.Text)
	if err != nil {
		h.logger.Error("update item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update item"})
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	existing, err := h.items.GetByID(id)
	if err != nil {
		h.logger.Error("get item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get item"})
		return
	}
	if existing == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	if err := h.items.Delete(id); err != nil {
		h.logger.Error("delete item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete item"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Toggle flips the item's state, running the full completion workflow when
// marking done. Evidence is optional: multipart requests may carry a comment
// field and a photo file; JSON requests may carry a comment.
func (h *ItemHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	comment, att, err := parseEvidence(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	item, err := h.workflow.Toggle(r.Context(), id, comment, att)
	if err != nil {
		h.logger.Error("toggle item", "error", err, "item_id", id)
		writeJSON(w, workflowErrorStatus(err), map[string]string{"error": "failed to complete item"})
		return
	}
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) ListCompletions(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	item, err := h.items.GetByID(id)
	if err != nil {
		h.logger.Error("get item", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get item"})
		return
	}
	if item == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	completions, err := h.completions.ListByItem(id)
	if err != nil {
		h.logger.Error("list completions", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list completions"})
		return
	}
	if completions == nil {
		completions = []model.Completion{}
	}
	writeJSON(w, http.StatusOK, completions)
}

// AddCompletion appends evidence to the log without changing the item's
// state (the "forgot to attach the photo" path).
func (h *ItemHandler) AddCompletion(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	comment, att, err := parseEvidence(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	completion, err := h.workflow.AddEvidence(r.Context(), id, comment, att)
	if err != nil {
		h.logger.Error("add completion", "error", err, "item_id", id)
		writeJSON(w, workflowErrorStatus(err), map[string]string{"error": "failed to add completion"})
		return
	}
	if completion == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}

	writeJSON(w, http.StatusCreated, completion)
}

// workflowErrorStatus maps a completion-workflow failure to a status code:
// a blob-store failure is an upstream (gateway) error, anything else is
// internal.
func workflowErrorStatus(err error) int {
	var storageErr *checklist.StorageError
	if errors.As(err, &storageErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// parseEvidence extracts the optional comment and photo from the request.
// Multipart bodies may include both; JSON bodies carry at most a comment. A
// missing or empty body is a bare toggle.
func parseEvidence(r *http.Request) (string, *checklist.Attachment, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		var req struct {
			Comment string `json:"comment"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
			return "", nil, errors.New("invalid JSON")
		}
		return strings.TrimSpace(req.Comment), nil, nil
	}

	if err := r.ParseMultipartForm(maxAttachmentSize); err != nil {
		return "", nil, err
	}

	comment := strings.TrimSpace(r.FormValue("comment"))

	file, header, err := r.FormFile("photo")
	if err == http.ErrMissingFile {
		return comment, nil, nil
	}
	if err != nil {
		return "", nil, err
	}

	return comment, &checklist.Attachment{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	}, nil
}
