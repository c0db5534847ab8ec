package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mattlaska/zoznamy/internal/model"
	"github.com/mattlaska/zoznamy/internal/store"
)

type ListHandler struct {
	lists       *store.ListStore
	items       *store.ItemStore
	completions *store.CompletionStore
	logger      *slog.Logger
}

func NewListHandler(ls *store.ListStore, is *store.ItemStore, cs *store.CompletionStore, logger *slog.Logger) *ListHandler {
	return &ListHandler{lists: ls, items: is, completions: cs, logger: logger}
}

type listRequest struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

func (h *ListHandler) List(w http.ResponseWriter, r *http.Request) {
	lists, err := h.lists.List()
	if err != nil {
		h.logger.Error("list lists", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list lists"})
		return
	}
	if lists == nil {
		lists = []model.List{}
	}
	writeJSON(w, http.StatusOK, lists)
}

func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req listRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	list, err := h.lists.Create(req.Name, req.Emoji, req.Color)
	if err != nil {
		h.logger.Error("create list", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create list"})
		return
	}

	writeJSON(w, http.StatusCreated, list)
}

// Get returns the fully hydrated detail: the list, its items in display
// order, and each item's completion log.
func (h *ListHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	list, err := h.lists.GetByID(id)
	if err != nil {
		h.logger.Error("get list", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get list"})
		return
	}
	if list == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "list not found"})
		return
	}

	items, err := h.items.ListByList(id)
	if err != nil {
		h.logger.Error("list items", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list items"})
		return
	}

	detail := model.ListDetail{List: *list, Items: []model.ItemDetail{}}
	for _, item := range items {
		completions, err := h.completions.ListByItem(item.ID)
		if err != nil {
			h.logger.Error("list completions", "error", err, "item_id", item.ID)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list completions"})
			return
		}
		if completions == nil {
			completions = []model.Completion{}
		}
		detail.Items = append(detail.Items, model.ItemDetail{Item: item, Completions: completions})
	}

	writeJSON(w, http.StatusOK, detail)
}

func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	existing, err := h.lists.GetByID(id)
	if err != nil {
		h.logger.Error("get list", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get list"})
		return
	}
	if existing == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "list not found"})
		return
	}

	var req listRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	// Partial edits keep the current value for omitted fields.
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		req.Name = existing.Name
	}
	if req.Emoji == "" {
		req.Emoji = existing.Emoji
	}
	if req.Color == "" {
		req.Color = existing.Color
	}

	list, err := h.lists.Update(id, req.Name, req.Emoji, req.Color)
	if err != nil {
		h.logger.Error("update list", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update list"})
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	existing, err := h.lists.GetByID(id)
	if err != nil {
		h.logger.Error("get list", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get list"})
		return
	}
	if existing == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "list not found"})
		return
	}

	if err := h.lists.Delete(id); err != nil {
		h.logger.Error("delete list", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete list"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
