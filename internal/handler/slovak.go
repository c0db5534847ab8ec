package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mattlaska/zoznamy/internal/model"
	"github.com/mattlaska/zoznamy/internal/store"
)

type SlovakHandler struct {
	words  *store.SlovakWordStore
	logger *slog.Logger
}

func NewSlovakHandler(ws *store.SlovakWordStore, logger *slog.Logger) *SlovakHandler {
	return &SlovakHandler{words: ws, logger: logger}
}

type wordRequest struct {
	WordSlovak  string  `json:"word_slovak"`
	WordEnglish string  `json:"word_english"`
	Date        string  `json:"date"`
	Notes       *string `json:"notes"`
}

func (h *SlovakHandler) Today(w http.ResponseWriter, r *http.Request) {
	word, err := h.words.GetToday()
	if err != nil {
		h.logger.Error("get today's word", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get today's word"})
		return
	}
	if word == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no word for today"})
		return
	}
	writeJSON(w, http.StatusOK, word)
}

func (h *SlovakHandler) List(w http.ResponseWriter, r *http.Request) {
	words, err := h.words.List()
	if err != nil {
		h.logger.Error("list words", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list words"})
		return
	}
	if words == nil {
		words = []model.SlovakWord{}
	}
	writeJSON(w, http.StatusOK, words)
}

func (h *SlovakHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req wordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.WordSlovak = strings.TrimSpace(req.WordSlovak)
	req.WordEnglish = strings.TrimSpace(req.WordEnglish)
	if req.WordSlovak == "" || req.WordEnglish == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "word_slovak and word_english are required"})
		return
	}
	if req.Date != "" {
		if _, err := time.Parse(store.DateFormat, req.Date); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
			return
		}
	}

	word, err := h.words.Create(req.WordSlovak, req.WordEnglish, req.Date, req.Notes)
	if errors.Is(err, store.ErrDuplicateDate) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "a word already exists for that date"})
		return
	}
	if err != nil {
		h.logger.Error("create word", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create word"})
		return
	}

	writeJSON(w, http.StatusCreated, word)
}

type audioRequest struct {
	URL string `json:"url"`
}

func (h *SlovakHandler) SetAudio(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	person := r.PathValue("person")
	if person != model.PersonMatt && person != model.PersonLeila {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "person must be matt or leila"})
		return
	}

	var req audioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "url is required"})
		return
	}

	word, err := h.words.SetAudio(id, person, req.URL)
	if err != nil {
		h.logger.Error("set audio", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to set audio"})
		return
	}
	if word == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "word not found"})
		return
	}

	writeJSON(w, http.StatusOK, word)
}
