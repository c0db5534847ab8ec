package handler

import (
	"log/slog"
	"net/http"

	"github.com/mattlaska/zoznamy/internal/blob"
)

// UploadHandler is the standalone attachment endpoint: the client hands over
// a file (completion photo or a finished audio recording) and gets back the
// durable public URL to reference in later calls.
type UploadHandler struct {
	blobs  *blob.Store
	logger *slog.Logger
}

func NewUploadHandler(blobs *blob.Store, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{blobs: blobs, logger: logger}
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAttachmentSize); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no file provided"})
		return
	}
	defer file.Close()

	url, err := h.blobs.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		h.logger.Error("upload file", "error", err, "filename", header.Filename)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "upload failed"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
