package api

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yenaing-dev/schoolnet/internal/store"
)

const maxUploadBytes = 10 << 20

type UploadsHandler struct {
	store   store.Store
	dir     string
	baseURL string
	logger  *slog.Logger
}

func NewUploadsHandler(s store.Store, dir, baseURL string, logger *slog.Logger) *UploadsHandler {
	return &UploadsHandler{store: s, dir: dir, baseURL: baseURL, logger: logger}
}

// ServeFiles exposes uploaded images at /profile-images/*.
func (h *UploadsHandler) ServeFiles(r chi.Router) {
	fs := http.StripPrefix("/profile-images/", http.FileServer(http.Dir(h.dir)))
	r.Get("/profile-images/*", fs.ServeHTTP)
}

// Upload stores a teacher's profile image on the configured mount and
// writes the public URL back onto the teacher record. Files are named
// <teacher-name>_profile<ext> so re-uploads replace the previous image.
func (h *UploadsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	teacherID, err := uuid.Parse(r.FormValue("teacher_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid teacher id")
		return
	}
	teacher, err := h.store.GetTeacher(r.Context(), teacherID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if teacher == nil {
		writeError(w, http.StatusNotFound, "teacher not found")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	filename := fileSafeName(teacher.Name) + "_profile" + ext

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	dst, err := os.Create(filepath.Join(h.dir, filename))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	url := h.baseURL + "/profile-images/" + filename
	if err := h.store.SetTeacherAvatar(r.Context(), teacherID, url); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Info("profile image uploaded", "teacher", teacher.Code, "file", filename)
	writeJSON(w, http.StatusOK, map[string]string{
		"message":    "file uploaded",
		"avatar_url": url,
	})
}

func fileSafeName(name string) string {
	return strings.Join(strings.Fields(name), "_")
}
