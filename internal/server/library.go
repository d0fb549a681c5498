package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/musicplayer/internal/library"
	"github.com/desertthunder/musicplayer/internal/web"
)

const maxUploadSize = 256 << 20

// LibraryHandler serves the local music library, uploads and the saved playlist.
type LibraryHandler struct {
	songs     *library.Store
	playlists *library.PlaylistStore
	pages     *web.Pages
	logger    *log.Logger
}

func NewLibraryHandler(songs *library.Store, playlists *library.PlaylistStore, pages *web.Pages, logger *log.Logger) *LibraryHandler {
	return &LibraryHandler{songs: songs, playlists: playlists, pages: pages, logger: logger}
}

// Register adds the library routes to r.
func (h *LibraryHandler) Register(r Router) {
	r.Handle(http.MethodGet, "/{$}", http.HandlerFunc(h.Index))
	r.Handle(http.MethodPost, "/upload", http.HandlerFunc(h.Upload))
	r.Handle(http.MethodGet, "/music/{filename}", http.HandlerFunc(h.Music))
	r.Handle(http.MethodPost, "/save_playlist", http.HandlerFunc(h.SavePlaylist))
	r.Handle(http.MethodGet, "/load_playlist", http.HandlerFunc(h.LoadPlaylist))
	r.Handle(http.MethodGet, "/library", http.HandlerFunc(h.Songs))
}

// Index renders the library page.
func (h *LibraryHandler) Index(w http.ResponseWriter, r *http.Request) {
	songs, err := h.songs.Songs()
	if err != nil {
		h.logger.Error("failed to list songs", "error", err)
		http.Error(w, "Failed to list songs", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := h.pages.RenderIndex(&buf, web.IndexData{Songs: songs, DefaultArt: DefaultArtRoute}); err != nil {
		h.logger.Error("failed to render index", "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// Upload stores the multipart "file" field and redirects back to the index.
//
// Missing files and unsupported extensions are ignored.
func (h *LibraryHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn("upload without file", "error", err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	defer file.Close()

	if _, err := h.songs.Save(header.Filename, file); err != nil {
		if errors.Is(err, library.ErrUnsupportedFile) || errors.Is(err, library.ErrInvalidFilename) {
			h.logger.Warn("rejected upload", "file", header.Filename, "error", err)
		} else {
			h.logger.Error("failed to store upload", "file", header.Filename, "error", err)
			http.Error(w, "Failed to store upload", http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// Music streams a stored song.
func (h *LibraryHandler) Music(w http.ResponseWriter, r *http.Request) {
	path, err := h.songs.Path(r.PathValue("filename"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

// SavePlaylist stores the request body as the playlist.
func (h *LibraryHandler) SavePlaylist(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Failed to read playlist"})
		return
	}

	if err := h.playlists.Save(data); err != nil {
		if errors.Is(err, library.ErrInvalidPlaylist) {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid playlist"})
			return
		}
		h.logger.Error("failed to save playlist", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Failed to save playlist"})
		return
	}

	writeJSON(w, http.StatusOK, statusBody{Status: "success"})
}

// LoadPlaylist returns the saved playlist, or [] when none exists.
func (h *LibraryHandler) LoadPlaylist(w http.ResponseWriter, r *http.Request) {
	data, err := h.playlists.Load()
	if err != nil {
		h.logger.Error("failed to load playlist", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Failed to load playlist"})
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// Songs returns the library as JSON.
func (h *LibraryHandler) Songs(w http.ResponseWriter, r *http.Request) {
	songs, err := h.songs.Songs()
	if err != nil {
		h.logger.Error("failed to list songs", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Failed to list songs"})
		return
	}
	writeJSON(w, http.StatusOK, songs)
}
