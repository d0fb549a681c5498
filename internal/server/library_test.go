package server

import (
	"bytes"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/musicplayer/internal/library"
	tu "github.com/desertthunder/musicplayer/internal/testing"
)

type libraryFixture struct {
	router   http.Handler
	musicDir string
	playlist string
}

func newLibraryFixture(t *testing.T) libraryFixture {
	t.Helper()
	root := t.TempDir()
	musicDir := filepath.Join(root, "music")

	songs, err := library.NewStore(musicDir, quietLogger())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	playlist := filepath.Join(root, "playlist.json")

	router, err := NewRouter(Options{
		Songs:     songs,
		Playlists: library.NewPlaylistStore(playlist),
		Logger:    quietLogger(),
	})
	if err != nil {
		t.Fatalf("failed to build router: %v", err)
	}
	return libraryFixture{router: router, musicDir: musicDir, playlist: playlist}
}

func (f libraryFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte(content))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestLibraryRoutes(t *testing.T) {
	t.Run("index lists songs", func(t *testing.T) {
		f := newLibraryFixture(t)
		tu.MustWriteFile(t, filepath.Join(f.musicDir, "first.mp3"), []byte("audio"))

		rec := f.do(httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html") {
			t.Errorf("unexpected content type %q", rec.Header().Get("Content-Type"))
		}
		if !strings.Contains(rec.Body.String(), "/music/first.mp3") {
			t.Error("expected song link in index")
		}
	})

	t.Run("unknown paths are 404", func(t *testing.T) {
		f := newLibraryFixture(t)
		if rec := f.do(httptest.NewRequest(http.MethodGet, "/nope", nil)); rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("upload stores audio and redirects", func(t *testing.T) {
		f := newLibraryFixture(t)
		rec := f.do(uploadRequest(t, "new.mp3", "fresh audio"))

		if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/" {
			t.Errorf("expected redirect to /, got %d %q", rec.Code, rec.Header().Get("Location"))
		}
		if got := tu.MustReadFile(t, filepath.Join(f.musicDir, "new.mp3")); got != "fresh audio" {
			t.Errorf("unexpected stored content %q", got)
		}
	})

	t.Run("upload ignores unsupported files", func(t *testing.T) {
		f := newLibraryFixture(t)
		rec := f.do(uploadRequest(t, "notes.txt", "text"))

		if rec.Code != http.StatusFound {
			t.Errorf("expected redirect, got %d", rec.Code)
		}
		songs := f.do(httptest.NewRequest(http.MethodGet, "/library", nil))
		if strings.TrimSpace(songs.Body.String()) != "[]" {
			t.Errorf("expected empty library, got %s", songs.Body.String())
		}
	})

	t.Run("upload without file redirects", func(t *testing.T) {
		f := newLibraryFixture(t)
		rec := f.do(httptest.NewRequest(http.MethodPost, "/upload", nil))
		if rec.Code != http.StatusFound {
			t.Errorf("expected redirect, got %d", rec.Code)
		}
	})

	t.Run("music serves stored files", func(t *testing.T) {
		f := newLibraryFixture(t)
		tu.MustWriteFile(t, filepath.Join(f.musicDir, "song.mp3"), []byte("audio bytes"))

		rec := f.do(httptest.NewRequest(http.MethodGet, "/music/song.mp3", nil))
		if rec.Code != http.StatusOK || rec.Body.String() != "audio bytes" {
			t.Errorf("expected 200 with contents, got %d %q", rec.Code, rec.Body.String())
		}

		rec = f.do(httptest.NewRequest(http.MethodGet, "/music/missing.mp3", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("music does not escape the library", func(t *testing.T) {
		f := newLibraryFixture(t)
		tu.MustWriteFile(t, f.playlist, []byte("[]"))

		rec := f.do(httptest.NewRequest(http.MethodGet, "/music/..%2Fplaylist.json", nil))
		if rec.Code == http.StatusOK {
			t.Errorf("expected traversal to fail, got %d %q", rec.Code, rec.Body.String())
		}
	})

	t.Run("playlist round trip", func(t *testing.T) {
		f := newLibraryFixture(t)

		rec := f.do(httptest.NewRequest(http.MethodGet, "/load_playlist", nil))
		if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
			t.Fatalf("expected empty playlist, got %d %q", rec.Code, rec.Body.String())
		}

		doc := `[{"name":"song.mp3","title":"Song"}]`
		rec = f.do(httptest.NewRequest(http.MethodPost, "/save_playlist", strings.NewReader(doc)))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if body := decodeBody[map[string]string](t, rec); body["status"] != "success" {
			t.Errorf("unexpected body %v", body)
		}

		rec = f.do(httptest.NewRequest(http.MethodGet, "/load_playlist", nil))
		if strings.TrimSpace(rec.Body.String()) != doc {
			t.Errorf("expected %s, got %s", doc, rec.Body.String())
		}
	})

	t.Run("save_playlist rejects invalid json", func(t *testing.T) {
		f := newLibraryFixture(t)
		rec := f.do(httptest.NewRequest(http.MethodPost, "/save_playlist", strings.NewReader("{oops")))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("library lists songs as json", func(t *testing.T) {
		f := newLibraryFixture(t)
		tu.MustWriteFile(t, filepath.Join(f.musicDir, "b.wav"), []byte("b"))
		tu.MustWriteFile(t, filepath.Join(f.musicDir, "a.mp3"), []byte("a"))

		rec := f.do(httptest.NewRequest(http.MethodGet, "/library", nil))
		songs := decodeBody[[]map[string]any](t, rec)
		if len(songs) != 2 || songs[0]["filename"] != "a.mp3" || songs[1]["filename"] != "b.wav" {
			t.Errorf("unexpected songs %v", songs)
		}
	})
}

func TestArtHandler(t *testing.T) {
	router, err := NewRouter(Options{Logger: quietLogger()})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("serves a generated png", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, DefaultArtRoute, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
			t.Errorf("expected image/png, got %q", ct)
		}
		img, err := png.Decode(rec.Body)
		if err != nil {
			t.Fatalf("failed to decode png: %v", err)
		}
		if img.Bounds().Dx() != 300 {
			t.Errorf("expected width 300, got %d", img.Bounds().Dx())
		}
	})

	t.Run("rejects POST", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, DefaultArtRoute, nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
	})

	t.Run("prefers the file on disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), library.DefaultArtName)
		tu.MustWriteFile(t, path, []byte("custom art"))

		h, err := NewArtHandler(path)
		if err != nil {
			t.Fatal(err)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, DefaultArtRoute, nil))
		if rec.Body.String() != "custom art" {
			t.Errorf("expected file contents, got %q", rec.Body.String())
		}
	})
}
