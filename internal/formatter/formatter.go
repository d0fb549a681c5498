// package formatter renders search results, lyrics metadata and the local library as text, Markdown, CSV or JSON
package formatter

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/musicplayer/internal/models"
	"github.com/desertthunder/musicplayer/internal/shared"
)

// Format is an output format name as accepted on the command line.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "md"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
)

// Formats lists every supported [Format].
var Formats = []Format{FormatText, FormatMarkdown, FormatCSV, FormatJSON}

// ParseFormat parses a format name. "markdown" is accepted for [FormatMarkdown] and "" means [FormatText].
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, s)
	}
}

// RenderTracks renders catalog search results for query in format f.
func RenderTracks(f Format, query string, tracks []models.TrackSummary) ([]byte, error) {
	switch f {
	case FormatText:
		return TracksToText(query, tracks), nil
	case FormatMarkdown:
		return TracksToMarkdown(query, tracks), nil
	case FormatCSV:
		return TracksToCSV(tracks)
	case FormatJSON:
		return toJSON(tracks)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, f)
	}
}

// RenderLyrics renders a lyrics match in format f.
func RenderLyrics(f Format, info *models.LyricsInfo) ([]byte, error) {
	switch f {
	case FormatText:
		return LyricsToText(info), nil
	case FormatMarkdown:
		return LyricsToMarkdown(info, ""), nil
	case FormatCSV:
		return LyricsToCSV(info)
	case FormatJSON:
		return toJSON(info)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, f)
	}
}

// TracksToCSV converts search results to CSV with columns: ID, Name, Artist, Has Preview, Preview URL, Image, Spotify URL
func TracksToCSV(tracks []models.TrackSummary) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Artist", "Has Preview", "Preview URL", "Image", "Spotify URL"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range tracks {
		record := []string{
			track.ID,
			track.Name,
			track.Artist,
			strconv.FormatBool(track.HasPreview),
			deref(track.PreviewURL),
			deref(track.Image),
			track.ExternalURL,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// TracksToMarkdown converts search results to a Markdown list linking each track to Spotify
func TracksToMarkdown(query string, tracks []models.TrackSummary) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# Results for \"%s\"\n\n", query)
	fmt.Fprintf(&buf, "**Tracks**: %d\n\n", len(tracks))

	for i, track := range tracks {
		title := track.Name
		if track.ExternalURL != "" {
			title = fmt.Sprintf("[%s](%s)", track.Name, track.ExternalURL)
		}
		previewPart := ""
		if track.HasPreview {
			previewPart = fmt.Sprintf(" ([preview](%s))", *track.PreviewURL)
		}
		fmt.Fprintf(&buf, "%d. %s - %s%s\n", i+1, track.Artist, title, previewPart)
	}

	return buf.Bytes()
}

// TracksToText converts search results to plain text
func TracksToText(query string, tracks []models.TrackSummary) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Search: %s\n", query)
	fmt.Fprintf(&buf, "Tracks: %d\n\n", len(tracks))

	for i, track := range tracks {
		marker := ""
		if track.HasPreview {
			marker = " ♪"
		}
		fmt.Fprintf(&buf, "%d. %s - %s%s\n", i+1, track.Artist, track.Name, marker)
	}

	return buf.Bytes()
}

// LyricsToText converts a lyrics match to plain text
func LyricsToText(info *models.LyricsInfo) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Title: %s\n", info.Title)
	fmt.Fprintf(&buf, "Artist: %s\n", info.Artist)
	fmt.Fprintf(&buf, "Album: %s\n", info.Album)
	if info.ReleaseDate != nil {
		fmt.Fprintf(&buf, "Released: %s\n", *info.ReleaseDate)
	}
	fmt.Fprintf(&buf, "Lyrics: %s\n", info.LyricsURL)

	return buf.Bytes()
}

// LyricsToMarkdown converts a lyrics match to Markdown with an optional cover image
func LyricsToMarkdown(info *models.LyricsInfo, imageFilename string) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", info.Title)

	if imageFilename != "" {
		fmt.Fprintf(&buf, "![Cover](%s)\n\n", imageFilename)
	}

	fmt.Fprintf(&buf, "**Artist**: %s\n", info.Artist)
	fmt.Fprintf(&buf, "**Album**: %s\n", info.Album)
	if info.ReleaseDate != nil {
		fmt.Fprintf(&buf, "**Released**: %s\n", *info.ReleaseDate)
	}
	fmt.Fprintf(&buf, "\n[Read the lyrics on Genius](%s)\n", info.LyricsURL)

	return buf.Bytes()
}

// LyricsToCSV converts a lyrics match to a single-row CSV
func LyricsToCSV(info *models.LyricsInfo) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	rows := [][]string{
		{"Genius ID", "Title", "Artist", "Album", "Release Date", "Image URL", "Lyrics URL"},
		{
			strconv.FormatInt(info.ProviderID, 10),
			info.Title,
			info.Artist,
			info.Album,
			deref(info.ReleaseDate),
			deref(info.ImageURL),
			info.LyricsURL,
		},
	}
	if err := writer.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// SongsToText converts the local library listing to plain text
func SongsToText(songs []models.Song) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Songs: %d\n\n", len(songs))
	for i, song := range songs {
		albumPart := ""
		if song.Album != "" {
			albumPart = fmt.Sprintf(" (%s)", song.Album)
		}
		fmt.Fprintf(&buf, "%d. %s%s [%s]\n", i+1, song.DisplayName(), albumPart, song.Filename)
	}

	return buf.Bytes()
}

// DownloadImage downloads an image from the given URL and returns the raw bytes
func DownloadImage(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: empty URL provided", shared.ErrMissingArgument)
	}
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image: status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return imageData, nil
}

// MarkdownExportResult contains information about files created by WriteLyricsExport
type MarkdownExportResult struct {
	Directory  string
	Files      []string
	CoverImage string
}

// WriteLyricsExport writes a lyrics match to {dir}/README.md, plus {dir}/cover.jpg when the song has artwork.
//
// A failed cover download is reported through warn and does not fail the export.
func WriteLyricsExport(ctx context.Context, info *models.LyricsInfo, outputDir string, client *http.Client, warn func(error)) (*MarkdownExportResult, error) {
	if outputDir == "" {
		outputDir = fmt.Sprintf("genius-%d", info.ProviderID)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	result := &MarkdownExportResult{
		Directory: outputDir,
		Files:     []string{},
	}

	var coverImageFilename string
	if info.ImageURL != nil && *info.ImageURL != "" {
		imageData, err := DownloadImage(ctx, client, *info.ImageURL)
		if err == nil {
			coverImageFilename = "cover.jpg"
			coverImagePath := filepath.Join(outputDir, coverImageFilename)
			if err = os.WriteFile(coverImagePath, imageData, 0644); err == nil {
				result.CoverImage = coverImagePath
				result.Files = append(result.Files, coverImagePath)
			} else {
				coverImageFilename = ""
			}
		}
		if err != nil && warn != nil {
			warn(err)
		}
	}

	mdFile := filepath.Join(outputDir, "README.md")
	if err := os.WriteFile(mdFile, LyricsToMarkdown(info, coverImageFilename), 0644); err != nil {
		return nil, fmt.Errorf("failed to write Markdown file: %w", err)
	}

	result.Files = append(result.Files, mdFile)

	return result, nil
}

// WriteFile writes rendered output to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func toJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
