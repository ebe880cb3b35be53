// package formatter renders playlists and saved-playlist summaries as plain text, Markdown, CSV or JSON
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/desertthunder/moodx/internal/models"
	"github.com/desertthunder/moodx/internal/shared"
	"github.com/desertthunder/moodx/internal/view"
)

// Format names an output format.
type Format string

const (
	Text     Format = "text"
	JSON     Format = "json"
	CSV      Format = "csv"
	Markdown Format = "markdown"
)

// Formats lists the accepted format names.
var Formats = []Format{Text, JSON, CSV, Markdown}

// ParseFormat validates name. An empty name means [Text].
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return Text, nil
	}
	for _, f := range Formats {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, name)
}

// Export renders playlist in format.
func Export(playlist *models.Playlist, format Format) ([]byte, error) {
	if playlist == nil {
		return nil, shared.ErrNoPlaylist
	}
	switch format {
	case Text, "":
		return ExportToText(playlist)
	case JSON:
		return ExportToJSON(playlist)
	case CSV:
		return ExportToCSV(playlist)
	case Markdown:
		return ExportToMarkdown(playlist, "")
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
}

// ExportToCSV converts a playlist to CSV format with columns: Title, Artist, Link, Preview, Image
func ExportToCSV(playlist *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Title", "Artist", "Link", "Preview", "Image"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, song := range playlist.Songs {
		record := []string{song.Title, song.Artist, song.Link, song.PreviewURL, song.Image}
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

// ExportToMarkdown converts a playlist to Markdown format with optional cover image
func ExportToMarkdown(playlist *models.Playlist, imageFilename string) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s Playlist\n\n", shared.Capitalize(playlist.Mood))

	if imageFilename != "" {
		fmt.Fprintf(&buf, "![Cover](%s)\n\n", imageFilename)
	}

	fmt.Fprintf(&buf, "**Songs**: %d\n", len(playlist.Songs))
	if !playlist.Timestamp.IsZero() {
		fmt.Fprintf(&buf, "**Created**: %s\n", playlist.Timestamp.Format("Jan 2, 2006"))
	}
	buf.WriteString("\n## Songs\n\n")

	for i, song := range playlist.Songs {
		fmt.Fprintf(&buf, "%d. [%s](%s) - %s", i+1, song.Title, song.Link, song.Artist)
		if song.HasPreview() {
			fmt.Fprintf(&buf, " ([preview](%s))", song.PreviewURL)
		}
		buf.WriteString("\n")
	}

	if len(playlist.SuggestedMoods) > 0 {
		fmt.Fprintf(&buf, "\n_Also try_: %s\n", strings.Join(playlist.SuggestedMoods, ", "))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a playlist to plain text format
func ExportToText(playlist *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Playlist: %s\n", shared.Capitalize(playlist.Mood))
	fmt.Fprintf(&buf, "Songs: %d\n\n", len(playlist.Songs))

	for i, song := range playlist.Songs {
		fmt.Fprintf(&buf, "%d. %s - %s\n", i+1, song.Title, song.Artist)
		fmt.Fprintf(&buf, "   %s\n", song.Link)
		if song.HasPreview() {
			fmt.Fprintf(&buf, "   preview: %s\n", song.PreviewURL)
		}
	}

	return buf.Bytes(), nil
}

// ExportToJSON encodes the playlist the way the save endpoint receives it.
func ExportToJSON(playlist *models.Playlist) ([]byte, error) {
	data, err := json.MarshalIndent(playlist, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode playlist: %w", err)
	}
	return append(data, '\n'), nil
}

// SavedToText renders saved summaries the way the saved-playlists view shows them.
func SavedToText(summaries []view.SavedSummary) []byte {
	var buf bytes.Buffer

	if len(summaries) == 0 {
		buf.WriteString("No saved playlists yet.\n")
		return buf.Bytes()
	}

	for i, s := range summaries {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(s.Title)
		if s.Created != "" {
			fmt.Fprintf(&buf, " (%s)", s.Created)
		}
		buf.WriteString("\n")
		for _, song := range s.Songs {
			fmt.Fprintf(&buf, "  %s\n", song)
		}
		if s.Overflow != "" {
			fmt.Fprintf(&buf, "  %s\n", s.Overflow)
		}
		if s.URL != "" {
			fmt.Fprintf(&buf, "  %s\n", s.URL)
		}
	}

	return buf.Bytes()
}

// DownloadImage downloads an image from the given URL and returns the raw bytes
func DownloadImage(url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("empty URL provided")
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Get(url)
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

// CoverImage returns the first song image, the playlist's de facto cover.
func CoverImage(playlist *models.Playlist) string {
	for _, song := range playlist.Songs {
		if song.HasImage() {
			return strings.TrimSpace(song.Image)
		}
	}
	return ""
}

// MarkdownExportResult contains information about files created by WriteMarkdownExport
type MarkdownExportResult struct {
	Directory  string
	Files      []string
	CoverImage string
}

// WriteMarkdownExport exports a playlist to Markdown format in a dedicated directory.
//
// The cover is the first song image, downloaded when there is one. A failed download is reported
// through warn and the export continues without it.
// Creates a directory structure: {dir}/README.md and optionally {dir}/cover.jpg
func WriteMarkdownExport(playlist *models.Playlist, outputDir string, warn func(error)) (*MarkdownExportResult, error) {
	if outputDir == "" {
		outputDir = playlist.Mood + "-playlist"
	}
	if warn == nil {
		warn = func(error) {}
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	result := &MarkdownExportResult{
		Directory: outputDir,
		Files:     []string{},
	}

	var coverImageFilename string
	if imageURL := CoverImage(playlist); imageURL != "" {
		imageData, err := DownloadImage(imageURL)
		if err != nil {
			warn(fmt.Errorf("failed to download cover image: %w", err))
		} else {
			coverImageFilename = "cover.jpg"
			coverImagePath := filepath.Join(outputDir, coverImageFilename)
			if err := os.WriteFile(coverImagePath, imageData, 0644); err != nil {
				warn(fmt.Errorf("failed to save cover image: %w", err))
				coverImageFilename = ""
			} else {
				result.CoverImage = coverImagePath
				result.Files = append(result.Files, coverImagePath)
			}
		}
	}

	mdData, err := ExportToMarkdown(playlist, coverImageFilename)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := filepath.Join(outputDir, "README.md")
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write Markdown file: %w", err)
	}

	result.Files = append(result.Files, mdFile)

	return result, nil
}

// WriteExport writes playlist in format to path, defaulting to {mood}_playlist.{ext}.
func WriteExport(playlist *models.Playlist, format Format, path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("%s_playlist.%s", playlist.Mood, format.Ext())
	}

	data, err := Export(playlist, format)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", format, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s file: %w", format, err)
	}

	return path, nil
}

// Ext is the file extension for f.
func (f Format) Ext() string {
	switch f {
	case JSON:
		return "json"
	case CSV:
		return "csv"
	case Markdown:
		return "md"
	default:
		return "txt"
	}
}
