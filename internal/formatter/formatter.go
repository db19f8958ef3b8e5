// package formatter provides functions to export catalog records to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/desertthunder/spotcat/internal/services"
	"github.com/desertthunder/spotcat/internal/shared"
)

const noValue = "-"

func orDash(s *string) string {
	if s == nil || *s == "" {
		return noValue
	}
	return *s
}

func intOrDash(n *int) string {
	if n == nil {
		return noValue
	}
	return strconv.Itoa(*n)
}

func artistNames(refs []services.ArtistRef) string {
	names := make([]string, 0, len(refs))
	for _, a := range refs {
		names = append(names, orDash(a.Name))
	}
	return strings.Join(names, ", ")
}

// TrackToCSV converts a Track to CSV format with columns: ID, Name, Duration, Explicit, Album, Artists, Preview URL
func TrackToCSV(track *services.Track) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Duration", "Explicit", "Album", "Artists", "Preview URL"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	duration := noValue
	if track.DurationMS != nil {
		duration = shared.FormatDuration(*track.DurationMS)
	}

	explicit := noValue
	if track.Explicit != nil {
		explicit = strconv.FormatBool(*track.Explicit)
	}

	record := []string{
		track.ID,
		track.Name,
		duration,
		explicit,
		orDash(track.Album.Name),
		artistNames(track.Artists),
		orDash(track.PreviewURL),
	}
	if err := writer.Write(record); err != nil {
		return nil, fmt.Errorf("failed to write CSV record: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ArtistToCSV converts an Artist to CSV format with columns: ID, Name, Genres, Popularity, Followers
func ArtistToCSV(artist *services.Artist) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Genres", "Popularity", "Followers"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	record := []string{
		artist.ID,
		artist.Name,
		strings.Join(artist.Genres, "; "),
		intOrDash(artist.Popularity),
		intOrDash(artist.Followers),
	}
	if err := writer.Write(record); err != nil {
		return nil, fmt.Errorf("failed to write CSV record: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ValidationToCSV converts a batch validation result to CSV format with
// columns: Input ID, ID, Name. Rows are sorted by input ID for stable output.
func ValidationToCSV(results map[string]services.EntryRef) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Input ID", "ID", "Name"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, id := range sortedKeys(results) {
		entry := results[id]
		if err := writer.Write([]string{id, entry.ID, entry.Name}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// TrackToMarkdown converts a Track to Markdown format
func TrackToMarkdown(track *services.Track) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", track.Name))
	buf.WriteString(fmt.Sprintf("**ID**: %s\n", track.ID))

	if track.DurationMS != nil {
		buf.WriteString(fmt.Sprintf("**Duration**: %s\n", shared.FormatDuration(*track.DurationMS)))
	}
	if track.Explicit != nil {
		buf.WriteString(fmt.Sprintf("**Explicit**: %t\n", *track.Explicit))
	}

	buf.WriteString(fmt.Sprintf("**Album**: %s\n", orDash(track.Album.Name)))
	buf.WriteString(fmt.Sprintf("**Artists**: %s\n", artistNames(track.Artists)))

	if track.PreviewURL != nil && *track.PreviewURL != "" {
		buf.WriteString(fmt.Sprintf("\n[Preview](%s)\n", *track.PreviewURL))
	}

	return buf.Bytes()
}

// ArtistToMarkdown converts an Artist to Markdown format
func ArtistToMarkdown(artist *services.Artist) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", artist.Name))
	buf.WriteString(fmt.Sprintf("**ID**: %s\n", artist.ID))
	buf.WriteString(fmt.Sprintf("**Genres**: %s\n", strings.Join(artist.Genres, ", ")))
	buf.WriteString(fmt.Sprintf("**Popularity**: %s\n", intOrDash(artist.Popularity)))
	buf.WriteString(fmt.Sprintf("**Followers**: %s\n", intOrDash(artist.Followers)))

	return buf.Bytes()
}

// TrackToText converts a Track to plain text format
func TrackToText(track *services.Track) []byte {
	var buf bytes.Buffer

	duration := noValue
	if track.DurationMS != nil {
		duration = shared.FormatDuration(*track.DurationMS)
	}

	buf.WriteString(fmt.Sprintf("%s - %s [%s]\n", artistNames(track.Artists), track.Name, duration))
	buf.WriteString(fmt.Sprintf("  ID: %s\n", track.ID))
	buf.WriteString(fmt.Sprintf("  Album: %s\n", orDash(track.Album.Name)))

	return buf.Bytes()
}

// ArtistToText converts an Artist to plain text format
func ArtistToText(artist *services.Artist) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\n", artist.Name))
	buf.WriteString(fmt.Sprintf("  ID: %s\n", artist.ID))
	buf.WriteString(fmt.Sprintf("  Genres: %s\n", strings.Join(artist.Genres, ", ")))
	buf.WriteString(fmt.Sprintf("  Popularity: %s\n", intOrDash(artist.Popularity)))
	buf.WriteString(fmt.Sprintf("  Followers: %s\n", intOrDash(artist.Followers)))

	return buf.Bytes()
}

// ValidationToText converts a batch validation result to plain text, one line
// per resolved ID, sorted by input ID.
func ValidationToText(results map[string]services.EntryRef) []byte {
	var buf bytes.Buffer

	for _, id := range sortedKeys(results) {
		entry := results[id]
		buf.WriteString(fmt.Sprintf("%s -> %s (%s)\n", id, entry.Name, entry.ID))
	}

	return buf.Bytes()
}

func sortedKeys(results map[string]services.EntryRef) []string {
	keys := make([]string, 0, len(results))
	for id := range results {
		keys = append(keys, id)
	}
	sort.Strings(keys)
	return keys
}
