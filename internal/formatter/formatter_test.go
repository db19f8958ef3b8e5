package formatter

import (
	"strings"
	"testing"

	"github.com/desertthunder/spotcat/internal/services"
)

func ptr[T any](v T) *T { return &v }

func sampleTrack() *services.Track {
	return &services.Track{
		ID:         "4uLU6hMCjMI75M1A2tKUQC",
		Name:       "Never Gonna Give You Up",
		DurationMS: ptr(213573),
		Explicit:   ptr(false),
		Album: services.AlbumRef{
			ID:   ptr("6eUW0wxWtzkFdaEFsTJto6"),
			Name: ptr("Whenever You Need Somebody"),
		},
		Artists: []services.ArtistRef{
			{ID: ptr("0gxyHStUsqpMadRV0Di1Qt"), Name: ptr("Rick Astley")},
		},
	}
}

func sampleArtist() *services.Artist {
	return &services.Artist{
		ID:         "0gxyHStUsqpMadRV0Di1Qt",
		Name:       "Rick Astley",
		Genres:     []string{"dance pop", "new wave"},
		Popularity: ptr(75),
		Followers:  ptr(4123456),
	}
}

func TestTrackToCSV(t *testing.T) {
	data, err := TrackToCSV(sampleTrack())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one record, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ID,Name,Duration") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "Never Gonna Give You Up") {
		t.Errorf("expected track name in record, got %s", lines[1])
	}
	if !strings.Contains(lines[1], "3:33") {
		t.Errorf("expected formatted duration, got %s", lines[1])
	}
}

func TestTrackToCSVWithMissingFields(t *testing.T) {
	track := &services.Track{ID: "x", Name: "Sparse", Artists: []services.ArtistRef{}}

	data, err := TrackToCSV(track)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(string(data), "-") {
		t.Error("expected placeholder for missing fields")
	}
}

func TestArtistToCSV(t *testing.T) {
	data, err := ArtistToCSV(sampleArtist())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "Rick Astley") {
		t.Errorf("expected artist name, got %s", out)
	}
	if !strings.Contains(out, "dance pop; new wave") {
		t.Errorf("expected joined genres, got %s", out)
	}
	if !strings.Contains(out, "4123456") {
		t.Errorf("expected follower count, got %s", out)
	}
}

func TestValidationToCSV(t *testing.T) {
	results := map[string]services.EntryRef{
		"b-id": {ID: "b-id", Name: "B"},
		"a-id": {ID: "a-id", Name: "A"},
	}

	data, err := ValidationToCSV(results)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two records, got %d lines", len(lines))
	}
	// Sorted by input ID for stable output
	if !strings.HasPrefix(lines[1], "a-id") || !strings.HasPrefix(lines[2], "b-id") {
		t.Errorf("expected rows sorted by input id, got %v", lines)
	}
}

func TestTrackToMarkdown(t *testing.T) {
	out := string(TrackToMarkdown(sampleTrack()))

	if !strings.HasPrefix(out, "# Never Gonna Give You Up") {
		t.Errorf("expected title heading, got %s", out)
	}
	if !strings.Contains(out, "**Album**: Whenever You Need Somebody") {
		t.Errorf("expected album line, got %s", out)
	}
	if strings.Contains(out, "[Preview]") {
		t.Error("expected no preview link when preview URL absent")
	}
}

func TestArtistToMarkdown(t *testing.T) {
	out := string(ArtistToMarkdown(sampleArtist()))

	if !strings.HasPrefix(out, "# Rick Astley") {
		t.Errorf("expected title heading, got %s", out)
	}
	if !strings.Contains(out, "dance pop, new wave") {
		t.Errorf("expected genre list, got %s", out)
	}
}

func TestTrackToText(t *testing.T) {
	out := string(TrackToText(sampleTrack()))

	if !strings.Contains(out, "Rick Astley - Never Gonna Give You Up [3:33]") {
		t.Errorf("unexpected text output: %s", out)
	}
}

func TestArtistToText(t *testing.T) {
	out := string(ArtistToText(sampleArtist()))

	if !strings.Contains(out, "Followers: 4123456") {
		t.Errorf("unexpected text output: %s", out)
	}
}

func TestValidationToText(t *testing.T) {
	results := map[string]services.EntryRef{
		"a-id": {ID: "a-id", Name: "A"},
	}

	out := string(ValidationToText(results))
	if !strings.Contains(out, "a-id -> A (a-id)") {
		t.Errorf("unexpected text output: %s", out)
	}
}
