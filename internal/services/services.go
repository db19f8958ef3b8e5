// package services defines interface Catalog for interacting with music metadata HTTP APIs
package services

import (
	"context"
)

// Catalog defines the read-only metadata operations a music catalog provider
// supports: single-resource lookups and best-effort batch validation.
type Catalog interface {
	// Track retrieves a single track by ID.
	// Returns (nil, nil) when the catalog reports the track does not exist.
	Track(ctx context.Context, trackID string) (*Track, error)

	// Artist retrieves a single artist by ID.
	// Returns (nil, nil) when the catalog reports the artist does not exist.
	Artist(ctx context.Context, artistID string) (*Artist, error)

	// ValidateTracks checks each ID in input order and returns the subset
	// that resolved with both an id and a name. Individual failures are
	// omitted from the result, never surfaced as errors.
	ValidateTracks(ctx context.Context, trackIDs []string) (map[string]EntryRef, error)

	// ValidateArtists is the artist analogue of ValidateTracks.
	ValidateArtists(ctx context.Context, artistIDs []string) (map[string]EntryRef, error)

	// Name returns the name of the catalog provider (e.g., "Spotify")
	Name() string
}

// EntryRef is the minimal id/name pair batch validation resolves each
// input identifier to.
type EntryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AlbumRef summarizes the album a track belongs to.
// Fields are nil when the upstream response omits them.
type AlbumRef struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

// ArtistRef summarizes one of a track's artists.
type ArtistRef struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

// Track is the normalized projection of a catalog track. Optional fields are
// pointers so absent upstream values serialize as explicit nulls rather than
// disappearing from the output.
type Track struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	DurationMS *int        `json:"duration_ms"`
	Explicit   *bool       `json:"explicit"`
	PreviewURL *string     `json:"preview_url"`
	Album      AlbumRef    `json:"album"`
	Artists    []ArtistRef `json:"artists"`
}

// Artist is the normalized projection of a catalog artist. Genres is never
// nil; Followers comes from the upstream nested followers.total field.
type Artist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Genres     []string `json:"genres"`
	Popularity *int     `json:"popularity"`
	Followers  *int     `json:"followers"`
}
