// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"

	"github.com/desertthunder/spotcat/internal/services"
)

// MockCatalog is a test double for [services.Catalog]
type MockCatalog struct {
	TrackFn           func(ctx context.Context, trackID string) (*services.Track, error)
	ArtistFn          func(ctx context.Context, artistID string) (*services.Artist, error)
	ValidateTracksFn  func(ctx context.Context, trackIDs []string) (map[string]services.EntryRef, error)
	ValidateArtistsFn func(ctx context.Context, artistIDs []string) (map[string]services.EntryRef, error)
}

func (m *MockCatalog) Track(ctx context.Context, trackID string) (*services.Track, error) {
	if m.TrackFn != nil {
		return m.TrackFn(ctx, trackID)
	}
	return nil, nil
}

func (m *MockCatalog) Artist(ctx context.Context, artistID string) (*services.Artist, error) {
	if m.ArtistFn != nil {
		return m.ArtistFn(ctx, artistID)
	}
	return nil, nil
}

func (m *MockCatalog) ValidateTracks(ctx context.Context, trackIDs []string) (map[string]services.EntryRef, error) {
	if m.ValidateTracksFn != nil {
		return m.ValidateTracksFn(ctx, trackIDs)
	}
	return map[string]services.EntryRef{}, nil
}

func (m *MockCatalog) ValidateArtists(ctx context.Context, artistIDs []string) (map[string]services.EntryRef, error) {
	if m.ValidateArtistsFn != nil {
		return m.ValidateArtistsFn(ctx, artistIDs)
	}
	return map[string]services.EntryRef{}, nil
}

func (m *MockCatalog) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}