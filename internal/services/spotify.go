// Spotify API implementation of [Catalog]
//
// Spotify API response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotcat/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"

	defaultTimeout = 10 * time.Second
)

type followers struct {
	Total *int `json:"total"`
}

type albumSummary struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

type artistSummary struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

// spotifyTrack represents the subset of a Spotify track response this client consumes.
type spotifyTrack struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	DurationMS *int            `json:"duration_ms"`
	Explicit   *bool           `json:"explicit"`
	PreviewURL *string         `json:"preview_url"`
	Album      albumSummary    `json:"album"`
	Artists    []artistSummary `json:"artists"`
}

// spotifyArtist represents the subset of a Spotify artist response this client consumes.
type spotifyArtist struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Genres     []string  `json:"genres"`
	Popularity *int      `json:"popularity"`
	Followers  followers `json:"followers"`
}

func (t *spotifyTrack) normalize() *Track {
	artists := make([]ArtistRef, 0, len(t.Artists))
	for _, a := range t.Artists {
		artists = append(artists, ArtistRef{ID: a.ID, Name: a.Name})
	}

	return &Track{
		ID:         t.ID,
		Name:       t.Name,
		DurationMS: t.DurationMS,
		Explicit:   t.Explicit,
		PreviewURL: t.PreviewURL,
		Album:      AlbumRef{ID: t.Album.ID, Name: t.Album.Name},
		Artists:    artists,
	}
}

func (a *spotifyArtist) normalize() *Artist {
	genres := a.Genres
	if genres == nil {
		genres = []string{}
	}

	return &Artist{
		ID:         a.ID,
		Name:       a.Name,
		Genres:     genres,
		Popularity: a.Popularity,
		Followers:  a.Followers.Total,
	}
}

// SpotifyService implements the Catalog interface for the Spotify Web API
// using the client credentials flow. The cached [oauth2.Token] is the only
// shared mutable state; the mutex around it keeps concurrent callers from
// performing redundant token exchanges.
type SpotifyService struct {
	clientID     string
	clientSecret string
	baseURL      string
	tokenURL     string
	httpClient   *http.Client
	limiter      *rate.Limiter
	logger       *log.Logger

	mu    sync.Mutex
	token *oauth2.Token
	now   func() time.Time
}

// SpotifyOpts contains configuration options for creating a SpotifyService.
type SpotifyOpts struct {
	Credentials map[string]string
	BaseURL     string
	TokenURL    string
	HTTPClient  *http.Client
	Limiter     *rate.Limiter
	Logger      *log.Logger
	Now         func() time.Time
}

// NewSpotifyService creates a new Spotify catalog service. Missing credentials
// are not an error here: they surface as [shared.ErrMissingCredentials] from
// the first call that needs a token, before any network I/O.
func NewSpotifyService(opts SpotifyOpts) *SpotifyService {
	if opts.BaseURL == "" {
		opts.BaseURL = spotifyBaseURL
	}
	if opts.TokenURL == "" {
		opts.TokenURL = spotifyTokenURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	if opts.Limiter == nil {
		opts.Limiter = rate.NewLimiter(rate.Limit(10), 10)
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &SpotifyService{
		clientID:     opts.Credentials["client_id"],
		clientSecret: opts.Credentials["client_secret"],
		baseURL:      opts.BaseURL,
		tokenURL:     opts.TokenURL,
		httpClient:   opts.HTTPClient,
		limiter:      opts.Limiter,
		logger:       opts.Logger,
		now:          opts.Now,
	}
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// fetch performs an authenticated GET against the catalog API and decodes the
// JSON response into result. Returns false with a nil error when the catalog
// reports 404: "resource absent" is a normal outcome, distinct from failure.
func (s *SpotifyService) fetch(ctx context.Context, endpoint string, result any) (bool, error) {
	token, err := s.AccessToken(ctx)
	if err != nil {
		return false, err
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return false, fmt.Errorf("rate limiter: %w", err)
	}

	apiURL := s.baseURL + endpoint
	reqID := shared.GenerateID()
	s.logger.Debug("catalog request", "request_id", reqID, "endpoint", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		s.logger.Debug("resource not found", "request_id", reqID, "endpoint", endpoint)
		return false, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, &shared.RequestError{StatusCode: resp.StatusCode, URL: apiURL}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return false, fmt.Errorf("failed to decode response: %w", err)
	}

	return true, nil
}

// Track retrieves a single track by ID and projects it into the normalized
// [Track] shape. Returns (nil, nil) when the track does not exist.
func (s *SpotifyService) Track(ctx context.Context, trackID string) (*Track, error) {
	var payload spotifyTrack
	found, err := s.fetch(ctx, "/tracks/"+trackID, &payload)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return payload.normalize(), nil
}

// Artist retrieves a single artist by ID and projects it into the normalized
// [Artist] shape. Returns (nil, nil) when the artist does not exist.
func (s *SpotifyService) Artist(ctx context.Context, artistID string) (*Artist, error) {
	var payload spotifyArtist
	found, err := s.fetch(ctx, "/artists/"+artistID, &payload)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return payload.normalize(), nil
}

// ValidateTracks fetches each track ID in input order and returns the subset
// that resolved with both an id and a name. A failure on one ID never affects
// the others and never surfaces as an error; only credential acquisition
// itself can fail the whole batch, since that is not a per-item problem.
func (s *SpotifyService) ValidateTracks(ctx context.Context, trackIDs []string) (map[string]EntryRef, error) {
	if _, err := s.AccessToken(ctx); err != nil {
		return nil, err
	}

	valid := make(map[string]EntryRef, len(trackIDs))
	for _, id := range trackIDs {
		track, err := s.Track(ctx, id)
		if err != nil {
			s.logger.Debug("skipping track", "id", id, "error", err)
			continue
		}
		if track == nil || track.ID == "" || track.Name == "" {
			continue
		}
		valid[id] = EntryRef{ID: track.ID, Name: track.Name}
	}

	return valid, nil
}

// ValidateArtists is the artist analogue of [SpotifyService.ValidateTracks].
func (s *SpotifyService) ValidateArtists(ctx context.Context, artistIDs []string) (map[string]EntryRef, error) {
	if _, err := s.AccessToken(ctx); err != nil {
		return nil, err
	}

	valid := make(map[string]EntryRef, len(artistIDs))
	for _, id := range artistIDs {
		artist, err := s.Artist(ctx, id)
		if err != nil {
			s.logger.Debug("skipping artist", "id", id, "error", err)
			continue
		}
		if artist == nil || artist.ID == "" || artist.Name == "" {
			continue
		}
		valid[id] = EntryRef{ID: artist.ID, Name: artist.Name}
	}

	return valid, nil
}
