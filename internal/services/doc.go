// Package services defines the [Catalog] interface for music metadata providers and implements it for the Spotify Web API.
//
// # Catalog Interface
//
// Metadata lookups share a common abstraction: two single-resource fetches (track, artist) and two best-effort batch validators.
//
// # Spotify Implementation
//
// [SpotifyService] authenticates with the client credentials flow: the application id and secret are exchanged for a short-lived bearer token which is cached in process memory.
//
// [SpotifyService.AccessToken] renews the cached token when it is absent or within the safety margin of expiry; every other call reuses the cached slot without network I/O.
//
// # Lookup Outcomes
//
// A lookup ends in one of three states:
//   - found: the normalized record is returned
//   - not found: (nil, nil) — a normal outcome, not an error
//   - failed: a [shared.RequestError] or transport error
//
// Batch validation converts per-item failures into silent omission; only credential acquisition can fail a whole batch.
//
// # Error Handling
//
// Services use typed errors from the shared package:
//   - [shared.ErrMissingCredentials] : client id or secret not configured
//   - [shared.AuthError] : token exchange rejected (carries status and body)
//   - [shared.RequestError] : catalog fetch failed (carries status and URL)
package services
