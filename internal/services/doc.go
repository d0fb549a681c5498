// Package services implements the external metadata aggregation pipeline: provider clients, normalizers and the
// [Aggregator] that the HTTP layer calls.
//
// # Provider Interfaces
//
// [CatalogSearcher] and [LyricsProvider] are the seams between the aggregator and the network. Tests substitute
// stubs from internal/testing; production wires [SpotifyCatalog] and [GeniusClient].
//
// # Spotify Implementation
//
// [SpotifyCatalog] delegates to zmb3/spotify. Credentials use the OAuth2 client-credentials flow: the
// [clientcredentials.Config] transport fetches a token on first use and refreshes it on expiry, so the client is
// built once at startup and injected.
//
// # Genius Implementation
//
// [GeniusClient] performs the two-step lookup (GET /search, then GET /songs/{id}) with a static bearer token.
// A missing token is reported as [ErrLyricsNotConfigured] before any request is made.
//
// # Normalization
//
// [NormalizeTrack] and [NormalizeLyrics] are pure. [NormalizeTracks] skips and logs malformed catalog items rather
// than failing the whole batch.
//
// # Error Handling
//
// Provider clients return typed errors:
//   - [*CatalogError] : any failure of the catalog search
//   - [*ProviderError] : non-2xx lyrics response (matches [shared.ErrAPIRequest])
//   - [*TransportError] : no lyrics response at all
//   - [ErrLyricsNotConfigured] : missing token
//
// The [Aggregator] classifies them into an [*Error] carrying a [Kind], which maps to an HTTP status via [Kind.Status]:
//   - [KindBadRequest] (400), [KindMisconfigured] (500), [KindNotFound] (404)
//   - [KindUpstream] (500), [KindUnavailable] (503), [KindInternal] (500)
package services
