// Package server provides HTTP routing, middleware and the handlers of the music player web app.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
// [NewRouter] installs [RequestID], [Logging] and [Recovery] in that order, so every access log line carries the
// request id and a panicking handler is still logged as a 500.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Metadata Endpoints
//
// [MetadataHandler] exposes the aggregation service:
//
//	POST /search_spotify  {"query": "..."}                         → [TrackSummary, ...]
//	POST /get_lyrics      {"track_name": "...", "artist_name": "..."} → LyricsInfo
//
// Failures are written as {"error": "..."} with an optional "message", using the status of the error's kind.
// A body that is not valid JSON is treated as empty and therefore fails validation with 400.
//
// # Library Endpoints
//
// [LibraryHandler] serves the index page, uploads, audio files, the playlist document and a JSON listing of the
// library. [ArtHandler] serves the placeholder album image.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
