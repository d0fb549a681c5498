// Package models defines the transient entities that flow through the metadata aggregation pipeline
// and the local library.
//
// The package contains three categories of types:
//
// 1. Raw provider records, decoded from external JSON before normalization
//   - [RawCatalogTrack] : one track from the catalog search API
//   - [RawLyricsHit] : one candidate song from the lyrics provider search
//   - [RawLyricsSongDetail] : extended song metadata from the lyrics provider
//
// 2. Normalized output entities, serialized to the web client with stable field names
//   - [TrackSummary] : searchable track shape returned by POST /search_spotify
//   - [LyricsInfo] : resolved lyrics metadata returned by POST /get_lyrics
//
// 3. Request and library types
//   - [LyricsRequest] : POST /get_lyrics body
//   - [SearchRequest] : POST /search_spotify body
//   - [Song] : a locally stored audio file with whatever tags could be read
//
// None of these are persisted; every value lives for a single request.
package models
