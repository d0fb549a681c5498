// Package tasks runs long-lived batch jobs over the local music library with real-time progress reporting.
//
// # Batch lyrics
//
// [LyricsEngine.BatchLyrics] resolves lyrics metadata for every tagged song in the library:
//
//  1. Songs without an artist tag are skipped, the provider needs both a title and an artist
//  2. The remaining songs are fanned out to a fixed pool of workers
//  3. Each worker calls the [LyricsResolver] once per song, without retries
//  4. Results keep the order of the input songs
//  5. A JSON manifest is written when an output directory is set
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates.
//
// The [ProgressUpdate] struct contains phase, step counters, messages, and optional data for advanced UI rendering.
// Updates use select with default to prevent blocking.
package tasks
