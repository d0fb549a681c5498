// Package library manages the local side of the app: the music directory, the saved playlist and the
// default album art.
//
// [Store] lists and stores audio files. Tags are read with taglib when the file has them; otherwise the
// file name stands in for the title. Only .mp3 and .wav files are accepted and listed, and file names are
// reduced to their base name so uploads and lookups cannot escape the music directory.
//
// [PlaylistStore] keeps the playlist as an opaque JSON document in a single file. The web client owns its
// shape; the store only checks that it is valid JSON.
//
// [EnsureDefaultArt] writes the placeholder album image used when a track has no artwork.
package library
