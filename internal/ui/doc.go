// Package ui implements the interactive page interface using bubbletea's Elm architecture.
//
// One [Model] drives a single page, marches or music; the two pages differ
// only in their [models.Page] configuration. The views:
//  1. [LibraryView] : Browse uploaded files, toggle playback, start uploads and deletes
//  2. [FavoritesView] : Browse the curated favorites and play their videos
//  3. [UploadView] : Pick a local file and name it before submitting
//  4. [ConfirmDeleteView] : Confirm removal of an uploaded file
//
// The Model implements bubbletea/Elm's standard Init/Update/View pattern.
// Audio plays in-process through the shared audio handle; videos open in the
// platform player. When the audio sink drains or fails it reports idleness
// back into the program through [AudioIdle].
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
