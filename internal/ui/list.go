package ui

import (
	"fmt"

	"github.com/bandolabs/bando/internal/models"
	"github.com/charmbracelet/bubbles/list"
)

var (
	_ list.Item = fileItem{}
	_ list.Item = favoriteItem{}
)

// fileItem wraps [models.MediaFile] to implement [list.Item].
type fileItem struct {
	file    models.MediaFile
	playing bool
}

func (i fileItem) FilterValue() string { return i.file.Name }
func (i fileItem) Title() string {
	if i.playing {
		return "▶ " + i.file.Name
	}
	return i.file.Name
}
func (i fileItem) Description() string {
	kind := "audio"
	if i.file.IsVideo() {
		kind = "video"
	}
	return fmt.Sprintf("%s • %s", kind, i.file.OriginalFilename)
}

// favoriteItem wraps [models.FavoriteTrack] to implement [list.Item].
type favoriteItem struct {
	track   models.FavoriteTrack
	playing bool
}

func (i favoriteItem) FilterValue() string { return i.track.Title }
func (i favoriteItem) Title() string {
	if i.playing {
		return "▶ " + i.track.Title
	}
	return i.track.Title
}
func (i favoriteItem) Description() string {
	desc := i.track.Artist
	if i.track.Description != "" {
		if desc != "" {
			desc = fmt.Sprintf("%s • %s", desc, i.track.Description)
		} else {
			desc = i.track.Description
		}
	}
	if !i.track.HasVideo() {
		if desc != "" {
			desc += " • "
		}
		desc += "no video"
	}
	return desc
}
