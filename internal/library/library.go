// Package library presents the daemon's song database as an
// artist/album/song tree that can be expanded and collapsed row by row.
package library

import (
	"cmp"
	"slices"
	"strings"

	"github.com/llehouerou/vimpd/internal/playlist"
)

const unknownArtist = "Unknown Artist"
const unknownAlbum = "Unknown Album"

// Level represents the hierarchy level of a library row.
type Level int

const (
	LevelArtist Level = iota
	LevelAlbum
	LevelSong
)

type node struct {
	level    Level
	name     string
	song     playlist.Song
	parent   *node
	children []*node
	expanded bool
}

// Library is the expandable tree of every song known to the daemon.
// Rows are the currently visible nodes in display order.
type Library struct {
	roots []*node
	rows  []*node
	songs int
	queue *playlist.Playlist
}

// New creates an empty library that mirrors additions into queue.
func New(queue *playlist.Playlist) *Library {
	return &Library{queue: queue}
}

// Load rebuilds the tree from a flat song list. Expanded artists and albums
// stay expanded when they still exist.
func (l *Library) Load(songs []playlist.Song) {
	expanded := make(map[string]bool)
	for _, a := range l.roots {
		if a.expanded {
			expanded[a.name] = true
		}
		for _, b := range a.children {
			if b.expanded {
				expanded[a.name+"\x00"+b.name] = true
			}
		}
	}

	byArtist := make(map[string]*node)
	byAlbum := make(map[string]*node)
	l.roots = l.roots[:0]

	for _, s := range songs {
		artistName := cmp.Or(s.Artist, unknownArtist)
		albumName := cmp.Or(s.Album, unknownAlbum)

		artist, ok := byArtist[artistName]
		if !ok {
			artist = &node{level: LevelArtist, name: artistName, expanded: expanded[artistName]}
			byArtist[artistName] = artist
			l.roots = append(l.roots, artist)
		}

		key := artistName + "\x00" + albumName
		album, ok := byAlbum[key]
		if !ok {
			album = &node{level: LevelAlbum, name: albumName, parent: artist, expanded: expanded[key]}
			byAlbum[key] = album
			artist.children = append(artist.children, album)
		}

		album.children = append(album.children, &node{level: LevelSong, name: s.Title, song: s, parent: album})
	}

	byName := func(a, b *node) int {
		return cmp.Compare(strings.ToLower(a.name), strings.ToLower(b.name))
	}
	slices.SortFunc(l.roots, byName)
	for _, artist := range l.roots {
		slices.SortFunc(artist.children, byName)
		for _, album := range artist.children {
			slices.SortStableFunc(album.children, func(a, b *node) int {
				return cmp.Or(
					cmp.Compare(a.song.Track, b.song.Track),
					cmp.Compare(a.song.URI, b.song.URI),
				)
			})
		}
	}

	l.songs = len(songs)
	l.rebuild()
}

// Size returns the number of visible rows.
func (l *Library) Size() int {
	return len(l.rows)
}

// SongCount returns the number of songs in the tree.
func (l *Library) SongCount() int {
	return l.songs
}

// ArtistCount returns the number of top-level artists.
func (l *Library) ArtistCount() int {
	return len(l.roots)
}

// Level returns the level of row index.
func (l *Library) Level(index int) (Level, bool) {
	n := l.row(index)
	if n == nil {
		return 0, false
	}
	return n.level, true
}

// Line renders row index indented by its depth.
func (l *Library) Line(index int) string {
	n := l.row(index)
	if n == nil {
		return ""
	}
	switch n.level {
	case LevelArtist:
		return marker(n) + n.name
	case LevelAlbum:
		return "  " + marker(n) + n.name
	default:
		return "      " + n.song.Display()
	}
}

func marker(n *node) string {
	if n.expanded {
		return "- "
	}
	return "+ "
}

// Expand opens the artist or album at index. Songs are leaves.
func (l *Library) Expand(index int) {
	n := l.row(index)
	if n == nil || n.level == LevelSong || n.expanded {
		return
	}
	n.expanded = true
	l.rebuild()
}

// CollapseAt closes the node at index, or its parent when index is a leaf or
// already closed. It returns the row of the closed node so the caller can
// keep the cursor on it, or index when nothing changed.
func (l *Library) CollapseAt(index int) int {
	n := l.row(index)
	if n == nil {
		return index
	}
	if n.level == LevelSong || !n.expanded {
		n = n.parent
	}
	if n == nil {
		return index
	}
	n.expanded = false
	l.rebuild()
	return slices.Index(l.rows, n)
}

// Songs returns every song below row index, in display order.
func (l *Library) Songs(index int) []playlist.Song {
	n := l.row(index)
	if n == nil {
		return nil
	}
	var songs []playlist.Song
	collect(n, &songs)
	return songs
}

// AllSongs returns every song in the tree, in display order.
func (l *Library) AllSongs() []playlist.Song {
	songs := make([]playlist.Song, 0, l.songs)
	for _, n := range l.roots {
		collect(n, &songs)
	}
	return songs
}

// AddToPlaylist queues the songs below row index, or the whole library for
// scope All, through remote. Unknown rows add nothing.
func (l *Library) AddToPlaylist(scope playlist.Scope, remote playlist.Remote, index int) {
	if scope == playlist.All {
		playlist.Append(remote, l.queue, l.AllSongs()...)
		return
	}
	playlist.Append(remote, l.queue, l.Songs(index)...)
}

func collect(n *node, out *[]playlist.Song) {
	if n.level == LevelSong {
		*out = append(*out, n.song)
		return
	}
	for _, c := range n.children {
		collect(c, out)
	}
}

func (l *Library) row(index int) *node {
	if index < 0 || index >= len(l.rows) {
		return nil
	}
	return l.rows[index]
}

func (l *Library) rebuild() {
	l.rows = l.rows[:0]
	for _, artist := range l.roots {
		l.rows = append(l.rows, artist)
		if !artist.expanded {
			continue
		}
		for _, album := range artist.children {
			l.rows = append(l.rows, album)
			if album.expanded {
				l.rows = append(l.rows, album.children...)
			}
		}
	}
}
