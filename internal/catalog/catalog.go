// Package catalog serves the static reference data: Bible versions, reader
// fonts, highlight colors and the worship music library.
package catalog

import (
	"sort"
	"strings"
	"sync"
)

type BibleVersion struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Abbreviation    string `json:"abbreviation"`
	Language        string `json:"language"`
	LanguageCode    string `json:"language_code"`
	Year            int    `json:"year,omitempty"`
	TranslationType string `json:"translation_type"`
}

// Language is a language that has at least one Bible version.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Font struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Family     string `json:"family"`
	Category   string `json:"category"`
	Weight     string `json:"weight"`
	IsWebSafe  bool   `json:"is_web_safe"`
	GoogleFont bool   `json:"google_font"`
}

type Color struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	HexColor string `json:"hex_color"`
	RGBA     string `json:"rgba"`
	Category string `json:"category"`
}

type Artist struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Genre       []string `json:"genre"`
	Description string   `json:"description,omitempty"`
}

type Song struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	ArtistID   string   `json:"artist_id"`
	ArtistName string   `json:"artist_name"`
	YouTubeID  string   `json:"youtube_id,omitempty"`
	Key        string   `json:"key,omitempty"`
	Tempo      int      `json:"tempo,omitempty"`
	Tags       []string `json:"tags"`
}

// Catalog is an immutable, indexed view of the reference data. Accessors
// return copies, so callers may modify results freely.
type Catalog struct {
	versions  []BibleVersion
	languages []Language
	fonts     []Font
	colors    []Color
	artists   []Artist
	songs     []Song

	versionByID map[string]BibleVersion
	fontByID    map[string]Font
	colorByID   map[string]Color
	artistByID  map[string]Artist
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the shared catalog built from the bundled data.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New()
	})
	return defaultCatalog
}

// New builds a catalog from the bundled data, including derived font weights
// and color shades.
func New() *Catalog {
	c := &Catalog{
		versions:    append([]BibleVersion(nil), bibleVersions...),
		fonts:       append(append([]Font(nil), baseFonts...), fontVariations(baseFonts)...),
		colors:      append(append([]Color(nil), baseColors...), colorVariations(baseColors)...),
		artists:     append([]Artist(nil), artists...),
		songs:       append([]Song(nil), songs...),
		versionByID: make(map[string]BibleVersion, len(bibleVersions)),
		fontByID:    make(map[string]Font),
		colorByID:   make(map[string]Color),
		artistByID:  make(map[string]Artist, len(artists)),
	}

	seen := make(map[string]bool)
	for _, v := range c.versions {
		c.versionByID[v.ID] = v
		if !seen[v.LanguageCode] {
			seen[v.LanguageCode] = true
			c.languages = append(c.languages, Language{Code: v.LanguageCode, Name: v.Language})
		}
	}
	sort.Slice(c.languages, func(i, j int) bool { return c.languages[i].Code < c.languages[j].Code })

	for _, f := range c.fonts {
		c.fontByID[f.ID] = f
	}
	for _, col := range c.colors {
		c.colorByID[col.ID] = col
	}
	for _, a := range c.artists {
		c.artistByID[a.ID] = a
	}
	return c
}

func (c *Catalog) Versions() []BibleVersion {
	return append([]BibleVersion(nil), c.versions...)
}

// VersionsByLanguage filters versions by ISO language code, case-insensitively.
func (c *Catalog) VersionsByLanguage(code string) []BibleVersion {
	return filter(c.versions, func(v BibleVersion) bool { return strings.EqualFold(v.LanguageCode, code) })
}

func (c *Catalog) Version(id string) (BibleVersion, bool) {
	v, ok := c.versionByID[strings.ToLower(strings.TrimSpace(id))]
	return v, ok
}

// VersionByAbbreviation resolves "ESV" style abbreviations used by readers.
func (c *Catalog) VersionByAbbreviation(abbreviation string) (BibleVersion, bool) {
	for _, v := range c.versions {
		if strings.EqualFold(v.Abbreviation, abbreviation) {
			return v, true
		}
	}
	return c.Version(abbreviation)
}

func (c *Catalog) Languages() []Language {
	return append([]Language(nil), c.languages...)
}

func (c *Catalog) Fonts() []Font {
	return append([]Font(nil), c.fonts...)
}

func (c *Catalog) FontsByCategory(category string) []Font {
	return filter(c.fonts, func(f Font) bool { return f.Category == category })
}

func (c *Catalog) Font(id string) (Font, bool) {
	f, ok := c.fontByID[id]
	return f, ok
}

func (c *Catalog) Colors() []Color {
	return append([]Color(nil), c.colors...)
}

func (c *Catalog) ColorsByCategory(category string) []Color {
	return filter(c.colors, func(col Color) bool { return col.Category == category })
}

func (c *Catalog) Color(id string) (Color, bool) {
	col, ok := c.colorByID[id]
	return col, ok
}

func (c *Catalog) Artists() []Artist {
	out := make([]Artist, len(c.artists))
	for i, a := range c.artists {
		a.Genre = append([]string(nil), a.Genre...)
		out[i] = a
	}
	return out
}

func (c *Catalog) Artist(id string) (Artist, bool) {
	a, ok := c.artistByID[id]
	a.Genre = append([]string(nil), a.Genre...)
	return a, ok
}

func (c *Catalog) Songs() []Song {
	return filter(c.songs, func(Song) bool { return true })
}

// SearchSongs matches query against titles and artist names, ignoring case.
func (c *Catalog) SearchSongs(query string) []Song {
	query = strings.ToLower(strings.TrimSpace(query))
	return filter(c.songs, func(s Song) bool {
		return strings.Contains(strings.ToLower(s.Title), query) ||
			strings.Contains(strings.ToLower(s.ArtistName), query)
	})
}

func (c *Catalog) ArtistSongs(artistID string) []Song {
	return filter(c.songs, func(s Song) bool { return s.ArtistID == artistID })
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, cloneItem(item))
		}
	}
	return out
}

func cloneItem[T any](item T) T {
	if song, ok := any(item).(Song); ok {
		song.Tags = append([]string(nil), song.Tags...)
		return any(song).(T)
	}
	return item
}
