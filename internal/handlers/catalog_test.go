package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charlesng35/ayumi/internal/catalog"
	"github.com/charlesng35/ayumi/internal/handlers/testutil"
)

func TestCatalog_Fonts(t *testing.T) {
	env := testutil.NewEnv(t)

	w := env.Request(http.MethodGet, "/api/fonts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := testutil.DecodeResponse(t, w)
	var all struct {
		Fonts []catalog.Font `json:"fonts"`
	}
	testutil.DecodeInto(t, resp.Data, &all)
	require.Len(t, all.Fonts, len(catalog.Default().Fonts()))
	require.Equal(t, len(all.Fonts), resp.Meta.Total)

	w = env.Request(http.MethodGet, "/api/fonts/category/serif", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var serif struct {
		Category string         `json:"category"`
		Fonts    []catalog.Font `json:"fonts"`
	}
	testutil.DecodeInto(t, testutil.DecodeResponse(t, w).Data, &serif)
	require.Equal(t, "serif", serif.Category)
	require.NotEmpty(t, serif.Fonts)
	for _, f := range serif.Fonts {
		require.Equal(t, "serif", f.Category)
	}

	w = env.Request(http.MethodGet, "/api/fonts/georgia", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var font catalog.Font
	testutil.DecodeInto(t, testutil.DecodeResponse(t, w).Data, &font)
	require.Equal(t, "Georgia", font.Name)

	w = env.Request(http.MethodGet, "/api/fonts/comic-sans", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "font.not_found", testutil.DecodeResponse(t, w).Error.Code)
}

func TestCatalog_Colors(t *testing.T) {
	env := testutil.NewEnv(t)

	w := env.Request(http.MethodGet, "/api/colors/category/warm", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var warm struct {
		Colors []catalog.Color `json:"colors"`
	}
	testutil.DecodeInto(t, testutil.DecodeResponse(t, w).Data, &warm)
	require.NotEmpty(t, warm.Colors)
	for _, col := range warm.Colors {
		require.Equal(t, "warm", col.Category)
	}

	w = env.Request(http.MethodGet, "/api/colors/yellow", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var color catalog.Color
	testutil.DecodeInto(t, testutil.DecodeResponse(t, w).Data, &color)
	require.Equal(t, "#FFEB3B", color.HexColor)

	w = env.Request(http.MethodGet, "/api/colors/ultraviolet", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalog_Worship(t *testing.T) {
	env := testutil.NewEnv(t)

	w := env.Request(http.MethodGet, "/api/worship/artists", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.Request(http.MethodGet, "/api/worship/artists/elevation-worship", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var artist catalog.Artist
	testutil.DecodeInto(t, testutil.DecodeResponse(t, w).Data, &artist)
	require.Equal(t, "Elevation Worship", artist.Name)

	w = env.Request(http.MethodGet, "/api/worship/artists/nobody", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.Request(http.MethodGet, "/api/worship/search/way%20MAKER", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var search struct {
		Query   string         `json:"query"`
		Results []catalog.Song `json:"results"`
	}
	testutil.DecodeInto(t, testutil.DecodeResponse(t, w).Data, &search)
	require.NotEmpty(t, search.Results)
	require.Equal(t, "Way Maker", search.Results[0].Title)

	w = env.Request(http.MethodGet, "/api/worship/artist/elevation-worship/songs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var songs struct {
		ArtistID string         `json:"artist_id"`
		Songs    []catalog.Song `json:"songs"`
	}
	testutil.DecodeInto(t, testutil.DecodeResponse(t, w).Data, &songs)
	require.Equal(t, "elevation-worship", songs.ArtistID)
	for _, s := range songs.Songs {
		require.Equal(t, "elevation-worship", s.ArtistID)
	}
}
