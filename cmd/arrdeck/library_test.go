package main

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrdeck/internal/filter"
	"github.com/vmunix/arrdeck/internal/library"
	"github.com/vmunix/arrdeck/pkg/api"
)

var testProfiles = []api.QualityProfile{
	{
		ID:     1,
		Name:   "HD-1080p",
		Cutoff: "Bluray-1080p",
		Items: []api.QualityProfileItem{
			{Quality: "WEBDL-720p", Allowed: true},
			{Quality: "Bluray-1080p", Allowed: true},
		},
	},
}

func movieWithFile(id int64, title string, year int, monitored bool, q string) api.Movie {
	m := api.Movie{
		ID:               id,
		TMDBID:           id * 100,
		Title:            title,
		Year:             year,
		Monitored:        monitored,
		QualityProfileID: 1,
		Added:            time.Date(2024, 1, int(id), 0, 0, 0, 0, time.UTC),
	}
	if q != "" {
		m.HasFile = true
		m.SizeOnDisk = 4 << 30
		m.MovieFile = &api.MediaFile{ID: id, Quality: q, Size: 4 << 30}
	}
	return m
}

func libraryServer(t *testing.T) *mockServer {
	return newMockServer(t).
		RespondJSON(http.MethodGet, "/settings/qualityprofiles", testProfiles).
		RespondJSON(http.MethodGet, "/library/movies", []api.Movie{
			movieWithFile(1, "The Matrix", 1999, true, "Bluray-1080p"),
			movieWithFile(2, "Heat", 1995, true, ""),
			movieWithFile(3, "Alien", 1979, false, "WEBDL-720p"),
			movieWithFile(4, "Blade Runner", 1982, true, "WEBDL-720p"),
		})
}

func TestLibraryListCmd_PagesByConfig(t *testing.T) {
	srv := libraryServer(t).Build()
	cli := newTestCLI(t, srv.URL)

	out, err := cli.run("library", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Alien")
	assert.Contains(t, out, "Blade Runner")
	assert.NotContains(t, out, "Heat")
	assert.Contains(t, out, "4 movies, page 1 of 2")
	assert.Contains(t, out, "([1] 2)")
}

func TestLibraryListCmd_Presets(t *testing.T) {
	tests := []struct {
		preset string
		want   []string
	}{
		{"monitored", []string{"Blade Runner", "Heat"}},
		{"unmonitored", []string{"Alien"}},
		{"missing", []string{"Heat"}},
		{"cutoff-unmet", []string{"Blade Runner"}},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			srv := libraryServer(t).Build()
			cli := newTestCLI(t, srv.URL)

			out, err := cli.run("library", "list", "--preset", tt.preset, "--json")
			require.NoError(t, err)

			var res library.Result
			require.NoError(t, json.Unmarshal([]byte(out), &res))
			var titles []string
			for _, it := range res.Items {
				titles = append(titles, it.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestLibraryListCmd_SortAndSearch(t *testing.T) {
	srv := libraryServer(t).Build()
	cli := newTestCLI(t, srv.URL)

	out, err := cli.run("library", "list", "--sort", "year", "--desc", "--per-page", "10", "--json")
	require.NoError(t, err)
	var res library.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Items, 4)
	assert.Equal(t, "The Matrix", res.Items[0].Title)
	assert.Equal(t, "Alien", res.Items[3].Title)

	out, err = cli.run("library", "list", "--search", "matrix")
	require.NoError(t, err)
	assert.Contains(t, out, "The Matrix")
	assert.Contains(t, out, "1 movie, page 1 of 1")
}

func TestLibraryListCmd_FileColumn(t *testing.T) {
	srv := libraryServer(t).Build()
	cli := newTestCLI(t, srv.URL)

	out, err := cli.run("library", "list", "--per-page", "10")
	require.NoError(t, err)
	assert.Regexp(t, `The Matrix\s+1999 yes ok`, out)
	assert.Regexp(t, `Blade Runner\s+1982 yes up`, out)
	assert.Regexp(t, `Heat\s+1995 yes -`, out)
}

func TestLibraryListCmd_InvalidPreset(t *testing.T) {
	srv := newMockServer(t).Build()
	cli := newTestCLI(t, srv.URL)

	_, err := cli.run("library", "list", "--preset", "wanted")
	require.Error(t, err)
	assert.ErrorIs(t, err, library.ErrInvalidQuery)
}

func TestLibraryListCmd_SavedFilter(t *testing.T) {
	srv := libraryServer(t).Build()
	cli := newTestCLI(t, srv.URL)

	_, err := cli.run("filters", "save", "eighties", "--year-min", "1980", "--year-max", "1989")
	require.NoError(t, err)

	out, err := cli.run("library", "list", "--filter", "eighties")
	require.NoError(t, err)
	assert.Contains(t, out, "Blade Runner")
	assert.Contains(t, out, "1 movie, page 1 of 1")

	_, err = cli.run("library", "list", "--filter", "nineties")
	assert.ErrorIs(t, err, filter.ErrNotFound)
}

func TestLibraryListCmd_Empty(t *testing.T) {
	srv := newMockServer(t).
		RespondJSON(http.MethodGet, "/settings/qualityprofiles", testProfiles).
		RespondJSON(http.MethodGet, "/library/series", []api.Series{}).
		Build()
	cli := newTestCLI(t, srv.URL)

	out, err := cli.run("library", "list", "--type", "tv")
	require.NoError(t, err)
	assert.Contains(t, out, "No titles match")
}

func TestLibraryDeleteCmd(t *testing.T) {
	var deleteFiles string
	srv := newMockServer(t).
		Handle(http.MethodDelete, "/library/movies/7", func(w http.ResponseWriter, r *http.Request) {
			deleteFiles = r.URL.Query().Get("deleteFiles")
			w.WriteHeader(http.StatusNoContent)
		}).
		Build()
	cli := newTestCLI(t, srv.URL)

	_, err := cli.run("library", "delete", "7", "--delete-files")
	require.NoError(t, err)
	assert.Equal(t, "true", deleteFiles)
}

func TestPluralMedia(t *testing.T) {
	assert.Equal(t, "movie", pluralMedia(api.MediaTypeMovie, 1))
	assert.Equal(t, "movies", pluralMedia(api.MediaTypeMovie, 3))
	assert.Equal(t, "series", pluralMedia(api.MediaTypeSeries, 3))
}
