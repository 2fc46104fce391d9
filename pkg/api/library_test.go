package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Movies_Filters(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/library/movies").
		ExpectGET().
		ExpectQuery("monitored", "false").
		ExpectQuery("hasFile", "true").
		ExpectQuery("search", "alien").
		RespondJSON([]Movie{{ID: 1, Title: "Alien", Year: 1979}}).
		Build()

	movies, err := New(srv.URL).Movies(context.Background(), MovieListQuery{
		Monitored: ptr(false),
		HasFile:   ptr(true),
		Search:    "alien",
	})
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Alien", movies[0].Title)
}

func TestClient_Movies_NoFilters(t *testing.T) {
	srv := newMockServer(t).
		Handler(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.RawQuery)
			respondJSON(t, w, []Movie{})
		}).
		Build()

	movies, err := New(srv.URL).Movies(context.Background(), MovieListQuery{})
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestClient_AddMovie_Conflict(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/library/movies").
		ExpectPOST().
		RespondError(http.StatusConflict, `{"error":"movie already exists"}`).
		Build()

	_, err := New(srv.URL).AddMovie(context.Background(), AddMovieInput{TMDBID: 603, QualityProfileID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestClient_AddSeries_SendsBody(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/library/series").
		ExpectPOST().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var body AddSeriesInput
			decodeBody(t, r, &body)
			assert.Equal(t, int64(1399), body.TMDBID)
			assert.Equal(t, "/tv", body.RootFolderPath)
			assert.Equal(t, "future", body.MonitorMode)
			respondJSON(t, w, Series{ID: 9, Title: "Game of Thrones"})
		}).
		Build()

	s, err := New(srv.URL).AddSeries(context.Background(), AddSeriesInput{
		TMDBID:         1399,
		RootFolderPath: "/tv",
		MonitorMode:    "future",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), s.ID)
}

func TestClient_DeleteMovie_DeleteFiles(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/library/movies/5").
		ExpectDELETE().
		ExpectQuery("deleteFiles", "true").
		RespondStatus(http.StatusNoContent).
		Build()

	require.NoError(t, New(srv.URL).DeleteMovie(context.Background(), 5, true))
}

func TestClient_BulkEditSeries_OmitsUnsetFields(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/library/series/bulk").
		ExpectPUT().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			decodeBody(t, r, &body)
			assert.Contains(t, body, "ids")
			assert.Contains(t, body, "monitored")
			assert.NotContains(t, body, "qualityProfileId")
			assert.NotContains(t, body, "seriesType")
			respondJSON(t, w, []Series{{ID: 1}, {ID: 2}})
		}).
		Build()

	out, err := New(srv.URL).BulkEditSeries(context.Background(), BulkEditInput{
		IDs:       []int64{1, 2},
		Monitored: ptr(false),
	})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestClient_Episodes_SeasonFilter(t *testing.T) {
	t.Run("specific season", func(t *testing.T) {
		srv := newMockServer(t).
			ExpectPath("/library/series/3/episodes").
			ExpectQuery("season", "0").
			RespondJSON([]Episode{{ID: 1, SeasonNumber: 0}}).
			Build()

		eps, err := New(srv.URL).Episodes(context.Background(), 3, 0)
		require.NoError(t, err)
		assert.Len(t, eps, 1)
	})

	t.Run("all seasons", func(t *testing.T) {
		srv := newMockServer(t).
			Handler(func(w http.ResponseWriter, r *http.Request) {
				assert.False(t, r.URL.Query().Has("season"))
				respondJSON(t, w, []Episode{})
			}).
			Build()

		_, err := New(srv.URL).Episodes(context.Background(), 3, -1)
		require.NoError(t, err)
	})
}

func TestClient_SetSeasonMonitored(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/library/series/4/seasons/2").
		ExpectPUT().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]bool
			decodeBody(t, r, &body)
			assert.False(t, body["monitored"])
			w.WriteHeader(http.StatusNoContent)
		}).
		Build()

	require.NoError(t, New(srv.URL).SetSeasonMonitored(context.Background(), 4, 2, false))
}

func TestClient_SetEpisodesMonitored(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/library/episodes/monitor").
		ExpectPUT().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				EpisodeIDs []int64 `json:"episodeIds"`
				Monitored  bool    `json:"monitored"`
			}
			decodeBody(t, r, &body)
			assert.Equal(t, []int64{10, 11}, body.EpisodeIDs)
			assert.True(t, body.Monitored)
			w.WriteHeader(http.StatusNoContent)
		}).
		Build()

	require.NoError(t, New(srv.URL).SetEpisodesMonitored(context.Background(), []int64{10, 11}, true))
}

func TestClient_PreviewMovieRename(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/library/movies/8/rename").
		ExpectGET().
		RespondJSON([]RenamePreview{{FileID: 2, ExistingPath: "a.mkv", NewPath: "Alien (1979).mkv"}}).
		Build()

	previews, err := New(srv.URL).PreviewMovieRename(context.Background(), 8)
	require.NoError(t, err)
	require.Len(t, previews, 1)
	assert.Equal(t, "Alien (1979).mkv", previews[0].NewPath)
}
