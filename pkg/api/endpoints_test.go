package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Calendar_DateRange(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/calendar").
		ExpectQuery("start", "2024-03-04").
		ExpectQuery("end", "2024-03-10").
		ExpectQuery("unmonitored", "true").
		RespondJSON([]CalendarEntry{{MediaType: MediaTypeSeries, Title: "Pilot"}}).
		Build()

	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	entries, err := New(srv.URL).Calendar(context.Background(), start, start.AddDate(0, 0, 6), true)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestClient_ICalURL(t *testing.T) {
	c := New("http://host/api")
	assert.Equal(t, "http://host/api/calendar/ical", c.ICalURL(""))
	assert.Equal(t, "http://host/api/calendar/ical?apikey=k+1", c.ICalURL("k 1"))
}

func TestClient_ImageURL(t *testing.T) {
	c := New("http://host/api")
	assert.Equal(t, "http://host/api/images/w342/abc.jpg", c.ImageURL("/abc.jpg", ""))
	assert.Equal(t, "http://host/api/images/original/abc.jpg", c.ImageURL("abc.jpg", ImageOriginal))
	assert.Empty(t, c.ImageURL("", ImageLarge))
}

func TestClient_FetchImage(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/images/w185/poster.jpg").
		Handler(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write([]byte{0xff, 0xd8, 0xff})
		}).
		Build()

	data, contentType, err := New(srv.URL).FetchImage(context.Background(), "/poster.jpg", ImageSmall)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, data)
}

func TestClient_FetchImage_NotFound(t *testing.T) {
	srv := newMockServer(t).RespondStatus(http.StatusNotFound).Build()

	_, _, err := New(srv.URL).FetchImage(context.Background(), "missing.jpg", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_Trending(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/search/trending").
		ExpectQuery("type", "movie").
		ExpectQuery("page", "2").
		RespondJSON(DiscoverPage{Page: 2, TotalPages: 2, Results: []DiscoverItem{{TMDBID: 1, MediaType: MediaTypeMovie}}}).
		Build()

	page, err := New(srv.URL).Trending(context.Background(), MediaTypeMovie, 2)
	require.NoError(t, err)
	assert.False(t, page.HasMore())
	assert.Len(t, page.Results, 1)
}

func TestClient_Recommendations_Path(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/search/tv/1399/recommendations").
		RespondJSON(DiscoverPage{Page: 1, TotalPages: 3}).
		Build()

	page, err := New(srv.URL).Recommendations(context.Background(), MediaTypeSeries, 1399, 0)
	require.NoError(t, err)
	assert.True(t, page.HasMore())
}

func TestClient_DeclineRequest(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/requests/4/decline").
		ExpectPOST().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			decodeBody(t, r, &body)
			assert.Equal(t, "not available", body["reason"])
			respondJSON(t, w, MediaRequest{ID: 4, Status: "declined"})
		}).
		Build()

	req, err := New(srv.URL).DeclineRequest(context.Background(), 4, "not available")
	require.NoError(t, err)
	assert.Equal(t, "declined", req.Status)
}

func TestClient_TestIndexer(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/settings/indexers/test").
		ExpectPOST().
		RespondJSON(TestResult{Success: false, Message: "401 from indexer"}).
		Build()

	res, err := New(srv.URL).TestIndexer(context.Background(), Indexer{Name: "x"})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "401 from indexer", res.Message)
}

func TestClient_ManualImport(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/scanner/manualimport").
		ExpectPOST().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var body ManualImportRequest
			decodeBody(t, r, &body)
			assert.Len(t, body.Files, 1)
			assert.Equal(t, "copy", body.ImportMode)
			respondJSON(t, w, ManualImportResult{Imported: 1})
		}).
		Build()

	res, err := New(srv.URL).ManualImport(context.Background(), ManualImportRequest{
		Files:      []ManualImportFile{{Path: "/dl/a.mkv", MovieID: 1, Quality: "Bluray-1080p"}},
		ImportMode: "copy",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
}

func TestClient_Logs_Query(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/system/logs").
		ExpectQuery("level", "error").
		ExpectQuery("limit", "20").
		RespondJSON([]LogEntry{{Level: "error", Message: "boom"}}).
		Build()

	logs, err := New(srv.URL).Logs(context.Background(), "error", 20)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestClient_RunTask_EscapesName(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/system/tasks/rss sync/run").
		ExpectPOST().
		RespondStatus(http.StatusNoContent).
		Build()

	require.NoError(t, New(srv.URL).RunTask(context.Background(), "rss sync"))
}

func TestClient_ApproveRequest(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/requests/9/approve").
		ExpectPOST().
		RespondJSON(MediaRequest{ID: 9, Title: "Dune", Status: "approved"}).
		Build()

	req, err := New(srv.URL).ApproveRequest(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "approved", req.Status)
}

func TestClient_Requests_StatusFilter(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/requests").
		ExpectQuery("status", "pending").
		ExpectQuery("page", "2").
		RespondJSON(Paged[MediaRequest]{Page: 2, TotalRecords: 21, Records: []MediaRequest{{ID: 1}}}).
		Build()

	reqs, err := New(srv.URL).Requests(context.Background(), "pending", 2)
	require.NoError(t, err)
	assert.Equal(t, 21, reqs.TotalRecords)
	assert.Len(t, reqs.Records, 1)
}

func TestClient_TestCustomFormat(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/customformats/test").
		ExpectPOST().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			decodeBody(t, r, &body)
			assert.Equal(t, "Movie.2020.1080p.x265-GRP", body["title"])
			respondJSON(t, w, CustomFormatTest{Title: body["title"], Matched: []string{"x265"}, Score: 10})
		}).
		Build()

	res, err := New(srv.URL).TestCustomFormat(context.Background(), "Movie.2020.1080p.x265-GRP")
	require.NoError(t, err)
	assert.Equal(t, []string{"x265"}, res.Matched)
	assert.Equal(t, 10, res.Score)
}

func TestClient_UpdateCustomFormat_UsesID(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/customformats/3").
		ExpectPUT().
		RespondJSON(CustomFormat{ID: 3, Name: "HDR"}).
		Build()

	cf, err := New(srv.URL).UpdateCustomFormat(context.Background(), CustomFormat{ID: 3, Name: "HDR"})
	require.NoError(t, err)
	assert.Equal(t, "HDR", cf.Name)
}

func TestClient_DeleteNotification_NotFound(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/notifications/7").
		ExpectDELETE().
		RespondError(http.StatusNotFound, `{"error":"notification not found"}`).
		Build()

	err := New(srv.URL).DeleteNotification(context.Background(), 7)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "notification not found")
}

func TestClient_TestNotification(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/notifications/test").
		ExpectPOST().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var body Notification
			decodeBody(t, r, &body)
			assert.Equal(t, "discord", body.Implementation)
			respondJSON(t, w, TestResult{Success: true})
		}).
		Build()

	res, err := New(srv.URL).TestNotification(context.Background(), Notification{Name: "chat", Implementation: "discord"})
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestClient_Reports(t *testing.T) {
	t.Run("quality breakdown", func(t *testing.T) {
		srv := newMockServer(t).
			ExpectPath("/reports/quality").
			ExpectQuery("mediaType", "tv").
			RespondJSON([]QualityCount{{Quality: "WEBDL-1080p", Count: 12}}).
			Build()

		counts, err := New(srv.URL).QualityBreakdown(context.Background(), MediaTypeSeries)
		require.NoError(t, err)
		require.Len(t, counts, 1)
		assert.Equal(t, 12, counts[0].Count)
	})

	t.Run("activity days", func(t *testing.T) {
		srv := newMockServer(t).
			ExpectPath("/reports/activity").
			ExpectQuery("days", "7").
			RespondJSON([]ActivityDay{{Grabbed: 3}, {Imported: 2}}).
			Build()

		days, err := New(srv.URL).ActivityReport(context.Background(), 7)
		require.NoError(t, err)
		assert.Len(t, days, 2)
	})

	t.Run("summary", func(t *testing.T) {
		srv := newMockServer(t).
			ExpectPath("/reports/summary").
			RespondJSON(LibrarySummary{Movies: 40, Missing: 3}).
			Build()

		sum, err := New(srv.URL).LibrarySummary(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 40, sum.Movies)
		assert.Equal(t, 3, sum.Missing)
	})
}

func TestClient_ImportFromArr(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/arr/2/import").
		ExpectPOST().
		Handler(func(w http.ResponseWriter, r *http.Request) {
			var body ArrImportRequest
			decodeBody(t, r, &body)
			assert.Equal(t, int64(4), body.ProfileMap[1])
			assert.Equal(t, "/movies", body.RootFolderPath)
			respondJSON(t, w, ArrImportResult{Imported: 5, Skipped: 1})
		}).
		Build()

	res, err := New(srv.URL).ImportFromArr(context.Background(), 2, ArrImportRequest{
		ProfileMap:     map[int64]int64{1: 4},
		RootFolderPath: "/movies",
		Monitored:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Imported)
	assert.Equal(t, 1, res.Skipped)
}

func TestClient_ArrProfiles(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/arr/2/profiles").
		ExpectGET().
		RespondJSON([]ArrProfile{{ID: 1, Name: "Any"}}).
		Build()

	profiles, err := New(srv.URL).ArrProfiles(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Any", profiles[0].Name)
}
