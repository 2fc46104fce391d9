package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrdeck/internal/indexer"
	"github.com/vmunix/arrdeck/pkg/api"
)

const testCaps = `<?xml version="1.0" encoding="UTF-8"?>
<caps>
  <server version="1.0" title="Test Indexer"/>
  <limits max="100"/>
  <searching>
    <search available="yes" supportedParams="q"/>
    <movie-search available="yes" supportedParams="q,imdbid"/>
    <tv-search available="no"/>
  </searching>
  <categories>
    <category id="2000" name="Movies">
      <subcat id="2040" name="HD"/>
    </category>
  </categories>
</caps>`

const testRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <item>
      <title>Arrival.2016.1080p.BluRay.x264</title>
      <guid>abc</guid>
      <enclosure url="http://example.com/abc.nzb" length="1500000000" type="application/x-nzb"/>
    </item>
  </channel>
</rss>`

// newIndexerServer serves a Newznab API that checks the API key.
func newIndexerServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api", r.URL.Path)
		if r.URL.Query().Get("apikey") != "secret" {
			fmt.Fprint(w, `<error code="100" description="Incorrect user credentials"/>`)
			return
		}
		switch r.URL.Query().Get("t") {
		case "caps":
			fmt.Fprint(w, testCaps)
		default:
			fmt.Fprint(w, testRSS)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestIndexersProbeCmd(t *testing.T) {
	ixSrv := newIndexerServer(t)
	srv := newMockServer(t).Build()
	cli := newTestCLI(t, srv.URL)

	out, err := cli.run("indexers", "probe", "--url", ixSrv.URL, "--api-key", "secret", "--categories", "2000,7000", "-q", "arrival")
	require.NoError(t, err)

	assert.Contains(t, out, "Indexer:  Test Indexer 1.0")
	assert.Contains(t, out, "Searches: search, movie-search")
	assert.Contains(t, out, "Warning:  categories [7000] are not offered")
	assert.Contains(t, out, "2040   HD")
	assert.Contains(t, out, "Arrival.2016.1080p.BluRay.x264")
}

func TestIndexersProbeCmd_BadKey(t *testing.T) {
	ixSrv := newIndexerServer(t)
	srv := newMockServer(t).Build()
	cli := newTestCLI(t, srv.URL)

	_, err := cli.run("indexers", "probe", "--url", ixSrv.URL, "--api-key", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect user credentials")
	assert.NotContains(t, err.Error(), "wrong")
}

func TestIndexersAddCmd_ProbeThenSave(t *testing.T) {
	ixSrv := newIndexerServer(t)
	var saved api.Indexer
	srv := newMockServer(t).
		Handle(http.MethodPost, "/settings/indexers", func(w http.ResponseWriter, r *http.Request) {
			decodeBody(t, r, &saved)
			saved.ID = 3
			respondJSON(t, w, saved)
		}).
		Build()
	cli := newTestCLI(t, srv.URL)

	out, err := cli.run("indexers", "add", "--name", " geek ", "--implementation", "Newznab",
		"--url", ixSrv.URL, "--api-key", "secret", "--categories", "2000", "--no-rss", "--probe")
	require.NoError(t, err)

	assert.Contains(t, out, "Probed geek: Test Indexer")
	assert.Contains(t, out, "Added indexer geek as #3")
	assert.Equal(t, "newznab", saved.Implementation)
	assert.Equal(t, "usenet", saved.Protocol)
	assert.Equal(t, indexer.DefaultPriority, saved.Priority)
	assert.True(t, saved.Enabled)
	assert.False(t, saved.EnableRSS)
	assert.True(t, saved.EnableSearch)
}

func TestIndexersAddCmd_ProbeRejectsUnknownCategories(t *testing.T) {
	ixSrv := newIndexerServer(t)
	srv := newMockServer(t).Build()
	cli := newTestCLI(t, srv.URL)

	_, err := cli.run("indexers", "add", "--name", "geek", "--url", ixSrv.URL, "--api-key", "secret",
		"--categories", "5000", "--probe")
	assert.ErrorIs(t, err, indexer.ErrInvalid)
}

func TestIndexersAddCmd_Invalid(t *testing.T) {
	srv := newMockServer(t).Build()
	cli := newTestCLI(t, srv.URL)

	_, err := cli.run("indexers", "add", "--url", "ftp://x")
	require.Error(t, err)
	assert.ErrorIs(t, err, indexer.ErrInvalid)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "api key is required")
}

func TestIndexersListCmd_SortsByPriority(t *testing.T) {
	srv := newMockServer(t).
		RespondJSON(http.MethodGet, "/settings/indexers", []api.Indexer{
			{ID: 1, Name: "zeta", Priority: 10},
			{ID: 2, Name: "beta", Priority: 25},
			{ID: 3, Name: "alpha", Priority: 25},
		}).
		Build()
	cli := newTestCLI(t, srv.URL)

	out, err := cli.run("indexers", "list")
	require.NoError(t, err)
	assert.Regexp(t, `(?s)zeta.*alpha.*beta`, out)
}

func TestIndexersTestCmd(t *testing.T) {
	srv := newMockServer(t).
		RespondJSON(http.MethodGet, "/settings/indexers", []api.Indexer{{ID: 1, Name: "geek"}}).
		RespondJSON(http.MethodPost, "/settings/indexers/test", api.TestResult{Success: false, Message: "timeout"}).
		Build()
	cli := newTestCLI(t, srv.URL)

	_, err := cli.run("indexers", "test", "1")
	require.EqualError(t, err, "indexer geek failed: timeout")

	_, err = cli.run("indexers", "test", "9")
	assert.ErrorIs(t, err, api.ErrNotFound)
}
