package newznab

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const capsResponse = `<?xml version="1.0" encoding="UTF-8"?>
<caps>
  <server version="1.1" title="NZBgeek" strapline="A great usenet indexer"/>
  <limits max="100" default="50"/>
  <searching>
    <search available="yes" supportedParams="q"/>
    <tv-search available="yes" supportedParams="q, season, ep, tvdbid"/>
    <movie-search available="yes" supportedParams="q,imdbid"/>
    <audio-search available="no" supportedParams="q"/>
  </searching>
  <categories>
    <category id="2000" name="Movies">
      <subcat id="2040" name="HD"/>
      <subcat id="2045" name="UHD"/>
    </category>
    <category id="5000" name="TV">
      <subcat id="5040" name="HD"/>
    </category>
  </categories>
</caps>`

const searchResponse = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:newznab="http://www.newznab.com/DTD/2010/feeds/attributes/">
  <channel>
    <item>
      <title>Arrival.2016.1080p.BluRay.x264-SPARKS</title>
      <guid>abc123</guid>
      <link>http://example.com/download/abc123</link>
      <pubDate>Sat, 18 Jan 2025 12:00:00 +0000</pubDate>
      <enclosure url="http://example.com/download/abc123" length="1500000000" type="application/x-nzb" />
      <newznab:attr name="category" value="2000" />
      <newznab:attr name="category" value="2040" />
    </item>
    <item>
      <title>Arrival.2016.720p.WEB-DL</title>
      <guid>def456</guid>
      <enclosure url="http://example.com/download/def456" type="application/x-nzb" />
      <newznab:attr name="size" value="800000000" />
    </item>
  </channel>
</rss>`

func TestNewClient_APIURL(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"https://api.nzbgeek.info", "https://api.nzbgeek.info/api"},
		{"https://api.nzbgeek.info/", "https://api.nzbgeek.info/api"},
		{"http://prowlarr:9696/1/api", "http://prowlarr:9696/1/api"},
		{"http://jackett:9117/api/v2.0/indexers/all/results/torznab/api/", "http://jackett:9117/api/v2.0/indexers/all/results/torznab/api"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewClient("x", tt.base, "key").URL())
	}
}

func TestClient_Caps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api", r.URL.Path)
		assert.Equal(t, "caps", r.URL.Query().Get("t"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(capsResponse))
	}))
	defer srv.Close()

	caps, err := NewClient("geek", srv.URL, "test-key").Caps(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "NZBgeek", caps.Title)
	assert.Equal(t, "1.1", caps.Version)
	assert.Equal(t, 100, caps.MaxLimit)
	assert.True(t, caps.SupportsSearch("movie-search"))
	assert.False(t, caps.SupportsSearch("audio-search"))
	assert.Equal(t, []string{"q", "season", "ep", "tvdbid"}, caps.Searching["tv-search"])

	require.Len(t, caps.Categories, 2)
	assert.Equal(t, "Movies", caps.Categories[0].Name)
	assert.Len(t, caps.Categories[0].Subcats, 2)
	assert.Equal(t, []int{2000, 2040, 2045, 5000, 5040}, caps.CategoryIDs())
}

func TestClient_Caps_ErrorDocument(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"bad key", `<error code="100" description="Incorrect user credentials"/>`, ErrAuth},
		{"suspended", `<error code="102" description="Account suspended"/>`, ErrAuth},
		{"other", `<error code="900" description="Unknown error"/>`, ErrIndexer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient("x", srv.URL, "key").Caps(context.Background())
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestClient_Caps_HTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewClient("x", srv.URL, "key").Caps(context.Background())
	assert.True(t, errors.Is(err, ErrAuth))
}

func TestClient_Caps_RedactsKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient("x", url, "SECRET123", WithHTTPClient(&http.Client{Timeout: time.Second})).Caps(context.Background())
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SECRET123")
	assert.Contains(t, err.Error(), "REDACTED")
}

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "search", q.Get("t"))
		assert.Equal(t, "arrival", q.Get("q"))
		assert.Equal(t, "2000,2040", q.Get("cat"))
		assert.Equal(t, "10", q.Get("limit"))
		_, _ = w.Write([]byte(searchResponse))
	}))
	defer srv.Close()

	releases, err := NewClient("geek", srv.URL, "key").Search(context.Background(), "arrival", []int{2000, 2040}, 10)
	require.NoError(t, err)
	require.Len(t, releases, 2)

	first := releases[0]
	assert.Equal(t, "Arrival.2016.1080p.BluRay.x264-SPARKS", first.Title)
	assert.Equal(t, int64(1500000000), first.Size)
	assert.Equal(t, []int{2000, 2040}, first.Categories)
	assert.Equal(t, "geek", first.Indexer)
	assert.Equal(t, 2025, first.PublishDate.Year())

	second := releases[1]
	assert.Equal(t, "http://example.com/download/def456", second.DownloadURL, "falls back to enclosure")
	assert.Equal(t, int64(800000000), second.Size, "size from attr")
	assert.True(t, second.PublishDate.IsZero())
}
