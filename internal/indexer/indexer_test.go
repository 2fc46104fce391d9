package indexer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrdeck/pkg/api"
)

func validIndexer() api.Indexer {
	return api.Indexer{
		Name:           "NZBgeek",
		Implementation: "newznab",
		Protocol:       "usenet",
		URL:            "https://api.nzbgeek.info",
		APIKey:         "secret",
		Categories:     []int{2000, 5040},
		Priority:       25,
		Enabled:        true,
		EnableSearch:   true,
	}
}

func TestNormalize(t *testing.T) {
	ix := api.Indexer{Name: "  Tracker ", Implementation: "Torznab", URL: " http://prowlarr:9696/1/api "}
	Normalize(&ix)
	assert.Equal(t, "Tracker", ix.Name)
	assert.Equal(t, "torznab", ix.Implementation)
	assert.Equal(t, "torrent", ix.Protocol)
	assert.Equal(t, DefaultPriority, ix.Priority)
	assert.Equal(t, "http://prowlarr:9696/1/api", ix.URL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*api.Indexer)
		wantMsg string
	}{
		{"valid", func(*api.Indexer) {}, ""},
		{"no name", func(ix *api.Indexer) { ix.Name = " " }, "name is required"},
		{"no url", func(ix *api.Indexer) { ix.URL = "" }, "url is required"},
		{"ftp url", func(ix *api.Indexer) { ix.URL = "ftp://x" }, "http or https"},
		{"no host", func(ix *api.Indexer) { ix.URL = "https://" }, "no host"},
		{"no key", func(ix *api.Indexer) { ix.APIKey = "" }, "api key"},
		{"bad implementation", func(ix *api.Indexer) { ix.Implementation = "rss" }, "torznab or newznab"},
		{"protocol mismatch", func(ix *api.Indexer) { ix.Protocol = "torrent" }, "usenet protocol"},
		{"priority low", func(ix *api.Indexer) { ix.Priority = 0 }, "priority"},
		{"priority high", func(ix *api.Indexer) { ix.Priority = 51 }, "priority"},
		{"negative category", func(ix *api.Indexer) { ix.Categories = []int{-1} }, "negative"},
		{"enabled without use", func(ix *api.Indexer) { ix.EnableSearch = false }, "rss or search"},
		{"disabled without use", func(ix *api.Indexer) { ix.Enabled, ix.EnableSearch = false, false }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := validIndexer()
			tt.modify(&ix)
			err := Validate(ix)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_ReportsAll(t *testing.T) {
	err := Validate(api.Indexer{})
	require.Error(t, err)
	for _, msg := range []string{"name", "url", "api key", "implementation", "priority"} {
		assert.Contains(t, err.Error(), msg)
	}
}

func TestProbe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "caps", r.URL.Query().Get("t"))
		_, _ = w.Write([]byte(`<caps><server title="Geek"/><categories>
			<category id="2000" name="Movies"><subcat id="2040" name="HD"/></category>
		</categories></caps>`))
	}))
	defer srv.Close()

	ix := validIndexer()
	ix.URL = srv.URL
	ix.Categories = []int{2040, 5040}

	res, err := Probe(context.Background(), ix, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Equal(t, "Geek", res.Caps.Title)
	assert.Equal(t, []int{5040}, res.UnknownCategories)
}

func TestProbe_InvalidSkipsNetwork(t *testing.T) {
	ix := validIndexer()
	ix.URL = "ftp://nowhere"

	_, err := Probe(context.Background(), ix, slog.New(slog.DiscardHandler))
	assert.True(t, errors.Is(err, ErrInvalid))
}
