package library

import (
	"io"
	"log/slog"
	"time"

	"github.com/vmunix/arrdeck/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

var testProfiles = []api.QualityProfile{
	{ID: 1, Name: "HD-1080p", Cutoff: "Bluray-1080p", Items: []api.QualityProfileItem{
		{Quality: "WEBDL-1080p", Allowed: true},
		{Quality: "Bluray-1080p", Allowed: true},
	}},
	{ID: 2, Name: "Ultra-HD", Cutoff: "Remux-2160p", Items: []api.QualityProfileItem{
		{Quality: "Remux-2160p", Allowed: true},
	}},
	{ID: 3, Name: "SD", Cutoff: "DVD", Items: []api.QualityProfileItem{
		{Quality: "SDTV", Allowed: true},
		{Quality: "DVD", Allowed: true},
	}},
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func testMovies() []api.Movie {
	return []api.Movie{
		{ID: 1, Title: "The Matrix", Year: 1999, Monitored: true, HasFile: true, QualityProfileID: 1,
			SizeOnDisk: 8 << 30, Added: day(3), MovieFile: &api.MediaFile{Quality: "Bluray-1080p"}},
		{ID: 2, Title: "Arrival", Year: 2016, Monitored: true, HasFile: true, QualityProfileID: 1,
			SizeOnDisk: 4 << 30, Added: day(1), MovieFile: &api.MediaFile{Quality: "WEBDL-1080p"}},
		{ID: 3, Title: "Blade Runner 2049", Year: 2017, Monitored: true, HasFile: false, QualityProfileID: 2,
			Added: day(5)},
		{ID: 4, Title: "Zodiac", Year: 2007, Monitored: false, HasFile: true, QualityProfileID: 3,
			SizeOnDisk: 1 << 30, Added: day(2), MovieFile: &api.MediaFile{Quality: "DVD"}},
	}
}
