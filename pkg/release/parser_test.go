package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Info
	}{
		{
			name:  "movie bluray",
			input: "Alien.1979.Remastered.1080p.BluRay.x264-GRP.mkv",
			want: Info{
				Title: "Alien", Year: 1979, Resolution: Resolution1080p,
				Source: SourceBluRay, Group: "GRP", CleanTitle: "alien",
			},
		},
		{
			name:  "episode web-dl",
			input: "The.Mandalorian.S02E05.1080p.WEB-DL.DDP5.1.H.264-NTb",
			want: Info{
				Title: "The Mandalorian", Season: 2, Episodes: []int{5},
				Resolution: Resolution1080p, Source: SourceWEBDL, Group: "NTb",
				CleanTitle: "mandalorian",
			},
		},
		{
			name:  "multi episode range",
			input: "Show.S01E05-E07.720p.HDTV.x264-GRP",
			want: Info{
				Title: "Show", Season: 1, Episodes: []int{5, 6, 7},
				Resolution: Resolution720p, Source: SourceHDTV, Group: "GRP",
				CleanTitle: "show",
			},
		},
		{
			name:  "season pack",
			input: "Show.Name.S03.1080p.BluRay.x264-GRP",
			want: Info{
				Title: "Show Name", Season: 3, Resolution: Resolution1080p,
				Source: SourceBluRay, Group: "GRP", CleanTitle: "show name",
			},
		},
		{
			name:  "uhd remux",
			input: "Movie.Name.2020.2160p.UHD.BluRay.REMUX.HDR.HEVC.Atmos-GRP",
			want: Info{
				Title: "Movie Name", Year: 2020, Resolution: Resolution2160p,
				Source: SourceBluRay, IsRemux: true, Group: "GRP", CleanTitle: "movie name",
			},
		},
		{
			name:  "dvd without resolution",
			input: "Some.Movie.1999.DVDRip.XviD-GRP",
			want: Info{
				Title: "Some Movie", Year: 1999, Source: SourceDVD, Group: "GRP",
				CleanTitle: "some movie",
			},
		},
		{
			name:  "source word inside title",
			input: "Charlotte's.Web.2006.DVDRip",
			want: Info{
				Title: "Charlotte's Web", Year: 2006, Source: SourceDVD,
				CleanTitle: "charlottes web",
			},
		},
		{
			name:  "leading number is title",
			input: "2001.A.Space.Odyssey.1968.1080p.BluRay-GRP",
			want: Info{
				Title: "2001 A Space Odyssey", Year: 1968, Resolution: Resolution1080p,
				Source: SourceBluRay, Group: "GRP", CleanTitle: "2001 a space odyssey",
			},
		},
		{
			name:  "year inside title",
			input: "Blade.Runner.2049.2017.720p.WEBRip-GRP",
			want: Info{
				Title: "Blade Runner 2049", Year: 2017, Resolution: Resolution720p,
				Source: SourceWEBRip, Group: "GRP", CleanTitle: "blade runner 2049",
			},
		},
		{
			name:  "web-dl tail is not a group",
			input: "Movie.2020.1080p.WEB-DL",
			want: Info{
				Title: "Movie", Year: 2020, Resolution: Resolution1080p,
				Source: SourceWEBDL, CleanTitle: "movie",
			},
		},
		{
			name:  "path and parenthesised year",
			input: "/downloads/Movie (2017)/Movie (2017) 576p BluRay.mkv",
			want: Info{
				Title: "Movie", Year: 2017, Resolution: Resolution576p,
				Source: SourceBluRay, CleanTitle: "movie",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParse_Flags(t *testing.T) {
	info := Parse("Show.S01E01.PROPER.REPACK.Raw-HD.MPEG2-GRP")
	assert.True(t, info.Proper)
	assert.True(t, info.Repack)
	assert.True(t, info.IsRawHD)

	plain := Parse("Show.S01E01.720p.HDTV-GRP")
	assert.False(t, plain.Proper)
	assert.False(t, plain.Repack)
	assert.False(t, plain.IsRawHD)
}

func TestParse_ResolutionAliases(t *testing.T) {
	assert.Equal(t, Resolution2160p, Parse("Movie.2020.4K.WEB-DL").Resolution)
	assert.Equal(t, Resolution1080p, Parse("Show.S01E01.1080i.HDTV").Resolution)
	assert.Equal(t, Resolution480p, Parse("Show.S01E01.480p.WEBRip").Resolution)
	assert.Equal(t, ResolutionUnknown, Parse("Show.S01E01.HDTV").Resolution)
}

func TestParse_SourceOrder(t *testing.T) {
	assert.Equal(t, SourceWEBRip, Parse("Movie.2020.1080p.WEBRip").Source)
	assert.Equal(t, SourceWEBDL, Parse("Movie.2020.1080p.WEB").Source)
	assert.Equal(t, SourceSDTV, Parse("Show.S01E01.PDTV.XviD").Source)
	assert.Equal(t, SourceCAM, Parse("Movie.2023.CAM.x264").Source)
	assert.Equal(t, SourceTelesync, Parse("Movie.2023.TS.x264").Source)
}
