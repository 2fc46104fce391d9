// Package release extracts quality attributes and titles from release and
// file names such as "Alien.1979.Remastered.1080p.BluRay.x264-GRP.mkv".
package release

// Resolution is the vertical resolution advertised by a release name.
type Resolution int

const (
	ResolutionUnknown Resolution = iota
	Resolution480p
	Resolution576p
	Resolution720p
	Resolution1080p
	Resolution2160p
)

const unknownStr = "unknown"

func (r Resolution) String() string {
	switch r {
	case Resolution480p:
		return "480p"
	case Resolution576p:
		return "576p"
	case Resolution720p:
		return "720p"
	case Resolution1080p:
		return "1080p"
	case Resolution2160p:
		return "2160p"
	default:
		return unknownStr
	}
}

// Source is where the video was captured from, ordered worst to best.
type Source int

const (
	SourceUnknown Source = iota
	SourceCAM
	SourceTelesync
	SourceSDTV
	SourceDVD
	SourceHDTV
	SourceWEBRip
	SourceWEBDL
	SourceBluRay
)

func (s Source) String() string {
	switch s {
	case SourceCAM:
		return "cam"
	case SourceTelesync:
		return "telesync"
	case SourceSDTV:
		return "sdtv"
	case SourceDVD:
		return "dvd"
	case SourceHDTV:
		return "hdtv"
	case SourceWEBRip:
		return "webrip"
	case SourceWEBDL:
		return "webdl"
	case SourceBluRay:
		return "bluray"
	default:
		return unknownStr
	}
}

// Info is what Parse could read from a name. Zero values mean "not found".
type Info struct {
	Title      string
	Year       int
	Season     int
	Episodes   []int // every episode in a multi-episode file, in order
	Resolution Resolution
	Source     Source
	IsRemux    bool
	IsRawHD    bool
	Proper     bool
	Repack     bool
	Group      string

	// CleanTitle is Title run through CleanTitle, for matching.
	CleanTitle string
}

// Episode returns the first episode number, 0 for movies and season packs.
func (i *Info) Episode() int {
	if len(i.Episodes) == 0 {
		return 0
	}
	return i.Episodes[0]
}

// IsSeasonPack reports a season release without episode numbers.
func (i *Info) IsSeasonPack() bool {
	return i.Season > 0 && len(i.Episodes) == 0
}
