// Package quality ranks media quality tiers. One ordered enumeration serves
// both jobs the library browser needs: ordering quality profiles for the add
// dialog and deciding whether an item's file meets its profile cutoff.
package quality

import (
	"strings"

	"github.com/vmunix/arrdeck/pkg/release"
)

// Quality is a named tier. Values are ordered by perceptual quality, so the
// numeric value is the rank.
type Quality int

const (
	Unknown Quality = iota
	SD480p
	SDTV
	DVD
	WEBRip480p
	WEBDL480p
	Bluray480p
	Bluray576p
	HD720p
	HDTV720p
	WEBRip720p
	WEBDL720p
	Bluray720p
	RawHD
	HD1080p
	HDTV1080p
	WEBRip1080p
	WEBDL1080p
	Bluray1080p
	Remux1080p
	UHD2160p
	HDTV2160p
	WEBRip2160p
	WEBDL2160p
	Bluray2160p
	Remux2160p

	count
)

var names = [count]string{
	Unknown:     "Unknown",
	SD480p:      "480p",
	SDTV:        "SDTV",
	DVD:         "DVD",
	WEBRip480p:  "WEBRip-480p",
	WEBDL480p:   "WEBDL-480p",
	Bluray480p:  "Bluray-480p",
	Bluray576p:  "Bluray-576p",
	HD720p:      "720p",
	HDTV720p:    "HDTV-720p",
	WEBRip720p:  "WEBRip-720p",
	WEBDL720p:   "WEBDL-720p",
	Bluray720p:  "Bluray-720p",
	RawHD:       "Raw-HD",
	HD1080p:     "1080p",
	HDTV1080p:   "HDTV-1080p",
	WEBRip1080p: "WEBRip-1080p",
	WEBDL1080p:  "WEBDL-1080p",
	Bluray1080p: "Bluray-1080p",
	Remux1080p:  "Remux-1080p",
	UHD2160p:    "2160p",
	HDTV2160p:   "HDTV-2160p",
	WEBRip2160p: "WEBRip-2160p",
	WEBDL2160p:  "WEBDL-2160p",
	Bluray2160p: "Bluray-2160p",
	Remux2160p:  "Remux-2160p",
}

// aliases are extra spellings seen in older profiles and release names.
// Keys are in key() form.
var aliases = map[string]Quality{
	"4k":               UHD2160p,
	"uhd":              UHD2160p,
	"fhd":              HD1080p,
	"hd":               HD720p,
	"sd":               SDTV,
	"web480p":          WEBDL480p,
	"web720p":          WEBDL720p,
	"web1080p":         WEBDL1080p,
	"web2160p":         WEBDL2160p,
	"bluray1080premux": Remux1080p,
	"bluray2160premux": Remux2160p,
}

var byKey = func() map[string]Quality {
	m := make(map[string]Quality, len(names)+len(aliases))
	for q, name := range names {
		m[key(name)] = Quality(q)
	}
	for k, q := range aliases {
		m[k] = q
	}
	return m
}()

// key folds case and separators so "WEB-DL 1080p" and "webdl1080p" agree.
func key(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '-', '_', '.':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (q Quality) String() string {
	if !q.Valid() {
		return names[Unknown]
	}
	return names[q]
}

// MarshalText renders the tier name, so JSON output carries "Bluray-1080p"
// rather than a rank.
func (q Quality) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText parses a tier name with Parse.
func (q *Quality) UnmarshalText(b []byte) error {
	*q = Parse(string(b))
	return nil
}

// Valid reports whether q is one of the enumerated tiers.
func (q Quality) Valid() bool {
	return q >= Unknown && q < count
}

// Rank orders tiers: higher is better, Unknown and anything out of range is 0.
func Rank(q Quality) int {
	if !q.Valid() {
		return 0
	}
	return int(q)
}

// All lists every tier, highest first.
func All() []Quality {
	out := make([]Quality, 0, count)
	for q := count - 1; q >= Unknown; q-- {
		out = append(out, q)
	}
	return out
}

// Parse maps a tier name to its Quality. Names are matched ignoring case and
// separators, with aliases for coarse buckets ("4k", "hd", "sd"). Anything
// else is read as a release name; if that yields nothing, Unknown.
func Parse(name string) Quality {
	if strings.TrimSpace(name) == "" {
		return Unknown
	}
	if q, ok := byKey[key(name)]; ok {
		return q
	}
	return FromFilename(name)
}

// FromFilename detects a tier from a release or file name.
func FromFilename(name string) Quality {
	return FromInfo(release.Parse(name))
}

// FromInfo maps parsed release attributes to a tier.
func FromInfo(info *release.Info) Quality {
	if info.IsRawHD {
		return RawHD
	}
	switch info.Resolution {
	case release.Resolution2160p:
		return pick(info, Remux2160p, Bluray2160p, WEBDL2160p, WEBRip2160p, HDTV2160p, UHD2160p)
	case release.Resolution1080p:
		return pick(info, Remux1080p, Bluray1080p, WEBDL1080p, WEBRip1080p, HDTV1080p, HD1080p)
	case release.Resolution720p:
		return pick(info, Bluray720p, Bluray720p, WEBDL720p, WEBRip720p, HDTV720p, HD720p)
	case release.Resolution576p:
		if info.Source == release.SourceBluRay {
			return Bluray576p
		}
		return DVD
	case release.Resolution480p:
		switch info.Source {
		case release.SourceBluRay:
			return Bluray480p
		case release.SourceWEBDL:
			return WEBDL480p
		case release.SourceWEBRip:
			return WEBRip480p
		case release.SourceDVD:
			return DVD
		case release.SourceHDTV, release.SourceSDTV:
			return SDTV
		}
		return SD480p
	}

	// No resolution: fall back on the source alone. Bare HDTV captures are
	// usually SD; Blu-ray sources are at least 720p.
	switch info.Source {
	case release.SourceBluRay:
		if info.IsRemux {
			return Remux1080p
		}
		return Bluray720p
	case release.SourceWEBDL:
		return WEBDL480p
	case release.SourceWEBRip:
		return WEBRip480p
	case release.SourceHDTV:
		return SDTV
	case release.SourceDVD:
		return DVD
	case release.SourceSDTV:
		return SDTV
	}
	return Unknown
}

func pick(info *release.Info, remux, bluray, webdl, webrip, hdtv, bare Quality) Quality {
	if info.IsRemux {
		return remux
	}
	switch info.Source {
	case release.SourceBluRay:
		return bluray
	case release.SourceWEBDL:
		return webdl
	case release.SourceWEBRip:
		return webrip
	case release.SourceHDTV:
		return hdtv
	}
	return bare
}

// CutoffMet reports whether a file at fileQuality satisfies cutoff.
func CutoffMet(fileQuality, cutoff Quality) bool {
	return Rank(fileQuality) >= Rank(cutoff)
}

// Best returns the highest of qs, Unknown for none.
func Best(qs ...Quality) Quality {
	best := Unknown
	for _, q := range qs {
		if Rank(q) > Rank(best) {
			best = q
		}
	}
	return best
}
