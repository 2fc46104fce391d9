package release

import (
	"path"
	"regexp"
	"strconv"
	"strings"
)

var videoExtensions = map[string]bool{
	".mkv": true, ".mp4": true, ".avi": true, ".m4v": true, ".ts": true,
	".wmv": true, ".mov": true, ".mpg": true, ".mpeg": true, ".webm": true,
}

// notGroups are hyphenated tag tails mistaken for a group ("WEB-DL").
var notGroups = map[string]bool{"dl": true, "rip": true, "hd": true, "ray": true}

var (
	resolutionRe = regexp.MustCompile(`(?i)\b(2160p|4k|uhd|1080[pi]|720p|576p|480p)\b`)
	yearRe       = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	episodeRe    = regexp.MustCompile(`(?i)\bS(\d{1,2})[ ]?E(\d{1,3})(?:-?E(\d{1,3}))*\b`)
	extraEpRe    = regexp.MustCompile(`(?i)E(\d{1,3})`)
	seasonRe     = regexp.MustCompile(`(?i)\b(?:S(\d{1,2})|Season[ ]?(\d{1,2}))\b`)
	groupRe      = regexp.MustCompile(`-([A-Za-z0-9]+)$`)
	remuxRe      = regexp.MustCompile(`(?i)\b(remux|bdremux)\b`)
	rawHDRe      = regexp.MustCompile(`(?i)\braw[ -]?hd\b`)
	properRe     = regexp.MustCompile(`(?i)\bproper\b`)
	repackRe     = regexp.MustCompile(`(?i)\b(repack|rerip)\b`)
)

// sourcePatterns is checked in order; the first hit wins.
var sourcePatterns = []struct {
	re     *regexp.Regexp
	source Source
}{
	{regexp.MustCompile(`(?i)\b(blu-?ray|bdrip|brrip|bd25|bd50|bdremux|uhd[ -]?bd)\b`), SourceBluRay},
	{regexp.MustCompile(`(?i)\b(web-?rip)\b`), SourceWEBRip},
	{regexp.MustCompile(`(?i)\b(web-?dl)\b`), SourceWEBDL},
	{regexp.MustCompile(`(?i)\b(hdtv)\b`), SourceHDTV},
	{regexp.MustCompile(`(?i)\b(dvd-?rip|dvd|dvd5|dvd9|dvdr)\b`), SourceDVD},
	{regexp.MustCompile(`(?i)\b(sdtv|pdtv|tvrip|dsr)\b`), SourceSDTV},
	{regexp.MustCompile(`(?i)\b(web)\b`), SourceWEBDL},
	{regexp.MustCompile(`(?i)\b(telesync|hdts|ts)\b`), SourceTelesync},
	{regexp.MustCompile(`(?i)\b(cam|hdcam|camrip)\b`), SourceCAM},
}

// Parse reads a release or file name. Directory components and a trailing
// video extension are ignored.
func Parse(name string) *Info {
	base := stripPath(name)
	info := &Info{}

	if m := groupRe.FindStringSubmatch(base); m != nil && !notGroups[strings.ToLower(m[1])] {
		info.Group = m[1]
	}

	text := strings.NewReplacer(".", " ", "_", " ").Replace(base)
	cut := len(text) // title ends at the first metadata token

	if loc := resolutionRe.FindStringSubmatchIndex(text); loc != nil {
		info.Resolution = parseResolution(text[loc[2]:loc[3]])
		cut = min(cut, loc[0])
	}

	// A source word can be part of a title ("Charlotte's Web"), so it only
	// ends the title when nothing else does.
	sourceCut := len(text)
	for _, p := range sourcePatterns {
		if loc := p.re.FindStringIndex(text); loc != nil {
			info.Source = p.source
			sourceCut = loc[0]
			break
		}
	}

	if loc := remuxRe.FindStringIndex(text); loc != nil {
		info.IsRemux = true
		cut = min(cut, loc[0])
	}
	info.IsRawHD = rawHDRe.MatchString(text)
	info.Proper = properRe.MatchString(text)
	info.Repack = repackRe.MatchString(text)

	if loc := episodeRe.FindStringSubmatchIndex(text); loc != nil {
		info.Season = atoi(text[loc[2]:loc[3]])
		info.Episodes = parseEpisodes(text[loc[0]:loc[1]])
		cut = min(cut, loc[0])
	} else if loc := seasonRe.FindStringSubmatchIndex(text); loc != nil {
		if loc[2] >= 0 {
			info.Season = atoi(text[loc[2]:loc[3]])
		} else {
			info.Season = atoi(text[loc[4]:loc[5]])
		}
		cut = min(cut, loc[0])
	}

	// The release year is the last year-like number before the metadata, and
	// never the first word: "2001 A Space Odyssey 1968", "Blade Runner 2049 2017".
	yearAt := -1
	for _, loc := range yearRe.FindAllStringIndex(text, -1) {
		if loc[0] > 0 && loc[0] <= cut {
			yearAt = loc[0]
		}
	}
	if yearAt > 0 {
		info.Year = atoi(text[yearAt : yearAt+4])
		cut = yearAt
	}
	if cut == len(text) {
		cut = sourceCut
	}

	info.Title = cleanTitleText(text[:cut])
	info.CleanTitle = CleanTitle(info.Title)
	return info
}

func stripPath(name string) string {
	base := path.Base(strings.ReplaceAll(name, `\`, "/"))
	if ext := strings.ToLower(path.Ext(base)); videoExtensions[ext] {
		base = strings.TrimSuffix(base, base[len(base)-len(ext):])
	}
	return base
}

func parseResolution(tok string) Resolution {
	switch strings.ToLower(tok) {
	case "2160p", "4k", "uhd":
		return Resolution2160p
	case "1080p", "1080i":
		return Resolution1080p
	case "720p":
		return Resolution720p
	case "576p":
		return Resolution576p
	case "480p":
		return Resolution480p
	}
	return ResolutionUnknown
}

// parseEpisodes expands "S01E05E06" and "S01E05-E07" into episode lists.
func parseEpisodes(tok string) []int {
	var eps []int
	for _, m := range extraEpRe.FindAllStringSubmatch(tok, -1) {
		eps = append(eps, atoi(m[1]))
	}
	if strings.Contains(tok, "-") && len(eps) == 2 && eps[1] > eps[0] {
		full := make([]int, 0, eps[1]-eps[0]+1)
		for n := eps[0]; n <= eps[1]; n++ {
			full = append(full, n)
		}
		return full
	}
	return eps
}

func cleanTitleText(s string) string {
	s = strings.TrimRight(strings.TrimSpace(s), " -([")
	return strings.Join(strings.Fields(s), " ")
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
