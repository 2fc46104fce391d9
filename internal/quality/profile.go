package quality

import (
	"cmp"
	"slices"

	"github.com/vmunix/arrdeck/pkg/api"
)

// ProfileRank is the highest rank a profile can reach: the better of its
// cutoff and every allowed item.
func ProfileRank(p api.QualityProfile) int {
	rank := Rank(Parse(p.Cutoff))
	for _, item := range p.Items {
		if item.Allowed {
			rank = max(rank, Rank(Parse(item.Quality)))
		}
	}
	return rank
}

// SortProfiles orders profiles highest ProfileRank first, then by name and id
// so equal profiles keep a predictable order.
func SortProfiles(profiles []api.QualityProfile) {
	slices.SortStableFunc(profiles, func(a, b api.QualityProfile) int {
		return cmp.Or(
			cmp.Compare(ProfileRank(b), ProfileRank(a)),
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.ID, b.ID),
		)
	})
}

// ItemCutoffMet decides whether a library item needs an upgrade search.
// Without a file the cutoff is never met. Without a profile, or with a
// cutoff that names no known tier, there is nothing to upgrade to.
func ItemCutoffMet(hasFile bool, fileQuality string, profile *api.QualityProfile) bool {
	if !hasFile {
		return false
	}
	if profile == nil {
		return true
	}
	cutoff := Parse(profile.Cutoff)
	if cutoff == Unknown {
		return true
	}
	return CutoffMet(Parse(fileQuality), cutoff)
}
