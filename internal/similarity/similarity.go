// Package similarity scores candidate pairings of lost and found items.
// Scoring is a pure function over the two reports; persisting matches and
// emitting notifications for qualifying pairs belongs to the match service.
package similarity

import (
	"strings"
	"time"

	"github.com/campuskit/lostfound-backend/internal/models"
)

// Qualification thresholds for auto-suggested pairings.
const (
	MinNameSimilarity = 0.70
	MaxDateDiffDays   = 7

	// UnknownDateDiff is reported when either date is missing, so the pair
	// can never qualify on date proximity.
	UnknownDateDiff = 999
)

// Score is the breakdown of one lost/found comparison.
type Score struct {
	Similarity      float64 `json:"similarity"`
	SameCategory    bool    `json:"same_category"`
	LocationOverlap bool    `json:"location_overlap"`
	DateDiffDays    int     `json:"date_diff_days"`
}

// Qualifies reports whether the pair clears the suggestion thresholds.
// Location overlap is surfaced for reviewers but does not gate qualification.
func (s Score) Qualifies() bool {
	return s.Similarity > MinNameSimilarity && s.SameCategory && s.DateDiffDays <= MaxDateDiffDays
}

// Compare scores a lost item against a found item.
func Compare(lost *models.LostItem, found *models.FoundItem) Score {
	return Score{
		Similarity:      Ratio(lost.Name, found.Name),
		SameCategory:    lost.Category == found.Category,
		LocationOverlap: locationsOverlap(lost.LostLocation, found.FoundLocation),
		DateDiffDays:    dateDiffDays(time.Time(lost.LostDate), time.Time(found.FoundDate)),
	}
}

// Ratio is the Ratcliff/Obershelp similarity of two names after lowercasing
// and trimming surrounding whitespace: twice the total length of all matching
// blocks divided by the combined length. Symmetric in its arguments, 1.0 for
// identical normalized names, 0.0 when no characters are shared.
func Ratio(a, b string) float64 {
	ra := []rune(strings.ToLower(strings.TrimSpace(a)))
	rb := []rune(strings.ToLower(strings.TrimSpace(b)))

	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchingTotal(ra, rb)) / float64(total)
}

// matchingTotal sums the lengths of all matching blocks: the longest common
// substring, then recursively whatever matches to its left and right.
func matchingTotal(a, b []rune) int {
	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingTotal(a[:ai], b[:bi]) +
		matchingTotal(a[ai+size:], b[bi+size:])
}

// longestMatch finds the longest common substring of a and b, returning its
// start in each and its length. Among equally long candidates the earliest
// in a (then in b) wins.
func longestMatch(a, b []rune) (besti, bestj, bestsize int) {
	// j2len[j] is the length of the longest match ending at a[i-1]/b[j-1].
	j2len := make(map[int]int, len(b))
	for i := range a {
		next := make(map[int]int, len(b))
		for j := range b {
			if a[i] != b[j] {
				continue
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}
	return besti, bestj, bestsize
}

func locationsOverlap(lostLoc, foundLoc string) bool {
	a := strings.ToLower(strings.TrimSpace(lostLoc))
	b := strings.ToLower(strings.TrimSpace(foundLoc))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func dateDiffDays(lost, found time.Time) int {
	if lost.IsZero() || found.IsZero() {
		return UnknownDateDiff
	}
	diff := found.Sub(lost)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours() / 24)
}
