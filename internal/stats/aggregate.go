package stats

import (
	"sort"

	"github.com/rickgao/codeforces-data/internal/model"
)

// Report holds the three derived outputs of a crawl.
type Report struct {
	// Submissions are the accepted, rated, name-deduplicated submissions
	// sorted ascending by problem rating.
	Submissions []model.Submission

	// RatingCounts maps problem rating to the number of distinct solved
	// problems at that rating.
	RatingCounts map[int]int

	// TagCounts maps tag to the number of distinct solved problems
	// carrying it. A problem with several tags counts once per tag.
	TagCounts map[string]int
}

// Aggregate filters, deduplicates and sorts a submission history and
// builds the rating and tag summaries over the result.
//
// Only accepted submissions for rated problems survive the filter.
// Deduplication is by problem name, first occurrence wins, so re-solves
// of the same problem count once. The sort is stable: problems with
// equal rating keep their relative order.
func Aggregate(subs []model.Submission) Report {
	solved := dedupByName(filterAccepted(subs))

	sort.SliceStable(solved, func(i, j int) bool {
		return solved[i].Problem.Rating < solved[j].Problem.Rating
	})

	rep := Report{
		Submissions:  solved,
		RatingCounts: make(map[int]int),
		TagCounts:    make(map[string]int),
	}
	for _, s := range solved {
		rep.RatingCounts[s.Problem.Rating]++
		for _, tag := range s.Problem.Tags {
			rep.TagCounts[tag]++
		}
	}

	return rep
}

// filterAccepted keeps accepted submissions for rated problems.
func filterAccepted(subs []model.Submission) []model.Submission {
	out := make([]model.Submission, 0, len(subs))
	for _, s := range subs {
		if s.Accepted() && s.Problem.Rated() {
			out = append(out, s)
		}
	}
	return out
}

// dedupByName keeps the first submission for each distinct problem name,
// preserving input order.
func dedupByName(subs []model.Submission) []model.Submission {
	seen := make(map[string]bool, len(subs))
	out := make([]model.Submission, 0, len(subs))
	for _, s := range subs {
		if seen[s.Problem.Name] {
			continue
		}
		seen[s.Problem.Name] = true
		out = append(out, s)
	}
	return out
}
