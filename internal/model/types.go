package model

// VerdictOK is the verdict Codeforces assigns to an accepted submission.
const VerdictOK = "OK"

// Problem identifies a single problem on the platform.
type Problem struct {
	ContestID int      `json:"contestId,omitempty"` // Contest the problem belongs to
	Index     string   `json:"index,omitempty"`     // Position within the contest (e.g., "A", "B1")
	Name      string   `json:"name"`                // Display name, unique enough for dedup
	Rating    int      `json:"rating,omitempty"`    // Difficulty score, 0 if unrated
	Tags      []string `json:"tags"`                // Technique/topic labels (e.g., "dp", "greedy")
}

// Rated reports whether the platform assigned a difficulty rating.
func (p Problem) Rated() bool {
	return p.Rating > 0
}

// Submission is one entry of a user's submission history.
type Submission struct {
	ID           int64   `json:"id"`
	ContestID    int     `json:"contestId,omitempty"`
	CreationTime int64   `json:"creationTimeSeconds"` // Submission time (s since epoch)
	Language     string  `json:"programmingLanguage,omitempty"`
	Verdict      string  `json:"verdict"`
	Problem      Problem `json:"problem"`
}

// Accepted reports whether the judge accepted the submission.
func (s Submission) Accepted() bool {
	return s.Verdict == VerdictOK
}
