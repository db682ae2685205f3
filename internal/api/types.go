package api

// APIProblem represents a problem object from the Codeforces API.
type APIProblem struct {
	ContestID int      `json:"contestId"`
	Index     string   `json:"index"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Rating    *int     `json:"rating"` // Absent for unrated problems
	Tags      []string `json:"tags"`
}

// APIParty represents the author of a submission.
type APIParty struct {
	Members         []APIMember `json:"members"`
	ParticipantType string      `json:"participantType"`
}

// APIMember is a single party member.
type APIMember struct {
	Handle string `json:"handle"`
}

// APISubmission represents one entry from user.status.
type APISubmission struct {
	ID                  int64      `json:"id"`
	ContestID           int        `json:"contestId"`
	CreationTimeSeconds int64      `json:"creationTimeSeconds"`
	RelativeTimeSeconds int64      `json:"relativeTimeSeconds"`
	Problem             APIProblem `json:"problem"`
	Author              APIParty   `json:"author"`
	ProgrammingLanguage string     `json:"programmingLanguage"`
	Verdict             string     `json:"verdict"` // Absent while testing is in progress
	Testset             string     `json:"testset"`
	PassedTestCount     int        `json:"passedTestCount"`
	TimeConsumedMillis  int64      `json:"timeConsumedMillis"`
	MemoryConsumedBytes int64      `json:"memoryConsumedBytes"`
}
