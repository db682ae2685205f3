package api

import (
	"github.com/rickgao/codeforces-data/internal/model"
)

// ToModel converts an APISubmission to model.Submission.
func (s *APISubmission) ToModel() model.Submission {
	return model.Submission{
		ID:           s.ID,
		ContestID:    s.ContestID,
		CreationTime: s.CreationTimeSeconds,
		Language:     s.ProgrammingLanguage,
		Verdict:      s.Verdict,
		Problem:      s.Problem.ToModel(),
	}
}

// ToModel converts an APIProblem to model.Problem. A problem without a
// rating maps to Rating 0.
func (p *APIProblem) ToModel() model.Problem {
	rating := 0
	if p.Rating != nil {
		rating = *p.Rating
	}

	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return model.Problem{
		ContestID: p.ContestID,
		Index:     p.Index,
		Name:      p.Name,
		Rating:    rating,
		Tags:      tags,
	}
}

// ToSubmissions converts a page of API submissions to domain submissions.
func ToSubmissions(subs []APISubmission) []model.Submission {
	out := make([]model.Submission, len(subs))
	for i := range subs {
		out[i] = subs[i].ToModel()
	}
	return out
}
