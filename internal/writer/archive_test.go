package writer

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/codeforces-data/internal/model"
)

func TestNewRun(t *testing.T) {
	run := NewRun("tourist", 1, 1000)

	if run.ID == uuid.Nil {
		t.Error("run ID should be set")
	}
	if run.Handle != "tourist" || run.From != 1 || run.Count != 1000 {
		t.Errorf("run fields wrong: %+v", run)
	}
	if run.FetchedAt.IsZero() {
		t.Error("FetchedAt should be set")
	}
	if run.FetchedAt.Location() != time.UTC {
		t.Error("FetchedAt should be UTC")
	}
}

func TestSubmissionRow(t *testing.T) {
	runID := uuid.New()
	s := model.Submission{
		ID:           42,
		ContestID:    1,
		CreationTime: 1700000000,
		Language:     "GNU C++17",
		Verdict:      "OK",
		Problem: model.Problem{
			ContestID: 1,
			Index:     "A",
			Name:      "Theatre Square",
			Rating:    1000,
			Tags:      []string{"math"},
		},
	}

	row := submissionRow(runID, s)

	if len(row) != 10 {
		t.Fatalf("row has %d columns, want 10", len(row))
	}
	if row[0] != runID || row[1] != int64(42) {
		t.Errorf("identity columns wrong: %v", row[:2])
	}
	if row[4] != "Theatre Square" || row[5] != 1000 {
		t.Errorf("problem columns wrong: %v", row[3:6])
	}
	ts, ok := row[9].(time.Time)
	if !ok || ts.Unix() != 1700000000 {
		t.Errorf("submitted_at = %v, want unix 1700000000", row[9])
	}
}
