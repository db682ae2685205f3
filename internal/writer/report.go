package writer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rickgao/codeforces-data/internal/stats"
)

// Artifact file names, one per aggregation output.
const (
	DataFile   = "data.json"   // Filtered, deduplicated, sorted submissions
	RatingFile = "rating.json" // rating -> solved count
	TagsFile   = "tags.json"   // tag -> solved count
)

// ReportWriter writes the aggregation artifacts to a directory.
type ReportWriter struct {
	dir    string
	logger *slog.Logger
}

// NewReportWriter creates a writer targeting dir.
func NewReportWriter(dir string, logger *slog.Logger) *ReportWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportWriter{dir: dir, logger: logger}
}

// WriteAll writes the three artifacts sequentially, each as a complete
// overwrite of any previous file with the same name. Empty counts still
// produce valid (empty-object) artifacts.
func (w *ReportWriter) WriteAll(rep stats.Report) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := w.writeJSON(DataFile, rep.Submissions); err != nil {
		return err
	}
	if err := w.writeJSON(RatingFile, rep.RatingCounts); err != nil {
		return err
	}
	if err := w.writeJSON(TagsFile, rep.TagCounts); err != nil {
		return err
	}

	w.logger.Info("artifacts written",
		"dir", w.dir,
		"submissions", len(rep.Submissions),
		"ratings", len(rep.RatingCounts),
		"tags", len(rep.TagCounts),
	)
	return nil
}

// writeJSON pretty-prints v into name under the output directory.
func (w *ReportWriter) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	data = append(data, '\n')

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
