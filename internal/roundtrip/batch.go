package roundtrip

import (
	"context"
	"sort"

	"scriptctl/internal/discover"
	"scriptctl/internal/logging"
)

// Status is the result of processing one discovered path.
type Status string

const (
	StatusOK      Status = "ok"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Outcome reports what happened to one discovered path.
type Outcome struct {
	Path   string `json:"path"`
	Status Status `json:"status"`
	// Target is the sidecar written by an extraction or the document saved
	// by an update.
	Target string `json:"target,omitempty"`
	// Scripts counts extracted scripts or applied updates.
	Scripts int      `json:"scripts"`
	Keys    []string `json:"keys,omitempty"`
	Kind    Kind     `json:"kind,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Summary aggregates the outcomes of a directory run.
type Summary struct {
	Root      string    `json:"root"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	Skipped   int       `json:"skipped"`
	Total     int       `json:"total"`
	Outcomes  []Outcome `json:"outcomes"`
}

// OK reports whether no file failed.
func (s Summary) OK() bool {
	return s.Failed == 0
}

func (s *Summary) add(o Outcome) {
	switch o.Status {
	case StatusOK:
		s.Succeeded++
	case StatusFailed:
		s.Failed++
	case StatusSkipped:
		s.Skipped++
	}
	s.Total++
	s.Outcomes = append(s.Outcomes, o)
}

// ExtractDir extracts every document below dir. onFile, when non-nil, is
// called after each path is processed. The returned error is non-nil only
// when dir cannot be walked or ctx is cancelled; per-file failures live in
// the Summary.
func (s *Service) ExtractDir(ctx context.Context, dir string, onFile func(Outcome)) (Summary, error) {
	return s.runDir(ctx, dir, s.mapper.DocumentExt, onFile, func(ctx context.Context, path string) Outcome {
		res, err := s.Extract(ctx, path)
		if err != nil {
			return failed(path, err)
		}
		return Outcome{Path: path, Status: StatusOK, Target: res.Sidecar, Scripts: len(res.Keys), Keys: res.Keys}
	})
}

// UpdateDir updates the companion document of every sidecar below dir.
// See ExtractDir for the callback and error contract.
func (s *Service) UpdateDir(ctx context.Context, dir string, onFile func(Outcome)) (Summary, error) {
	return s.runDir(ctx, dir, s.mapper.SidecarExt, onFile, func(ctx context.Context, path string) Outcome {
		res, err := s.Update(ctx, path)
		if err != nil {
			return failed(path, err)
		}
		return Outcome{Path: path, Status: StatusOK, Target: res.Document, Scripts: res.Updated}
	})
}

type entry struct {
	path string
	dir  bool
}

func (s *Service) runDir(
	ctx context.Context,
	dir, ext string,
	onFile func(Outcome),
	process func(context.Context, string) Outcome,
) (Summary, error) {
	summary := Summary{Root: dir, Outcomes: []Outcome{}}
	found, err := discover.Files(dir, ext)
	if err != nil {
		return summary, err
	}

	entries := make([]entry, 0, found.Total())
	for _, path := range found.Files {
		entries = append(entries, entry{path: path})
	}
	for _, path := range found.SkippedDirs {
		entries = append(entries, entry{path: path, dir: true})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].path < entries[j].path })

	logger := logging.WithContext(ctx, s.logger)
	logger.Debug("discovered files",
		logging.String("root", dir),
		logging.String("extension", ext),
		logging.Int("files", len(found.Files)),
		logging.Int("skipped_dirs", len(found.SkippedDirs)))

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		var outcome Outcome
		if e.dir {
			outcome = Outcome{Path: e.path, Status: StatusSkipped}
			logger.Debug("skipping directory", logging.String(logging.FieldFile, e.path))
		} else {
			outcome = process(ctx, e.path)
			if outcome.Status == StatusFailed {
				logger.Error("file failed",
					logging.String(logging.FieldFile, e.path),
					logging.String(logging.FieldOutcome, string(outcome.Kind)),
					logging.String("error", outcome.Error))
			}
		}
		summary.add(outcome)
		if onFile != nil {
			onFile(outcome)
		}
	}
	return summary, nil
}

func failed(path string, err error) Outcome {
	return Outcome{Path: path, Status: StatusFailed, Kind: Classify(err), Error: err.Error()}
}
