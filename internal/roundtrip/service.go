package roundtrip

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"scriptctl/internal/config"
	"scriptctl/internal/document"
	"scriptctl/internal/fileutil"
	"scriptctl/internal/logging"
	"scriptctl/internal/pathmap"
	"scriptctl/internal/script"
	"scriptctl/internal/sidecar"
)

// BackupSuffix is appended to a document path to name its backup copy.
const BackupSuffix = ".bak"

// Service runs extractions and updates with one set of document options and
// one path mapping.
type Service struct {
	opts   document.Options
	mapper pathmap.Mapper
	backup bool
	logger *slog.Logger
}

// ExtractResult describes one completed extraction.
type ExtractResult struct {
	Document string `json:"document"`
	Sidecar  string `json:"sidecar"`
	// Keys lists the formatted keys written, in sidecar order.
	Keys []string `json:"keys"`
	// Collisions lists keys that were found more than once; only the last
	// occurrence was written.
	Collisions []string `json:"collisions,omitempty"`
}

// UpdateResult describes one completed update.
type UpdateResult struct {
	Document string `json:"document"`
	Sidecar  string `json:"sidecar"`
	// Updated counts script replacements, including repeated replacements of
	// the same element.
	Updated int `json:"updated"`
	// Backup is the path of the copy taken before saving, if any.
	Backup string `json:"backup,omitempty"`
}

// NewService builds a service from cfg. A nil logger discards output.
func NewService(cfg *config.Config, logger *slog.Logger) *Service {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	return &Service{
		opts:   cfg.DocumentOptions(),
		mapper: cfg.PathMapper(),
		backup: cfg.Update.Backup,
		logger: logging.NewComponentLogger(logger, "roundtrip"),
	}
}

// Mapper returns the path mapping the service uses.
func (s *Service) Mapper() pathmap.Mapper {
	return s.mapper
}

// Extract writes the scripts of the document at docPath to its sidecar.
// The sidecar is only written once the document was fully scanned.
func (s *Service) Extract(ctx context.Context, docPath string) (ExtractResult, error) {
	if err := ctx.Err(); err != nil {
		return ExtractResult{}, err
	}
	logger := logging.WithContext(logging.WithFile(ctx, docPath), s.logger)

	sidecarPath, err := s.mapper.SidecarPath(docPath)
	if err != nil {
		return ExtractResult{}, fmt.Errorf("derive sidecar path: %w", err)
	}

	doc, err := document.Load(docPath, s.opts)
	if err != nil {
		return ExtractResult{}, err
	}
	scanned := doc.Scan()

	result := ExtractResult{
		Document:   docPath,
		Sidecar:    sidecarPath,
		Keys:       formatKeys(scanned.Scripts.Keys()),
		Collisions: formatKeys(scanned.Collisions),
	}
	for _, key := range result.Collisions {
		logger.Warn("duplicate script key, keeping last occurrence",
			logging.String(logging.FieldScriptKey, key))
	}

	if err := sidecar.WriteFile(sidecarPath, scanned.Scripts, filepath.Base(docPath)); err != nil {
		return ExtractResult{}, err
	}
	logger.Info("scripts extracted",
		logging.Int("scripts", len(result.Keys)),
		logging.String("sidecar", sidecarPath))
	return result, nil
}

// Update patches the companion document of the sidecar at sidecarPath. The
// companion must already exist; when it does not, nothing is read or written.
func (s *Service) Update(ctx context.Context, sidecarPath string) (UpdateResult, error) {
	if err := ctx.Err(); err != nil {
		return UpdateResult{}, err
	}
	logger := logging.WithContext(logging.WithFile(ctx, sidecarPath), s.logger)

	docPath, err := s.mapper.DocumentPath(sidecarPath)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("derive document path: %w", err)
	}
	if err := requireFile(docPath); err != nil {
		return UpdateResult{}, err
	}

	parsed, err := sidecar.ReadFile(sidecarPath)
	if err != nil {
		return UpdateResult{}, err
	}
	for _, key := range parsed.Dropped {
		logger.Debug("unterminated script block ignored", logging.String(logging.FieldScriptKey, key))
	}

	doc, err := document.Load(docPath, s.opts)
	if err != nil {
		return UpdateResult{}, err
	}
	updated := doc.Patch(parsed.Scripts)

	result := UpdateResult{Document: docPath, Sidecar: sidecarPath, Updated: updated}
	if s.backup {
		result.Backup = docPath + BackupSuffix
		if err := fileutil.CopyFile(docPath, result.Backup); err != nil {
			return UpdateResult{}, fmt.Errorf("backup document: %w", err)
		}
	}
	if err := doc.Save(docPath); err != nil {
		return UpdateResult{}, err
	}
	logger.Info("document updated",
		logging.Int("updated", updated),
		logging.String("document", docPath))
	return result, nil
}

func requireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("companion %w: %s", document.ErrNotFound, path)
		}
		return fmt.Errorf("inspect document: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("companion document %s is a directory", path)
	}
	return nil
}

func formatKeys(keys []script.Key) []string {
	if len(keys) == 0 {
		return nil
	}
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, script.FormatKey(key))
	}
	return out
}
