// Package dataset loads the bundled listing collection and normalizes it
// into domain items.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"listbase/internal/domain"
)

// Source delivers the full item collection.
type Source interface {
	Load(ctx context.Context) ([]domain.Item, error)
}

// FileSource reads a JSON or YAML array of raw records from disk.
type FileSource struct {
	Path    string
	Variant domain.Variant
	// Delay simulates network latency before the data is returned.
	Delay time.Duration

	log logrus.FieldLogger
}

func NewFileSource(path string, variant domain.Variant, delay time.Duration, logger logrus.FieldLogger) *FileSource {
	return &FileSource{
		Path:    path,
		Variant: variant,
		Delay:   delay,
		log:     logger.WithField("component", "dataset"),
	}
}

// Load waits out Delay (or ctx), then parses and normalizes the file.
func (s *FileSource) Load(ctx context.Context) ([]domain.Item, error) {
	log := s.log.WithFields(logrus.Fields{
		"path":    s.Path,
		"variant": s.Variant,
	})

	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	content, err := os.ReadFile(s.Path)
	if err != nil {
		log.WithError(err).Error("Failed to read dataset")
		return nil, fmt.Errorf("failed to read dataset %s: %w", s.Path, err)
	}

	items, err := Parse(content, filepath.Ext(s.Path), s.Variant)
	if err != nil {
		log.WithError(err).Error("Failed to parse dataset")
		return nil, fmt.Errorf("failed to parse dataset %s: %w", s.Path, err)
	}

	log.WithField("item_count", len(items)).Info("Dataset loaded")
	return items, nil
}

// Parse decodes raw records in the format named by ext (".json", ".yaml", ".yml")
// and normalizes them for variant.
func Parse(content []byte, ext string, variant domain.Variant) ([]domain.Item, error) {
	var records []record
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &records); err != nil {
			return nil, err
		}
	case ".json", "":
		if err := json.Unmarshal(content, &records); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", ext)
	}

	items := make([]domain.Item, 0, len(records))
	seen := make(map[string]bool, len(records))
	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("record %d has no id", i)
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("duplicate id %q", r.ID)
		}
		seen[r.ID] = true
		items = append(items, r.normalize(variant))
	}
	return items, nil
}

// ByID finds an item in a loaded collection.
func ByID(items []domain.Item, id string) (domain.Item, error) {
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
}
