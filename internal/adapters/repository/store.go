// Package repository persists athlete profiles and derived parameters
// as a per-athlete directory of YAML files:
//
//	<root>/<athlete_id>/profile.yaml
//	<root>/<athlete_id>/derived.yaml
//
// The layout is the system of record for the whole coaching pipeline,
// so files are written atomically (temp file then rename) and reads
// never observe a half-written record.
package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/gravelgod/agf/internal/domain/model"
	"github.com/gravelgod/agf/internal/domain/profile"
	"github.com/gravelgod/agf/pkg/logger"
	"github.com/gravelgod/agf/pkg/metrics"
)

const (
	profileFile = "profile.yaml"
	derivedFile = "derived.yaml"
)

// Store is a filesystem-backed athlete store.
type Store struct {
	root   string
	logger logger.Logger
}

// New creates a Store rooted at the default athletes directory.
func New(opts ...Option) *Store {
	s := &Store{
		root: "athletes",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("repository")
	}
	return s
}

// Root returns the store's base directory.
func (s *Store) Root() string {
	return s.root
}

// LoadProfile reads an athlete's intake profile.
func (s *Store) LoadProfile(ctx context.Context, athleteID string) (*profile.Athlete, error) {
	path := filepath.Join(s.root, athleteID, profileFile)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, athleteID)
		}
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	a, err := profile.Decode(f)
	if err != nil {
		metrics.RecordStoreError("read")
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, athleteID, err)
	}
	if a.AthleteID == "" {
		a.AthleteID = athleteID
	}
	metrics.RecordStoreRead()
	return a, nil
}

// SaveProfile writes an athlete's intake profile.
func (s *Store) SaveProfile(ctx context.Context, a *profile.Athlete) error {
	if a.AthleteID == "" {
		return fmt.Errorf("%w: empty athlete id", ErrIO)
	}
	return s.writeYAML(ctx, a.AthleteID, profileFile, a)
}

// LoadDerived reads an athlete's derived parameters.
func (s *Store) LoadDerived(ctx context.Context, athleteID string) (*model.DerivedParameters, error) {
	path := filepath.Join(s.root, athleteID, derivedFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, athleteID)
		}
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	var d model.DerivedParameters
	if err := yaml.Unmarshal(raw, &d); err != nil {
		metrics.RecordStoreError("read")
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, athleteID, err)
	}
	metrics.RecordStoreRead()
	return &d, nil
}

// SaveDerived writes an athlete's derived parameters.
func (s *Store) SaveDerived(ctx context.Context, d *model.DerivedParameters) error {
	if d.AthleteID == "" {
		return fmt.Errorf("%w: empty athlete id", ErrIO)
	}
	return s.writeYAML(ctx, d.AthleteID, derivedFile, d)
}

// List returns all athlete IDs present in the store, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	var ids []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(s.root, e.Name(), profileFile)); err == nil {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *Store) writeYAML(ctx context.Context, athleteID, name string, v any) error {
	dir := filepath.Join(s.root, athleteID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		metrics.RecordStoreError("write")
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	raw, err := yaml.Marshal(v)
	if err != nil {
		metrics.RecordStoreError("write")
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		metrics.RecordStoreError("write")
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		metrics.RecordStoreError("write")
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		metrics.RecordStoreError("write")
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := os.Rename(tmpName, filepath.Join(dir, name)); err != nil {
		os.Remove(tmpName)
		metrics.RecordStoreError("write")
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	metrics.RecordStoreWrite()
	s.logger.Debug(ctx, "wrote athlete file",
		logger.String("athleteID", athleteID),
		logger.String("file", name),
	)
	return nil
}
