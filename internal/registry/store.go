package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"vaultpub/internal/logging"
	"vaultpub/internal/notedate"
)

// Store binds a registry file to the default target roots used by Add.
type Store struct {
	path       string
	publicDir  string
	privateDir string
	logger     *slog.Logger
}

// NewStore returns a Store for the registry at path. publicDir and privateDir
// are the roots for targets derived by Add.
func NewStore(path, publicDir, privateDir string, logger *slog.Logger) *Store {
	return &Store{
		path:       path,
		publicDir:  publicDir,
		privateDir: privateDir,
		logger:     logging.NewComponentLogger(logger, "registry"),
	}
}

// Path returns the registry file location.
func (s *Store) Path() string {
	return s.path
}

// List loads the registry and returns its mappings in order.
func (s *Store) List() ([]Mapping, error) {
	reg, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	return reg.Files, nil
}

// AddRequest describes a mapping to register.
type AddRequest struct {
	Source string
	// Target is optional; when empty it is derived from the note's date and
	// filename under the public or private root.
	Target  string
	Private bool
}

// Add registers a new mapping and persists the registry.
func (s *Store) Add(req AddRequest) (Mapping, error) {
	source, err := canonicalSource(req.Source)
	if err != nil {
		return Mapping{}, err
	}

	var target string
	if req.Target != "" {
		if target, err = canonicalTarget(req.Target); err != nil {
			return Mapping{}, err
		}
	} else if target, err = s.defaultTarget(source, req.Private); err != nil {
		return Mapping{}, err
	}

	mapping := Mapping{Source: source, Target: target}
	err = s.mutate(func(reg *Registry) error {
		if reg.IndexOfSource(source) >= 0 {
			return fmt.Errorf("%w: %s", ErrAlreadyExists, source)
		}
		reg.Files = append(reg.Files, mapping)
		return nil
	})
	if err != nil {
		return Mapping{}, err
	}
	s.logger.Info("registered mapping", logging.Args(
		logging.String(logging.FieldSource, mapping.Source),
		logging.String(logging.FieldTarget, mapping.Target),
		logging.Bool("derived_target", req.Target == ""),
		logging.Bool("private", req.Private),
	)...)
	return mapping, nil
}

// Remove deregisters every mapping whose source filename matches the
// filename of source and persists the registry. Only the final path
// component is compared, so two notes with the same name in different
// vault folders are removed together.
func (s *Store) Remove(source string) ([]Mapping, error) {
	var removed []Mapping
	err := s.mutate(func(reg *Registry) error {
		removed = reg.RemoveByName(source)
		if len(removed) == 0 {
			return fmt.Errorf("%w: no mapping with source named %q", ErrNotFound, filepath.Base(source))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, m := range removed {
		s.logger.Info("removed mapping", logging.Args(
			logging.String(logging.FieldSource, m.Source),
			logging.String(logging.FieldTarget, m.Target),
		)...)
	}
	return removed, nil
}

// mutate loads the registry under the file lock, applies fn, and saves the
// result. Nothing is written when fn fails.
func (s *Store) mutate(fn func(*Registry) error) error {
	if _, err := os.Stat(s.path); err != nil {
		return fmt.Errorf("read registry %s: %w", s.path, err)
	}
	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock registry %s: %w", s.path, err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			s.logger.Warn("failed to release registry lock", logging.Args(logging.Error(err))...)
		}
	}()

	reg, err := Load(s.path)
	if err != nil {
		return err
	}
	if err := fn(reg); err != nil {
		return err
	}
	return Save(s.path, reg)
}

func (s *Store) defaultTarget(source string, private bool) (string, error) {
	content, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("read source %s: %w", source, err)
	}
	date, err := notedate.Resolve(source, string(content))
	if err != nil {
		return "", err
	}
	base := s.publicDir
	if private {
		base = s.privateDir
	}
	return canonicalTarget(filepath.Join(base, date+"-"+filepath.Base(source)))
}

func canonicalSource(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve source %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSourceMissing, abs)
		}
		return "", fmt.Errorf("resolve source %s: %w", abs, err)
	}
	return resolved, nil
}

// canonicalTarget makes path absolute and resolves symlinks in its nearest
// existing ancestor; the target itself usually does not exist yet.
func canonicalTarget(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve target %s: %w", path, err)
	}
	var missing []string
	current := abs
	for {
		resolved, err := filepath.EvalSymlinks(current)
		if err == nil {
			return filepath.Join(append([]string{resolved}, missing...)...), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("resolve target %s: %w", abs, err)
		}
		parent := filepath.Dir(current)
		if parent == current {
			return abs, nil
		}
		missing = append([]string{filepath.Base(current)}, missing...)
		current = parent
	}
}
