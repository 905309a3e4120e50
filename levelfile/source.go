package levelfile

import (
	"fmt"

	"github.com/spf13/afero"

	"notdoom/model"
)

// Source loads and saves a level file on an afero filesystem. It satisfies
// model.LevelSource so the world can reload the file while running.
type Source struct {
	fs   afero.Fs
	path string
}

func NewSource(fs afero.Fs, path string) *Source {
	return &Source{fs: fs, path: path}
}

func (s *Source) Path() string {
	return s.path
}

// LoadLevel parses the file and builds a level from it.
func (s *Source) LoadLevel() (*model.Level, error) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open level: %w", err)
	}
	defer f.Close()

	pairs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}

	return model.NewLevel(pairs), nil
}

// Save writes the level's corner pairs, replacing the file.
func (s *Source) Save(level *model.Level) error {
	f, err := s.fs.Create(s.path)
	if err != nil {
		return fmt.Errorf("create level: %w", err)
	}

	if err := Write(f, level.Corners()); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return f.Close()
}
