package state

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// fileVersion is the schema version written to every state file.
const fileVersion = 1

// stateFile is the on-disk YAML layout of one scope.
type stateFile struct {
	Version   int      `yaml:"version"`
	Scope     string   `yaml:"scope"`
	Collapsed []string `yaml:"collapsed,omitempty"`
	Checked   []string `yaml:"checked,omitempty"`
	Selected  string   `yaml:"selected,omitempty"`
}

// FileBackend keeps one YAML file per scope in a directory.
type FileBackend struct {
	dir string
}

// NewFileBackend creates dataDir/tree-state if needed.
func NewFileBackend(dataDir string) (*FileBackend, error) {
	dir := filepath.Join(dataDir, "tree-state")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

// path maps a scope onto a file name; scopes contain path separators.
func (b *FileBackend) path(scope string) string {
	sum := sha1.Sum([]byte(scope))
	return filepath.Join(b.dir, hex.EncodeToString(sum[:8])+".yaml")
}

// Load reads the state of scope. A missing file yields an empty state.
func (b *FileBackend) Load(scope string) (*State, error) {
	s := New()

	data, err := os.ReadFile(b.path(scope))
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var f stateFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	if f.Version > fileVersion {
		return nil, fmt.Errorf("state file version %d is newer than supported version %d", f.Version, fileVersion)
	}

	for _, p := range f.Collapsed {
		s.Collapsed[p] = struct{}{}
	}
	for _, p := range f.Checked {
		s.Checked[p] = struct{}{}
	}
	s.Selected = f.Selected
	s.saved = true
	return s, nil
}

// Save writes s for scope, replacing any previous file atomically.
func (b *FileBackend) Save(scope string, s *State) error {
	f := stateFile{
		Version:   fileVersion,
		Scope:     scope,
		Collapsed: s.CollapsedFolders(),
		Checked:   s.CheckedFiles(),
		Selected:  s.Selected,
	}

	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	target := b.path(scope)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}

	s.markSaved()
	return nil
}

// Scopes lists the scopes of every state file in the directory.
func (b *FileBackend) Scopes() ([]string, error) {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		return nil, fmt.Errorf("read state dir: %w", err)
	}

	var scopes []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(b.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read state file: %w", err)
		}
		var f stateFile
		if err := yaml.Unmarshal(data, &f); err != nil || f.Scope == "" {
			continue
		}
		scopes = append(scopes, f.Scope)
	}
	sort.Strings(scopes)
	return scopes, nil
}

// Close is a no-op; files are not kept open.
func (b *FileBackend) Close() error {
	return nil
}
