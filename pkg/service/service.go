package service

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mattsolo1/grove-core/git"
	"github.com/mattsolo1/grove-core/util/pathutil"
	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-changes/pkg/models"
	"github.com/mattsolo1/grove-changes/pkg/state"
	"github.com/mattsolo1/grove-changes/pkg/tree"
)

// Tree names, used as the second half of a state scope.
const (
	ChangesTreeName  = "changes"
	BranchesTreeName = "branches"
)

// Service builds the trees of one repository and persists their state.
type Service struct {
	RepoPath string
	Branch   string
	Config   *Config

	backend state.Backend
	logger  *logrus.Entry

	// Overridable for tests.
	fileStatus func(repoPath string) ([]models.Change, error)
	branches   func(repoPath string) ([]models.Branch, error)
	remoteURL  func(repoPath, remote string) (string, error)
}

// Config holds service configuration
type Config struct {
	DataDir       string
	StateBackend  string
	DisplayRoot   bool
	PromoteMeta   bool
	Checkable     bool
	Selectable    bool
	PathSeparator string
	// ShowUntracked lists untracked files in the changes tree.
	ShowUntracked bool
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig(dataDir string) *Config {
	return &Config{
		DataDir:       dataDir,
		StateBackend:  state.KindSQLite,
		PromoteMeta:   true,
		Checkable:     true,
		Selectable:    true,
		PathSeparator: tree.DefaultPathSeparator,
		ShowUntracked: true,
	}
}

// New opens the state backend and validates repoPath.
func New(config *Config, repoPath string, logger *logrus.Entry) (*Service, error) {
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}

	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, fmt.Errorf("resolve repository path: %w", err)
	}
	if !git.IsGitRepo(absPath) {
		return nil, fmt.Errorf("not a git repository: %s", absPath)
	}
	if normalized, err := pathutil.NormalizeForLookup(absPath); err == nil {
		absPath = normalized
	}

	backend, err := state.Open(config.StateBackend, config.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open state backend: %w", err)
	}

	_, branch, _ := git.GetRepoInfo(absPath)

	return newService(config, absPath, branch, backend, logger), nil
}

func newService(config *Config, repoPath, branch string, backend state.Backend, logger *logrus.Entry) *Service {
	return &Service{
		RepoPath:   repoPath,
		Branch:     branch,
		Config:     config,
		backend:    backend,
		logger:     logger.WithField("component", "service"),
		fileStatus: GetFileStatus,
		branches:   GetBranches,
		remoteURL:  GetRemoteURL,
	}
}

// Close releases the state backend.
func (s *Service) Close() error {
	return s.backend.Close()
}

// changesTitle names the branch and, when it tracks an upstream, how far
// the two have diverged, e.g. "Changes (main ↑2 ↓1)".
func (s *Service) changesTitle() string {
	if s.Branch == "" {
		return "Changes"
	}
	label := s.Branch
	branches, err := s.branches(s.RepoPath)
	if err != nil {
		s.logger.WithError(err).Debug("Could not read tracking status")
	} else if current, ok := CurrentBranch(branches); ok {
		if track := current.TrackingLabel(); track != "" {
			label += " " + track
		}
	}
	return fmt.Sprintf("Changes (%s)", label)
}

func (s *Service) changesOptions() tree.Options {
	title := s.changesTitle()
	return tree.Options{
		Title:            title,
		DisplayRootNode:  s.Config.DisplayRoot,
		IsSelectable:     s.Config.Selectable,
		IsCheckable:      s.Config.Checkable,
		PathSeparator:    s.Config.PathSeparator,
		PromoteMetaFiles: s.Config.PromoteMeta,
	}
}

func (s *Service) branchesOptions() tree.Options {
	return tree.Options{
		Title:           "Branches",
		DisplayRootNode: s.Config.DisplayRoot,
		IsSelectable:    s.Config.Selectable,
		PathSeparator:   tree.DefaultPathSeparator,
	}
}

// OpenChanges reads the working tree status and returns an unloaded session
// for the changes tree.
func (s *Service) OpenChanges() (*Session[models.Change], error) {
	changes, err := s.fileStatus(s.RepoPath)
	if err != nil {
		return nil, err
	}
	if !s.Config.ShowUntracked {
		tracked := changes[:0:0]
		for _, c := range changes {
			if !c.Untracked() {
				tracked = append(tracked, c)
			}
		}
		changes = tracked
	}
	records := ChangeRecords(changes)
	if sep := s.Config.PathSeparator; sep != "" && sep != "/" {
		for i := range records {
			records[i].Path = strings.ReplaceAll(records[i].Path, "/", sep)
		}
	}
	return openSession(s, ChangesTreeName, s.changesOptions(), records)
}

// OpenBranches lists the branches and returns an unloaded session for the
// branch tree.
func (s *Service) OpenBranches() (*Session[models.Branch], error) {
	branches, err := s.branches(s.RepoPath)
	if err != nil {
		return nil, err
	}
	return openSession(s, BranchesTreeName, s.branchesOptions(), BranchRecords(branches))
}

// StoredScopes lists the scopes with saved state for this repository.
func (s *Service) StoredScopes() ([]string, error) {
	scopes, err := s.backend.Scopes()
	if err != nil {
		return nil, fmt.Errorf("list stored scopes: %w", err)
	}
	prefix := state.Scope(s.RepoPath, "")
	var own []string
	for _, scope := range scopes {
		if strings.HasPrefix(scope, prefix) {
			own = append(own, scope)
		}
	}
	return own, nil
}

// LfsVersion returns the installed git-lfs version.
func (s *Service) LfsVersion() (models.Version, error) {
	return GetLfsVersion(s.RepoPath)
}
