package repoAcquire

import (
	"os"
	"os/exec"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/y-okubo/llmstxt/domain/system/logger"
)

// RepoAcquireService resolves a repository specifier into a local directory.
// Remote URLs are shallow-cloned into a temporary directory.
type RepoAcquireService struct {
	logger logger.ILogger
}

func NewRepoAcquireService(logger logger.ILogger) *RepoAcquireService {
	return &RepoAcquireService{
		logger: logger,
	}
}

// Acquisition is a resolved repository. Cleanup removes the checkout only
// when it was cloned into a temporary directory.
type Acquisition struct {
	Path   string
	isTemp bool
	logger logger.ILogger
}

func (s *RepoAcquireService) Acquire(specifier string) (*Acquisition, error) {
	if strings.HasPrefix(specifier, "http://") || strings.HasPrefix(specifier, "https://") {
		s.logger.Infof("cloning repository from %s", specifier)
		return s.clone(specifier)
	}

	s.logger.Infof("using local repository at %s", specifier)
	return s.validateLocal(specifier)
}

func (s *RepoAcquireService) clone(url string) (*Acquisition, error) {
	tempDir, err := os.MkdirTemp("", "repo_analyzer_")
	if err != nil {
		return nil, eris.Wrap(err, "failed to create temporary directory")
	}

	cmd := exec.Command("git", "clone", "--depth", "1", url, tempDir)
	if out, err := cmd.CombinedOutput(); err != nil {
		os.RemoveAll(tempDir)
		return nil, eris.Wrapf(err, "failed to clone repository: %s", strings.TrimSpace(string(out)))
	}

	s.logger.Infof("repository cloned to %s", tempDir)

	return &Acquisition{
		Path:   tempDir,
		isTemp: true,
		logger: s.logger,
	}, nil
}

func (s *RepoAcquireService) validateLocal(path string) (*Acquisition, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, eris.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "failed to inspect path: %s", path)
	}
	if !info.IsDir() {
		return nil, eris.Errorf("path is not a directory: %s", path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read directory: %s", path)
	}
	if len(entries) == 0 {
		return nil, eris.Errorf("directory is empty: %s", path)
	}

	return &Acquisition{
		Path:   path,
		isTemp: false,
		logger: s.logger,
	}, nil
}

// Cleanup removes the temporary checkout. Safe to call more than once and
// a no-op for local repositories.
func (a *Acquisition) Cleanup() {
	if !a.isTemp || a.Path == "" {
		return
	}
	a.logger.Infof("cleaning up temporary directory: %s", a.Path)
	os.RemoveAll(a.Path)
	a.Path = ""
	a.isTemp = false
}
