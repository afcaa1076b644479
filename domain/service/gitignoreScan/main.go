package gitignoreScan

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"github.com/y-okubo/llmstxt/domain/model/gitignore"
	"github.com/y-okubo/llmstxt/domain/system/logger"
)

const ruleFileName = ".gitignore"

// ErrPathOutsideRepository is returned when a query path does not live under
// the repository root. It indicates a programming error in the caller, not
// bad repository content.
var ErrPathOutsideRepository = errors.New("path is outside the repository root")

// GitignoreScanService loads every .gitignore file in a repository into one
// immutable rule index.
type GitignoreScanService struct {
	logger logger.ILogger
}

func NewGitignoreScanService(logger logger.ILogger) *GitignoreScanService {
	return &GitignoreScanService{
		logger: logger,
	}
}

// Handler answers exclusion queries for one repository. It is safe for
// concurrent use: the index is immutable and the decision cache is guarded.
type Handler struct {
	root    string
	enabled bool
	index   *gitignore.RuleIndex
	logger  logger.ILogger

	mu    sync.RWMutex
	cache map[string]bool
}

// Load walks the repository tree from rootDir and builds a query handler.
// When enabled is false, or the root is invalid, the handler is still
// returned with an empty rule index so callers need no special casing.
func (s *GitignoreScanService) Load(rootDir string, enabled bool) (*Handler, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, eris.Wrap(err, "failed to resolve repository root")
	}
	if resolved, err := filepath.EvalSymlinks(absRoot); err == nil {
		absRoot = resolved
	}

	h := &Handler{
		root:    absRoot,
		enabled: enabled,
		index:   gitignore.NewRuleIndex(nil),
		logger:  s.logger,
		cache:   make(map[string]bool),
	}

	if !enabled {
		s.logger.Infof("gitignore support disabled")
		return h, nil
	}

	info, err := os.Stat(absRoot)
	if err != nil || !info.IsDir() {
		s.logger.Warnf("invalid repository root %s, no gitignore rules loaded", rootDir)
		return h, nil
	}

	var rules []gitignore.RawRule
	seq := 0
	visited := make(map[string]bool)
	s.walk(absRoot, "", visited, &rules, &seq)

	h.index = gitignore.NewRuleIndex(rules)

	stats := h.index.Stats()
	s.logger.Infof("parsed %d gitignore pattern(s) from %d rule file(s)", stats.TotalPatterns, stats.RuleFiles)

	return h, nil
}

// walk visits directories depth-first in lexical order, parent before
// children. Symlink cycles are guarded by a visited set of resolved paths.
func (s *GitignoreScanService) walk(dir string, rel string, visited map[string]bool, rules *[]gitignore.RawRule, seq *int) {
	real := dir
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		real = resolved
	}
	if visited[real] {
		return
	}
	visited[real] = true

	rulePath := filepath.Join(dir, ruleFileName)
	data, err := os.ReadFile(rulePath)
	switch {
	case err != nil && !os.IsNotExist(err):
		s.logger.Warnf("failed to read rule file %s: %v", rulePath, err)
	case err == nil && bytes.IndexByte(data, 0) >= 0:
		s.logger.Warnf("skipping non-text rule file %s", rulePath)
	case err == nil:
		*rules = append(*rules, parseRuleLines(data, rel, seq)...)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Warnf("failed to read directory %s: %v", dir, err)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if name == ".git" {
			continue
		}

		childPath := filepath.Join(dir, name)
		isDir := entry.IsDir()
		if !isDir && entry.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(childPath); err == nil && info.IsDir() {
				isDir = true
			}
		}
		if !isDir {
			continue
		}

		childRel := name
		if rel != "" {
			childRel = rel + "/" + name
		}
		s.walk(childPath, childRel, visited, rules, seq)
	}
}

// parseRuleLines tokenizes one rule file. Lines are blank or comments when
// their first non-whitespace character says so; escape handling for leading
// "!"/"#" happens at compile time. Splitting on "\n" directly keeps lines of
// any length intact.
func parseRuleLines(data []byte, originDir string, seq *int) []gitignore.RawRule {
	var out []gitignore.RawRule

	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimRight(raw, "\r")
		line = strings.TrimLeft(line, " \t")
		line = trimTrailingSpaces(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		out = append(out, gitignore.RawRule{
			Text:      line,
			OriginDir: originDir,
			Sequence:  *seq,
		})
		*seq++
	}

	return out
}

// trimTrailingSpaces removes trailing whitespace unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			s = s[:len(s)-2] + s[len(s)-1:]
			break
		}
		s = s[:len(s)-1]
	}
	return s
}

// IsIgnored reports whether absPath should be excluded. The path must live
// under the repository root; foreign paths return ErrPathOutsideRepository.
func (h *Handler) IsIgnored(absPath string) (bool, error) {
	rel, err := h.relPath(absPath)
	if err != nil {
		return false, err
	}
	if rel == "" {
		return false, nil
	}

	if !h.enabled || h.index.Len() == 0 {
		return false, nil
	}

	h.mu.RLock()
	decision, ok := h.cache[rel]
	h.mu.RUnlock()
	if ok {
		return decision, nil
	}

	isDir := false
	if info, err := os.Stat(absPath); err == nil {
		isDir = info.IsDir()
	}

	decision = h.index.IsIgnored(rel, isDir)

	h.mu.Lock()
	h.cache[rel] = decision
	h.mu.Unlock()

	return decision, nil
}

// LegacyPatterns exports the index as flat glob strings for collaborators
// that only understand flat exclusion lists. The conversion is lossy.
func (h *Handler) LegacyPatterns() []string {
	if !h.enabled {
		return nil
	}
	return h.index.LegacyPatterns()
}

// Stats returns counters over the loaded pattern set.
func (h *Handler) Stats() gitignore.Stats {
	return h.index.Stats()
}

// Enabled reports whether gitignore support was requested at construction.
func (h *Handler) Enabled() bool {
	return h.enabled
}

// Root returns the absolute repository root the handler answers for.
func (h *Handler) Root() string {
	return h.root
}

// relPath normalizes absPath against the repository root.
func (h *Handler) relPath(absPath string) (string, error) {
	abs, err := filepath.Abs(absPath)
	if err != nil {
		return "", eris.Wrapf(ErrPathOutsideRepository, "query path %q", absPath)
	}

	rel, err := filepath.Rel(h.root, abs)
	if err != nil {
		return "", eris.Wrapf(ErrPathOutsideRepository, "query path %q", absPath)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", eris.Wrapf(ErrPathOutsideRepository, "query path %q", absPath)
	}
	if rel == "." {
		return "", nil
	}

	return filepath.ToSlash(rel), nil
}
