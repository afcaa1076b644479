package projectScan

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/danwakefield/fnmatch"
	"github.com/rotisserie/eris"
	"github.com/y-okubo/llmstxt/domain/repository/config"
	"github.com/y-okubo/llmstxt/domain/service/gitignoreScan"
	"github.com/y-okubo/llmstxt/domain/system/logger"
)

// ProjectScanService collects the analyzable documents of a repository,
// applying extension filters, flat exclusion globs and gitignore rules.
type ProjectScanService struct {
	logger logger.ILogger
}

func NewProjectScanService(logger logger.ILogger) *ProjectScanService {
	return &ProjectScanService{
		logger: logger,
	}
}

type Document struct {
	Path    string
	RelPath string
	Content string
}

func (s *ProjectScanService) Scan(rootDir string, cfg *config.AnalyzeConfig, handler *gitignoreScan.Handler) ([]Document, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, eris.Wrap(err, "failed to resolve repository root")
	}
	if resolved, err := filepath.EvalSymlinks(absRoot); err == nil {
		absRoot = resolved
	}

	// Gitignore rules also feed the flat exclusion list so simple patterns
	// apply even where collaborators only understand globs.
	exclusions := append([]string{}, cfg.Exclusions...)
	exclusions = append(exclusions, handler.LegacyPatterns()...)

	var documents []Document

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warnf("failed to access %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == absRoot {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		name := d.Name()

		if d.IsDir() {
			if name == ".git" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if matchesAny(exclusions, rel) {
				s.logger.Debugf("excluding directory %s", rel)
				return filepath.SkipDir
			}
			if ignored, err := handler.IsIgnored(path); err == nil && ignored {
				s.logger.Debugf("gitignore excludes directory %s", rel)
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}
		if !hasWantedExtension(name, cfg.CodeExtensions) {
			return nil
		}
		if matchesAny(exclusions, rel) {
			s.logger.Debugf("excluding file %s", rel)
			return nil
		}
		if ignored, err := handler.IsIgnored(path); err == nil && ignored {
			s.logger.Debugf("gitignore excludes file %s", rel)
			return nil
		}

		if cfg.MaxFileSizeKB > 0 {
			info, err := d.Info()
			if err != nil {
				return nil
			}
			if sizeKB := float64(info.Size()) / 1024; sizeKB > float64(cfg.MaxFileSizeKB) {
				s.logger.Warnf("skipping file due to size limit (%.2fKB): %s", sizeKB, rel)
				return nil
			}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warnf("failed to read %s: %v", rel, err)
			return nil
		}
		if len(bytes.TrimSpace(data)) == 0 {
			s.logger.Warnf("skipping empty file: %s", rel)
			return nil
		}
		if bytes.IndexByte(data, 0) >= 0 {
			s.logger.Warnf("skipping binary file: %s", rel)
			return nil
		}

		documents = append(documents, Document{
			Path:    path,
			RelPath: rel,
			Content: string(data),
		})
		return nil
	})
	if err != nil {
		return nil, eris.Wrap(err, "failed to scan repository")
	}

	s.logger.Infof("loaded %d document(s)", len(documents))
	return documents, nil
}

func hasWantedExtension(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, wanted := range extensions {
		if ext == strings.ToLower(wanted) {
			return true
		}
	}
	return false
}

// matchesAny applies flat glob patterns segment-wise. A "**" segment spans
// any number of path segments, including none.
func matchesAny(patterns []string, rel string) bool {
	pathSegs := strings.Split(rel, "/")
	for _, pattern := range patterns {
		if segmentsMatch(strings.Split(pattern, "/"), pathSegs) {
			return true
		}
	}
	return false
}

func segmentsMatch(pattern []string, segs []string) bool {
	if len(pattern) == 0 {
		return len(segs) == 0
	}
	if pattern[0] == "**" {
		for i := 0; i <= len(segs); i++ {
			if segmentsMatch(pattern[1:], segs[i:]) {
				return true
			}
		}
		return false
	}
	if len(segs) == 0 {
		return false
	}
	if !fnmatch.Match(pattern[0], segs[0], fnmatch.FNM_PATHNAME) {
		return false
	}
	return segmentsMatch(pattern[1:], segs[1:])
}
