package outputGenerate

import (
	"fmt"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/y-okubo/llmstxt/domain/repository/file"
	"github.com/y-okubo/llmstxt/domain/system/logger"
)

const fullOutputName = "llms-full.txt"
const summaryOutputName = "llms.txt"

// OutputGenerateService assembles and writes the analysis report files.
type OutputGenerateService struct {
	fileRepository file.Repository
	logger         logger.ILogger
}

func NewOutputGenerateService(fileRepository file.Repository, logger logger.ILogger) *OutputGenerateService {
	return &OutputGenerateService{
		fileRepository: fileRepository,
		logger:         logger,
	}
}

// BuildFullContent concatenates per-file summary sections into the detailed
// report body.
func (s *OutputGenerateService) BuildFullContent(summaries []string) string {
	content := "# Repository Analysis - Detailed Report\n\n"
	content += "## File Summaries\n\n"
	for _, summary := range summaries {
		content += summary
	}
	return content
}

// WriteOutputFiles writes the detailed report and the summary file. When an
// existing summary is replaced, the diff is printed so the change is visible.
func (s *OutputGenerateService) WriteOutputFiles(outputDir string, fullContent string, summaryContent string) (string, string, error) {
	if err := s.fileRepository.MkdirAll(outputDir); err != nil {
		return "", "", eris.Wrapf(err, "failed to create output directory %s", outputDir)
	}

	fullPath := filepath.Join(outputDir, fullOutputName)
	summaryPath := filepath.Join(outputDir, summaryOutputName)

	if s.fileRepository.Exists(summaryPath) {
		if old, err := s.fileRepository.Read(summaryPath); err == nil {
			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(string(old), summaryContent, false)
			fmt.Println(dmp.DiffPrettyText(diffs))
		}
	}

	if err := s.fileRepository.Write(fullPath, []byte(fullContent)); err != nil {
		return "", "", eris.Wrapf(err, "failed to write %s", fullOutputName)
	}
	s.logger.Infof("wrote detailed analysis to %s", fullPath)

	if err := s.fileRepository.Write(summaryPath, []byte(summaryContent)); err != nil {
		return "", "", eris.Wrapf(err, "failed to write %s", summaryOutputName)
	}
	s.logger.Infof("wrote summary analysis to %s", summaryPath)

	return fullPath, summaryPath, nil
}
