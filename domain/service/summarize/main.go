package summarize

import (
	"fmt"

	"github.com/y-okubo/llmstxt/domain/model/chat"
	"github.com/y-okubo/llmstxt/domain/model/kinds"
	"github.com/y-okubo/llmstxt/domain/service/projectScan"
	"github.com/y-okubo/llmstxt/domain/system/logger"
	"github.com/y-okubo/llmstxt/prompts"
)

// SummarizeService turns documents into Markdown summary sections via the
// configured chat driver.
type SummarizeService struct {
	chat   chat.Chat
	logger logger.ILogger
}

func NewSummarizeService(chat chat.Chat, logger logger.ILogger) *SummarizeService {
	return &SummarizeService{
		chat:   chat,
		logger: logger,
	}
}

// SummarizeFile returns a formatted summary section for one document.
// Failures degrade into an error marker section so one bad file does not
// abort the whole analysis.
func (s *SummarizeService) SummarizeFile(doc projectScan.Document, model string) string {
	s.logger.Infof("summarizing file: %s", doc.RelPath)

	kind := kinds.KindOf(doc.RelPath)
	prompt, err := prompts.BuildSummaryPrompt(kind, doc.Content)
	if err != nil {
		s.logger.Errorf("failed to build prompt for %s: %v", doc.RelPath, err)
		return errorSection(doc.RelPath, err)
	}

	result, err := s.chat.Send(prompt, model)
	if err != nil {
		s.logger.Errorf("failed to summarize %s: %v", doc.RelPath, err)
		return errorSection(doc.RelPath, err)
	}

	return fmt.Sprintf("### Summary of %s\n\n%s\n\n", doc.RelPath, result.Content)
}

// SummarizeRepository generates the whole-repository summary from the full
// report content, truncated to maxChars before prompting.
func (s *SummarizeService) SummarizeRepository(fullContent string, maxChars int, model string) string {
	s.logger.Infof("generating overall repository summary")

	if maxChars > 0 && len(fullContent) > maxChars {
		s.logger.Infof("truncating content from %d to %d characters", len(fullContent), maxChars)
		fullContent = fullContent[:maxChars]
	}

	prompt, err := prompts.BuildRepositorySummaryPrompt(fullContent)
	if err != nil {
		s.logger.Errorf("failed to build repository summary prompt: %v", err)
		return "# Repository Summary\n\n*Error generating summary*\n"
	}

	result, err := s.chat.Send(prompt, model)
	if err != nil {
		s.logger.Errorf("failed to generate repository summary: %v", err)
		return "# Repository Summary\n\n*Error generating summary*\n"
	}

	return fmt.Sprintf("# Repository Summary\n\n%s\n", result.Content)
}

func errorSection(relPath string, err error) string {
	return fmt.Sprintf("### Summary of %s\n\n*Error generating summary: %s*\n\n", relPath, err)
}
