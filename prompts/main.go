package prompts

import (
	_ "embed"
	"strings"
	"text/template"

	"github.com/y-okubo/llmstxt/domain/model/kinds"
)

//go:embed markdown.md.tmpl
var markdownTmpl string

//go:embed python.md.tmpl
var pythonTmpl string

//go:embed jsts.md.tmpl
var jstsTmpl string

//go:embed generic.md.tmpl
var genericTmpl string

//go:embed repository.md.tmpl
var repositoryTmpl string

type PromptParam struct {
	Text string
}

// BuildSummaryPrompt renders the per-file summary prompt for the given
// file kind.
func BuildSummaryPrompt(kind kinds.KindName, text string) (string, error) {
	var tmplText string
	switch kind {
	case kinds.KindNameMarkdown:
		tmplText = markdownTmpl
	case kinds.KindNamePython:
		tmplText = pythonTmpl
	case kinds.KindNameJSTS:
		tmplText = jstsTmpl
	default:
		tmplText = genericTmpl
	}
	return render(tmplText, PromptParam{Text: text})
}

// BuildRepositorySummaryPrompt renders the whole-repository summary prompt
// over the concatenated per-file summaries.
func BuildRepositorySummaryPrompt(text string) (string, error) {
	return render(repositoryTmpl, PromptParam{Text: text})
}

func render(tmplText string, param PromptParam) (string, error) {
	tmpl, err := template.New("prompt").Parse(tmplText)
	if err != nil {
		return "", err
	}

	var output strings.Builder
	if err := tmpl.Execute(&output, param); err != nil {
		return "", err
	}

	return output.String(), nil
}
