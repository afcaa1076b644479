package kinds

import (
	"path/filepath"
	"strings"
)

// KindName classifies a source file for prompt selection.
type KindName string

const KindNameMarkdown KindName = "markdown"
const KindNamePython KindName = "python"
const KindNameJSTS KindName = "js-ts"
const KindNameGeneric KindName = "generic"

type Kind struct {
	Name        KindName
	Description string
}

var kinds map[KindName]Kind

func init() {
	kinds = map[KindName]Kind{
		KindNameMarkdown: {
			Name:        KindNameMarkdown,
			Description: "Markdown documentation",
		},
		KindNamePython: {
			Name:        KindNamePython,
			Description: "Python source code",
		},
		KindNameJSTS: {
			Name:        KindNameJSTS,
			Description: "JavaScript or TypeScript source code",
		},
		KindNameGeneric: {
			Name:        KindNameGeneric,
			Description: "Source code in another language",
		},
	}
}

func GetKind(name KindName) (Kind, bool) {
	kind, ok := kinds[name]
	return kind, ok
}

// KindOf classifies a file path by extension.
func KindOf(path string) KindName {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md":
		return KindNameMarkdown
	case ".py":
		return KindNamePython
	case ".js", ".jsx", ".ts", ".tsx":
		return KindNameJSTS
	default:
		return KindNameGeneric
	}
}
