//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package claude

// Client abstracts communication with the Anthropic API.
type Client interface {
	// SendMessage sends a conversation and returns the generated reply.
	// Model names are not validated here.
	SendMessage(messages []Message, model string) (GenerationResult, error)
}

// Message is one turn of a Claude conversation.
type Message struct {
	Role    string
	Content string
}

// ModelName enumerates the Anthropic models this tool knows about.
type ModelName string

const (
	ModelClaude35Sonnet ModelName = "claude-3-5-sonnet-20240620"
	ModelClaude3Opus    ModelName = "claude-3-opus-20240229"
	ModelClaude3Haiku   ModelName = "claude-3-haiku-20240307"
)

func NewMessage(role, content string) Message {
	return Message{
		Role:    role,
		Content: content,
	}
}

// GetAvailableModels returns every known model name.
func GetAvailableModels() []ModelName {
	return []ModelName{
		ModelClaude35Sonnet,
		ModelClaude3Opus,
		ModelClaude3Haiku,
	}
}

// ValidateModel reports whether the given model name is known.
func ValidateModel(model string) bool {
	for _, validModel := range GetAvailableModels() {
		if string(validModel) == model {
			return true
		}
	}
	return false
}

// GenerationResult carries the generated text and why generation stopped.
type GenerationResult struct {
	Content           string
	TerminationReason string
}
