//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package openAi

// Client abstracts communication with the OpenAI API.
type Client interface {
	// SendMessage sends a conversation and returns the generated reply.
	// Model names are not validated here. Non-200 responses surface the
	// whole response body in the error message.
	SendMessage(messages []Message, model string) (GenerationResult, error)
}

// Message is one turn of an OpenAI conversation.
type Message struct {
	Role    string
	Content string
}

// ModelName enumerates the OpenAI models this tool knows about.
type ModelName string

const (
	ModelGPT4o     ModelName = "gpt-4o"
	ModelGPT4oMini ModelName = "gpt-4o-mini"
	ModelGPT4Turbo ModelName = "gpt-4-turbo"
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
		ModelGPT4o,
		ModelGPT4oMini,
		ModelGPT4Turbo,
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
