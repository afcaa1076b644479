//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package chat

// Chat is one conversation with an LLM. Implementations keep the message
// history so follow-up prompts carry context.
type Chat interface {
	Send(prompt string, model string) (SendResult, error)
}

type Message struct {
	Role    string
	Content string
}

type SendResult struct {
	Content      string
	FinishReason string
}

type ChatWithHistory interface {
	Chat
	GetHistory() []Message
}
