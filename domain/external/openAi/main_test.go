package openAi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateModel(t *testing.T) {
	t.Run("既知のモデル名が受理されること", func(t *testing.T) {
		for _, model := range GetAvailableModels() {
			assert.True(t, ValidateModel(string(model)), string(model))
		}
	})

	t.Run("未知のモデル名が拒否されること", func(t *testing.T) {
		assert.False(t, ValidateModel("gpt-99-ultra"))
		assert.False(t, ValidateModel(""))
	})
}

func TestNewMessage(t *testing.T) {
	msg := NewMessage("user", "hello")
	assert.Equal(t, "user", msg.Role)
	assert.Equal(t, "hello", msg.Content)
}
