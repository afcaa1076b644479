package repoAcquire

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/y-okubo/llmstxt/infrastructure/system/logger"
	"github.com/y-okubo/llmstxt/testUtil"
)

func TestRepoAcquireService_Acquire(t *testing.T) {
	t.Run("ローカルリポジトリがそのまま使われること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("main.py", []byte("print('hi')\n"))

		service := NewRepoAcquireService(logger.NewNop())
		acquisition, err := service.Acquire(space.Dir)
		assert.NoError(t, err)
		assert.Equal(t, space.Dir, acquisition.Path)

		// Cleanup must not remove a local repository.
		acquisition.Cleanup()
		_, err = os.Stat(space.Dir)
		assert.NoError(t, err)
	})

	t.Run("存在しないパスがエラーになること", func(t *testing.T) {
		service := NewRepoAcquireService(logger.NewNop())
		_, err := service.Acquire("/definitely/missing/repository")
		assert.Error(t, err)
	})

	t.Run("ファイルを指定するとエラーになること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("main.py", []byte("print('hi')\n"))

		service := NewRepoAcquireService(logger.NewNop())
		_, err := service.Acquire(space.Dir + "/main.py")
		assert.Error(t, err)
	})

	t.Run("空のディレクトリがエラーになること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		service := NewRepoAcquireService(logger.NewNop())
		_, err := service.Acquire(space.Dir)
		assert.Error(t, err)
	})
}
