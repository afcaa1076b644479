package configFindService

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/y-okubo/llmstxt/domain/repository/file"
	"github.com/y-okubo/llmstxt/testUtil"
	"go.uber.org/mock/gomock"
)

func TestConfigFindService_FindConfig(t *testing.T) {
	t.Run("カレントディレクトリのllmstxt.ymlが見つかること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("llmstxt.yml", []byte("lang: en\n"))

		fileRepo := file.NewMockRepository(mockCtrl)
		fileRepo.EXPECT().Getwd().Return(space.Dir, nil).Times(1)

		service := NewConfigFindService(fileRepo)
		configPath, err := service.FindConfig()
		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(space.Dir, "llmstxt.yml"), configPath)
		assert.Equal(t, space.Dir, service.GetProjectRoot(configPath))
	})

	t.Run("親ディレクトリまで遡って見つかること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("llmstxt.yaml", []byte("lang: en\n"))
		space.MkDir("sub/deep")

		fileRepo := file.NewMockRepository(mockCtrl)
		fileRepo.EXPECT().Getwd().Return(filepath.Join(space.Dir, "sub", "deep"), nil).Times(1)

		service := NewConfigFindService(fileRepo)
		configPath, err := service.FindConfig()
		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(space.Dir, "llmstxt.yaml"), configPath)
	})

	t.Run("見つからない場合はErrConfigNotFoundが返ること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.MkDir("empty")

		fileRepo := file.NewMockRepository(mockCtrl)
		fileRepo.EXPECT().Getwd().Return(filepath.Join(space.Dir, "empty"), nil).Times(1)

		service := NewConfigFindService(fileRepo)
		_, err := service.FindConfig()
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrConfigNotFound))
	})
}
