package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试进程的工作目录下没有 config.yaml，走默认值分支
func TestLoadConfigOnce(t *testing.T) {
	config1 := LoadConfig()
	config2 := LoadConfig()

	require.NotNil(t, config1)
	assert.Same(t, config1, config2)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "https://localhost:4999", cfg.Server.URL)
	assert.Equal(t, "suriya", cfg.Server.UserName)
	assert.True(t, cfg.Media.UseVLC)
	assert.Equal(t, "json", cfg.Media.Format)
}
