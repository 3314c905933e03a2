package config

import (
	"os"
	"testing"

	"highcard/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("HC_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HC_ROUNDS", "20")
	defer clear2()

	a := assert.New(t)
	assert.NoError(t, Load())
	cfg := Instance()
	a.Equal(20, cfg.Rounds)
	a.True(cfg.Quiet)
	a.Equal("debug", cfg.Log.Level)

	// ensure that it's only loaded once
	_ = os.Setenv("HC_ROUNDS", "30")
	// ensure we aren't using a pointer
	cfg.Rounds = -1
	cfg = Instance()
	a.Equal(20, cfg.Rounds)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("HC_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, 1, cfg.Rounds)
	assert.False(t, cfg.Quiet)
	assert.Equal(t, "", cfg.Log.Level)
}
