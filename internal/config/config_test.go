package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func resetFlagsAndArgs() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	os.Args = []string{"cmd"}
}

func setEnv(t *testing.T) {
	t.Setenv("RUN_ADDRESS", "localhost:9000")
	t.Setenv("DATA_DIR", "/tmp/backoffice-data")
	t.Setenv("LOG_LVL", "debug")
	t.Setenv("LAPSE_CHECK_INTERVAL", "30s")
}

func TestNew(t *testing.T) {
	setEnv(t)
	os.Args = []string{
		"cmd",
		"-a", "localhost:8080",
		"-d", "./data",
		"-l", "error",
		"-i", "2m",
	}
	cfg := New()

	assert.Equal(t, "localhost:8080", cfg.Address)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "error", cfg.LogLvl)
	assert.Equal(t, 2*time.Minute, cfg.LapseInterval)
}

func TestNewFromEnv(t *testing.T) {
	resetFlagsAndArgs()
	setEnv(t)

	cfg := New()

	assert.Equal(t, "localhost:9000", cfg.Address)
	assert.Equal(t, "/tmp/backoffice-data", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLvl)
	assert.Equal(t, 30*time.Second, cfg.LapseInterval)
}
