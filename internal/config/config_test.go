package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("WELLCHECK_HOST_OUTPUT", "")
	t.Setenv("WELLCHECK_LOG_FILE", "")
	t.Setenv("WELLCHECK_REDIRECT_TARGET", "")
	t.Setenv("WELLCHECK_UPDATE_REPO", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("WELLCHECK_HOST_OUTPUT", "stdout")
	t.Setenv("WELLCHECK_LOG_FILE", "/tmp/wellcheck.log")
	t.Setenv("WELLCHECK_REDIRECT_TARGET", "book-now")
	t.Setenv("WELLCHECK_UPDATE_REPO", "clinic/wellcheck-fork")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		HostOutput:     "stdout",
		LogFile:        "/tmp/wellcheck.log",
		RedirectTarget: "book-now",
		UpdateRepo:     "clinic/wellcheck-fork",
	}, cfg)
}
