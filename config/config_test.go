package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOADING_DELAY_MS", "SESSION_TTL_MINUTES", "SESSION_SWEEP_SECONDS", "UICHECK_DRIVER", "UICHECK_S3_BUCKET", "UICHECK_BASE_URL"} {
		t.Setenv(key, "")
	}

	LoadConfig()

	assert.Equal(t, "8080", Port)
	assert.Equal(t, 2*time.Second, LoadingDelay)
	assert.Equal(t, 30*time.Minute, SessionTTL)
	assert.Equal(t, time.Minute, SessionSweepInterval)
	assert.Equal(t, "chromedp", UICheckDriver)
	assert.Equal(t, "http://localhost:8080", UICheckBaseURL)
	assert.Empty(t, AWSBucketName)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOADING_DELAY_MS", "0")
	t.Setenv("SESSION_TTL_MINUTES", "5")
	t.Setenv("SESSION_SWEEP_SECONDS", "10")
	t.Setenv("UICHECK_BASE_URL", "")

	LoadConfig()

	assert.Equal(t, "9090", Port)
	assert.Zero(t, LoadingDelay)
	assert.Equal(t, 5*time.Minute, SessionTTL)
	assert.Equal(t, 10*time.Second, SessionSweepInterval)
	assert.Equal(t, "http://localhost:9090", UICheckBaseURL)
}

func TestLoadConfigInvalidNumberFallsBack(t *testing.T) {
	t.Setenv("LOADING_DELAY_MS", "soon")
	t.Setenv("SESSION_TTL_MINUTES", "-3")

	LoadConfig()

	assert.Equal(t, 2*time.Second, LoadingDelay)
	assert.Equal(t, 30*time.Minute, SessionTTL)
}
