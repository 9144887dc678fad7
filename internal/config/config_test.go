package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PERPLEXITY_API_KEY", "pplx-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, ProviderPerplexity, cfg.AI.Provider)
	assert.Equal(t, "pplx-test", cfg.Perplexity.APIKey)
	assert.Equal(t, "https://api.perplexity.ai", cfg.Perplexity.BaseURL)
	assert.Equal(t, "sonar", cfg.Perplexity.Model)
	assert.Equal(t, time.Duration(0), cfg.Upstream.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.OTP.TTL)
	assert.Equal(t, DeliveryLog, cfg.OTP.Delivery)
	assert.False(t, cfg.SearchCache.Enabled)
	assert.InDelta(t, 0.85, cfg.SearchCache.Threshold, 0.0001)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, uint64(768), cfg.Gemini.EmbeddingDim)
	assert.False(t, cfg.GeminiRequired())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PERPLEXITY_API_KEY", "pplx-test")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("UPSTREAM_TIMEOUT", "45s")
	t.Setenv("OTP_TTL", "2m")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SEARCH_CACHE_ENABLED", "true")
	t.Setenv("SEARCH_CACHE_THRESHOLD", "0.9")
	t.Setenv("GEMINI_PROJECT", "studenthub-prod")
	t.Setenv("GEMINI_EMBEDDING_MODEL", "gemini-embedding-001")
	t.Setenv("GEMINI_EMBEDDING_DIM", "3072")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 45*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 2*time.Minute, cfg.OTP.TTL)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.True(t, cfg.SearchCache.Enabled)
	assert.InDelta(t, 0.9, cfg.SearchCache.Threshold, 0.0001)
	assert.Equal(t, "studenthub-prod", cfg.Gemini.Project)
	assert.Equal(t, "gemini-embedding-001", cfg.Gemini.EmbeddingModel)
	assert.Equal(t, uint64(3072), cfg.Gemini.EmbeddingDim)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.True(t, cfg.GeminiRequired())
}

func TestLoad_MissingPerplexityKey(t *testing.T) {
	t.Setenv("PERPLEXITY_API_KEY", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingPerplexityKey)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			AI:         AIConfig{Provider: ProviderPerplexity},
			Perplexity: PerplexityConfig{APIKey: "k"},
			OTP:        OTPConfig{TTL: time.Minute, Delivery: DeliveryLog},
			Database:   DatabaseConfig{URL: "postgres://localhost/db"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.AI.Provider = "openai" },
			wantErr: ErrUnknownProvider,
		},
		{
			name: "gemini without credentials",
			mutate: func(c *Config) {
				c.AI.Provider = ProviderGemini
			},
			wantErr: ErrMissingGemini,
		},
		{
			name: "gemini with api key",
			mutate: func(c *Config) {
				c.AI.Provider = ProviderGemini
				c.Gemini.APIKey = "g"
			},
		},
		{
			name:    "search cache needs gemini",
			mutate:  func(c *Config) { c.SearchCache.Enabled = true },
			wantErr: ErrMissingGemini,
		},
		{
			name: "search cache without embedding dim",
			mutate: func(c *Config) {
				c.SearchCache.Enabled = true
				c.Gemini.APIKey = "g"
			},
			wantErr: ErrInvalidEmbeddingDim,
		},
		{
			name: "search cache with embedding dim",
			mutate: func(c *Config) {
				c.SearchCache.Enabled = true
				c.Gemini.APIKey = "g"
				c.Gemini.EmbeddingDim = 768
			},
		},
		{
			name:    "sns without region",
			mutate:  func(c *Config) { c.OTP.Delivery = DeliverySNS },
			wantErr: ErrMissingRegion,
		},
		{
			name: "sns with region",
			mutate: func(c *Config) {
				c.OTP.Delivery = DeliverySNS
				c.AWS.Region = "ap-south-1"
			},
		},
		{
			name:    "unknown delivery",
			mutate:  func(c *Config) { c.OTP.Delivery = "email" },
			wantErr: ErrUnknownDelivery,
		},
		{
			name:    "zero ttl",
			mutate:  func(c *Config) { c.OTP.TTL = 0 },
			wantErr: ErrInvalidOTPTTL,
		},
		{
			name:    "missing database url",
			mutate:  func(c *Config) { c.Database.URL = "" },
			wantErr: ErrMissingDatabaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
