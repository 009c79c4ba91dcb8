package tutor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PYDOJO_TUTOR_PROVIDER", "openai")
	t.Setenv("PYDOJO_OPENAI_API_KEY", "sk-test")
	t.Setenv("PYDOJO_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, "claude-haiku", cfg.Anthropic.Model, "defaults survive for unset vars")
}

func TestDiscoverConfigPrecedence(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("ANTHROPIC_API_KEY", "a-key")

	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "g-key", cfg.Gemini.APIKey)
}

func TestDiscoverConfigNoneSet(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, ok := DiscoverConfig()
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		cfg     Config
		wantErr bool
	}{
		"anthropic with key": {
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}},
			wantErr: false,
		},
		"anthropic missing key": {
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		"mock needs no key": {
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		"unknown provider": {
			cfg:     Config{Provider: "cohere"},
			wantErr: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveModel(t *testing.T) {
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-flash", geminiModels))
	assert.Equal(t, "my-custom-model", resolveModel("my-custom-model", geminiModels))
}
