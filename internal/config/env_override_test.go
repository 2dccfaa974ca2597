package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides_LLM(t *testing.T) {
	t.Run("GEMINI_API_KEY selects gemini", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "gem-key")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "gem-key", cfg.LLM.APIKey)
		assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	})

	t.Run("Precedence: OPENAI overrides GEMINI", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GEMINI_API_KEY", "gem-key")
		t.Setenv("OPENAI_API_KEY", "oa-key")

		cfg := &Config{}
		cfg.applyEnvOverrides()

		assert.Equal(t, "oa-key", cfg.LLM.APIKey)
		assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	})

	t.Run("explicit provider wins", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("OPENAI_API_KEY", "oa-key")
		t.Setenv("DIGEST_LLM_PROVIDER", "Gemini")
		t.Setenv("DIGEST_LLM_MODEL", "gemini-2.5-pro")

		cfg := &Config{}
		cfg.applyEnvOverrides()

		assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
		assert.Equal(t, "gemini-2.5-pro", cfg.LLM.Model)
	})
}

func TestEnvOverrides_SheetsAndMail(t *testing.T) {
	clearEnv(t)
	t.Setenv("SPREADSHEET_ID", " sheet-42 ")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/secrets/sa.json")
	t.Setenv("EMAIL_USER", "digest@example.com")
	t.Setenv("EMAIL_APP_PASSWORD", "app-pass")
	t.Setenv("TARGET_EMAIL", "warden@example.com")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("DIGEST_TIMEZONE", "Asia/Kolkata")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "sheet-42", cfg.Sheets.SpreadsheetID)
	assert.Equal(t, "/secrets/sa.json", cfg.Sheets.CredentialsFile)
	assert.Equal(t, "digest@example.com", cfg.Mail.Username)
	assert.Equal(t, "app-pass", cfg.Mail.Password)
	assert.Equal(t, "warden@example.com", cfg.Mail.To)
	assert.Equal(t, "smtp.example.com", cfg.Mail.Host)
	assert.Equal(t, 2525, cfg.Mail.Port)
	assert.Equal(t, "Asia/Kolkata", cfg.Run.Timezone)
}

func TestEnvOverrides_CredentialsPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/secrets/adc.json")
	t.Setenv("GOOGLE_CREDENTIALS_FILE", "/secrets/digest.json")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "/secrets/digest.json", cfg.Sheets.CredentialsFile)
}

func TestEnvOverrides_IgnoresBadPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMTP_PORT", "smtp")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, 587, cfg.Mail.Port)
}

func TestEnvOverrides_LogTrace(t *testing.T) {
	clearEnv(t)
	t.Setenv("DIGEST_LOG_TRACE", "true")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()
	assert.True(t, cfg.Logging.Trace)

	t.Setenv("DIGEST_LOG_TRACE", "not-a-bool")
	cfg = DefaultConfig()
	cfg.applyEnvOverrides()
	assert.False(t, cfg.Logging.Trace)
}
