package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("DB_PATH")
	os.Unsetenv("MS_TENANT_ID")
	os.Unsetenv("DISPLAY_TIMEZONE")
	os.Unsetenv("GEMINI_MODEL")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, 5155, cfg.Server.Port)
	assert.Equal(t, "assistant.db", cfg.Database.Path)
	assert.Equal(t, "common", cfg.Microsoft.TenantID)
	assert.Equal(t, "Asia/Kolkata", cfg.Microsoft.Timezone)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.OTEL.Enabled)
}

func TestLoad_MicrosoftConfig(t *testing.T) {
	os.Setenv("MS_CLIENT_ID", "test-client")
	os.Setenv("MS_TENANT_ID", "test-tenant")
	defer func() {
		os.Unsetenv("MS_CLIENT_ID")
		os.Unsetenv("MS_TENANT_ID")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "test-client", cfg.Microsoft.ClientID)
	assert.Equal(t, "test-tenant", cfg.Microsoft.TenantID)
	assert.Contains(t, cfg.Microsoft.Scopes, "Calendars.ReadWrite")
}

func TestLoad_AllowedOriginsSplitting(t *testing.T) {
	os.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, http://localhost:5155")
	defer os.Unsetenv("ALLOWED_ORIGINS")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5155"}, cfg.Server.AllowedOrigins)
}
