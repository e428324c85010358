package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "GEMINI_API_KEY", "ADMIN_PASSWORD",
		"RESUMEFORGE_LEXICON", "BCRYPT_COST", "JWT_SECRET", "JWT_EXPIRATION_HOURS",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Empty(t, cfg.AdminPassword)
	assert.Empty(t, cfg.LexiconPath)
}

func TestFromEnv_ReadsVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/resumeforge")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/resumeforge", cfg.DatabaseURL)
	assert.Equal(t, "hunter2", cfg.AdminPassword)
}

func TestFromEnv_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-number")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestLoadFile_OverlaysEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://env/db")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9999}`), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	// File value wins where set, env fills the rest.
	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
}

func TestLoadFile_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadFile_EmptyPath(t *testing.T) {
	_, err := LoadFile("")
	assert.Error(t, err)
}

func TestValidate_PortRange(t *testing.T) {
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.NoError(t, (&Config{Port: 8080}).Validate())
}

func TestValidate_MissingLexiconFile(t *testing.T) {
	cfg := &Config{Port: 8080, LexiconPath: filepath.Join(t.TempDir(), "nope.json")}
	assert.Error(t, cfg.Validate())
}

func TestNewPasswordConfig_Default(t *testing.T) {
	clearEnv(t)

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestNewPasswordConfig_OutOfRange(t *testing.T) {
	clearEnv(t)

	for _, cost := range []string{"9", "15", "abc"} {
		t.Setenv("BCRYPT_COST", cost)
		_, err := NewPasswordConfig()
		assert.Error(t, err, "cost %q", cost)
	}
}

func TestPasswordHashAndVerify(t *testing.T) {
	clearEnv(t)
	// The minimum allowed cost keeps this test fast.
	t.Setenv("BCRYPT_COST", "10")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)

	hash, err := cfg.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, cfg.VerifyPassword("correct horse battery staple", hash))
	assert.False(t, cfg.VerifyPassword("wrong", hash))
}

func TestNewJWTConfig_RequiresSecret(t *testing.T) {
	clearEnv(t)

	_, err := NewJWTConfig()
	assert.Error(t, err)
}

func TestNewJWTConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfig_InvalidExpiration(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")

	for _, hours := range []string{"0", "-5", "soon"} {
		t.Setenv("JWT_EXPIRATION_HOURS", hours)
		_, err := NewJWTConfig()
		assert.Error(t, err, "hours %q", hours)
	}
}
