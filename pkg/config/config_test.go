package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageFile, cfg.StorageBackend)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, ClassifierStub, cfg.ClassifierBackend)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ENV", "production")
	t.Setenv("CLASSIFIER_TIMEOUT_MS", "500")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 500, cfg.ClassifierTimeoutMS)
}

func TestValidate_UnknownStorageBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "postgres")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_UnknownClassifier(t *testing.T) {
	t.Setenv("CLASSIFIER", "oracle")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_Neo4jRequiresURI(t *testing.T) {
	cfg := &Config{
		StorageBackend:      StorageNeo4j,
		ClassifierBackend:   ClassifierStub,
		ClassifierTimeoutMS: 1000,
	}
	assert.Error(t, cfg.Validate())
}
