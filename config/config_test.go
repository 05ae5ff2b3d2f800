package config_test

import (
	"testing"
	"time"

	"foodiefind/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", s.HTTPAddr)
	assert.Equal(t, "redis", s.StorageBackend)
	assert.Equal(t, "localhost:6379", s.RedisAddr())
	assert.Equal(t, time.Second, s.SaveDebounce)
	assert.Equal(t, 30*time.Second, s.BackupInterval)
	assert.True(t, s.EnrichOnStart)
	assert.Nil(t, config.NewKafkaWriter(s))
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("SAVE_DEBOUNCE", "250ms")
	t.Setenv("KAFKA_BROKER", "kafka:9092")
	t.Setenv("ENRICH_ON_START", "false")

	s, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", s.StorageBackend)
	assert.Equal(t, "host=db port=5432 user=postgres password=secret dbname=foodiefind sslmode=disable", s.PostgresDSN())
	assert.Equal(t, 250*time.Millisecond, s.SaveDebounce)
	assert.False(t, s.EnrichOnStart)

	w := config.NewKafkaWriter(s)
	require.NotNil(t, w)
	assert.Equal(t, "store-mutations", w.Topic)
}

func TestLoad_Malformed(t *testing.T) {
	t.Setenv("BACKUP_INTERVAL", "soon")

	_, err := config.Load()
	assert.Error(t, err)
}
