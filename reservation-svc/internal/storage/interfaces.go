package storage

import (
	"foodiefind/reservation-svc/internal/persistence"
	"foodiefind/reservation-svc/internal/service"
)

var (
	_ persistence.KeyValueStore = (*MemoryKV)(nil)
	_ persistence.KeyValueStore = (*RedisKV)(nil)
	_ persistence.KeyValueStore = (*PostgresKV)(nil)
	_ service.MutationPublisher = (*KafkaPublisher)(nil)
)
