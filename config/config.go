package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// Settings is the environment shared by the FoodieFind services.
type Settings struct {
	HTTPAddr         string `env:"HTTP_ADDR" envDefault:":8080"`
	ActivityHTTPAddr string `env:"ACTIVITY_HTTP_ADDR" envDefault:":8083"`
	StorageBackend   string `env:"STORAGE_BACKEND" envDefault:"redis"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME" envDefault:"foodiefind"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`

	RedisHost string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort string `env:"REDIS_PORT" envDefault:"6379"`

	KafkaBroker    string `env:"KAFKA_BROKER"`
	MutationsTopic string `env:"MUTATIONS_TOPIC" envDefault:"store-mutations"`

	SaveDebounce   time.Duration `env:"SAVE_DEBOUNCE" envDefault:"1s"`
	BackupInterval time.Duration `env:"BACKUP_INTERVAL" envDefault:"30s"`
	StorageTimeout time.Duration `env:"STORAGE_TIMEOUT" envDefault:"2s"`

	QuotesURL     string `env:"QUOTES_URL" envDefault:"https://api.quotable.io/quotes"`
	WeatherURL    string `env:"WEATHER_URL" envDefault:"https://api.openweathermap.org/data/2.5/weather"`
	WeatherCity   string `env:"WEATHER_CITY" envDefault:"Melbourne,AU"`
	WeatherAPIKey string `env:"WEATHER_API_KEY" envDefault:"demo"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	EnrichOnStart bool   `env:"ENRICH_ON_START" envDefault:"true"`

	GatewayAddr       string        `env:"GATEWAY_ADDR" envDefault:":8000"`
	ReservationSvcURL string        `env:"RESERVATION_SVC_URL" envDefault:"http://localhost:8080"`
	ActivitySvcURL    string        `env:"ACTIVITY_SVC_URL" envDefault:"http://localhost:8083"`
	FrontendDir       string        `env:"FRONTEND_DIR" envDefault:"./frontend"`
	ProxyTimeout      time.Duration `env:"PROXY_TIMEOUT" envDefault:"30s"`
}

// Load parses Settings from the process environment.
func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// MustLoad reads an optional .env file, then behaves like Load but exits
// the process on a malformed environment. Variables already set win over
// the file.
func MustLoad() Settings {
	_ = godotenv.Load()

	s, err := Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	return s
}

func (s Settings) PostgresDSN() string {
	return "host=" + s.DBHost + " port=" + s.DBPort + " user=" + s.DBUser +
		" password=" + s.DBPassword + " dbname=" + s.DBName + " sslmode=disable"
}

func (s Settings) RedisAddr() string {
	return s.RedisHost + ":" + s.RedisPort
}

func MustInitPostgres(s Settings) *sql.DB {
	db, err := sql.Open("postgres", s.PostgresDSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(s Settings) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: s.RedisAddr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(s Settings, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{s.KafkaBroker},
		Topic:   s.MutationsTopic,
		GroupID: groupID,
	})
}

// NewKafkaWriter returns nil when no broker is configured; publishing is optional.
func NewKafkaWriter(s Settings) *kafka.Writer {
	if s.KafkaBroker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(s.KafkaBroker),
		Topic:    s.MutationsTopic,
		Balancer: &kafka.LeastBytes{},
		Async:    true,
	}
}
