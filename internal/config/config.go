package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	StoreMongo = "mongo"
	StoreMySQL = "mysql"
	StoreRedis = "redis"
)

type Config struct {
	HTTP   HTTPConfig
	GRPC   GRPCConfig
	Store  StoreConfig
	Client ClientConfig
	Log    LogConfig
}

type HTTPConfig struct {
	Addr string
}

type GRPCConfig struct {
	Addr string
}

type StoreConfig struct {
	Driver        string
	MongoURI      string
	MongoDatabase string
	MySQLDSN      string
	RedisAddr     string
}

// ClientConfig is read by the storefront; APIURL is the server origin
// without the /api suffix.
type ClientConfig struct {
	APIURL string
}

type LogConfig struct {
	Level logrus.Level
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	driver := strings.ToLower(getEnv("STORE_DRIVER", StoreMongo))
	switch driver {
	case StoreMongo, StoreMySQL, StoreRedis:
	default:
		return nil, fmt.Errorf("STORE_DRIVER: unknown driver %q", driver)
	}

	return &Config{
		HTTP: HTTPConfig{
			Addr: ":" + getEnv("PORT", "4000"),
		},
		GRPC: GRPCConfig{
			Addr: ":" + getEnv("GRPC_PORT", "50051"),
		},
		Store: StoreConfig{
			Driver:        driver,
			MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			MongoDatabase: getEnv("MONGO_DATABASE", "food"),
			MySQLDSN:      getEnv("MYSQL_DSN", "root:root@tcp(localhost:3306)/food?parseTime=true"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Client: ClientConfig{
			APIURL: strings.TrimSuffix(getEnv("API_URL", "http://localhost:4000"), "/"),
		},
		Log: LogConfig{
			Level: level,
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
