package config

import (
	"os"
	"strconv"
)

type Config struct {
	Env         string
	HTTPPort    string
	StoreDriver string
	MongoURI    string
	MongoDB     string
	RateRPS     int
}

// Load reads the environment once at process start.
func Load() Config {
	return Config{
		Env:         get("APP_ENV", "dev"),
		HTTPPort:    get("PORT", "3000"),
		StoreDriver: get("STORE_DRIVER", "memory"),
		MongoURI:    get("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     get("MONGO_DB", "exercise_tracker"),
		RateRPS:     getInt("RATE_RPS", 100),
	}
}

func get(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
