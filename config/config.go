package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"go.uber.org/zap"
)

// Default dataset parameters, used when the environment does not
// override them. The seed pins the demo dataset so every session shows
// the same cases.
const (
	DefaultDatasetSeed  = 20250930
	DefaultDatasetCount = 32
)

// Config holds the project config values
type Config struct {
	BaseUrl      string
	Port         string
	DatasetSeed  uint32
	DatasetCount int
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		BaseUrl:      os.Getenv("BASE_URL"),
		Port:         os.Getenv("PORT"),
		DatasetSeed:  envUint32("DATASET_SEED", DefaultDatasetSeed),
		DatasetCount: envInt("DATASET_COUNT", DefaultDatasetCount),
	}

}

func envUint32(key string, fallback uint32) uint32 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		zap.S().With(err).Warnf("invalid %s, using default", key)
		return fallback
	}
	return uint32(n)
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		zap.S().With(err).Warnf("invalid %s, using default", key)
		return fallback
	}
	return n
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
}
