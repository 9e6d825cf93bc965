package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is read once at startup and never mutated afterwards. Every component
// receives it (or the fields it needs) through the container instead of touching
// the environment on its own.
type Config struct {
	ApiBaseUrl     string
	RequestTimeout time.Duration

	BotToken string
	Debug    bool
	Owners   []int64

	SqlitePath string
}

func get(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func Load() *Config {
	cfg := &Config{
		ApiBaseUrl: strings.TrimRight(get("API_BASE_URL", "http://localhost:8080"), "/"),
		BotToken:   os.Getenv("BOT_TOKEN"),
		Debug:      strings.EqualFold(get("DEBUG", "false"), "true"),
		SqlitePath: get("SQLITE_PATH", "./sqlite3.db"),
	}

	timeoutSeconds, err := strconv.Atoi(get("REQUEST_TIMEOUT_SECONDS", "30"))
	if err != nil || timeoutSeconds <= 0 {
		timeoutSeconds = 30
	}
	cfg.RequestTimeout = time.Duration(timeoutSeconds) * time.Second

	for _, owner := range strings.Split(os.Getenv("OWNERS"), ",") {
		trimmed := strings.TrimSpace(owner)
		if trimmed == "" {
			continue
		}
		chatId, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			continue
		}
		cfg.Owners = append(cfg.Owners, chatId)
	}

	return cfg
}

func (cfg *Config) IsOwner(chatId int64) bool {
	for _, owner := range cfg.Owners {
		if owner == chatId {
			return true
		}
	}
	return false
}
