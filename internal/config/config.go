package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	APIBaseURL string

	TerminalID   string
	TerminalName string
	DisplayName  string
	TerminalType string
	AppVersion   string

	MainHost    string
	SharedPath  string
	DatabaseURL string
	ProbeAddr   string

	DataDir   string
	CachePath string

	StatusListen string
	Locale       string

	ConnectivityInterval time.Duration
	DiscoveryInterval    time.Duration
	HeartbeatInterval    time.Duration
}

func Load() Config {
	cfg := Config{
		APIBaseURL:           getEnv("CEYBYTE_API_URL", "http://127.0.0.1:8000"),
		TerminalID:           strings.TrimSpace(os.Getenv("TERMINAL_ID")),
		TerminalName:         getEnv("TERMINAL_NAME", defaultTerminalName()),
		DisplayName:          os.Getenv("TERMINAL_DISPLAY_NAME"),
		TerminalType:         getEnv("TERMINAL_TYPE", "client"),
		AppVersion:           getEnv("APP_VERSION", "1.0.0"),
		MainHost:             os.Getenv("MAIN_HOST"),
		SharedPath:           os.Getenv("SHARED_PATH"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		ProbeAddr:            getEnv("NETWORK_PROBE_ADDR", "8.8.8.8:53"),
		DataDir:              getEnv("DATA_DIR", "./data"),
		StatusListen:         getEnv("STATUS_LISTEN", "127.0.0.1:9180"),
		Locale:               getEnv("LOCALE", "en"),
		ConnectivityInterval: getSeconds("CONNECTIVITY_SECONDS", 30),
		DiscoveryInterval:    getSeconds("DISCOVERY_SECONDS", 60),
		HeartbeatInterval:    getSeconds("HEARTBEAT_SECONDS", 30),
	}
	cfg.CachePath = getEnv("CACHE_PATH", cfg.DataDir+"/offline.db")
	return cfg
}

func defaultTerminalName() string {
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "pos-terminal"
}

func getEnv(key string, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

func getSeconds(key string, fallback int) time.Duration {
	secs, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil || secs < 1 {
		secs = fallback
	}
	return time.Duration(secs) * time.Second
}
