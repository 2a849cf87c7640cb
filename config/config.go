package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the runtime settings read from the environment.
type Config struct {
	Port               string
	SparqlEndpoint     string
	SparqlTimeout      time.Duration
	SparqlMaxGetLength int
	Centro             string
	ScopusBaseURL      string
	ScopusAPIKey       string
	ScopusAfiliaciones []string
	AllowedOrigins     []string
	SearchDebounce     time.Duration
	NavMaxVisitors     int
	NavTTL             time.Duration
	LogLevel           string
}

// Load reads the configuration from environment variables, applying defaults
// for anything that is not set.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "3000"),
		SparqlEndpoint:     getEnv("SPARQL_ENDPOINT", "https://opendata.unex.es/sparql"),
		Centro:             getEnv("CENTRO", "Escuela Politécnica"),
		ScopusBaseURL:      getEnv("SCOPUS_BASE_URL", "https://api.elsevier.com/content/search/scopus"),
		ScopusAPIKey:       os.Getenv("SCOPUS_API_KEY"),
		ScopusAfiliaciones: splitList(getEnv("SCOPUS_AFILIACIONES", "Universidad de Extremadura;University of Extremadura"), ";"),
		AllowedOrigins:     splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:4200"), ","),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}

	var err error
	if cfg.SparqlTimeout, err = getDuration("SPARQL_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.SearchDebounce, err = getDuration("SEARCH_DEBOUNCE", 700*time.Millisecond); err != nil {
		return nil, err
	}

	if cfg.NavTTL, err = getDuration("NAV_TTL", 30*time.Minute); err != nil {
		return nil, err
	}

	cfg.NavMaxVisitors = 10000
	if v := os.Getenv("NAV_MAX_VISITORS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid NAV_MAX_VISITORS %q", v)
		}
		cfg.NavMaxVisitors = n
	}

	cfg.SparqlMaxGetLength = 2000
	if v := os.Getenv("SPARQL_MAX_GET_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid SPARQL_MAX_GET_LENGTH %q", v)
		}
		cfg.SparqlMaxGetLength = n
	}

	if cfg.SparqlEndpoint == "" {
		return nil, fmt.Errorf("SPARQL_ENDPOINT must not be empty")
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func splitList(s, sep string) []string {
	var out []string
	for _, p := range strings.Split(s, sep) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
