package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	storeDriverBolt   = "bolt"
	storeDriverSQLite = "sqlite"
)

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `split_words:"true" default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `split_words:"true" default:""`

	// GRPCServerAddress - listen address for grpc server. If empty, grpc server is disabled
	GRPCServerAddress string `envconfig:"GRPC_SERVER_ADDRESS" default:"0.0.0.0:9090"`

	// ServiceResponseTimeout - timeout for a single analysis
	ServiceResponseTimeout time.Duration `split_words:"true" default:"5m"`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `envconfig:"GITHUB_API_ADDRESS" default:"https://api.github.com"`

	// GithubAPIToken - auth token for rest github api (optional, rate limit is lower without this token)
	GithubAPIToken string `envconfig:"GITHUB_API_TOKEN" default:""`

	// GithubAPIRateLimit - max frequency for github rest api calls
	GithubAPIRateLimit float64 `envconfig:"GITHUB_API_RATE_LIMIT" default:"10"`

	// GithubMaxRetries - how many times a failed github call is retried
	GithubMaxRetries int `split_words:"true" default:"2"`

	// GithubRetryBackoff - base delay between retries, grows linearly
	GithubRetryBackoff time.Duration `split_words:"true" default:"2s"`

	// GithubClientCacheSize - maximum number of elements in each github client cache
	GithubClientCacheSize int `split_words:"true" default:"10000"`

	// GithubClientCacheTTL - maximum lifetime for cached listings
	GithubClientCacheTTL time.Duration `envconfig:"GITHUB_CLIENT_CACHE_TTL" default:"10m"`

	// Workers - max number of concurrent repository or branch fetches
	Workers int `default:"5"`

	// BranchLimit - max number of branches analyzed per repository
	BranchLimit int `split_words:"true" default:"10"`

	// DetailLimit - max number of commit details fetched per repository
	DetailLimit int `split_words:"true" default:"20"`

	// MessageLimit - max number of commit subject lines kept in stats for summaries
	MessageLimit int `split_words:"true" default:"30"`

	// StoreDriver - kv store used for computed stats: bolt or sqlite
	StoreDriver string `split_words:"true" default:"bolt"`

	// StorePath - filepath for store data
	StorePath string `split_words:"true" default:"./tally.data"`

	// StoreBucket - bolt bucket or sqlite table name
	StoreBucket string `split_words:"true" default:"stats"`

	// LogLevel - logrus level name
	LogLevel string `split_words:"true" default:"info"`

	// LogFormat - text or json
	LogFormat string `split_words:"true" default:"text"`
}

// loadConfig reads .env file if present and then the environment.
func loadConfig(envFile string) (Config, error) {
	var conf Config
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return conf, fmt.Errorf("loading %s: %w", envFile, err)
	}
	if err := envconfig.Process("", &conf); err != nil {
		return conf, fmt.Errorf("parsing config: %w", err)
	}
	if conf.StoreDriver != storeDriverBolt && conf.StoreDriver != storeDriverSQLite {
		return conf, fmt.Errorf("invalid store driver %q", conf.StoreDriver)
	}

	return conf, nil
}

func newLogger(conf Config) (*logrus.Logger, error) {
	l := logrus.New()
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	l.SetLevel(level)
	if conf.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	}

	return l, nil
}
