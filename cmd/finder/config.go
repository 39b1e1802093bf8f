package main

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/matst80/craft-finder/pkg/storage"
)

type Config struct {
	ListenAddress string
	DebugAddress  string
	DataDir       string
	DatasetFile   string
	DatasetUrl    string
	S3            storage.S3Config
	RedisUrl      string
	RedisPassword string
	RabbitUrl     string
	CacheTTL      time.Duration
	RetryInterval time.Duration
}

func defaultConfig() Config {
	return Config{
		ListenAddress: ":8080",
		DebugAddress:  ":8081",
		DataDir:       "data",
		DatasetFile:   storage.DefaultProjectsFile,
		CacheTTL:      5 * time.Minute,
		RetryInterval: 30 * time.Second,
	}
}

// configFromEnv applies the environment on top of the defaults, lookup is
// os.LookupEnv outside of tests.
func configFromEnv(lookup func(string) (string, bool)) Config {
	cfg := defaultConfig()
	str := func(dst *string, keys ...string) {
		for _, key := range keys {
			if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
				*dst = strings.TrimSpace(v)
				return
			}
		}
	}
	seconds := func(dst *time.Duration, key string) {
		if v, ok := lookup(key); ok {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				*dst = time.Duration(n) * time.Second
			}
		}
	}
	str(&cfg.ListenAddress, "LISTEN_ADDRESS")
	str(&cfg.DebugAddress, "DEBUG_ADDRESS")
	str(&cfg.DataDir, "DATA_DIR")
	str(&cfg.DatasetFile, "DATASET_FILE")
	str(&cfg.DatasetUrl, "DATASET_URL")
	str(&cfg.S3.Bucket, "DATASET_S3_BUCKET")
	str(&cfg.S3.Key, "DATASET_S3_KEY")
	str(&cfg.S3.Region, "DATASET_S3_REGION", "AWS_REGION")
	str(&cfg.S3.Endpoint, "DATASET_S3_ENDPOINT")
	if v, ok := lookup("DATASET_S3_PATH_STYLE"); ok {
		cfg.S3.PathStyle, _ = strconv.ParseBool(v)
	}
	str(&cfg.RedisUrl, "REDIS_URL")
	str(&cfg.RedisPassword, "REDIS_PASSWORD")
	str(&cfg.RabbitUrl, "RABBIT_URL", "RABBIT_HOST")
	seconds(&cfg.CacheTTL, "CACHE_TTL_SECONDS")
	seconds(&cfg.RetryInterval, "LOAD_RETRY_SECONDS")
	return cfg
}

// Source picks where the dataset is read from: S3 when a bucket is set, then
// an url, and the data directory otherwise.
func (c Config) Source(ctx context.Context) (storage.Source, error) {
	if c.S3.Bucket != "" {
		s3 := c.S3
		if s3.Key == "" {
			s3.Key = c.DatasetFile
		}
		return storage.NewS3Source(ctx, s3)
	}
	if c.DatasetUrl != "" {
		return storage.NewHTTPSource(c.DatasetUrl), nil
	}
	return &storage.FileSource{
		Storage:  storage.NewDiskStorage(c.DataDir),
		FileName: c.DatasetFile,
	}, nil
}
