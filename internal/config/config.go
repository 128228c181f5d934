package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	TCPPort     string
	MetricsPort string
	RedisAddr   string
	GRPCServer  string

	// Picture storage: "fs" writes under PictureDir, "s3" uploads to S3Bucket.
	PictureStore string
	PictureDir   string
	S3Bucket     string
	S3Region     string
	S3Endpoint   string
	S3AccessKey  string
	S3SecretKey  string

	// Field decoding.
	FieldCatalog string // optional JSON overlay path
	BaseFields   []string

	// Timers (seconds).
	LivenessTimeout int
	FormatRetry     int
}

func Load() Config {
	return Config{
		TCPPort:         getEnv("TCP_PORT", "8001"),
		MetricsPort:     getEnv("METRICS_PORT", "9000"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		GRPCServer:      getEnv("GRPC_SERVER", ""),
		PictureStore:    getEnv("PICTURE_STORE", "fs"),
		PictureDir:      getEnv("PICTURE_DIR", "pictures"),
		S3Bucket:        getEnv("S3_BUCKET", "atrack-pictures"),
		S3Region:        getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:      getEnv("S3_ENDPOINT", ""),
		S3AccessKey:     getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:     getEnv("S3_SECRET_KEY", ""),
		FieldCatalog:    getEnv("FIELD_CATALOG", ""),
		BaseFields:      splitList(getEnv("BASE_FIELDS", "DT,LAT,LON,SPD,CRS,SA,MV,BV,IN,ST")),
		LivenessTimeout: getEnvInt("LIVENESS_TIMEOUT_S", 60),
		FormatRetry:     getEnvInt("FORMAT_RETRY_S", 30),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
