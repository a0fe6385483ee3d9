// Package config holds tunable game parameters and runtime settings.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding variables already set. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt is GetEnv for integers. Unparseable values are returned as errors.
func GetEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback, &EnvError{Key: key, Value: value, Err: err}
	}
	return n, nil
}

// GetEnvUint is GetEnv for unsigned 64-bit integers.
func GetEnvUint(key string, fallback uint64) (uint64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fallback, &EnvError{Key: key, Value: value, Err: err}
	}
	return n, nil
}

// GetEnvBool is GetEnv for booleans.
func GetEnvBool(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback, &EnvError{Key: key, Value: value, Err: err}
	}
	return b, nil
}

// GetEnvDuration is GetEnv for time.Duration values such as "120ms".
func GetEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback, &EnvError{Key: key, Value: value, Err: err}
	}
	return d, nil
}

// EnvError reports an environment variable that could not be parsed.
type EnvError struct {
	Key   string
	Value string
	Err   error
}

func (e *EnvError) Error() string {
	return "invalid value " + strconv.Quote(e.Value) + " for " + e.Key + ": " + e.Err.Error()
}

func (e *EnvError) Unwrap() error { return e.Err }
