package util

import "os"

// Getenv returns the value of the environment variable, or the default when unset
func Getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val != "" {
		return val
	}

	return defaultValue
}
