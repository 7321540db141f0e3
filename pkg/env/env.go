package env

import "os"

// Prefix qualifies this service's environment variables.
const Prefix = "AEROTRAVEL_"

// Get resolves a setting by its prefixed name first, then the bare name, then
// the fallback. Callers pass the unprefixed key.
func Get(key, fallback string) string {
	if val := os.Getenv(Prefix + key); val != "" {
		return val
	}
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
