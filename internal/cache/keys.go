package cache

import "strings"

const (
	GlobalKeyPrefix = "quizcrew"
)

// GenerateCacheKey joins the global prefix, service, object type and
// identifier with ":". Optional params are joined by "_" and appended.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// GenerationRecordKey is the key of a stored generation response.
func GenerationRecordKey(generationID string) string {
	return GenerateCacheKey("generation", "record", generationID)
}
