package cache

import (
	"strconv"
	"strings"
)

const (
	GlobalKeyPrefix = "wikiquiz"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
func GenerateCacheKey(serviceName, objectType, identifier string) string {
	return strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
}

// QuizRecordKey is the key a stored quiz record is cached under.
func QuizRecordKey(id int64) string {
	return GenerateCacheKey("quiz", "record", strconv.FormatInt(id, 10))
}
