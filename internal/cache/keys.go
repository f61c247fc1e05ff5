package cache

import (
	"strconv"
	"strings"
	"time"
)

const (
	GlobalKeyPrefix = "elearn"

	documentService = "document"
	textObject      = "text"
)

// GenerateCacheKey builds "elearn:<service>:<objectType>:<identifier>" and
// appends the params joined by "_" when any are given.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return baseKey + ":" + strings.Join(paramsKey, "_")
	}
	return baseKey
}

// DocumentTextKey keys extracted PDF text by document and file modification
// time, so replacing the file on disk invalidates the entry.
func DocumentTextKey(documentID string, modTime time.Time) string {
	return GenerateCacheKey(documentService, textObject, documentID, strconv.FormatInt(modTime.Unix(), 10))
}
