package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseUUIDList splits a comma-separated id list. The second return is
// false when any element is not a valid UUID; filters treat that as
// matching nothing rather than an error.
func ParseUUIDList(value string) ([]uuid.UUID, bool) {
	if value == "" {
		return nil, true
	}

	var ids []uuid.UUID
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, false
		}
		ids = append(ids, id)
	}

	return ids, true
}

// GenerateToken returns a random opaque bearer token.
func GenerateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the process is unusable anyway
		panic(err)
	}
	return hex.EncodeToString(b)
}
