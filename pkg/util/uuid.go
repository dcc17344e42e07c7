package util

import (
	"crypto/md5"

	"github.com/google/uuid"
)

// HashUUID derives a stable name-style UUID from the md5 of value, so two
// identical compressed streams always share a fingerprint
func HashUUID(value []byte) string {
	hash := md5.Sum(value)
	id, err := uuid.FromBytes(hash[:])
	if err != nil {
		return ""
	}
	return id.String()
}
