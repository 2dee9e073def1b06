package utils

import "github.com/google/uuid"

// publicIDLen is the number of leading UUID characters that form a recipe's
// shareable public identifier.
const publicIDLen = 8

// UUIDGenerator produces random recipe and share identifiers.
//
// Recipes use random (v4) UUIDs rather than time-ordered ones: the first 8
// characters of the textual form double as the public short id, so they must
// not share a common time-derived prefix.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns the canonical text of a fresh random UUID.
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// PublicID derives the 8-character shareable prefix from a canonical UUID
// string. The input is returned unchanged when it is shorter than the prefix.
func PublicID(id string) string {
	if len(id) < publicIDLen {
		return id
	}
	return id[:publicIDLen]
}
