package document

import "github.com/google/uuid"

// NewUUID is the default IDGenerator: a random (v4) UUID string.
func NewUUID() string {
	return uuid.NewString()
}

// PrefixedIDs prepends prefix to every ID produced by gen.
func PrefixedIDs(prefix string, gen IDGenerator) IDGenerator {
	if prefix == "" {
		return gen
	}
	return func() string { return prefix + gen() }
}
