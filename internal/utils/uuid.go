package utils

import "github.com/google/uuid"

// UUIDGenerator produces X-Request-Id values. Ids are time-ordered v7
// UUIDs so backend logs sort by call order; a random v4 is used if v7
// generation fails.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

func (g *UUIDGenerator) Generate() string {
	if id, err := g.newV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
