package booking

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// IDLength is the number of hex characters in a booking id (48 random bits).
const IDLength = 12

type IDGenerator interface {
	NewID() string
}

// RandomIDGenerator takes the leading bytes of a v4 UUID. The first six bytes
// precede the version nibble, so every bit of the id is random.
type RandomIDGenerator struct{}

func NewRandomIDGenerator() IDGenerator {
	return RandomIDGenerator{}
}

func (RandomIDGenerator) NewID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:IDLength/2])
}
