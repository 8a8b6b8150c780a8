package world

import "sync/atomic"

// ObjectIDGenerator generates unique object IDs for characters.
//
// ID ranges (convention):
//
//	0x00000000 - 0x0FFFFFFF: Reserved (0 = invalid)
//	0x10000000 - 0x1FFFFFFF: Leaders
//	0x20000000 - 0x2FFFFFFF: Other characters (followers, props)
type ObjectIDGenerator struct {
	nextLeaderID    atomic.Uint32
	nextCharacterID atomic.Uint32
}

// NewObjectIDGenerator creates a new ID generator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	gen := &ObjectIDGenerator{}
	gen.nextLeaderID.Store(0x10000000)
	gen.nextCharacterID.Store(0x20000000)
	return gen
}

// NextLeaderID generates next unique leader object ID.
// Thread-safe via atomic increment.
func (g *ObjectIDGenerator) NextLeaderID() uint32 {
	return g.nextLeaderID.Add(1)
}

// NextCharacterID generates next unique non-leader object ID.
// Thread-safe via atomic increment.
func (g *ObjectIDGenerator) NextCharacterID() uint32 {
	return g.nextCharacterID.Add(1)
}

// IsLeaderID reports whether id lies in the leader range.
func IsLeaderID(id uint32) bool {
	return id >= 0x10000000 && id < 0x20000000
}
