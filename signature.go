package roster

import "github.com/TheBitDrifter/mask"

// Signature is a fixed-width bitset with one bit per registered component
// type. An entity's signature has bit i set iff the entity currently holds
// component type i; a system's signature names the types it requires.
// Signatures are comparable values and safe to copy.
type Signature struct {
	bits mask.Mask
}

// NewSignature returns a signature with the given component type bits set.
func NewSignature(types ...ComponentType) Signature {
	var s Signature
	for _, t := range types {
		s.Set(t)
	}
	return s
}

// Set marks the bit for component type t.
func (s *Signature) Set(t ComponentType) {
	s.bits.Mark(uint32(t))
}

// Clear unmarks the bit for component type t.
func (s *Signature) Clear(t ComponentType) {
	s.bits.Unmark(uint32(t))
}

// Has reports whether the bit for component type t is set.
func (s Signature) Has(t ComponentType) bool {
	var single mask.Mask
	single.Mark(uint32(t))
	return s.bits.ContainsAll(single)
}

// ContainsAll reports whether every bit set in other is also set in s.
// This is the system membership test: an entity belongs to a system when
// entitySig.ContainsAll(systemSig).
func (s Signature) ContainsAll(other Signature) bool {
	return s.bits.ContainsAll(other.bits)
}

// IsEmpty reports whether no bits are set.
func (s Signature) IsEmpty() bool {
	return s == Signature{}
}
