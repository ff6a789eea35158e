// Package psibin converts Psi spell programs between their authoring
// text form (SNBT), a compact binary layout, and a URL-safe compressed
// transport string suitable for size-constrained channels.
//
// All operations are pure, synchronous and safe for concurrent use; the
// only shared state is the compression dictionary, prepared once on
// first use.
package psibin

import (
	"github.com/spellforge/psibin/snbt"
	"github.com/spellforge/psibin/spell"
	"github.com/spellforge/psibin/transport"
	"github.com/spellforge/psibin/wire"
)

// Error kinds reported by the operations below. Every operation returns
// either a complete value or exactly one error; no partial output is
// ever produced.
var (
	// ErrMalformedInput: unparsable text, invalid transport alphabet,
	// truncated or corrupt binary stream.
	ErrMalformedInput = wire.ErrMalformedInput
	// ErrInvalidDiscriminant: unknown opcode byte in a binary stream.
	ErrInvalidDiscriminant = wire.ErrInvalidDiscriminant
	// ErrMissingParameter: special-shaped piece lacking a required
	// parameter; use errors.As with *spell.MissingParameterError for
	// the coordinates.
	ErrMissingParameter = spell.ErrMissingParameter
	// ErrResourceLimit: decompressed transport payload would exceed
	// transport.MaxDecodedSize.
	ErrResourceLimit = transport.ErrResourceLimit
)

// Encode encodes a spell into its compact binary form.
func Encode(s *spell.Spell) ([]byte, error) {
	return wire.Encode(s)
}

// Append appends the binary form of s to dst, for callers batching many
// spells into one buffer.
func Append(dst []byte, s *spell.Spell) ([]byte, error) {
	return wire.Append(dst, s)
}

// Decode decodes a binary spell.
func Decode(b []byte) (*spell.Spell, error) {
	return wire.Decode(b)
}

// Compress renders binary payload as a URL-safe transport string.
func Compress(b []byte) (string, error) {
	return transport.Encode(b)
}

// Decompress reverses Compress.
func Decompress(s string) ([]byte, error) {
	return transport.Decode(s)
}

// TextToSpell parses authoring SNBT text into a spell value.
func TextToSpell(s string) (*spell.Spell, error) {
	return snbt.Parse(s)
}

// SpellToText renders a spell value as authoring SNBT text.
func SpellToText(sp *spell.Spell) (string, error) {
	return snbt.Format(sp)
}

// SpellToTransport encodes and compresses a spell in one step.
func SpellToTransport(sp *spell.Spell) (string, error) {
	b, err := wire.Encode(sp)
	if err != nil {
		return "", err
	}
	return transport.Encode(b)
}

// TransportToSpell decompresses and decodes a transport string.
func TransportToSpell(s string) (*spell.Spell, error) {
	b, err := transport.Decode(s)
	if err != nil {
		return nil, err
	}
	return wire.Decode(b)
}

// TextToTransport converts authoring text straight to a transport
// string.
func TextToTransport(s string) (string, error) {
	sp, err := snbt.Parse(s)
	if err != nil {
		return "", err
	}
	return SpellToTransport(sp)
}

// TransportToText converts a transport string back to authoring text.
func TransportToText(s string) (string, error) {
	sp, err := TransportToSpell(s)
	if err != nil {
		return "", err
	}
	return snbt.Format(sp)
}
