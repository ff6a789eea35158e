// Package wire implements the compact binary layout of spell programs.
//
// A spell is written as a NUL-terminated name, a mods header terminated
// by ']', then one record per piece: a packed coordinate byte, a
// single-byte opcode, an opcode-specific payload, a NUL-terminated
// comment and, for generic opcodes only, a trailing parameter block.
// The format is position-dependent: the same sentinel byte 255 means
// "literal constant follows" as the first byte of a generic trailer and
// "literal parameter name follows" inside a counted parameter list.
//
// Encoding is deterministic: equal spells produce byte-identical
// output. Decoding is strict and total: it never reads past the input
// and any malformed byte run yields an error rather than a partial
// spell.
package wire

import (
	"github.com/cockroachdb/errors"
)

// ErrMalformedInput reports input that is not a well-formed encoded
// spell: a truncated field, invalid UTF-8 text, or an out-of-range
// catalog index. Transport-layer alphabet failures wrap it too.
var ErrMalformedInput = errors.New("malformed input")

// ErrInvalidDiscriminant reports an opcode byte outside {0..19, 255}.
var ErrInvalidDiscriminant = errors.New("invalid opcode discriminant")

// Wire sentinels of the generic parameter trailer.
const (
	trailerNothing  = 254 // no params, no constant
	trailerConstant = 255 // NUL-terminated constant text follows
	literalName     = 255 // inside a counted list: literal param name follows

	// maxParams is the largest parameter mapping the count byte can
	// carry; 254 and 255 are taken by the trailer sentinels.
	maxParams = 253
)
