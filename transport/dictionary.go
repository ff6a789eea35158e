package transport

import (
	_ "embed"
)

// dictionaryID tags every frame with the dictionary that produced it.
// Changing the dictionary means changing the ID, or consumers would
// silently fail on old frames with no way to tell why.
const dictionaryID = 0x70736931 // "psi1"

// dictionary seeds the compressor so that small spells, which are mostly
// made of a handful of recurring instruction keys and parameter names,
// compress well below the zstd frame overhead. It is trained offline on
// a corpus of encoded spells and checked in; producer and consumer must
// hold byte-identical copies.
//
//go:embed dictionary.bin
var dictionary []byte
