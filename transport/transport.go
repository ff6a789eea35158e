// Package transport renders binary spell payloads as URL-safe text and
// back. Payloads are compressed with zstd at maximum level, seeded by a
// fixed shared dictionary, then encoded with the padding-free URL-safe
// base64 alphabet.
//
// The dictionary is part of the wire format's identity: a consumer built
// with a different dictionary cannot detect the mismatch and simply
// fails to decode frames, as malformed input.
package transport

import (
	"encoding/base64"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"

	"github.com/spellforge/psibin/wire"
)

// MaxDecodedSize caps decompression output to bound worst-case expansion
// from adversarial input.
const MaxDecodedSize = 2 << 20

// ErrResourceLimit reports a payload whose decompressed size would
// exceed MaxDecodedSize.
var ErrResourceLimit = errors.New("decompressed size exceeds limit")

var newCompressor = sync.OnceValues(func() (*zstd.Encoder, error) {
	return zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedBestCompression),
		zstd.WithEncoderDictRaw(dictionaryID, dictionary),
		// Single segment keeps equal inputs byte-identical across calls.
		zstd.WithEncoderConcurrency(1),
	)
})

var newDecompressor = sync.OnceValues(func() (*zstd.Decoder, error) {
	return zstd.NewReader(nil,
		zstd.WithDecoderDictRaw(dictionaryID, dictionary),
		zstd.WithDecoderMaxMemory(MaxDecodedSize),
		zstd.WithDecoderConcurrency(1),
	)
})

// Encode compresses b with the shared dictionary and renders it in the
// URL-safe alphabet. The result is safe to embed in a URL path or query
// without escaping.
func Encode(b []byte) (string, error) {
	enc, err := newCompressor()
	if err != nil {
		return "", errors.Wrap(err, "preparing compressor")
	}
	return base64.RawURLEncoding.EncodeToString(enc.EncodeAll(b, nil)), nil
}

// Decode reverses Encode. Characters outside the URL-safe alphabet and
// frames that do not decompress with the shared dictionary are malformed
// input; output larger than MaxDecodedSize is a resource-limit failure.
func Decode(s string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(wire.ErrMalformedInput, "transport alphabet: %v", err)
	}

	dec, err := newDecompressor()
	if err != nil {
		return nil, errors.Wrap(err, "preparing decompressor")
	}

	out, err := dec.DecodeAll(raw, nil)
	if err != nil {
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) {
			return nil, errors.Wrapf(ErrResourceLimit, "%d byte cap", MaxDecodedSize)
		}
		return nil, errors.Wrapf(wire.ErrMalformedInput, "decompress: %v", err)
	}
	return out, nil
}
