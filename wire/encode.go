package wire

import (
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/spellforge/psibin/spell"
)

// Encode encodes s into its compact binary form.
func Encode(s *spell.Spell) ([]byte, error) {
	return Append(nil, s)
}

// Append appends the encoding of s to dst and returns the extended
// slice. Callers batching many spells can reuse a single buffer. On
// error dst is returned unchanged.
//
// Encoding fails only on a special-shaped piece missing one of its
// required parameters, or on a parameter mapping too large for the
// count byte.
func Append(dst []byte, s *spell.Spell) ([]byte, error) {
	out := dst

	out = append(out, s.Name...)
	out = append(out, 0)

	// The mods header reads "name,version;name,version;..." with the
	// final ';' replaced by ']'. No mods leaves a lone ']'.
	if len(s.Mods) > 0 {
		for _, m := range s.Mods {
			out = append(out, m.Name...)
			out = append(out, ',')
			out = append(out, m.Version...)
			out = append(out, ';')
		}
		out[len(out)-1] = ']'
	} else {
		out = append(out, ']')
	}

	for i := range s.Pieces {
		var err error
		out, err = appendPiece(out, &s.Pieces[i])
		if err != nil {
			return dst, err
		}
	}

	return out, nil
}

func appendPiece(out []byte, p *spell.Piece) ([]byte, error) {
	out = append(out, p.X<<4|(p.Y&0xF))

	bare := strings.TrimPrefix(p.Data.Key, spell.Namespace)
	tag := spell.TagGeneric
	if !strings.Contains(bare, ":") {
		tag = spell.TagForKey(bare)
	}
	out = append(out, byte(tag))

	switch tag {
	case spell.TagGeneric:
		out = append(out, bare...)
		out = append(out, 0)
	case spell.TagConstantNumber:
		if p.Data.Constant != nil {
			out = append(out, *p.Data.Constant...)
		}
		out = append(out, 0)
	default:
		for _, name := range tag.Params() {
			side, err := spell.RequireParam(p, name)
			if err != nil {
				return nil, err
			}
			out = append(out, side)
		}
	}

	out = append(out, p.Data.Comment...)
	out = append(out, 0)

	// Special tags capture their full parameter shape above; only the
	// generic opcode carries a trailer.
	if tag != spell.TagGeneric {
		return out, nil
	}

	switch {
	case p.Data.Params != nil:
		if len(p.Data.Params) > maxParams {
			return nil, errors.Wrapf(ErrMalformedInput,
				"piece %s at [%d, %d] has %d parameters, limit is %d",
				p.Data.Key, p.X, p.Y, len(p.Data.Params), maxParams)
		}
		out = append(out, byte(len(p.Data.Params)))

		names := maps.Keys(p.Data.Params)
		slices.Sort(names)
		for _, name := range names {
			if idx, ok := spell.ParamIndex(name); ok {
				out = append(out, idx)
			} else {
				out = append(out, literalName)
				out = append(out, name...)
				out = append(out, 0)
			}
			out = append(out, p.Data.Params[name])
		}
	case p.Data.Constant != nil:
		out = append(out, trailerConstant)
		out = append(out, *p.Data.Constant...)
		out = append(out, 0)
	default:
		out = append(out, trailerNothing)
	}

	return out, nil
}
