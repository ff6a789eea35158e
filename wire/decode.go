package wire

import (
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/spellforge/psibin/spell"
)

// Decode decodes a binary spell produced by Encode. It is strict: any
// truncation, unknown opcode or non-text byte run fails, and it never
// reads past data. Input exhaustion exactly at a piece boundary is
// success.
func Decode(data []byte) (*spell.Spell, error) {
	r := reader{buf: data}

	name, err := r.text(0)
	if err != nil {
		return nil, errors.Wrap(err, "spell name")
	}

	header, err := r.until(']')
	if err != nil {
		return nil, errors.Wrap(err, "mods header")
	}
	mods, err := parseMods(header)
	if err != nil {
		return nil, err
	}

	var pieces []spell.Piece
	for !r.done() {
		p, err := r.piece()
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, p)
	}

	return &spell.Spell{Name: name, Mods: mods, Pieces: pieces}, nil
}

// parseMods splits "name,version;name,version". An empty header means no
// mods. The first ',' of a record separates name from version; stray
// commas after that are dropped.
func parseMods(header []byte) ([]spell.Mod, error) {
	if len(header) == 0 {
		return nil, nil
	}
	if !utf8.Valid(header) {
		return nil, errors.Wrap(ErrMalformedInput, "mods header is not valid UTF-8")
	}

	var mods []spell.Mod
	var name, version []byte
	inVersion := false
	flush := func() {
		mods = append(mods, spell.Mod{Name: string(name), Version: string(version)})
		name, version = name[:0], version[:0]
		inVersion = false
	}

	for _, b := range header {
		switch b {
		case ';':
			flush()
		case ',':
			inVersion = true
		default:
			if inVersion {
				version = append(version, b)
			} else {
				name = append(name, b)
			}
		}
	}
	flush()

	return mods, nil
}

func (r *reader) piece() (spell.Piece, error) {
	xy, err := r.byte()
	if err != nil {
		return spell.Piece{}, errors.Wrap(err, "piece coordinates")
	}

	op, err := r.byte()
	if err != nil {
		return spell.Piece{}, errors.Wrap(err, "piece opcode")
	}
	tag := spell.Tag(op)
	if !tag.Valid() {
		return spell.Piece{}, errors.Wrapf(ErrInvalidDiscriminant, "opcode %d", op)
	}

	p := spell.Piece{X: xy >> 4, Y: xy & 0xF}

	switch tag {
	case spell.TagGeneric:
		key, err := r.text(0)
		if err != nil {
			return spell.Piece{}, errors.Wrap(err, "piece key")
		}
		p.Data.Key = withNamespace(key)
	case spell.TagConstantNumber:
		c, err := r.text(0)
		if err != nil {
			return spell.Piece{}, errors.Wrap(err, "constant value")
		}
		p.Data.Key = tag.Key()
		p.Data.Constant = &c
	default:
		p.Data.Key = tag.Key()
		names := tag.Params()
		if len(names) > 0 {
			p.Data.Params = make(map[string]uint8, len(names))
			for _, name := range names {
				side, err := r.byte()
				if err != nil {
					return spell.Piece{}, errors.Wrapf(err, "parameter %s", name)
				}
				p.Data.Params[name] = side
			}
		}
	}

	comment, err := r.text(0)
	if err != nil {
		return spell.Piece{}, errors.Wrap(err, "piece comment")
	}
	p.Data.Comment = comment

	// Special opcodes already carry their full shape; no trailer was
	// written for them.
	if tag != spell.TagGeneric {
		return p, nil
	}

	return r.genericTrailer(p)
}

func (r *reader) genericTrailer(p spell.Piece) (spell.Piece, error) {
	ty, err := r.byte()
	if err != nil {
		return spell.Piece{}, errors.Wrap(err, "parameter block")
	}

	switch ty {
	case trailerNothing:
	case trailerConstant:
		c, err := r.text(0)
		if err != nil {
			return spell.Piece{}, errors.Wrap(err, "constant value")
		}
		p.Data.Constant = &c
	default:
		params := make(map[string]uint8, ty)
		for i := 0; i < int(ty); i++ {
			idx, err := r.byte()
			if err != nil {
				return spell.Piece{}, errors.Wrap(err, "parameter name")
			}

			var name string
			switch {
			case idx == literalName:
				name, err = r.text(0)
				if err != nil {
					return spell.Piece{}, errors.Wrap(err, "literal parameter name")
				}
			case int(idx) < len(spell.ParamNames):
				name = spell.ParamNames[idx]
			default:
				return spell.Piece{}, errors.Wrapf(ErrMalformedInput,
					"parameter catalog index %d out of range", idx)
			}

			side, err := r.byte()
			if err != nil {
				return spell.Piece{}, errors.Wrapf(err, "parameter %s", name)
			}
			params[name] = side
		}
		if len(params) > 0 {
			p.Data.Params = params
		}
	}

	return p, nil
}

func withNamespace(key string) string {
	for i := 0; i < len(key); i++ {
		if key[i] == ':' {
			return key
		}
	}
	return spell.Namespace + key
}

// reader is a bounds-checked cursor over the input buffer.
type reader struct {
	buf []byte
	off int
}

func (r *reader) done() bool {
	return r.off >= len(r.buf)
}

func (r *reader) byte() (byte, error) {
	if r.done() {
		return 0, errors.Wrap(ErrMalformedInput, "unexpected end of input")
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

// until returns the bytes up to the next occurrence of delim and
// consumes the delimiter. A missing delimiter is a truncation.
func (r *reader) until(delim byte) ([]byte, error) {
	for i := r.off; i < len(r.buf); i++ {
		if r.buf[i] == delim {
			b := r.buf[r.off:i]
			r.off = i + 1
			return b, nil
		}
	}
	return nil, errors.Wrapf(ErrMalformedInput, "unexpected end of input looking for 0x%02x", delim)
}

// text reads a delim-terminated field and validates it as UTF-8.
func (r *reader) text(delim byte) (string, error) {
	b, err := r.until(delim)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.Wrap(ErrMalformedInput, "text field is not valid UTF-8")
	}
	return string(b), nil
}
