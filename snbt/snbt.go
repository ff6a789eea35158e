// Package snbt bridges spell values and their authoring text form,
// stringified NBT, the format the game exports to the clipboard.
//
// Parsing is delegated to the go-mc NBT library and round-trips through
// binary NBT because SNBT has no direct struct mapping. Writing renders
// the compound directly: every string value is quoted so that the
// output re-parses to the same value, including version strings and
// numeric-looking constants that must stay strings.
package snbt

import (
	"strconv"
	"strings"

	"github.com/Tnze/go-mc/nbt"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/spellforge/psibin/spell"
	"github.com/spellforge/psibin/wire"
)

// Parse reads an SNBT compound into a spell value.
func Parse(s string) (*spell.Spell, error) {
	data, err := nbt.Marshal(nbt.StringifiedMessage(s))
	if err != nil {
		return nil, errors.Wrapf(wire.ErrMalformedInput, "parsing SNBT: %v", err)
	}

	var sp spell.Spell
	if err := nbt.Unmarshal(data, &sp); err != nil {
		return nil, errors.Wrapf(wire.ErrMalformedInput, "reading spell fields: %v", err)
	}
	return &sp, nil
}

// Format renders a spell value as SNBT text. The output always
// re-parses to an equal value.
func Format(sp *spell.Spell) (string, error) {
	var b strings.Builder

	b.WriteString(`{spellName:`)
	writeString(&b, sp.Name)

	b.WriteString(`,modsRequired:[`)
	for i, m := range sp.Mods {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(`{modName:`)
		writeString(&b, m.Name)
		b.WriteString(`,modVersion:`)
		writeString(&b, m.Version)
		b.WriteByte('}')
	}

	b.WriteString(`],spellList:[`)
	for i := range sp.Pieces {
		if i > 0 {
			b.WriteByte(',')
		}
		writePiece(&b, &sp.Pieces[i])
	}
	b.WriteString(`]}`)

	return b.String(), nil
}

func writePiece(b *strings.Builder, p *spell.Piece) {
	b.WriteString(`{x:`)
	writeByte(b, p.X)
	b.WriteString(`,y:`)
	writeByte(b, p.Y)

	b.WriteString(`,data:{key:`)
	writeString(b, p.Data.Key)

	if p.Data.Params != nil {
		b.WriteString(`,params:{`)
		names := maps.Keys(p.Data.Params)
		slices.Sort(names)
		for i, name := range names {
			if i > 0 {
				b.WriteByte(',')
			}
			writeString(b, name)
			b.WriteByte(':')
			writeByte(b, p.Data.Params[name])
		}
		b.WriteByte('}')
	}
	if p.Data.Constant != nil {
		b.WriteString(`,constantValue:`)
		writeString(b, *p.Data.Constant)
	}
	if p.Data.Comment != "" {
		b.WriteString(`,comment:`)
		writeString(b, p.Data.Comment)
	}

	b.WriteString(`}}`)
}

// writeString quotes s unconditionally. Bare words would be shorter but
// re-read as numeric or boolean tags for values like "8" or "1.5".
func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
}

// writeByte renders a byte tag with its "b" suffix so the value reads
// back as NBT TagByte, matching the uint8 fields.
func writeByte(b *strings.Builder, v uint8) {
	b.WriteString(strconv.Itoa(int(v)))
	b.WriteByte('b')
}
