// Package spell defines the value types of a Psi spell program: a named
// grid of instruction pieces with wiring parameters. Values are plain
// data; every transformation over them (binary codec, transport codec,
// text bridge) lives in its own package and treats spells as immutable.
package spell

// Spell is a complete instruction program. Piece order carries no domain
// meaning but is preserved exactly by the codecs so that encode/decode
// round trips are byte stable.
type Spell struct {
	Name   string  `nbt:"spellName" json:"spellName"`
	Mods   []Mod   `nbt:"modsRequired" json:"modsRequired"`
	Pieces []Piece `nbt:"spellList" json:"spellList"`
}

// Mod is a dependency record of the spell: a mod name and the version it
// was authored against.
type Mod struct {
	Name    string `nbt:"modName" json:"modName"`
	Version string `nbt:"modVersion" json:"modVersion"`
}

// Piece is one instruction placed on the programming grid. X and Y must
// fit in 4 bits (0-15); the codec packs them into a single byte.
type Piece struct {
	X    uint8 `nbt:"x" json:"x"`
	Y    uint8 `nbt:"y" json:"y"`
	Data Data  `nbt:"data" json:"data"`
}

// Data is the payload of a piece.
//
// Params maps parameter names to single-byte side selectors; nil means no
// parameters. Constant is the literal text of constant-valued pieces; nil
// means none. At most one of Params and Constant is meaningful for a
// given piece. An empty Comment and a missing one are indistinguishable
// on the wire, so Comment is a plain string.
type Data struct {
	Key      string           `nbt:"key" json:"key"`
	Params   map[string]uint8 `nbt:"params,omitempty" json:"params,omitempty"`
	Constant *string          `nbt:"constantValue,omitempty" json:"constantValue,omitempty"`
	Comment  string           `nbt:"comment,omitempty" json:"comment,omitempty"`
}

// RequireParam returns the side value of the named parameter of p.
// It returns a MissingParameterError if the piece has no parameter
// mapping or the mapping lacks the name. It performs no other
// validation.
func RequireParam(p *Piece, name string) (uint8, error) {
	if p.Data.Params != nil {
		if side, ok := p.Data.Params[name]; ok {
			return side, nil
		}
	}
	return 0, &MissingParameterError{
		X:     p.X,
		Y:     p.Y,
		Key:   p.Data.Key,
		Param: name,
	}
}
