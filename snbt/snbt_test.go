package snbt_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/spellforge/psibin/snbt"
	"github.com/spellforge/psibin/spell"
	"github.com/spellforge/psibin/wire"
)

func str(s string) *string { return &s }

func TestFormatParseRoundTrip(t *testing.T) {
	s := spell.Spell{
		Name: "Blink",
		Mods: []spell.Mod{{Name: "psi", Version: "1.6-101"}},
		Pieces: []spell.Piece{
			{X: 0, Y: 0, Data: spell.Data{Key: "psi:selector_caster"}},
			{X: 1, Y: 0, Data: spell.Data{Key: "psi:connector", Params: map[string]uint8{"_target": 3}}},
			{X: 2, Y: 0, Data: spell.Data{Key: "psi:constant_number", Constant: str("8")}},
			{X: 3, Y: 0, Data: spell.Data{Key: "psi:trick_blink", Params: map[string]uint8{"_target": 1, "_number": 2}, Comment: "zoom"}},
		},
	}

	text, err := snbt.Format(&s)
	require.NoError(t, err)
	require.NotEmpty(t, text)

	got, err := snbt.Parse(text)
	require.NoError(t, err)
	if diff := cmp.Diff(&s, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatQuotesStringValues(t *testing.T) {
	// Version strings and numeric-looking constants must come back as
	// strings; bare words would re-read as numeric tags or not at all.
	s := spell.Spell{
		Name: "Blink",
		Mods: []spell.Mod{{Name: "psi", Version: "1.6-101"}},
		Pieces: []spell.Piece{
			{X: 0, Y: 0, Data: spell.Data{Key: "psi:constant_number", Constant: str("8")}},
		},
	}

	text, err := snbt.Format(&s)
	require.NoError(t, err)
	require.Contains(t, text, `modVersion:"1.6-101"`)
	require.Contains(t, text, `constantValue:"8"`)

	got, err := snbt.Parse(text)
	require.NoError(t, err)
	require.Equal(t, []spell.Mod{{Name: "psi", Version: "1.6-101"}}, got.Mods)
	require.NotNil(t, got.Pieces[0].Data.Constant)
	require.Equal(t, "8", *got.Pieces[0].Data.Constant)
}

func TestFormatEscapesStringValues(t *testing.T) {
	s := spell.Spell{
		Name: `quote " and backslash \`,
		Pieces: []spell.Piece{
			{X: 1, Y: 2, Data: spell.Data{Key: "psi:trick_die", Comment: `say "ow"`}},
		},
	}

	text, err := snbt.Format(&s)
	require.NoError(t, err)

	got, err := snbt.Parse(text)
	require.NoError(t, err)
	require.Equal(t, s.Name, got.Name)
	require.Equal(t, `say "ow"`, got.Pieces[0].Data.Comment)
}

func TestParseHandwritten(t *testing.T) {
	text := `{spellName:"Test",modsRequired:[{modName:"psi",modVersion:"1.6-101"}],spellList:[{x:0b,y:0b,data:{key:"psi:connector",params:{_target:3b}}}]}`

	got, err := snbt.Parse(text)
	require.NoError(t, err)
	require.Equal(t, "Test", got.Name)
	require.Equal(t, []spell.Mod{{Name: "psi", Version: "1.6-101"}}, got.Mods)
	require.Len(t, got.Pieces, 1)
	require.Equal(t, "psi:connector", got.Pieces[0].Data.Key)
	require.Equal(t, map[string]uint8{"_target": 3}, got.Pieces[0].Data.Params)
}

func TestParseMalformed(t *testing.T) {
	for _, text := range []string{
		"",
		"not snbt",
		"{spellName:",
		`{spellName:"unterminated}`,
	} {
		_, err := snbt.Parse(text)
		require.ErrorIs(t, err, wire.ErrMalformedInput, "input %q", text)
	}
}
