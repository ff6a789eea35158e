package spell_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/spellforge/psibin/spell"
)

func TestRequireParam(t *testing.T) {
	p := spell.Piece{
		X: 2, Y: 7,
		Data: spell.Data{
			Key:    "psi:connector",
			Params: map[string]uint8{"_target": 4},
		},
	}

	side, err := spell.RequireParam(&p, "_target")
	require.NoError(t, err)
	require.Equal(t, uint8(4), side)

	_, err = spell.RequireParam(&p, "_number")
	require.ErrorIs(t, err, spell.ErrMissingParameter)

	var mp *spell.MissingParameterError
	require.True(t, errors.As(err, &mp))
	require.Equal(t, uint8(2), mp.X)
	require.Equal(t, uint8(7), mp.Y)
	require.Equal(t, "psi:connector", mp.Key)
	require.Equal(t, "_number", mp.Param)
}

func TestRequireParamNilMapping(t *testing.T) {
	p := spell.Piece{Data: spell.Data{Key: "psi:trick_die"}}

	_, err := spell.RequireParam(&p, "_target")
	require.ErrorIs(t, err, spell.ErrMissingParameter)
	require.EqualError(t, err, "missing parameter _target for piece psi:trick_die at [0, 0]")
}

func TestParamCatalog(t *testing.T) {
	require.Len(t, spell.ParamNames, 43)
	require.Equal(t, "_target", spell.ParamNames[0])
	require.Equal(t, "_ray_start", spell.ParamNames[42])

	for i, name := range spell.ParamNames {
		idx, ok := spell.ParamIndex(name)
		require.True(t, ok, name)
		require.Equal(t, uint8(i), idx)
	}

	_, ok := spell.ParamIndex("_not_in_catalog")
	require.False(t, ok)
}

func TestTagTableIsSelfInverse(t *testing.T) {
	for op := spell.Tag(0); op < 20; op++ {
		key := op.Key()
		require.True(t, op.Valid())
		require.Equal(t, "psi:", key[:4])
		require.Equal(t, op, spell.TagForKey(key[4:]))
	}

	require.Equal(t, spell.TagGeneric, spell.TagForKey("trick_debug"))
	require.True(t, spell.TagGeneric.Valid())
	require.Equal(t, "", spell.TagGeneric.Key())
	require.Nil(t, spell.TagGeneric.Params())

	require.False(t, spell.Tag(20).Valid())
	require.False(t, spell.Tag(254).Valid())
}

func TestTagParamsShapes(t *testing.T) {
	tests := []struct {
		tag  spell.Tag
		want []string
	}{
		{spell.TagConnector, []string{"_target"}},
		{spell.TagDie, []string{"_target"}},
		{spell.TagVectorConstruct, []string{"_x", "_y", "_z"}},
		{spell.TagVectorMul, []string{"_vector1", "_vector2", "_vector3"}},
		{spell.TagDiv, []string{"_number1", "_number2", "_number3"}},
		{spell.TagMod, []string{"_number1", "_number2"}},
		{spell.TagConstantNumber, nil},
		{spell.TagErrSuppressor, nil},
		{spell.TagCaster, nil},
	}

	for _, test := range tests {
		require.Equal(t, test.want, test.tag.Params(), test.tag.Key())
	}

	// Every canonical parameter name is in the catalog, so special
	// shapes never need literal-name encoding.
	for op := spell.Tag(0); op < 20; op++ {
		for _, name := range op.Params() {
			_, ok := spell.ParamIndex(name)
			require.True(t, ok, name)
		}
	}
}
