package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/accelec/accele/internal/types"
)

func TestRegistryLookup(t *testing.T) {
	reg := types.Default()

	intT, ok := reg.Lookup("Int")
	assert.True(t, ok)
	assert.Equal(t, "Int", intT.Name)

	_, ok = reg.Lookup("NoSuchType")
	assert.False(t, ok)
}

func TestConvenienceAccessors(t *testing.T) {
	assert.Equal(t, "Any", types.Any().Name)
	assert.Equal(t, "Number", types.Number().Name)
	assert.Equal(t, "Bool", types.Bool().Name)
	assert.Equal(t, "String", types.Str().Name)
	assert.Equal(t, "Void", types.Void().Name)
}

func TestCanCastToSubtype(t *testing.T) {
	assert.True(t, types.CanCastTo(types.Int(), types.Number()))
	assert.True(t, types.CanCastTo(types.Int(), types.Any()))
	assert.False(t, types.CanCastTo(types.Bool(), types.Number()))
}

func TestCanCastToNumericWidening(t *testing.T) {
	int8, _ := types.Default().Lookup("Int8")
	assert.True(t, types.CanCastTo(int8, types.Int()))
	assert.False(t, types.CanCastTo(types.Int(), int8))
}

func TestCanCastToOptionalWrapsTarget(t *testing.T) {
	opt := &types.Optional{Wrapped: types.Number()}
	assert.True(t, types.CanCastTo(types.Int(), opt))
}

func TestEqualBuiltinByName(t *testing.T) {
	a, _ := types.Default().Lookup("Int")
	b, _ := types.Default().Lookup("Int")
	assert.True(t, types.Equal(a, b))
	assert.False(t, types.Equal(types.Int(), types.Bool()))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 0, types.Distance(types.Int(), types.Int()))
	assert.Greater(t, types.Distance(types.Int(), types.Number()), 0)
	assert.Equal(t, -1, types.Distance(types.Bool(), types.Number()))
}

func TestGetMinCommonType(t *testing.T) {
	common := types.GetMinCommonType(types.Int(), types.Bool())
	assert.Equal(t, "Any", common.(*types.Builtin).Name)

	int8, _ := types.Default().Lookup("Int8")
	common = types.GetMinCommonType(types.Int(), int8)
	assert.Equal(t, "Number", common.(*types.Builtin).Name)
}
