package marketstack_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/marketstack/pkg/marketstack"
)

type optionalHolder struct {
	A marketstack.Optional[int]    `json:"a,omitzero" yaml:"a,omitempty"`
	B marketstack.Optional[int]    `json:"b,omitzero" yaml:"b,omitempty"`
	C marketstack.Optional[string] `json:"c,omitzero" yaml:"c,omitempty"`
}

func TestOptional_States(t *testing.T) {
	t.Parallel()

	absent := marketstack.Absent[int]()
	assert.True(t, absent.IsAbsent())
	assert.False(t, absent.IsNull())
	assert.False(t, absent.IsPresent())
	assert.True(t, absent.IsZero())

	var zero marketstack.Optional[int]
	assert.Equal(t, absent, zero)

	null := marketstack.Null[int]()
	assert.False(t, null.IsAbsent())
	assert.True(t, null.IsNull())
	assert.False(t, null.IsZero())
	assert.NotEqual(t, absent, null)

	some := marketstack.Some(0)
	assert.True(t, some.IsPresent())
	assert.False(t, some.IsZero(), "a present zero value is not absent")

	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 0, v)

	_, ok = null.Get()
	assert.False(t, ok)

	assert.Equal(t, 7, null.ValueOr(7))
	assert.Equal(t, 7, absent.ValueOr(7))
	assert.Equal(t, 0, some.ValueOr(7))

	assert.Equal(t, "<absent>", absent.String())
	assert.Equal(t, "null", null.String())
	assert.Equal(t, "0", some.String())
}

func TestOptional_Pointers(t *testing.T) {
	t.Parallel()

	assert.True(t, marketstack.FromPtr[int](nil).IsNull())

	n := 5
	fromPtr := marketstack.FromPtr(&n)
	assert.Equal(t, 5, fromPtr.ValueOr(0))

	ptr := fromPtr.Ptr()
	require.NotNil(t, ptr)
	*ptr = 9
	assert.Equal(t, 5, fromPtr.ValueOr(0), "Ptr returns a copy")

	assert.Nil(t, marketstack.Null[int]().Ptr())
	assert.Nil(t, marketstack.Absent[int]().Ptr())
}

func TestOptional_JSON(t *testing.T) {
	t.Parallel()

	t.Run("marshal keeps absent and null apart", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(optionalHolder{
			B: marketstack.Null[int](),
			C: marketstack.Some("x"),
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"b":null,"c":"x"}`, string(data))
	})

	t.Run("unmarshal", func(t *testing.T) {
		t.Parallel()

		var holder optionalHolder
		require.NoError(t, json.Unmarshal([]byte(`{"b":null,"c":"x"}`), &holder))

		assert.True(t, holder.A.IsAbsent())
		assert.True(t, holder.B.IsNull())
		assert.Equal(t, "x", holder.C.ValueOr(""))
	})

	t.Run("type mismatch fails", func(t *testing.T) {
		t.Parallel()

		var holder optionalHolder
		require.Error(t, json.Unmarshal([]byte(`{"a":"not a number"}`), &holder))
	})
}

func TestOptional_YAML(t *testing.T) {
	t.Parallel()

	data, err := yaml.Marshal(optionalHolder{
		B: marketstack.Null[int](),
		C: marketstack.Some("x"),
	})
	require.NoError(t, err)
	assert.Equal(t, "b: null\nc: x\n", string(data))
}
