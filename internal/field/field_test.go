package field

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsEmpty(t *testing.T) {
	var f Field[bool]
	assert.False(t, f.IsLocked())
	assert.True(t, f.IsUnlocked())
	assert.True(t, f.IsNone())
	assert.Equal(t, Empty, f.State())

	_, ok := f.Value()
	assert.False(t, ok)
	assert.Nil(t, f.Ptr())
}

func TestNew(t *testing.T) {
	locked := New("hello")
	assert.True(t, locked.IsLocked())
	assert.True(t, locked.IsSome())
	v, ok := locked.Value()
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	generated := Generated("goodbye")
	assert.False(t, generated.IsLocked())
	assert.True(t, generated.IsSome())
	assert.Equal(t, "goodbye", generated.Get())
}

func TestLockUnlock(t *testing.T) {
	f := Generated(false)
	assert.True(t, f.IsUnlocked())

	f.Lock()
	assert.True(t, f.IsLocked())
	assert.False(t, f.IsUnlocked())

	f.Unlock()
	assert.True(t, f.IsUnlocked())
	assert.Equal(t, Unlocked, f.State())
}

func TestLockUnlockEmptyIsNoop(t *testing.T) {
	var f Field[int]
	f.Lock()
	assert.Equal(t, Empty, f.State())
	f.Unlock()
	assert.Equal(t, Empty, f.State())
}

func TestReplaceWith(t *testing.T) {
	var f Field[int]

	f.Replace(1)
	assert.Equal(t, Generated(1), f)

	f.ReplaceWith(func(prev int, ok bool) int {
		require.True(t, ok)
		return prev + 1
	})
	assert.Equal(t, Generated(2), f)

	f.Lock()
	called := false
	f.ReplaceWith(func(int, bool) int {
		called = true
		return 3
	})
	assert.False(t, called)
	assert.Equal(t, New(2), f)

	f.Replace(4)
	assert.Equal(t, New(2), f)
}

func TestReplaceWithOnEmptyPassesNoPrevious(t *testing.T) {
	var f Field[string]
	f.ReplaceWith(func(prev string, ok bool) string {
		assert.False(t, ok)
		assert.Equal(t, "", prev)
		return "fresh"
	})
	assert.Equal(t, Generated("fresh"), f)
}

func TestClear(t *testing.T) {
	f := Generated(123)
	f.Clear()
	assert.True(t, f.IsNone())

	locked := New(123)
	locked.Clear()
	assert.True(t, locked.IsSome())
	assert.True(t, locked.IsLocked())
}

func TestPtrMutatesInPlace(t *testing.T) {
	f := New(10)
	*f.Ptr() = 11
	assert.Equal(t, New(11), f)
}

func TestString(t *testing.T) {
	assert.Equal(t, "", Field[int]{}.String())
	assert.Equal(t, "42", New(42).String())
}

func TestMarshalJSON(t *testing.T) {
	b, err := json.Marshal(New(123))
	require.NoError(t, err)
	assert.Equal(t, "123", string(b))

	b, err = json.Marshal(Field[bool]{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestUnmarshalJSONNeverLocks(t *testing.T) {
	var f Field[uint8]
	require.NoError(t, json.Unmarshal([]byte("123"), &f))
	assert.Equal(t, Generated(uint8(123)), f)

	require.NoError(t, json.Unmarshal([]byte("null"), &f))
	assert.Equal(t, Field[uint8]{}, f)
}

func TestRoundTripDropsLock(t *testing.T) {
	type record struct {
		Name Field[string] `json:"name"`
		Age  Field[int]    `json:"age"`
	}

	in := record{Name: New("Els")}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Els","age":null}`, string(b))

	var out record
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, Unlocked, out.Name.State())
	assert.Equal(t, "Els", out.Name.Get())
	assert.True(t, out.Age.IsNone())

	// An empty field that round-trips and is then filled comes back Unlocked.
	out.Age.Replace(30)
	assert.Equal(t, Unlocked, out.Age.State())
}
