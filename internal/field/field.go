// Package field provides the tri-state attribute container used by generated entities.
//
// A Field records where its value came from: Locked values were set by the user
// and survive regeneration, Unlocked values were produced by a generator and may
// be replaced, and an Empty field holds nothing. The zero value is Empty.
package field

import (
	"encoding/json"
	"fmt"
)

// State is the provenance of a field's value.
type State uint8

const (
	Empty State = iota
	Unlocked
	Locked
)

func (s State) String() string {
	switch s {
	case Unlocked:
		return "unlocked"
	case Locked:
		return "locked"
	default:
		return "empty"
	}
}

// Field wraps at most one value of type T.
type Field[T any] struct {
	value T
	state State
}

// New returns a Locked field holding v.
func New[T any](v T) Field[T] {
	return Field[T]{value: v, state: Locked}
}

// Generated returns an Unlocked field holding v.
func Generated[T any](v T) Field[T] {
	return Field[T]{value: v, state: Unlocked}
}

// State reports the current state.
func (f Field[T]) State() State {
	return f.state
}

// IsLocked reports whether the value was set by the user.
func (f Field[T]) IsLocked() bool {
	return f.state == Locked
}

// IsUnlocked reports whether regeneration may write the field. Empty fields count.
func (f Field[T]) IsUnlocked() bool {
	return !f.IsLocked()
}

// IsSome reports whether the field holds a value.
func (f Field[T]) IsSome() bool {
	return !f.IsNone()
}

// IsNone reports whether the field is Empty.
func (f Field[T]) IsNone() bool {
	return f.state == Empty
}

// Lock turns an Unlocked field Locked. Empty and Locked fields are unchanged.
func (f *Field[T]) Lock() {
	if f.state == Unlocked {
		f.state = Locked
	}
}

// Unlock turns a Locked field Unlocked. Empty and Unlocked fields are unchanged.
func (f *Field[T]) Unlock() {
	if f.state == Locked {
		f.state = Unlocked
	}
}

// Replace stores v as a generated value unless the field is Locked.
func (f *Field[T]) Replace(v T) {
	f.ReplaceWith(func(T, bool) T { return v })
}

// ReplaceWith stores fn's result as a generated value unless the field is Locked.
// fn receives the previous value and whether there was one; it is not called
// for Locked fields.
func (f *Field[T]) ReplaceWith(fn func(prev T, ok bool) T) {
	switch f.state {
	case Unlocked:
		f.value = fn(f.value, true)
	case Empty:
		var zero T
		f.value = fn(zero, false)
		f.state = Unlocked
	}
}

// Clear empties an Unlocked field. Locked values can only be unlocked, never cleared.
func (f *Field[T]) Clear() {
	if f.state == Unlocked {
		var zero T
		f.value = zero
		f.state = Empty
	}
}

// Value returns the contained value regardless of lock state.
func (f Field[T]) Value() (T, bool) {
	return f.value, f.state != Empty
}

// Get returns the contained value, or the zero value for an Empty field.
func (f Field[T]) Get() T {
	return f.value
}

// Ptr returns a pointer to the contained value, or nil for an Empty field.
func (f *Field[T]) Ptr() *T {
	if f.state == Empty {
		return nil
	}
	return &f.value
}

// String formats the value, or the empty string for an Empty field.
func (f Field[T]) String() string {
	if f.state == Empty {
		return ""
	}
	return fmt.Sprint(f.value)
}

// MarshalJSON emits the value or null. The lock state is not serialized.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.state == Empty {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// UnmarshalJSON loads a value as Unlocked and null as Empty. Persisted data is
// always re-generatable until the user locks it again.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Field[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Generated(v)
	return nil
}
