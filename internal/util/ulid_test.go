package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewULID(t *testing.T) {
	a, b := NewULID(), NewULID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
	assert.True(t, IsULID(a))
	assert.Less(t, a, b, "IDs generated in sequence sort in order")
}

func TestIsULID(t *testing.T) {
	assert.False(t, IsULID(""))
	assert.False(t, IsULID("not-a-ulid"))
	assert.False(t, IsULID("01J9Z3C8Q4"))
	assert.True(t, IsULID("01ARZ3NDEKTSV4RRFFQ69G5FAV"))
}
