package fold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.True(t, Equal("Gandalf the Grey", "gandalf THE grey"))
	assert.True(t, Equal("ÉLODIE", "élodie"))
	assert.False(t, Equal("Hans", "Hansel"))
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, HasPrefix("Albrecht", "al"))
	assert.True(t, HasPrefix("Albrecht", ""))
	assert.False(t, HasPrefix("Albrecht", "br"))
}
