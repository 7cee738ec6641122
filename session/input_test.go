package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWeight(t *testing.T) {
	assert.Equal(t, 62.5, ParseWeight("62.5", 60))
	assert.Equal(t, 0.0, ParseWeight("0", 60))

	// Invalid or negative input keeps the prior value.
	assert.Equal(t, 60.0, ParseWeight("", 60))
	assert.Equal(t, 60.0, ParseWeight("heavy", 60))
	assert.Equal(t, 60.0, ParseWeight("-5", 60))
}

func TestParseRepetitions(t *testing.T) {
	assert.Equal(t, 12, ParseRepetitions("12", 8))
	assert.Equal(t, 0, ParseRepetitions("0", 8))

	assert.Equal(t, 8, ParseRepetitions("", 8))
	assert.Equal(t, 8, ParseRepetitions("many", 8))
	assert.Equal(t, 8, ParseRepetitions("-3", 8))
}
