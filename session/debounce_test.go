package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebounceLatestScheduleWins(t *testing.T) {
	d := NewDebouncer(2 * time.Second)

	first := d.Schedule()
	assert.True(t, d.Due(first))

	// A later mutation supersedes the pending save.
	second := d.Schedule()
	assert.False(t, d.Due(first), "superseded timers must not fire a save")
	assert.True(t, d.Due(second))

	third := d.Schedule()
	assert.False(t, d.Due(second))
	assert.True(t, d.Due(third))
}

func TestDebounceDelay(t *testing.T) {
	d := NewDebouncer(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, d.Delay())
}
