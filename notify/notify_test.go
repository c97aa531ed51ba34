package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifyExpiresAfterDuration(t *testing.T) {
	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewCenterWithClock(func() time.Time { return current })

	c.Notify("Incident location set", 3*time.Second)

	got := c.Active()
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Incident location set", got[0].Message)
	}

	current = current.Add(3*time.Second + time.Millisecond)
	assert.Empty(t, c.Active())
}

func TestToastsCoexist(t *testing.T) {
	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewCenterWithClock(func() time.Time { return current })

	c.Notify("first", time.Second)
	c.Notify("second", 10*time.Second)
	c.Notify("third", 10*time.Second)

	assert.Len(t, c.Active(), 3)

	// Only the short-lived toast drops out.
	current = current.Add(2 * time.Second)
	got := c.Active()
	if assert.Len(t, got, 2) {
		assert.Equal(t, "second", got[0].Message)
		assert.Equal(t, "third", got[1].Message)
	}
}

func TestDefaultDuration(t *testing.T) {
	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewCenterWithClock(func() time.Time { return current })

	c.Notify("mode changed", 0)

	current = current.Add(DefaultDuration - time.Millisecond)
	assert.Len(t, c.Active(), 1)

	current = current.Add(2 * time.Millisecond)
	assert.Empty(t, c.Active())
}
