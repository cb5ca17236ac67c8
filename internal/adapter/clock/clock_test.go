package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManual_NowAdvances(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewManual(start)

	assert.Equal(t, start, c.Now())

	c.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), c.Now())
}

func TestManual_AfterFiresOnDeadline(t *testing.T) {
	c := NewManual(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	ch := c.After(3 * time.Second)

	c.Advance(2 * time.Second)
	select {
	case <-ch:
		t.Fatal("fired before deadline")
	default:
	}

	c.Advance(time.Second)
	select {
	case <-ch:
	default:
		t.Fatal("did not fire at deadline")
	}
}

func TestManual_TickFiresPerPeriod(t *testing.T) {
	c := NewManual(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	ch, stop := c.Tick(time.Second)
	defer stop()

	c.Advance(3500 * time.Millisecond)

	var fired int
	for {
		select {
		case <-ch:
			fired++
			continue
		default:
		}
		break
	}
	assert.Equal(t, 3, fired)
}

func TestManual_StoppedTickerStopsFiring(t *testing.T) {
	c := NewManual(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	ch, stop := c.Tick(time.Second)
	stop()

	c.Advance(5 * time.Second)
	select {
	case <-ch:
		t.Fatal("stopped ticker fired")
	default:
	}
}

func TestSystem_AfterAndTick(t *testing.T) {
	c := NewSystem()

	require.False(t, c.Now().IsZero())

	ch := c.After(time.Millisecond)
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("After never fired")
	}

	tick, stop := c.Tick(time.Millisecond)
	defer stop()
	select {
	case <-tick:
	case <-time.After(time.Second):
		t.Fatal("Tick never fired")
	}
}
