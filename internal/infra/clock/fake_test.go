package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFake_AdvanceFiresInDeadlineOrder(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	fake := NewFake(start)

	var fired []string
	fake.AfterFunc(20*time.Second, func() { fired = append(fired, "b") })
	fake.AfterFunc(10*time.Second, func() { fired = append(fired, "a") })
	fake.AfterFunc(time.Minute, func() { fired = append(fired, "c") })

	fake.Advance(30 * time.Second)

	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, start.Add(30*time.Second), fake.Now())
	assert.Equal(t, 1, fake.Pending())
}

func TestFake_StopPreventsFire(t *testing.T) {
	fake := NewFake(time.Unix(0, 0))
	fired := false
	timer := fake.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	fake.Advance(time.Minute)
	assert.False(t, fired)
	assert.Equal(t, 0, fake.Pending())
}

func TestFake_CallbackCanScheduleAnotherTimer(t *testing.T) {
	fake := NewFake(time.Unix(0, 0))
	count := 0
	var schedule func()
	schedule = func() {
		count++
		fake.AfterFunc(10*time.Second, schedule)
	}
	fake.AfterFunc(10*time.Second, schedule)

	fake.Advance(35 * time.Second)

	assert.Equal(t, 3, count)
}

func TestFake_StopAfterFireReturnsFalse(t *testing.T) {
	fake := NewFake(time.Unix(0, 0))
	timer := fake.AfterFunc(time.Second, func() {})

	fake.Advance(time.Second)

	assert.False(t, timer.Stop())
}
