package types

import (
	"math"
	"time"
)

const nanosPerMilli = 1_000_000

// Timeout is the wait bound carried by key query and claim requests. The
// wire format allows second counts beyond what time.Duration can hold, so it
// is kept as separate second and nanosecond parts rather than a Duration.
type Timeout struct {
	Secs  uint64 `json:"secs"`
	Nanos uint32 `json:"nanos"`
}

// TimeoutFrom converts a non-negative time.Duration into a Timeout.
func TimeoutFrom(d time.Duration) Timeout {
	if d < 0 {
		d = 0
	}
	return Timeout{
		Secs:  uint64(d / time.Second),
		Nanos: uint32(d % time.Second),
	}
}

// Millis returns the total number of whole milliseconds. ok is false when
// the count does not fit in a uint64.
func (t Timeout) Millis() (ms uint64, ok bool) {
	rem := uint64(t.Nanos) / nanosPerMilli
	if t.Secs > (math.MaxUint64-rem)/1000 {
		return 0, false
	}
	return t.Secs*1000 + rem, true
}
