package types_test

import (
	"math"
	"testing"
	"time"

	"outbox/internal/domain/types"
)

func TestTimeoutFromDuration(t *testing.T) {
	to := types.TimeoutFrom(10*time.Second + 500*time.Millisecond)
	if to.Secs != 10 || to.Nanos != 500_000_000 {
		t.Fatalf("got secs=%d nanos=%d, want 10/500000000", to.Secs, to.Nanos)
	}
	ms, ok := to.Millis()
	if !ok || ms != 10500 {
		t.Fatalf("Millis: got %d ok=%v, want 10500", ms, ok)
	}
}

func TestTimeoutFromNegativeClamps(t *testing.T) {
	to := types.TimeoutFrom(-time.Second)
	if to.Secs != 0 || to.Nanos != 0 {
		t.Fatalf("got secs=%d nanos=%d, want zero", to.Secs, to.Nanos)
	}
}

func TestTimeoutMillisBoundary(t *testing.T) {
	// math.MaxUint64 milliseconds exactly.
	to := types.Timeout{Secs: 18446744073709551, Nanos: 615_000_000}
	ms, ok := to.Millis()
	if !ok {
		t.Fatal("Millis reported overflow at the boundary")
	}
	if ms != math.MaxUint64 {
		t.Fatalf("got %d, want %d", ms, uint64(math.MaxUint64))
	}

	// One millisecond past.
	to.Nanos = 616_000_000
	if _, ok := to.Millis(); ok {
		t.Fatal("Millis accepted a count past uint64 range")
	}
}

func TestTimeoutMillisTruncatesSubMillisecond(t *testing.T) {
	to := types.Timeout{Secs: 1, Nanos: 999_999}
	ms, ok := to.Millis()
	if !ok || ms != 1000 {
		t.Fatalf("got %d ok=%v, want 1000", ms, ok)
	}
}
