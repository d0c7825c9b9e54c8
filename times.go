package sugar

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Unit is a time unit tag accepted by [Dur] and [Sleep].
type Unit int

const (
	Nano Unit = iota
	Micro
	Milli
	Sec
	Min
)

// String returns the unit's short name.
func (u Unit) String() string {
	switch u {
	case Nano:
		return "nano"
	case Micro:
		return "micro"
	case Milli:
		return "milli"
	case Sec:
		return "sec"
	case Min:
		return "min"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

func (u Unit) factor() time.Duration {
	switch u {
	case Nano:
		return time.Nanosecond
	case Micro:
		return time.Microsecond
	case Milli:
		return time.Millisecond
	case Sec:
		return time.Second
	case Min:
		// minutes convert through seconds: n*60 seconds
		return 60 * time.Second
	default:
		panic("sugar: invalid unit")
	}
}

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Dur converts n units into a [time.Duration] using the unit's fixed
// conversion factor. Panics if u is not a known [Unit].
func Dur[N integer](n N, u Unit) time.Duration {
	return time.Duration(n) * u.factor()
}

// Nanos returns n nanoseconds.
func Nanos[N integer](n N) time.Duration { return Dur(n, Nano) }

// Micros returns n microseconds.
func Micros[N integer](n N) time.Duration { return Dur(n, Micro) }

// Millis returns n milliseconds.
func Millis[N integer](n N) time.Duration { return Dur(n, Milli) }

// Secs returns n seconds.
func Secs[N integer](n N) time.Duration { return Dur(n, Sec) }

// Mins returns n minutes.
func Mins[N integer](n N) time.Duration { return Dur(n, Min) }

// Sleep blocks the calling goroutine for Dur(n, u). It has no
// cancellation or interruption semantics beyond [time.Sleep] itself.
func Sleep[N integer](n N, u Unit) {
	time.Sleep(Dur(n, u))
}

var (
	timedMu  sync.Mutex
	timedOut io.Writer = os.Stderr
)

// SetTimedOutput redirects the timing helpers' diagnostic stream and
// returns the previous writer. Pass [io.Discard] to silence them.
func SetTimedOutput(w io.Writer) io.Writer {
	timedMu.Lock()
	defer timedMu.Unlock()
	prev := timedOut
	timedOut = w
	return prev
}

func emitTimed(label string, elapsed time.Duration) {
	timedMu.Lock()
	defer timedMu.Unlock()
	fmt.Fprintf(timedOut, "%s %.6f seconds\n", label, elapsed.Seconds())
}

// Timed evaluates fn, writes the wall-clock elapsed time to the
// diagnostic stream as "label N.NNNNNN seconds", and returns fn's value
// unchanged.
func Timed[T any](label string, fn func() T) T {
	start := time.Now()
	v := fn()
	emitTimed(label, time.Since(start))
	return v
}

// TimedErr is [Timed] for functions that also return an error. Both
// returns pass through unchanged; the elapsed time is emitted either way.
func TimedErr[T any](label string, fn func() (T, error)) (T, error) {
	start := time.Now()
	v, err := fn()
	emitTimed(label, time.Since(start))
	return v, err
}

// Timed2 times two expressions independently, emitting one line per
// expression with the label suffixed by its position, and returns both
// values as a tuple.
func Timed2[A, B any](label string, fa func() A, fb func() B) (A, B) {
	a := Timed(label+"#0", fa)
	b := Timed(label+"#1", fb)
	return a, b
}

// Timed3 is [Timed2] for three expressions.
func Timed3[A, B, C any](label string, fa func() A, fb func() B, fc func() C) (A, B, C) {
	a := Timed(label+"#0", fa)
	b := Timed(label+"#1", fb)
	c := Timed(label+"#2", fc)
	return a, b, c
}
