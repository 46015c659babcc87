// Package report collects and presents the outcomes of the precision
// drivers. The arithmetic core is pure and silent; anything that times a
// loop or prints a number lives behind the Reporter interface here, so
// drivers inject it rather than baking output into the numeric code.
package report

import "time"

// Method is one way of computing a trial's value, together with how far
// it landed from the truth and how long it took. Elapsed is zero for
// methods that were not timed.
type Method struct {
	Name    string
	Value   float64
	AbsErr  float64
	Elapsed time.Duration
}

// Trial is one precision experiment: the expected value and the outcome
// of every method that attempted it.
type Trial struct {
	Name     string
	Expected float64
	Methods  []Method
}

// Best returns the method with the smallest absolute error, or nil when
// the trial has none. Ties go to the earlier method.
func (t Trial) Best() *Method {
	var best *Method
	for i := range t.Methods {
		if best == nil || t.Methods[i].AbsErr < best.AbsErr {
			best = &t.Methods[i]
		}
	}
	return best
}

// Reporter consumes trial outcomes. Implementations decide presentation;
// callers must bracket Report calls between Begin and End.
type Reporter interface {
	Begin(session string)
	Report(Trial)
	End()
}

// Stopwatch measures the wall-clock spans of the benchmark loops.
type Stopwatch struct {
	start time.Time
}

func NewStopwatch() *Stopwatch {
	return &Stopwatch{start: time.Now()}
}

func (s *Stopwatch) Reset() {
	s.start = time.Now()
}

func (s *Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}
