// Package fallback evaluates ordered candidates and commits to the first success.
package fallback

import (
	"errors"
	"fmt"

	"github.com/conn-castle/systemd-pixi-generator/internal/messages"
)

// ErrNoCandidates is returned when First is called without candidates.
var ErrNoCandidates = errors.New(messages.FallbackNoCandidates)

// Candidate is one named attempt in a fallback chain.
type Candidate[T any] struct {
	// Name identifies the attempt in aggregated errors, usually a path.
	Name string
	Try  func() (T, error)
}

// Attempt records a failed candidate.
type Attempt struct {
	Name string
	Err  error
}

// Result reports the winning candidate and the failures that preceded it.
type Result[T any] struct {
	Value  T
	Name   string
	Failed []Attempt
}

// First tries candidates in order and returns the first success.
// Later candidates are not evaluated once one succeeds. When every candidate fails,
// the returned error joins all attempt errors in order.
func First[T any](candidates ...Candidate[T]) (Result[T], error) {
	var res Result[T]
	if len(candidates) == 0 {
		return res, ErrNoCandidates
	}
	for _, c := range candidates {
		value, err := c.Try()
		if err == nil {
			res.Value = value
			res.Name = c.Name
			return res, nil
		}
		res.Failed = append(res.Failed, Attempt{Name: c.Name, Err: err})
	}
	return res, res.Err()
}

// Err joins the failed attempts, or returns nil when there are none.
func (r Result[T]) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Failed))
	for _, a := range r.Failed {
		errs = append(errs, fmt.Errorf(messages.FallbackAttemptFmt, a.Name, a.Err))
	}
	return errors.Join(errs...)
}
