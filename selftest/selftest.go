// Package selftest checks the behavioural contract of package stack at runtime.
package selftest

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"
	"github.com/stacklab/stacklab/log"
)

// Check is a single named property.
type Check struct {
	Name string
	Run  func() error
}

// Result is the outcome of one Check.
type Result struct {
	Name    string
	Err     error
	Elapsed time.Duration
}

// Passed reports whether the check succeeded.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Report aggregates the results of a run.
type Report struct {
	Results []Result
	Passed  int
	Failed  int
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Failures returns the failed results in run order.
func (r *Report) Failures() []Result {
	return lo.Filter(r.Results, func(res Result, _ int) bool {
		return !res.Passed()
	})
}

// Run executes checks in order. A failing or panicking check is recorded and the
// remaining checks still run. observe, if non-nil, is called after every check.
func Run(checks []Check, observe func(Result)) *Report {
	report := &Report{Results: make([]Result, 0, len(checks))}

	for _, check := range checks {
		res := runOne(check)
		report.Results = append(report.Results, res)

		if res.Passed() {
			report.Passed++
		} else {
			report.Failed++
			log.With(log.Fields{"check": res.Name}).Warn(res.Err)
		}

		if observe != nil {
			observe(res)
		}
	}

	log.Infof("selftest finished: %d passed, %d failed", report.Passed, report.Failed)
	return report
}

// Select returns the checks whose names are listed, preserving suite order.
// Unknown names are reported as an error.
func Select(checks []Check, names ...string) ([]Check, error) {
	known := lo.Map(checks, func(c Check, _ int) string { return c.Name })
	if unknown, _ := lo.Difference(names, known); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown checks: %v", unknown)
	}

	return lo.Filter(checks, func(c Check, _ int) bool {
		return slices.Contains(names, c.Name)
	}), nil
}

func runOne(check Check) (res Result) {
	res.Name = check.Name
	start := time.Now()

	defer func() {
		res.Elapsed = time.Since(start)
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("panic: %v", r)
		}
	}()

	if check.Run == nil {
		res.Err = errors.New("check has no body")
		return
	}

	res.Err = check.Run()
	return
}
