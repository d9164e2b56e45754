// Package selftest verifies that the web toolchain's configuration files are
// valid by running each tool against them.
package selftest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

type Result struct {
	Check    Check
	Status   Status
	ExitCode int
	Duration time.Duration
	Output   string
	Err      error
}

type Report struct {
	Results []Result
}

func (r *Report) count(status Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

func (r *Report) Passed() int { return r.count(StatusPassed) }
func (r *Report) Failed() int { return r.count(StatusFailed) }
func (r *Report) Skipped() int { return r.count(StatusSkipped) }

// OK is true only when every check ran and passed.
func (r *Report) OK() bool {
	return len(r.Results) > 0 && r.Passed() == len(r.Results)
}

// Err summarizes the failed and skipped checks, or returns nil when OK.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	if len(r.Results) == 0 {
		return errors.New("no checks ran")
	}

	var names []string
	for _, res := range r.Results {
		if res.Status != StatusPassed {
			names = append(names, res.Check.Name)
		}
	}
	return fmt.Errorf("%d of %d checks did not pass: %s", len(names), len(r.Results), strings.Join(names, ", "))
}

type Runner struct {
	executor Executor
	logger   logrus.FieldLogger
}

func NewRunner(executor Executor, logger logrus.FieldLogger) *Runner {
	return &Runner{executor: executor, logger: logger}
}

// Run executes checks one after another. A failing check is logged and the
// next one still runs; only cancellation of ctx stops the sequence early.
func (r *Runner) Run(ctx context.Context, checks []Check) *Report {
	report := &Report{Results: make([]Result, 0, len(checks))}

	for _, check := range checks {
		entry := r.logger.WithField("check", check.Name)

		if ctx.Err() != nil {
			report.Results = append(report.Results, Result{Check: check, Status: StatusSkipped, ExitCode: -1, Err: ctx.Err()})
			entry.Warn("skipped")
			continue
		}

		entry.WithField("command", commandLine(check)).Info("running check")

		res := Result{Check: check, Status: StatusFailed, ExitCode: -1}
		out, err := r.executor.Execute(ctx, check)
		if out != nil {
			res.ExitCode = out.ExitCode
			res.Duration = out.Duration
			res.Output = out.Output
		}

		switch {
		case err != nil:
			res.Err = err
			entry.WithError(err).Error("check could not run")
		case res.ExitCode != 0:
			res.Err = fmt.Errorf("exit code %d", res.ExitCode)
			entry.WithFields(logrus.Fields{
				"exit_code": res.ExitCode,
				"output":    res.Output,
			}).Warn("check failed")
		default:
			res.Status = StatusPassed
			entry.WithField("duration_ms", res.Duration.Milliseconds()).Info("check passed")
		}

		report.Results = append(report.Results, res)
	}

	return report
}

func commandLine(check Check) string {
	return strings.TrimSpace(check.Command + " " + strings.Join(check.Args, " "))
}
