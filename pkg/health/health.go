// pkg/health/health.go
package health

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Check – одна проверка окружения.
type Check struct {
	Name string
	Run  func(ctx context.Context) error
}

// Result – итог одной проверки.
type Result struct {
	Name     string
	Err      error
	Duration time.Duration
}

// OK сообщает, прошла ли проверка.
func (r Result) OK() bool {
	return r.Err == nil
}

// Run выполняет проверки по очереди; каждая получает свой таймаут.
func Run(ctx context.Context, timeout time.Duration, checks ...Check) []Result {
	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		cctx, cancel := context.WithTimeout(ctx, timeout)
		start := time.Now()
		err := c.Run(cctx)
		cancel()
		results = append(results, Result{Name: c.Name, Err: err, Duration: time.Since(start)})
	}
	return results
}

// Report печатает результаты и возвращает число неудачных проверок.
func Report(w io.Writer, results []Result) int {
	failed := 0
	for _, r := range results {
		if r.OK() {
			fmt.Fprintf(w, "OK    %-10s %s\n", r.Name, r.Duration.Round(time.Millisecond))
			continue
		}
		failed++
		fmt.Fprintf(w, "FAIL  %-10s %v\n", r.Name, r.Err)
	}
	return failed
}
