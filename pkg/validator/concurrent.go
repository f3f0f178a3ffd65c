package validator

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ApplyConcurrent is Apply spread over at most limit goroutines (no limit
// when limit <= 0). Failures are reported in rule order. It returns the
// context error if ctx is done before every rule has run.
func ApplyConcurrent(ctx context.Context, limit int, rules ...Rule) error {
	passed := make([]bool, len(rules))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, rule := range rules {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			passed[i] = rule.Check()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var errs ValidationErrors
	for i, ok := range passed {
		if !ok {
			errs = append(errs, rules[i].Error)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}
