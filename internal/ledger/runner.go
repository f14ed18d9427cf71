package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// Runner triggers a settlement sweep on a fixed interval. An interval of
// zero or less disables settlement entirely.
type Runner struct {
	ledger   *Ledger
	interval time.Duration
	log      zerolog.Logger
}

// NewRunner creates a settlement Runner.
func NewRunner(l *Ledger, interval time.Duration, log zerolog.Logger) *Runner {
	return &Runner{ledger: l, interval: interval, log: log}
}

// Run fires sweeps until ctx is cancelled. A sweep that is still queued
// when the next tick arrives is simply followed by another; the ledger
// worker serializes them.
func (r *Runner) Run(ctx context.Context) {
	if r.interval <= 0 {
		r.log.Info().Msg("settlement disabled")
		return
	}

	r.log.Info().Dur("interval", r.interval).Msg("settlement runner started")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Info().Msg("settlement runner stopped")
			return
		case <-ticker.C:
			n, err := r.ledger.SettleOnce(ctx)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					r.log.Error().Err(err).Msg("settlement sweep failed")
				}

				continue
			}

			if n > 0 {
				r.log.Debug().Int("processed", n).Msg("settlement sweep completed")
			}
		}
	}
}
