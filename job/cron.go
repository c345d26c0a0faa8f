// Package job hosts the scheduled maintenance tasks.
package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/clariohq/clario-backend/storage/postgres"
)

// StartOverdueSweep runs the daily batch that flips past-due open
// deadlines to overdue, and once immediately at startup so a restarted
// server does not wait a day to catch up.
func StartOverdueSweep(repo *postgres.DeadlineRepo) *cron.Cron {
	c := cron.New()

	sweep := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		n, err := repo.MarkOverdue(ctx, time.Now())
		if err != nil {
			log.Error().Err(err).Msg("overdue sweep failed")
			return
		}
		log.Info().Int64("updated", n).Msg("overdue sweep done")
	}

	if _, err := c.AddFunc("0 1 * * *", sweep); err != nil {
		log.Error().Err(err).Msg("schedule overdue sweep")
		return c
	}
	c.Start()
	go sweep()

	return c
}
