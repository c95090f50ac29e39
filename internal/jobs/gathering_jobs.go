package jobs

import (
	"context"

	"boardlink-backend/internal/logger"
)

// CloseExpiredGatherings closes OPEN gatherings whose meet date has
// passed. Waitlists stay as they are; a closed gathering simply stops
// accepting joins.
func (jr *JobRunner) CloseExpiredGatherings() {
	jr.runWithRecovery("CloseExpiredGatherings", func() {
		ctx := context.Background()

		count, err := jr.store.Repos().Gatherings.CloseAllPast(ctx)
		if err != nil {
			logger.Error("Failed to close expired gatherings", "error", err)
			return
		}
		logger.Info("Closed expired gatherings", "count", count)
	})
}
