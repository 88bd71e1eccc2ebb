package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

type Reconciler interface {
	Reconcile(ctx context.Context) (int, error)
}

/*
* Schedule the payment reconciliation on the given cron spec
* Caller stops the returned scheduler on shutdown
 */
func StartPaymentReconciler(spec string, r Reconciler) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		log.Info().Msg("Running payment reconciliation...")
		RunReconciliation(context.Background(), r)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

// RunReconciliation flags bookings paid whose payment was stored but whose
// booking update never landed.
func RunReconciliation(ctx context.Context, r Reconciler) int {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	repaired, err := r.Reconcile(ctx)
	if err != nil {
		log.Error().Err(err).Int("repaired", repaired).Msg("Error while reconciling payments")
		return repaired
	}
	if repaired > 0 {
		log.Warn().Int("repaired", repaired).Msg("bookings marked paid by reconciliation")
	}
	return repaired
}
