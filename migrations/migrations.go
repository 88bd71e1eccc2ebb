package migrations

import (
	"context"
	"fmt"

	"DoctorsPortal/config/db"

	"github.com/rs/zerolog/log"
)

type migration struct {
	name string
	run  func(ctx context.Context, store *db.Store) error
}

var all = []migration{
	{"001_create_unique_indexes", CreateUniqueIndexes},
	{"002_backfill_booking_paid", BackfillBookingPaid},
	{"003_seed_appointment_options", SeedAppointmentOptions},
}

/*
* Every migration is idempotent and runs on each start
* Stop at the first failure
 */
func Run(ctx context.Context, store *db.Store) error {
	for _, m := range all {
		if err := m.run(ctx, store); err != nil {
			return fmt.Errorf("migration %s: %w", m.name, err)
		}
		log.Info().Str("migration", m.name).Msg("Migration applied")
	}
	return nil
}
