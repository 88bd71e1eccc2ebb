package migrations

import (
	"context"
	"time"

	"DoctorsPortal/config/db"
	"DoctorsPortal/models"
	"DoctorsPortal/repository"

	"github.com/rs/zerolog/log"
)

var defaultTreatments = []struct {
	Name  string
	Price float64
}{
	{"Teeth Orthodontics", 99},
	{"Cosmetic Dentistry", 79},
	{"Teeth Cleaning", 49},
	{"Cavity Protection", 59},
	{"Pediatric Dental", 69},
	{"Oral Surgery", 149},
}

// SeedAppointmentOptions fills an empty catalog with the default treatments.
func SeedAppointmentOptions(ctx context.Context, store *db.Store) error {
	repo := repository.NewAppointmentOptionRepository(store)
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := repo.InsertMany(ctx, DefaultCatalog()); err != nil {
		return err
	}
	log.Info().Int("treatments", len(defaultTreatments)).Msg("appointment options seeded")
	return nil
}

func DefaultCatalog() []models.AppointmentOption {
	slots := Generate30MinSlots("08:00", "13:00")
	catalog := make([]models.AppointmentOption, 0, len(defaultTreatments))
	for _, t := range defaultTreatments {
		catalog = append(catalog, models.AppointmentOption{
			Name:  t.Name,
			Price: t.Price,
			Slots: append([]string(nil), slots...),
		})
	}
	return catalog
}

// Generate30MinSlots labels every half hour between start and end, e.g.
// "08.00 AM - 08.30 AM". Bad input yields no slots.
func Generate30MinSlots(start string, end string) []string {
	layout := "15:04"
	startTime, err := time.Parse(layout, start)
	if err != nil {
		return nil
	}
	endTime, err := time.Parse(layout, end)
	if err != nil {
		return nil
	}

	slots := []string{}
	for startTime.Before(endTime) {
		slotEnd := startTime.Add(30 * time.Minute)
		slots = append(slots, startTime.Format("03.04 PM")+" - "+slotEnd.Format("03.04 PM"))
		startTime = slotEnd
	}
	return slots
}
