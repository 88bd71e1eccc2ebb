package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"DoctorsPortal/config/redis"
	"DoctorsPortal/models"
	"DoctorsPortal/util"

	"github.com/rs/zerolog/log"
)

type AppointmentService struct {
	options  AppointmentOptionStore
	bookings BookingStore
	cache    redis.Cache
	cacheTTL time.Duration
}

func NewAppointmentService(options AppointmentOptionStore, bookings BookingStore, cache redis.Cache, cacheTTL time.Duration) *AppointmentService {
	if cache == nil {
		cache = redis.NoopCache{}
	}
	return &AppointmentService{options: options, bookings: bookings, cache: cache, cacheTTL: cacheTTL}
}

/*
* Load the catalog and the bookings of the given date
* Replace each option's slots with the ones still free
 */
func (s *AppointmentService) AvailableOptions(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	if strings.TrimSpace(date) == "" {
		return nil, fmt.Errorf("%w: %s", util.ErrInvalidInput, util.DATE_NOT_PROVIDED)
	}
	catalog, err := s.catalog(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error while fetching appointment options")
		return nil, err
	}
	booked, err := s.bookings.FindByDate(ctx, date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("Error while fetching bookings for date")
		return nil, err
	}
	return RemainingSlots(catalog, booked), nil
}

// RemainingSlots removes from every option the slots already booked for that
// option's treatment. Slot order is preserved and the input catalog is not
// modified. Booked slots unknown to the catalog are ignored.
func RemainingSlots(catalog []models.AppointmentOption, booked []models.Booking) []models.AppointmentOption {
	bookedSlots := make(map[string]map[string]struct{})
	for _, b := range booked {
		set, ok := bookedSlots[b.TreatmentName]
		if !ok {
			set = make(map[string]struct{})
			bookedSlots[b.TreatmentName] = set
		}
		set[b.Slot] = struct{}{}
	}

	out := make([]models.AppointmentOption, 0, len(catalog))
	for _, option := range catalog {
		taken := bookedSlots[option.Name]
		remaining := make([]string, 0, len(option.Slots))
		for _, slot := range option.Slots {
			if _, ok := taken[slot]; !ok {
				remaining = append(remaining, slot)
			}
		}
		option.Slots = remaining
		out = append(out, option)
	}
	return out
}

func (s *AppointmentService) Specialties(ctx context.Context) ([]models.Specialty, error) {
	names, err := s.options.Specialties(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error while fetching appointment specialties")
		return nil, err
	}
	return names, nil
}

// InvalidateCatalog drops the cached catalog after it has been changed.
func (s *AppointmentService) InvalidateCatalog(ctx context.Context) error {
	return s.cache.DeleteCache(ctx, util.AppointmentOptionsKey)
}

/*
* Try the cache first, a cache failure only costs a store read
* On a miss read the store and refill the cache
 */
func (s *AppointmentService) catalog(ctx context.Context) ([]models.AppointmentOption, error) {
	var cached []models.AppointmentOption
	hit, err := s.cache.GetCache(ctx, util.AppointmentOptionsKey, &cached)
	if err != nil {
		log.Warn().Err(err).Msg("Error from getCache for appointment options")
	}
	if hit && err == nil {
		return cached, nil
	}

	catalog, err := s.options.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetCache(ctx, util.AppointmentOptionsKey, catalog, s.cacheTTL); err != nil {
		log.Warn().Err(err).Msg("Error from setCache for appointment options")
	}
	return catalog, nil
}
