package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"DoctorsPortal/models"
	"DoctorsPortal/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DoctorService struct {
	doctors DoctorStore
	now     func() time.Time
}

func NewDoctorService(doctors DoctorStore) *DoctorService {
	return &DoctorService{doctors: doctors, now: time.Now}
}

/*
* Trim the fields and stamp who created the doctor
* Save to db
 */
func (s *DoctorService) CreateDoctor(ctx context.Context, doctor *models.Doctor, createdBy string) (primitive.ObjectID, error) {
	doctor.ID = primitive.NilObjectID
	doctor.Name = strings.TrimSpace(doctor.Name)
	doctor.Email = strings.TrimSpace(doctor.Email)
	doctor.Specialty = strings.TrimSpace(doctor.Specialty)
	doctor.CreatedAt = s.now()
	doctor.CreatedBy = createdBy

	id, err := s.doctors.Insert(ctx, doctor)
	if err != nil {
		log.Error().Err(err).Msg("Error while inserting doctor")
		return primitive.NilObjectID, err
	}
	doctor.ID = id
	return id, nil
}

func (s *DoctorService) FetchAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.doctors.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error while fetching doctors")
		return nil, err
	}
	return doctors, nil
}

func (s *DoctorService) DeleteDoctor(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return util.ErrInvalidID
	}
	if err := s.doctors.Delete(ctx, objID); err != nil {
		if !errors.Is(err, util.ErrNotFound) {
			log.Error().Err(err).Str("id", id).Msg("Error while deleting doctor")
		}
		return err
	}
	return nil
}
