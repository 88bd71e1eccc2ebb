package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"DoctorsPortal/models"
	"DoctorsPortal/role"
	"DoctorsPortal/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService struct {
	users  UserStore
	tokens TokenIssuer
	now    func() time.Time
}

func NewUserService(users UserStore, tokens TokenIssuer) *UserService {
	return &UserService{users: users, tokens: tokens, now: time.Now}
}

/*
* Users sign up without a role, promotion is a separate admin call
* A second signup with the same email is refused, not duplicated
 */
func (s *UserService) CreateUser(ctx context.Context, user *models.User) (*InsertResult, error) {
	user.Email = strings.TrimSpace(user.Email)
	refused := &InsertResult{Message: fmt.Sprintf(util.USER_ALREADY_EXISTS, user.Email)}

	_, err := s.users.FindByEmail(ctx, user.Email)
	if err == nil {
		return refused, nil
	}
	if !errors.Is(err, util.ErrNotFound) {
		log.Error().Err(err).Msg("Error while checking existing user")
		return nil, err
	}

	now := s.now()
	user.ID = primitive.NilObjectID
	user.Role = role.None
	user.CreatedAt = now
	user.UpdatedAt = now
	id, err := s.users.Insert(ctx, user)
	if errors.Is(err, util.ErrDuplicate) {
		return refused, nil
	}
	if err != nil {
		log.Error().Err(err).Msg("Error while inserting user")
		return nil, err
	}
	user.ID = id
	return &InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (s *UserService) FetchAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error while fetching users")
		return nil, err
	}
	return users, nil
}

// IsAdmin reports whether the email belongs to an admin. Unknown emails are not admins.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, util.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("Error while fetching user")
		return false, err
	}
	return role.IsAdmin(user.Role), nil
}

func (s *UserService) MakeAdmin(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return util.ErrInvalidID
	}
	if err := s.users.SetRole(ctx, objID, role.Admin); err != nil {
		log.Error().Err(err).Str("id", id).Msg("Error while promoting user")
		return err
	}
	log.Info().Str("id", id).Msg("user promoted to admin")
	return nil
}

/*
* Only emails with a user record get a token
* Unknown emails are unauthorized
 */
func (s *UserService) IssueToken(ctx context.Context, email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", fmt.Errorf("%w: %s", util.ErrInvalidInput, util.EMAIL_NOT_PROVIDED)
	}
	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return "", util.ErrUnauthorized
		}
		log.Error().Err(err).Str("email", email).Msg("Error while fetching user for token")
		return "", err
	}
	token, err := s.tokens.GenerateToken(email)
	if err != nil {
		log.Error().Err(err).Msg("Error while signing token")
		return "", err
	}
	return token, nil
}
