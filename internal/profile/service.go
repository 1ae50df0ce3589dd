// Package profile validates submitted student profiles and moves them
// in and out of the profile store.
package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/muhammadolammi/futureframe/internal/database"
	"github.com/muhammadolammi/futureframe/internal/generator"
	"github.com/muhammadolammi/futureframe/internal/identity"
)

type Store interface {
	PutUserInfo(ctx context.Context, arg database.PutUserInfoParams) error
	GetUserInfo(ctx context.Context, userID string) (database.UserInfo, error)
}

type Service struct {
	store    Store
	validate *validator.Validate
	log      zerolog.Logger
	now      func() time.Time
}

func NewService(store Store, log zerolog.Logger) *Service {
	return &Service{
		store:    store,
		validate: newValidator(),
		log:      log.With().Str("component", "profile").Logger(),
		now:      time.Now,
	}
}

// Save validates form and replaces the stored profile of user with it.
// The creation date of an existing profile is kept. The written record is
// also placed in cache.
func (s *Service) Save(ctx context.Context, cache *RequestCache, user identity.User, form Form) (database.UserInfo, error) {
	form.normalize()
	if err := validateForm(s.validate, form); err != nil {
		return database.UserInfo{}, err
	}

	created := s.now().UTC()
	existing, err := s.Load(ctx, cache, user.Subject)
	switch {
	case err == nil:
		created = existing.CreationDate
	case !errors.Is(err, database.ErrNotFound):
		return database.UserInfo{}, fmt.Errorf("save profile: %w", err)
	}

	arg := database.PutUserInfoParams{
		UserID:         user.Subject,
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		Email:          form.Email,
		EducationLevel: form.EducationLevel,
		FieldOfStudy:   form.FieldOfStudy,
		Interests:      form.Interests,
		Skills:         ParseSkills(form.Skills),
		CareerGoals:    form.CareerGoals,
		CreationDate:   created,
	}
	if err := s.store.PutUserInfo(ctx, arg); err != nil {
		cache.forget(user.Subject)
		s.log.Error().Err(err).Str("user_id", user.Subject).Msg("failed to save profile")
		return database.UserInfo{}, fmt.Errorf("save profile: %w", err)
	}

	info := database.UserInfo{
		UserID:         arg.UserID,
		FirstName:      arg.FirstName,
		LastName:       arg.LastName,
		Email:          arg.Email,
		EducationLevel: arg.EducationLevel,
		FieldOfStudy:   arg.FieldOfStudy,
		Interests:      arg.Interests,
		Skills:         arg.Skills,
		CareerGoals:    arg.CareerGoals,
		CreationDate:   arg.CreationDate,
	}
	cache.store(info)
	s.log.Info().Str("user_id", user.Subject).Msg("profile saved")
	return info, nil
}

// Load returns database.ErrNotFound when the user has not saved a profile.
func (s *Service) Load(ctx context.Context, cache *RequestCache, userID string) (database.UserInfo, error) {
	info, err := cache.load(ctx, userID, s.store.GetUserInfo)
	if err != nil {
		return database.UserInfo{}, err
	}
	return info, nil
}

// CareerInput maps a stored profile onto the career recommendation inputs.
func CareerInput(info database.UserInfo) generator.CareerInput {
	return generator.CareerInput{
		EducationLevel: info.EducationLevel,
		FieldOfStudy:   info.FieldOfStudy,
		CareerGoals:    info.CareerGoals,
		Interests:      info.Interests,
		Skills:         info.Skills,
	}
}
