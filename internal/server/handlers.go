package server

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/muhammadolammi/futureframe/internal/database"
	"github.com/muhammadolammi/futureframe/internal/generator"
	"github.com/muhammadolammi/futureframe/internal/identity"
	"github.com/muhammadolammi/futureframe/internal/profile"
)

const careersPath = "/api/v1/careers"

type Profiles interface {
	Save(ctx context.Context, cache *profile.RequestCache, user identity.User, form profile.Form) (database.UserInfo, error)
	Load(ctx context.Context, cache *profile.RequestCache, userID string) (database.UserInfo, error)
}

type Recommender interface {
	RecommendCareers(ctx context.Context, in generator.CareerInput) ([]generator.CareerRecommendation, error)
	GenerateSkillPipeline(ctx context.Context, jobTitle string) (*generator.SkillPipeline, error)
}

type handlers struct {
	profiles  Profiles
	generator Recommender
}

type meResponse struct {
	User    identity.User      `json:"user"`
	Profile *database.UserInfo `json:"profile"`
}

type savedProfileResponse struct {
	Profile database.UserInfo `json:"profile"`
	Next    string            `json:"next"`
}

type skillPipelineRequest struct {
	JobTitle string `json:"job_title"`
}

func (h *handlers) health(c fiber.Ctx) error {
	return Success(c, fiber.StatusOK, MessageOK, nil)
}

func (h *handlers) me(c fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return NewAppError(fiber.StatusUnauthorized, "Please log in to continue", nil, nil)
	}

	res := meResponse{User: user}
	info, err := h.profiles.Load(c.Context(), requestCache(c), user.Subject)
	switch {
	case err == nil:
		res.Profile = &info
	case errors.Is(err, database.ErrNotFound):
	default:
		return NewAppError(fiber.StatusInternalServerError, "Failed to load profile", nil, err)
	}
	return Success(c, fiber.StatusOK, MessageOK, res)
}

func (h *handlers) getProfile(c fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return NewAppError(fiber.StatusUnauthorized, "Please log in to continue", nil, nil)
	}

	info, err := h.profiles.Load(c.Context(), requestCache(c), user.Subject)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
		}
		return NewAppError(fiber.StatusInternalServerError, "Failed to load profile", nil, err)
	}
	return Success(c, fiber.StatusOK, MessageOK, info)
}

func (h *handlers) putProfile(c fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return NewAppError(fiber.StatusUnauthorized, "Please log in to continue", nil, nil)
	}

	var form profile.Form
	if err := c.Bind().Body(&form); err != nil {
		return NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	info, err := h.profiles.Save(c.Context(), requestCache(c), user, form)
	if err != nil {
		var verr *profile.ValidationError
		switch {
		case errors.As(err, &verr):
			return NewAppError(fiber.StatusBadRequest, "Please fill in all required fields", verr.Fields, err)
		case errors.Is(err, profile.ErrInvalidProfile):
			return NewAppError(fiber.StatusBadRequest, "Invalid profile", nil, err)
		case database.IsKind(err, database.KindValidation):
			return NewAppError(fiber.StatusBadRequest, "Profile was rejected by the store", nil, err)
		}
		return NewAppError(fiber.StatusInternalServerError, "Failed to save profile", nil, err)
	}

	return Success(c, fiber.StatusOK, "Profile saved successfully", savedProfileResponse{Profile: info, Next: careersPath})
}

func (h *handlers) careers(c fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return NewAppError(fiber.StatusUnauthorized, "Please log in to continue", nil, nil)
	}

	info, err := h.profiles.Load(c.Context(), requestCache(c), user.Subject)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return NewAppError(fiber.StatusNotFound, "Complete your profile to get career recommendations", nil, err)
		}
		return NewAppError(fiber.StatusInternalServerError, "Failed to load profile", nil, err)
	}

	ctx := generator.WithUserID(c.Context(), user.Subject)
	careers, err := h.generator.RecommendCareers(ctx, profile.CareerInput(info))
	if err != nil {
		return generationError(err)
	}
	return Success(c, fiber.StatusOK, MessageOK, careers)
}

func (h *handlers) skillPipeline(c fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return NewAppError(fiber.StatusUnauthorized, "Please log in to continue", nil, nil)
	}

	var req skillPipelineRequest
	if err := c.Bind().Body(&req); err != nil {
		return NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	ctx := generator.WithUserID(c.Context(), user.Subject)
	pipeline, err := h.generator.GenerateSkillPipeline(ctx, req.JobTitle)
	if err != nil {
		return generationError(err)
	}
	return Success(c, fiber.StatusOK, MessageOK, pipeline)
}

func generationError(err error) *AppError {
	switch {
	case errors.Is(err, generator.ErrInvalidInput):
		return NewAppError(fiber.StatusBadRequest, "Please enter a job title", nil, err)
	case errors.Is(err, generator.ErrTimeout):
		return &AppError{StatusCode: fiber.StatusGatewayTimeout, Message: err.Error(), Cause: err, Expose: true}
	default:
		return &AppError{StatusCode: fiber.StatusBadGateway, Message: err.Error(), Cause: err, Expose: true}
	}
}
