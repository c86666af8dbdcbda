package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"lingua/internal/models/db_models"
	"lingua/internal/models/request_models"
	"lingua/internal/models/response_models"
	"lingua/internal/repositories"
	"lingua/pkg/utils"
)

const defaultLevel = "Beginner"

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, req request_models.ProfileRequest) (*response_models.ProfileResponse, error)
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileServiceInterface {
	return &ProfileService{profileRepo: profileRepo}
}

// GetProfile returns an empty Beginner profile for users who never saved one.
func (s *ProfileService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if profile == nil {
		return &response_models.ProfileResponse{Level: defaultLevel}, nil
	}
	return toProfileResponse(profile), nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, accountID uuid.UUID, req request_models.ProfileRequest) (*response_models.ProfileResponse, error) {
	level := req.Level
	if level == "" {
		level = defaultLevel
	}

	profile := &db_models.Profile{
		AccountID:      accountID,
		TargetLanguage: req.TargetLanguage,
		Level:          level,
		Goals:          req.Goals,
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toProfileResponse(profile), nil
}

func toProfileResponse(p *db_models.Profile) *response_models.ProfileResponse {
	return &response_models.ProfileResponse{
		TargetLanguage: p.TargetLanguage,
		Level:          p.Level,
		Goals:          p.Goals,
	}
}
