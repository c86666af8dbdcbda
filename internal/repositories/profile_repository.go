package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lingua/internal/models/db_models"
)

type ProfileRepository interface {
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error)
	Upsert(ctx context.Context, profile *db_models.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := r.db.WithContext(ctx).First(&profile, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Upsert(ctx context.Context, profile *db_models.Profile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"target_language", "level", "goals", "updated_at"}),
		}).
		Create(profile).Error
}
