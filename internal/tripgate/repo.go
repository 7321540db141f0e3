package tripgate

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/db/models"
	pkgerrors "github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/errors"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a tripgate repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Guide(ctx context.Context, guideID uuid.UUID) (*models.Guide, error) {
	var guide models.Guide
	err := r.db.WithContext(ctx).Where("id = ?", guideID).First(&guide).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "guide not found")
	}
	if err != nil {
		return nil, err
	}
	return &guide, nil
}

func (r *repository) Trip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.WithContext(ctx).Where("id = ?", tripID).First(&trip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "trip not found")
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}
