package risk

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

// NewRepository builds a risk repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateAssessment(ctx context.Context, assessment *models.RiskAssessment) error {
	return r.db.WithContext(ctx).Create(assessment).Error
}

func (r *repository) LatestAssessment(ctx context.Context, tripID, guideID uuid.UUID) (*models.RiskAssessment, error) {
	var assessment models.RiskAssessment
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND guide_id = ?", tripID, guideID).
		Order("created_at DESC").
		First(&assessment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "no risk assessment recorded")
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}
