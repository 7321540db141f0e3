package tripgate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/db/models"
	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/enums"
	pkgerrors "github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/errors"
	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/logger"
)

// StartDecision is the outcome of the pre-departure eligibility check. When a
// trip is blocked, Reasons carries one human-readable line per failed check
// and Overridable tells the caller whether a supervisor may wave it through.
type StartDecision struct {
	Allowed     bool     `json:"allowed"`
	Reasons     []string `json:"reasons,omitempty"`
	Overridable bool     `json:"overridable"`
}

// Repository is the read surface the gate needs.
type Repository interface {
	Guide(ctx context.Context, guideID uuid.UUID) (*models.Guide, error)
	Trip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
}

// RiskReader exposes the newest safety assessment for a (trip, guide) pair.
// internal/risk's service satisfies it.
type RiskReader interface {
	Latest(ctx context.Context, tripID, guideID uuid.UUID) (*models.RiskAssessment, error)
}

// Service decides whether a guide may start a trip. requestedBy identifies
// the account asking; it never influences the decision, only the audit trail
// a supervisor reviews before overriding a block.
type Service interface {
	CanStart(ctx context.Context, tripID, guideID, requestedBy uuid.UUID) (*StartDecision, error)
}

type service struct {
	repo Repository
	risk RiskReader
	logg *logger.Logger
	now  func() time.Time
}

// ServiceParams configure the trip-start gate.
type ServiceParams struct {
	Repo   Repository
	Risk   RiskReader
	Logger *logger.Logger
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "tripgate repository required")
	}
	if params.Risk == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "risk reader required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "logger required")
	}
	return &service{repo: params.Repo, risk: params.Risk, logg: params.Logger, now: time.Now}, nil
}

func (s *service) CanStart(ctx context.Context, tripID, guideID, requestedBy uuid.UUID) (*StartDecision, error) {
	if tripID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "trip id required")
	}
	if guideID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "guide id required")
	}

	trip, err := s.repo.Trip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	guide, err := s.repo.Guide(ctx, guideID)
	if err != nil {
		return nil, err
	}

	var reasons []string

	switch trip.Status {
	case enums.TripStatusScheduled, enums.TripStatusPreparing:
		// eligible states
	default:
		reasons = append(reasons, fmt.Sprintf("trip is %s and cannot be started", trip.Status))
	}

	if !guide.Active {
		reasons = append(reasons, "guide is not active")
	}
	if !guide.CertificationValidAt(s.now().UTC()) {
		reasons = append(reasons, "guide certification is missing or expired")
	}

	assessment, err := s.risk.Latest(ctx, tripID, guideID)
	switch {
	case err != nil && pkgerrors.As(err) != nil && pkgerrors.As(err).Code() == pkgerrors.CodeNotFound:
		// No assessment on file counts as unsafe until someone scores the trip.
		reasons = append(reasons, "no risk assessment recorded for this trip")
	case err != nil:
		return nil, err
	case !assessment.IsSafe:
		reasons = append(reasons, fmt.Sprintf("latest risk assessment scored %d (%s risk)", assessment.Score, assessment.Level))
	}

	decision := &StartDecision{
		Allowed:     len(reasons) == 0,
		Reasons:     reasons,
		Overridable: len(reasons) > 0,
	}
	if !decision.Allowed {
		logCtx := s.logg.WithFields(ctx, map[string]any{
			"trip_id":      tripID.String(),
			"guide_id":     guideID.String(),
			"requested_by": requestedBy.String(),
			"reasons":      len(reasons),
		})
		s.logg.Info(logCtx, "trip start blocked")
	}
	return decision, nil
}
