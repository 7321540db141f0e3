package risk

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/db/models"
	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/enums"
	pkgerrors "github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/errors"
	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/logger"
)

// Scoring weights. Wave height saturates at 4m and wind at 60km/h; beyond
// those the trip is as exposed as the factor can express.
const (
	waveSaturationM    = 4.0
	waveMaxPoints      = 15
	windSaturationKmh  = 60.0
	windMaxPoints      = 15
	crewNotReadyPoints = 15
	equipmentPoints    = 15

	maxScore = 100

	// safeThreshold is the highest score still considered safe to depart.
	// It coincides with the upper bound of the medium band, so a trip is
	// safe exactly when its level is low or medium.
	safeThreshold = 50

	lowBandMax    = 25
	mediumBandMax = safeThreshold
)

var weatherPoints = map[enums.WeatherCondition]int{
	enums.WeatherConditionClear:  0,
	enums.WeatherConditionCloudy: 10,
	enums.WeatherConditionRainy:  25,
	enums.WeatherConditionStormy: 40,
}

// Input carries the observed conditions for one pre-trip safety check.
// Missing pointer fields contribute zero points.
type Input struct {
	TripID            uuid.UUID
	GuideID           uuid.UUID
	WaveHeightM       *float64
	WindSpeedKmh      *float64
	Weather           *enums.WeatherCondition
	CrewReady         bool
	EquipmentComplete bool
	SubmittedBy       *uuid.UUID
}

// Assessment is the scored outcome of one safety check.
type Assessment struct {
	ID         uuid.UUID       `json:"id"`
	TripID     uuid.UUID       `json:"tripId"`
	GuideID    uuid.UUID       `json:"guideId"`
	Score      int             `json:"score"`
	Level      enums.RiskLevel `json:"level"`
	IsSafe     bool            `json:"isSafe"`
	Breakdown  map[string]int  `json:"breakdown"`
	AssessedAt time.Time       `json:"assessedAt"`
}

// Repository persists assessments. Rows are append-only; corrections insert a
// new row and the newest row wins.
type Repository interface {
	CreateAssessment(ctx context.Context, assessment *models.RiskAssessment) error
	LatestAssessment(ctx context.Context, tripID, guideID uuid.UUID) (*models.RiskAssessment, error)
}

// Service scores trip conditions and records the result.
type Service interface {
	Score(ctx context.Context, input Input) (*Assessment, error)
	Latest(ctx context.Context, tripID, guideID uuid.UUID) (*models.RiskAssessment, error)
}

type service struct {
	repo Repository
	logg *logger.Logger
	now  func() time.Time
}

// ServiceParams configure the risk service.
type ServiceParams struct {
	Repo   Repository
	Logger *logger.Logger
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "risk repository required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "logger required")
	}
	return &service{repo: params.Repo, logg: params.Logger, now: time.Now}, nil
}

func (s *service) Score(ctx context.Context, input Input) (*Assessment, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	breakdown := scoreBreakdown(input)
	score := 0
	for _, points := range breakdown {
		score += points
	}
	if score > maxScore {
		score = maxScore
	}

	level := bandFor(score)
	isSafe := score <= safeThreshold

	record := &models.RiskAssessment{
		ID:                uuid.New(),
		TripID:            input.TripID,
		GuideID:           input.GuideID,
		WaveHeightM:       input.WaveHeightM,
		WindSpeedKmh:      input.WindSpeedKmh,
		Weather:           input.Weather,
		CrewReady:         input.CrewReady,
		EquipmentComplete: input.EquipmentComplete,
		Score:             score,
		Level:             level,
		IsSafe:            isSafe,
		SubmittedBy:       input.SubmittedBy,
		CreatedAt:         s.now().UTC(),
	}
	if err := s.repo.CreateAssessment(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to persist risk assessment")
	}

	logCtx := s.logg.WithFields(ctx, map[string]any{
		"trip_id":  input.TripID.String(),
		"guide_id": input.GuideID.String(),
		"score":    score,
		"level":    level.String(),
	})
	s.logg.Info(logCtx, "risk assessment recorded")

	return &Assessment{
		ID:         record.ID,
		TripID:     record.TripID,
		GuideID:    record.GuideID,
		Score:      score,
		Level:      level,
		IsSafe:     isSafe,
		Breakdown:  breakdown,
		AssessedAt: record.CreatedAt,
	}, nil
}

func (s *service) Latest(ctx context.Context, tripID, guideID uuid.UUID) (*models.RiskAssessment, error) {
	return s.repo.LatestAssessment(ctx, tripID, guideID)
}

func validateInput(input Input) error {
	if input.TripID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "trip id required")
	}
	if input.GuideID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "guide id required")
	}
	if input.WaveHeightM != nil && *input.WaveHeightM < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "wave height cannot be negative")
	}
	if input.WindSpeedKmh != nil && *input.WindSpeedKmh < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "wind speed cannot be negative")
	}
	if input.Weather != nil && !input.Weather.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown weather condition").
			WithDetails(map[string]any{"weather": input.Weather.String()})
	}
	return nil
}

// scoreBreakdown is pure: the same input always produces the same points.
func scoreBreakdown(input Input) map[string]int {
	breakdown := map[string]int{}
	if input.WaveHeightM != nil {
		breakdown["wave"] = saturatedPoints(*input.WaveHeightM, waveSaturationM, waveMaxPoints)
	}
	if input.WindSpeedKmh != nil {
		breakdown["wind"] = saturatedPoints(*input.WindSpeedKmh, windSaturationKmh, windMaxPoints)
	}
	if input.Weather != nil {
		breakdown["weather"] = weatherPoints[*input.Weather]
	}
	if !input.CrewReady {
		breakdown["crew"] = crewNotReadyPoints
	}
	if !input.EquipmentComplete {
		breakdown["equipment"] = equipmentPoints
	}
	return breakdown
}

func saturatedPoints(value, saturation float64, maxPoints int) int {
	ratio := value / saturation
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round(ratio * float64(maxPoints)))
}

// bandFor is the single source of the score-to-level mapping.
func bandFor(score int) enums.RiskLevel {
	switch {
	case score <= lowBandMax:
		return enums.RiskLevelLow
	case score <= mediumBandMax:
		return enums.RiskLevelMedium
	default:
		return enums.RiskLevelHigh
	}
}
