package payroll

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

// GatekeeperResult reports one reconciliation run. UpdatedCount counts only
// records whose status or documentation flag actually changed, so re-running
// over unchanged data yields zero.
type GatekeeperResult struct {
	UpdatedCount int
	SkippedCount int
	FailedCount  int
}

type paymentReader interface {
	SalaryPaymentsInPeriod(ctx context.Context, start, end time.Time) ([]models.SalaryPayment, error)
}

type tripReader interface {
	TripsForGuideInPeriod(ctx context.Context, guideID uuid.UUID, start, end time.Time) ([]models.Trip, error)
	TripPassengerCount(ctx context.Context, tripID uuid.UUID) (int, error)
	ReturnedManifestCount(ctx context.Context, tripID uuid.UUID) (int, error)
}

type paymentWriter interface {
	UpdateSalaryPayment(ctx context.Context, paymentID uuid.UUID, updates map[string]any) error
}

// GatekeeperParams configure the payroll readiness job.
type GatekeeperParams struct {
	Logger   *logger.Logger
	Payments paymentReader
	Trips    tripReader
	Writer   paymentWriter
}

// Gatekeeper flags payroll records as ready once every trip in the guide's
// period carries documentation and a fully reconciled manifest. It satisfies
// the cron Job interface.
type Gatekeeper struct {
	logg     *logger.Logger
	payments paymentReader
	trips    tripReader
	writer   paymentWriter
	now      func() time.Time
}

// NewGatekeeper builds the payroll gatekeeper job.
func NewGatekeeper(params GatekeeperParams) (*Gatekeeper, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Payments == nil {
		return nil, fmt.Errorf("payment reader required")
	}
	if params.Trips == nil {
		return nil, fmt.Errorf("trip reader required")
	}
	if params.Writer == nil {
		return nil, fmt.Errorf("payment writer required")
	}
	return &Gatekeeper{
		logg:     params.Logger,
		payments: params.Payments,
		trips:    params.Trips,
		writer:   params.Writer,
		now:      time.Now,
	}, nil
}

func (g *Gatekeeper) Name() string { return "payroll-gatekeeper" }

// Run reconciles the current calendar month.
func (g *Gatekeeper) Run(ctx context.Context) error {
	now := g.now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	result, err := g.RunPeriod(ctx, start, end)
	if err != nil {
		return err
	}
	logCtx := g.logg.WithFields(ctx, map[string]any{
		"updated": result.UpdatedCount,
		"skipped": result.SkippedCount,
		"failed":  result.FailedCount,
	})
	g.logg.Info(logCtx, "payroll gatekeeper run complete")
	return nil
}

// RunPeriod reconciles every payroll record overlapping the given window. A
// failure on one record is logged and skipped; only a failure listing the
// records themselves aborts the run.
func (g *Gatekeeper) RunPeriod(ctx context.Context, start, end time.Time) (GatekeeperResult, error) {
	result := GatekeeperResult{}
	if !end.After(start) {
		return result, pkgerrors.New(pkgerrors.CodeValidation, "period end must be after start")
	}

	payments, err := g.payments.SalaryPaymentsInPeriod(ctx, start, end)
	if err != nil {
		return result, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to list payroll records")
	}

	for _, payment := range payments {
		updated, err := g.reconcile(ctx, payment)
		if err != nil {
			result.FailedCount++
			logCtx := g.logg.WithFields(ctx, map[string]any{
				"payment_id": payment.ID.String(),
				"guide_id":   payment.GuideID.String(),
			})
			g.logg.Warn(logCtx, "payroll record reconciliation failed: "+err.Error())
			continue
		}
		if updated {
			result.UpdatedCount++
		} else {
			result.SkippedCount++
		}
	}
	return result, nil
}

// reconcile runs the readiness checks for one payroll record and reports
// whether anything was written.
func (g *Gatekeeper) reconcile(ctx context.Context, payment models.SalaryPayment) (bool, error) {
	// ready and paid records have progressed beyond the gatekeeper.
	if !payment.Status.CanAdvanceToReady() {
		return false, nil
	}

	periodStart, periodEnd := payment.PeriodWindow()
	trips, err := g.trips.TripsForGuideInPeriod(ctx, payment.GuideID, periodStart, periodEnd)
	if err != nil {
		return false, err
	}
	// A guide with no trips in-period cannot be gated on trip completeness.
	if len(trips) == 0 {
		return false, nil
	}

	allOk := true
	for _, trip := range trips {
		ok, err := g.tripComplete(ctx, trip)
		if err != nil {
			return false, err
		}
		if !ok {
			allOk = false
			break
		}
	}

	if allOk {
		err := g.writer.UpdateSalaryPayment(ctx, payment.ID, map[string]any{
			"all_docs_uploaded": true,
			"status":            enums.SalaryPaymentStatusReady,
		})
		if err != nil {
			return false, err
		}
		return true, nil
	}

	if payment.Status == enums.SalaryPaymentStatusDocumentationRequired && !payment.AllDocsUploaded {
		return false, nil
	}
	err = g.writer.UpdateSalaryPayment(ctx, payment.ID, map[string]any{
		"all_docs_uploaded": false,
		"status":            enums.SalaryPaymentStatusDocumentationRequired,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// tripComplete checks the documentation and manifest invariants for one trip.
func (g *Gatekeeper) tripComplete(ctx context.Context, trip models.Trip) (bool, error) {
	if trip.DocumentationURL == nil || *trip.DocumentationURL == "" {
		return false, nil
	}

	passengers, err := g.trips.TripPassengerCount(ctx, trip.ID)
	if err != nil {
		return false, err
	}
	if passengers == 0 {
		return true, nil
	}
	returned, err := g.trips.ReturnedManifestCount(ctx, trip.ID)
	if err != nil {
		return false, err
	}
	return returned >= passengers, nil
}
