package payroll

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/db/models"
	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/enums"
	pkgerrors "github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/errors"
	"github.com/andrimuhyidin/aerotravel-apps-sub020/pkg/logger"
)

type fakeStore struct {
	payments  []models.SalaryPayment
	trips     map[uuid.UUID][]models.Trip
	boarded   map[uuid.UUID]int
	returned  map[uuid.UUID]int
	tripsErr  map[uuid.UUID]error
	updates   map[uuid.UUID]map[string]any
	writeFail bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		trips:    map[uuid.UUID][]models.Trip{},
		boarded:  map[uuid.UUID]int{},
		returned: map[uuid.UUID]int{},
		tripsErr: map[uuid.UUID]error{},
		updates:  map[uuid.UUID]map[string]any{},
	}
}

func (f *fakeStore) SalaryPaymentsInPeriod(ctx context.Context, start, end time.Time) ([]models.SalaryPayment, error) {
	return f.payments, nil
}

func (f *fakeStore) TripsForGuideInPeriod(ctx context.Context, guideID uuid.UUID, start, end time.Time) ([]models.Trip, error) {
	if err := f.tripsErr[guideID]; err != nil {
		return nil, err
	}
	var trips []models.Trip
	for _, trip := range f.trips[guideID] {
		if !trip.ScheduledDate.Before(start) && trip.ScheduledDate.Before(end) {
			trips = append(trips, trip)
		}
	}
	return trips, nil
}

func (f *fakeStore) TripPassengerCount(ctx context.Context, tripID uuid.UUID) (int, error) {
	return f.boarded[tripID], nil
}

func (f *fakeStore) ReturnedManifestCount(ctx context.Context, tripID uuid.UUID) (int, error) {
	return f.returned[tripID], nil
}

func (f *fakeStore) UpdateSalaryPayment(ctx context.Context, paymentID uuid.UUID, updates map[string]any) error {
	if f.writeFail {
		return pkgerrors.New(pkgerrors.CodeDependency, "write failed")
	}
	f.updates[paymentID] = updates

	// Mirror the write so a second run sees the stored state.
	for i := range f.payments {
		if f.payments[i].ID != paymentID {
			continue
		}
		if status, ok := updates["status"].(enums.SalaryPaymentStatus); ok {
			f.payments[i].Status = status
		}
		if docs, ok := updates["all_docs_uploaded"].(bool); ok {
			f.payments[i].AllDocsUploaded = docs
		}
	}
	return nil
}

func newTestGatekeeper(t *testing.T, store *fakeStore) *Gatekeeper {
	t.Helper()
	job, err := NewGatekeeper(GatekeeperParams{
		Logger:   logger.New(logger.Options{ServiceName: "payroll-test", Output: io.Discard}),
		Payments: store,
		Trips:    store,
		Writer:   store,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return job
}

func testWindow() (time.Time, time.Time) {
	start := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func pendingPayment(guideID uuid.UUID) models.SalaryPayment {
	start, end := testWindow()
	return models.SalaryPayment{
		ID:          uuid.New(),
		GuideID:     guideID,
		PeriodStart: start,
		PeriodEnd:   end.AddDate(0, 0, -1), // inclusive last day of the period
		Status:      enums.SalaryPaymentStatusPending,
	}
}

func documentedTrip(passengers int) models.Trip {
	url := "https://docs.example.com/trip-report.pdf"
	return models.Trip{
		ID:               uuid.New(),
		Title:            "Snorkel Run",
		ScheduledDate:    time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC),
		DocumentationURL: &url,
		TotalPassengers:  passengers,
	}
}

func TestGatekeeperMarksCompletePeriodReady(t *testing.T) {
	guideID := uuid.New()
	store := newFakeStore()
	store.payments = []models.SalaryPayment{pendingPayment(guideID)}

	for _, guests := range []int{8, 12, 5} {
		trip := documentedTrip(guests)
		store.trips[guideID] = append(store.trips[guideID], trip)
		store.boarded[trip.ID] = guests
		store.returned[trip.ID] = guests
	}

	job := newTestGatekeeper(t, store)
	start, end := testWindow()
	result, err := job.RunPeriod(context.Background(), start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.UpdatedCount != 1 {
		t.Fatalf("expected 1 update, got %d", result.UpdatedCount)
	}
	if store.payments[0].Status != enums.SalaryPaymentStatusReady {
		t.Fatalf("expected ready, got %s", store.payments[0].Status)
	}
	if !store.payments[0].AllDocsUploaded {
		t.Fatalf("expected all_docs_uploaded set")
	}
}

func TestGatekeeperIdempotent(t *testing.T) {
	guideID := uuid.New()
	store := newFakeStore()
	store.payments = []models.SalaryPayment{pendingPayment(guideID)}

	trip := documentedTrip(4)
	store.trips[guideID] = []models.Trip{trip}
	store.boarded[trip.ID] = 4
	store.returned[trip.ID] = 4

	job := newTestGatekeeper(t, store)
	start, end := testWindow()

	first, err := job.RunPeriod(context.Background(), start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := job.RunPeriod(context.Background(), start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.UpdatedCount != 1 || second.UpdatedCount != 0 {
		t.Fatalf("expected counts 1 then 0, got %d then %d", first.UpdatedCount, second.UpdatedCount)
	}
	if store.payments[0].Status != enums.SalaryPaymentStatusReady {
		t.Fatalf("expected record to stay ready")
	}
}

func TestGatekeeperGatesTripOnPeriodLastDay(t *testing.T) {
	guideID := uuid.New()
	store := newFakeStore()
	payment := pendingPayment(guideID)
	store.payments = []models.SalaryPayment{payment}

	documented := documentedTrip(6)
	store.boarded[documented.ID] = 6
	store.returned[documented.ID] = 6

	// Scheduled on the period's inclusive last day and still undocumented:
	// it must block readiness.
	lastDay := models.Trip{
		ID:            uuid.New(),
		Title:         "Month-End Run",
		ScheduledDate: payment.PeriodEnd,
	}
	store.trips[guideID] = []models.Trip{documented, lastDay}

	job := newTestGatekeeper(t, store)
	start, end := testWindow()
	if _, err := job.RunPeriod(context.Background(), start, end); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.payments[0].Status != enums.SalaryPaymentStatusDocumentationRequired {
		t.Fatalf("expected documentation_required, got %s", store.payments[0].Status)
	}
	if store.payments[0].AllDocsUploaded {
		t.Fatalf("expected all_docs_uploaded to stay false")
	}
}

func TestGatekeeperMissingDocumentation(t *testing.T) {
	guideID := uuid.New()
	store := newFakeStore()
	store.payments = []models.SalaryPayment{pendingPayment(guideID)}

	undocumented := models.Trip{
		ID:            uuid.New(),
		Title:         "No Report Yet",
		ScheduledDate: time.Date(2026, time.June, 12, 0, 0, 0, 0, time.UTC),
	}
	store.trips[guideID] = []models.Trip{undocumented}

	job := newTestGatekeeper(t, store)
	start, end := testWindow()
	result, err := job.RunPeriod(context.Background(), start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.UpdatedCount != 1 {
		t.Fatalf("expected transition to documentation_required, got %d updates", result.UpdatedCount)
	}
	if store.payments[0].Status != enums.SalaryPaymentStatusDocumentationRequired {
		t.Fatalf("expected documentation_required, got %s", store.payments[0].Status)
	}

	// Re-running without new documentation is a no-op.
	again, err := job.RunPeriod(context.Background(), start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.UpdatedCount != 0 {
		t.Fatalf("expected no further updates, got %d", again.UpdatedCount)
	}
}

func TestGatekeeperUnreconciledManifestBlocksReadiness(t *testing.T) {
	guideID := uuid.New()
	store := newFakeStore()
	store.payments = []models.SalaryPayment{pendingPayment(guideID)}

	trip := documentedTrip(10)
	store.trips[guideID] = []models.Trip{trip}
	store.boarded[trip.ID] = 10
	store.returned[trip.ID] = 9 // one passenger never checked back in

	job := newTestGatekeeper(t, store)
	start, end := testWindow()
	if _, err := job.RunPeriod(context.Background(), start, end); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.payments[0].Status != enums.SalaryPaymentStatusDocumentationRequired {
		t.Fatalf("expected documentation_required, got %s", store.payments[0].Status)
	}
}

func TestGatekeeperZeroPassengerTripNeedsOnlyDocs(t *testing.T) {
	guideID := uuid.New()
	store := newFakeStore()
	store.payments = []models.SalaryPayment{pendingPayment(guideID)}

	trip := documentedTrip(0)
	store.trips[guideID] = []models.Trip{trip}

	job := newTestGatekeeper(t, store)
	start, end := testWindow()
	if _, err := job.RunPeriod(context.Background(), start, end); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.payments[0].Status != enums.SalaryPaymentStatusReady {
		t.Fatalf("expected ready for zero-passenger trip, got %s", store.payments[0].Status)
	}
}

func TestGatekeeperSkipsGuidesWithoutTrips(t *testing.T) {
	store := newFakeStore()
	store.payments = []models.SalaryPayment{pendingPayment(uuid.New())}

	job := newTestGatekeeper(t, store)
	start, end := testWindow()
	result, err := job.RunPeriod(context.Background(), start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.UpdatedCount != 0 || result.SkippedCount != 1 {
		t.Fatalf("expected skip, got %+v", result)
	}
	if store.payments[0].Status != enums.SalaryPaymentStatusPending {
		t.Fatalf("expected record untouched, got %s", store.payments[0].Status)
	}
}

func TestGatekeeperNeverRegressesPaidRecords(t *testing.T) {
	guideID := uuid.New()
	paid := pendingPayment(guideID)
	paid.Status = enums.SalaryPaymentStatusPaid
	paid.AllDocsUploaded = true

	store := newFakeStore()
	store.payments = []models.SalaryPayment{paid}
	undocumented := models.Trip{
		ID:            uuid.New(),
		Title:         "Missing Docs",
		ScheduledDate: time.Date(2026, time.June, 12, 0, 0, 0, 0, time.UTC),
	}
	store.trips[guideID] = []models.Trip{undocumented}

	job := newTestGatekeeper(t, store)
	start, end := testWindow()
	result, err := job.RunPeriod(context.Background(), start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.UpdatedCount != 0 {
		t.Fatalf("expected no updates, got %d", result.UpdatedCount)
	}
	if store.payments[0].Status != enums.SalaryPaymentStatusPaid {
		t.Fatalf("paid record must never change, got %s", store.payments[0].Status)
	}
}

func TestGatekeeperContinuesPastFailingRecord(t *testing.T) {
	brokenGuide := uuid.New()
	healthyGuide := uuid.New()

	store := newFakeStore()
	store.payments = []models.SalaryPayment{
		pendingPayment(brokenGuide),
		pendingPayment(healthyGuide),
	}
	store.tripsErr[brokenGuide] = pkgerrors.New(pkgerrors.CodeDependency, "trips unavailable")

	trip := documentedTrip(2)
	store.trips[healthyGuide] = []models.Trip{trip}
	store.boarded[trip.ID] = 2
	store.returned[trip.ID] = 2

	job := newTestGatekeeper(t, store)
	start, end := testWindow()
	result, err := job.RunPeriod(context.Background(), start, end)
	if err != nil {
		t.Fatalf("expected run to continue, got %v", err)
	}
	if result.FailedCount != 1 || result.UpdatedCount != 1 {
		t.Fatalf("expected one failure and one update, got %+v", result)
	}
	if store.payments[1].Status != enums.SalaryPaymentStatusReady {
		t.Fatalf("expected healthy record ready, got %s", store.payments[1].Status)
	}
}

func TestGatekeeperDefaultPeriodIsCurrentMonth(t *testing.T) {
	store := newFakeStore()
	job := newTestGatekeeper(t, store)
	job.now = func() time.Time { return time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC) }

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGatekeeperRejectsInvertedPeriod(t *testing.T) {
	job := newTestGatekeeper(t, newFakeStore())
	start, end := testWindow()
	_, err := job.RunPeriod(context.Background(), end, start)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
}
