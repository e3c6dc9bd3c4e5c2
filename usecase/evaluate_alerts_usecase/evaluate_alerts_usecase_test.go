package evaluate_alerts_usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cosmowatch/domain"
	"cosmowatch/mocks"
	"cosmowatch/utils/logger"
	"cosmowatch/utils/metrics"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func newUsecase(t *testing.T) (*EvaluateAlertsUsecase, *mocks.MockListWatchlistPort, *mocks.MockFetchNeoByIDPort) {
	t.Helper()
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockList := mocks.NewMockListWatchlistPort(ctrl)
	mockFetch := mocks.NewMockFetchNeoByIDPort(ctrl)
	usecase := NewEvaluateAlertsUsecase(mockList, mockFetch, metrics.NewMetricsForTesting(), 5*time.Second, 4)
	return usecase, mockList, mockFetch
}

func TestEvaluateAlertsUsecase_Execute_ThresholdAndSorting(t *testing.T) {
	usecase, mockList, mockFetch := newUsecase(t)
	userID := uuid.New()

	entries := []domain.WatchlistEntry{
		{ID: 1, UserID: userID, AsteroidID: "100", AsteroidName: "Alpha", AlertDistanceKm: 6_000_000},
	}
	mockList.EXPECT().ListEntries(gomock.Any(), userID).Return(entries, nil)

	mockFetch.EXPECT().FetchNeoByID(gomock.Any(), "100").Return(&domain.NeoDetail{
		ID:   "100",
		Name: "Alpha (current)",
		Approaches: []domain.NeoApproach{
			{Date: "2025-04-01", DistanceKm: 4_000_000, VelocityKmh: 30000},
			{Date: "2025-04-02", DistanceKm: 7_000_000, VelocityKmh: 31000},
			{Date: "2025-04-03", DistanceKm: 2_000_000, VelocityKmh: 32000},
		},
	}, nil)

	alerts, err := usecase.Execute(context.Background(), userID)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(alerts) != 2 {
		t.Fatalf("len = %d, want 2", len(alerts))
	}

	// Ascending by distance, and both under the HIGH boundary.
	if alerts[0].DistanceKm != 2_000_000 || alerts[1].DistanceKm != 4_000_000 {
		t.Errorf("alerts not sorted ascending by distance: %v", alerts)
	}
	for _, a := range alerts {
		if a.AlertLevel != domain.AlertLevelHigh {
			t.Errorf("alert level = %s, want HIGH", a.AlertLevel)
		}
		if a.AsteroidName != "Alpha" {
			t.Errorf("alert name = %s, want add-time snapshot Alpha", a.AsteroidName)
		}
	}
}

func TestEvaluateAlertsUsecase_Execute_FirstThreeApproachesOnly(t *testing.T) {
	usecase, mockList, mockFetch := newUsecase(t)
	userID := uuid.New()

	mockList.EXPECT().ListEntries(gomock.Any(), userID).Return([]domain.WatchlistEntry{
		{ID: 1, UserID: userID, AsteroidID: "200", AsteroidName: "Beta", AlertDistanceKm: 10_000_000},
	}, nil)

	// The fourth approach undercuts the threshold but must be ignored.
	mockFetch.EXPECT().FetchNeoByID(gomock.Any(), "200").Return(&domain.NeoDetail{
		ID: "200",
		Approaches: []domain.NeoApproach{
			{Date: "2025-04-01", DistanceKm: 12_000_000},
			{Date: "2025-04-02", DistanceKm: 11_000_000},
			{Date: "2025-04-03", DistanceKm: 9_000_000},
			{Date: "2025-04-04", DistanceKm: 1_000_000},
		},
	}, nil)

	alerts, err := usecase.Execute(context.Background(), userID)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(alerts) != 1 {
		t.Fatalf("len = %d, want 1", len(alerts))
	}
	if alerts[0].DistanceKm != 9_000_000 || alerts[0].AlertLevel != domain.AlertLevelMedium {
		t.Errorf("unexpected alert: %+v", alerts[0])
	}
}

func TestEvaluateAlertsUsecase_Execute_PartialFailure(t *testing.T) {
	usecase, mockList, mockFetch := newUsecase(t)
	userID := uuid.New()

	mockList.EXPECT().ListEntries(gomock.Any(), userID).Return([]domain.WatchlistEntry{
		{ID: 1, UserID: userID, AsteroidID: "300", AsteroidName: "Gamma", AlertDistanceKm: 10_000_000},
		{ID: 2, UserID: userID, AsteroidID: "301", AsteroidName: "Delta", AlertDistanceKm: 10_000_000},
	}, nil)

	mockFetch.EXPECT().FetchNeoByID(gomock.Any(), "300").Return(nil, errors.New("provider timeout"))
	mockFetch.EXPECT().FetchNeoByID(gomock.Any(), "301").Return(&domain.NeoDetail{
		ID: "301",
		Approaches: []domain.NeoApproach{
			{Date: "2025-04-05", DistanceKm: 3_000_000, VelocityKmh: 28000},
		},
	}, nil)

	alerts, err := usecase.Execute(context.Background(), userID)
	if err != nil {
		t.Fatalf("Execute() error = %v, one failed entry must not fail the evaluation", err)
	}

	if len(alerts) != 1 {
		t.Fatalf("len = %d, want 1", len(alerts))
	}
	if alerts[0].AsteroidName != "Delta" {
		t.Errorf("alert name = %s, want Delta", alerts[0].AsteroidName)
	}
}

func TestEvaluateAlertsUsecase_Execute_EmptyWatchlist(t *testing.T) {
	usecase, mockList, _ := newUsecase(t)
	userID := uuid.New()

	mockList.EXPECT().ListEntries(gomock.Any(), userID).Return([]domain.WatchlistEntry{}, nil)

	alerts, err := usecase.Execute(context.Background(), userID)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(alerts) != 0 {
		t.Errorf("len = %d, want 0", len(alerts))
	}
}

func TestEvaluateAlertsUsecase_Execute_ListError(t *testing.T) {
	usecase, mockList, _ := newUsecase(t)
	userID := uuid.New()

	listErr := errors.New("connection refused")
	mockList.EXPECT().ListEntries(gomock.Any(), userID).Return(nil, listErr)

	_, err := usecase.Execute(context.Background(), userID)
	if !errors.Is(err, listErr) {
		t.Errorf("Execute() error = %v, want %v", err, listErr)
	}
}

func TestEvaluateAlertsUsecase_Execute_BoundaryDistanceNotAlerted(t *testing.T) {
	usecase, mockList, mockFetch := newUsecase(t)
	userID := uuid.New()

	mockList.EXPECT().ListEntries(gomock.Any(), userID).Return([]domain.WatchlistEntry{
		{ID: 1, UserID: userID, AsteroidID: "400", AsteroidName: "Epsilon", AlertDistanceKm: 5_000_000},
	}, nil)

	// Exactly at the threshold is not an alert.
	mockFetch.EXPECT().FetchNeoByID(gomock.Any(), "400").Return(&domain.NeoDetail{
		ID: "400",
		Approaches: []domain.NeoApproach{
			{Date: "2025-04-01", DistanceKm: 5_000_000},
		},
	}, nil)

	alerts, err := usecase.Execute(context.Background(), userID)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(alerts) != 0 {
		t.Errorf("len = %d, want 0 for boundary distance", len(alerts))
	}
}
