package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cosmowatch/di"
	"cosmowatch/domain"
	"cosmowatch/mocks"
	"cosmowatch/usecase/fetch_neo_feed_usecase"
	"cosmowatch/utils/metrics"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandleNeoFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeed := mocks.NewMockFetchNeoFeedPort(ctrl)
	container := &di.ApplicationComponents{
		FetchNeoFeedUsecase: fetch_neo_feed_usecase.NewFetchNeoFeedUsecase(mockFeed, metrics.NewMetricsForTesting()),
	}
	handler := handleNeoFeed(container)

	t.Run("explicit range", func(t *testing.T) {
		c, rec, _ := newAuthedContext(t, http.MethodGet, "/neos/feed?start_date=2025-03-10&end_date=2025-03-11", "")

		mockFeed.EXPECT().
			FetchNeoFeed(gomock.Any(), "2025-03-10", "2025-03-11").
			Return([]domain.NeoDateBucket{
				{
					Date: "2025-03-10",
					Records: []domain.NeoRecord{
						{ID: "3542519", Name: "(2010 PK9)", DiameterMaxMeters: 1200, Hazardous: true},
					},
				},
			}, nil)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp FeedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		require.Len(t, resp.Asteroids, 1)
		assert.Equal(t, "3542519", resp.Asteroids[0].ID)
		assert.Equal(t, domain.RiskCritical, resp.Asteroids[0].RiskCategory)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		c, rec, _ := newAuthedContext(t, http.MethodGet, "/neos/feed?start_date=03-10-2025", "")

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNeoFeedIsPublic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeed := mocks.NewMockFetchNeoFeedPort(ctrl)
	container := &di.ApplicationComponents{
		FetchNeoFeedUsecase: fetch_neo_feed_usecase.NewFetchNeoFeedUsecase(mockFeed, metrics.NewMetricsForTesting()),
	}

	e := echo.New()
	registerNeoRoutes(e, container)

	mockFeed.EXPECT().
		FetchNeoFeed(gomock.Any(), "2025-03-10", "2025-03-11").
		Return([]domain.NeoDateBucket{}, nil)

	// no Authorization header: the feed must still be served
	req := httptest.NewRequest(http.MethodGet, "/neos/feed?start_date=2025-03-10&end_date=2025-03-11", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
