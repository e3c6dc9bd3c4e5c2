package neo_api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cosmowatch/config"
	"cosmowatch/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedBody = `{
	"element_count": 2,
	"near_earth_objects": {
		"2025-03-10": [
			{
				"id": "3542519",
				"name": "(2010 PK9)",
				"estimated_diameter": {"meters": {"estimated_diameter_min": 400, "estimated_diameter_max": 1200}},
				"is_potentially_hazardous_asteroid": true,
				"close_approach_data": [
					{
						"close_approach_date": "2025-03-10",
						"relative_velocity": {"kilometers_per_hour": "45000.5"},
						"miss_distance": {"kilometers": "800000.2"}
					}
				]
			}
		],
		"2025-03-11": [
			{
				"id": "2099942",
				"name": "99942 Apophis",
				"estimated_diameter": {"meters": {"estimated_diameter_min": 30, "estimated_diameter_max": 50}},
				"is_potentially_hazardous_asteroid": false,
				"close_approach_data": []
			}
		]
	}
}`

func newTestClient(baseURL string) *Client {
	logger.InitLogger()
	return NewClient(config.NASAConfig{
		APIKey:  "DEMO_KEY",
		BaseURL: baseURL,
	}, logger.Logger)
}

func TestClient_FetchFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feed", r.URL.Path)
		assert.Equal(t, "2025-03-10", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2025-03-11", r.URL.Query().Get("end_date"))
		assert.Equal(t, "DEMO_KEY", r.URL.Query().Get("api_key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedBody))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	feed, err := client.FetchFeed(context.Background(), "2025-03-10", "2025-03-11")
	require.NoError(t, err)
	assert.Equal(t, 2, feed.ElementCount)
	require.Len(t, feed.NearEarthObjects["2025-03-10"], 1)

	obj := feed.NearEarthObjects["2025-03-10"][0]
	assert.Equal(t, "3542519", obj.ID)
	assert.True(t, obj.IsPotentiallyHazardousAsteroid)
	assert.Equal(t, 1200.0, obj.EstimatedDiameter.Meters.EstimatedDiameterMax)
	require.Len(t, obj.CloseApproachData, 1)
	assert.Equal(t, "800000.2", obj.CloseApproachData[0].MissDistance.Kilometers)
}

func TestClient_FetchNeo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/neo/3542519", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "3542519",
			"name": "(2010 PK9)",
			"close_approach_data": [
				{
					"close_approach_date": "2025-04-01",
					"relative_velocity": {"kilometers_per_hour": "30000"},
					"miss_distance": {"kilometers": "4000000"}
				}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	neo, err := client.FetchNeo(context.Background(), "3542519")
	require.NoError(t, err)
	assert.Equal(t, "(2010 PK9)", neo.Name)
	require.Len(t, neo.CloseApproachData, 1)
}

func TestClient_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"API_KEY_INVALID"}`, http.StatusForbidden)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchFeed(context.Background(), "2025-03-10", "2025-03-11")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}
