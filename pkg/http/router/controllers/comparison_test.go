package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/datastructure"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/geo"
)

type stubComparisonService struct {
	report datastructure.ComparisonReport
	err    error
}

func (s *stubComparisonService) CompareRoutes(srcLat, srcLon, dstLat, dstLon float64,
	mode string, heuristicWeight float64) (datastructure.ComparisonReport, error) {
	return s.report, s.err
}

func stubReport() datastructure.ComparisonReport {
	run := datastructure.SearchResult{
		Path:          []int64{1, 2},
		Coords:        []geo.Coordinate{{Lat: 0, Lon: 0}, {Lat: 0.009, Lon: 0}},
		TotalCost:     1000.0,
		NodesExpanded: 2,
		Elapsed:       time.Millisecond,
		Found:         true,
	}
	return datastructure.ComparisonReport{
		WeightMode:      datastructure.DISTANCE_MODE,
		HeuristicWeight: 1.0,
		Dijkstra:        run,
		Astar:           run,
		Speedup:         1.0,
		SpeedupValid:    true,
		NodeEfficiency:  0,
		CostEqual:       true,
	}
}

func TestCompareRoutesAcceptsZeroCoordinates(t *testing.T) {
	api := New(&stubComparisonService{report: stubReport()}, zap.NewNop())

	// equator / prime meridian crossing, every coordinate is a legal zero
	r := httptest.NewRequest(http.MethodGet,
		"/api/compareRoutes?source_lat=0&source_lon=0&destination_lat=0.009&destination_lon=0", nil)
	w := httptest.NewRecorder()
	api.compareRoutes(w, r, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cost_equal":true`)
}

func TestCompareRoutesRejectsOutOfRangeCoordinates(t *testing.T) {
	api := New(&stubComparisonService{report: stubReport()}, zap.NewNop())

	r := httptest.NewRequest(http.MethodGet,
		"/api/compareRoutes?source_lat=91&source_lon=0&destination_lat=0&destination_lon=0", nil)
	w := httptest.NewRecorder()
	api.compareRoutes(w, r, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompareRoutesRejectsMissingCoordinates(t *testing.T) {
	api := New(&stubComparisonService{report: stubReport()}, zap.NewNop())

	r := httptest.NewRequest(http.MethodGet, "/api/compareRoutes?source_lat=0", nil)
	w := httptest.NewRecorder()
	api.compareRoutes(w, r, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
