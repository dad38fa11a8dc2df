package comparison

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/datastructure"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/geo"
)

func testGraph(t *testing.T) *datastructure.Graph {
	g := datastructure.NewGraph()
	lats := []float64{0, 0.009, 0.018, 0.027, 0.036}
	for i, lat := range lats {
		g.AddVertex(int64(i+1), lat, 0)
	}
	for i := 0; i+1 < len(lats); i++ {
		length := geo.CalculateHaversineDistance(lats[i], 0, lats[i+1], 0) * 1000.0
		travelTime := length / (50.0 / 3.6)
		require.NoError(t, g.AddEdge(int64(i+1), int64(i+2), length, travelTime))
		require.NoError(t, g.AddEdge(int64(i+2), int64(i+1), length, travelTime))
	}
	return g
}

func TestCompareDistanceMode(t *testing.T) {
	g := testGraph(t)
	c := NewComparator(g, zap.NewNop())

	report, err := c.Compare(1, 5, datastructure.DISTANCE_MODE, 1.0)
	require.NoError(t, err)

	assert.True(t, report.Dijkstra.Found)
	assert.True(t, report.Astar.Found)
	assert.True(t, report.CostEqual)
	assert.LessOrEqual(t, report.Astar.NodesExpanded, report.Dijkstra.NodesExpanded)
	assert.GreaterOrEqual(t, report.NodeEfficiency, 0.0)
	assert.LessOrEqual(t, report.NodeEfficiency, 100.0)

	// graph carries travel times, the fastest-by-time pass must be attached
	require.NotNil(t, report.FastestByTime)
	assert.True(t, report.FastestByTime.Found)
}

func TestCompareTimeModeSkipsFastestPass(t *testing.T) {
	g := testGraph(t)
	c := NewComparator(g, zap.NewNop())

	report, err := c.Compare(1, 5, datastructure.TIME_MODE, 1.0)
	require.NoError(t, err)

	assert.True(t, report.CostEqual)
	assert.Nil(t, report.FastestByTime)
}

func TestCompareUnreachableIsReported(t *testing.T) {
	g := datastructure.NewGraph()
	g.AddVertex(1, 0, 0)
	g.AddVertex(2, 0.001, 0)
	g.AddVertex(3, 0.5, 0.5)
	require.NoError(t, g.AddEdge(1, 2, 100, 10))

	c := NewComparator(g, zap.NewNop())

	report, err := c.Compare(1, 3, datastructure.DISTANCE_MODE, 1.0)
	require.NoError(t, err)

	assert.False(t, report.Dijkstra.Found)
	assert.False(t, report.Astar.Found)
	assert.False(t, report.CostEqual)
	assert.Empty(t, report.Dijkstra.Path)
}

func TestCompareValidationErrors(t *testing.T) {
	g := testGraph(t)
	c := NewComparator(g, zap.NewNop())

	_, err := c.Compare(1, 999, datastructure.DISTANCE_MODE, 1.0)
	assert.Error(t, err)

	_, err = c.Compare(1, 5, datastructure.DISTANCE_MODE, 0)
	assert.Error(t, err)
}

func TestCostEqualTolerance(t *testing.T) {
	assert.True(t, costEqual(1000.0, 1000.0))
	assert.True(t, costEqual(1000.0, 1000.0000001))
	assert.False(t, costEqual(1000.0, 1000.1))
	assert.True(t, costEqual(0, 0))
}

func TestReportToGeoJSON(t *testing.T) {
	g := testGraph(t)
	c := NewComparator(g, zap.NewNop())

	report, err := c.Compare(1, 5, datastructure.DISTANCE_MODE, 1.0)
	require.NoError(t, err)

	fc := ReportToGeoJSON(report)
	// dijkstra, astar, fastest by time
	require.Len(t, fc.Features, 3)

	algorithms := make([]string, 0, len(fc.Features))
	for _, f := range fc.Features {
		algorithm, err := f.PropertyString("algorithm")
		require.NoError(t, err)
		algorithms = append(algorithms, algorithm)
		assert.Len(t, f.Geometry.LineString, 5)
	}
	assert.Equal(t, []string{"dijkstra", "astar", "fastest_by_time"}, algorithms)
}
