package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/comparison"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/datastructure"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/geo"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/spatialindex"
)

func serviceUnderTest(t *testing.T) *ComparisonService {
	g := datastructure.NewGraph()
	lats := []float64{0, 0.009, 0.018, 0.027, 0.036}
	for i, lat := range lats {
		g.AddVertex(int64(i+1), lat, 0)
	}
	for i := 0; i+1 < len(lats); i++ {
		length := geo.CalculateHaversineDistance(lats[i], 0, lats[i+1], 0) * 1000.0
		require.NoError(t, g.AddEdge(int64(i+1), int64(i+2), length, length/(50.0/3.6)))
		require.NoError(t, g.AddEdge(int64(i+2), int64(i+1), length, length/(50.0/3.6)))
	}

	rtree := spatialindex.NewRtree()
	rtree.Build(g, zap.NewNop())

	return NewComparisonService(zap.NewNop(), g, comparison.NewComparator(g, zap.NewNop()), rtree, 1.0)
}

func TestCompareRoutesSnapsAndCompares(t *testing.T) {
	cs := serviceUnderTest(t)

	report, err := cs.CompareRoutes(0.0001, 0, 0.0359, 0, "distance", 0)
	require.NoError(t, err)

	assert.True(t, report.Dijkstra.Found)
	assert.True(t, report.Astar.Found)
	assert.True(t, report.CostEqual)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, report.Dijkstra.Path)
	// zero heuristic weight falls back to the default 1.0
	assert.Equal(t, 1.0, report.HeuristicWeight)
}

func TestCompareRoutesRejectsUnknownMode(t *testing.T) {
	cs := serviceUnderTest(t)

	_, err := cs.CompareRoutes(0, 0, 0.036, 0, "fuel", 1.0)
	assert.Error(t, err)
}

func TestCompareRoutesNoNearbyNode(t *testing.T) {
	cs := serviceUnderTest(t)

	_, err := cs.CompareRoutes(5.0, 5.0, 0.036, 0, "distance", 1.0)
	assert.Error(t, err)
}
