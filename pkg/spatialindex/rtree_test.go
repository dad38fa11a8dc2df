package spatialindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/datastructure"
)

func buildIndex(t *testing.T) (*Rtree, *datastructure.Graph) {
	g := datastructure.NewGraph()
	g.AddVertex(1, 24.900, 67.160)
	g.AddVertex(2, 24.905, 67.165)
	g.AddVertex(3, 24.950, 67.200)

	rt := NewRtree()
	rt.Build(g, zap.NewNop())
	return rt, g
}

func TestNearestVertex(t *testing.T) {
	rt, g := buildIndex(t)

	v, err := rt.NearestVertex(24.9051, 67.1651, 1.0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), g.GetVertexOsmId(v))

	v, err = rt.NearestVertex(24.9001, 67.1601, 1.0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), g.GetVertexOsmId(v))
}

func TestNearestVertexOutsideRadius(t *testing.T) {
	rt, _ := buildIndex(t)

	// ~50 km away from every indexed vertex
	_, err := rt.NearestVertex(25.4, 67.6, 1.0)
	assert.Error(t, err)
}
