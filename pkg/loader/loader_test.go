package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/datastructure"
)

func cachedGraph(t *testing.T) *datastructure.Graph {
	g := datastructure.NewGraph()
	g.AddVertex(1, 24.90, 67.16)
	g.AddVertex(2, 24.91, 67.17)
	require.NoError(t, g.AddEdge(1, 2, 1500, 100))
	return g
}

func TestGraphCacheMemoryAndDisk(t *testing.T) {
	dir := t.TempDir()

	cache, err := NewGraphCache(4, dir, zap.NewNop())
	require.NoError(t, err)

	_, ok := cache.Get("drive:karachi.osm.pbf")
	assert.False(t, ok)

	cache.Add("drive:karachi.osm.pbf", cachedGraph(t))

	fromMem, ok := cache.Get("drive:karachi.osm.pbf")
	require.True(t, ok)
	assert.Equal(t, 2, fromMem.NumberOfVertices())

	// a fresh cache over the same directory must hit the disk layer
	restarted, err := NewGraphCache(4, dir, zap.NewNop())
	require.NoError(t, err)

	fromDisk, ok := restarted.Get("drive:karachi.osm.pbf")
	require.True(t, ok)
	assert.Equal(t, 2, fromDisk.NumberOfVertices())
	assert.Equal(t, 1, fromDisk.NumberOfEdges())
}

func TestGraphCacheKeyIsolation(t *testing.T) {
	cache, err := NewGraphCache(4, t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	cache.Add("drive:a.osm.pbf", cachedGraph(t))

	_, ok := cache.Get("walk:a.osm.pbf")
	assert.False(t, ok)
}
