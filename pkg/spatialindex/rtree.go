package spatialindex

import (
	"github.com/golang/geo/s2"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"

	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/datastructure"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/geo"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/util"
)

// Rtree spatial index over graph vertices, used to snap query coordinates
// to the nearest road network node before a comparison runs.
type Rtree struct {
	tr    *rtree.RTreeG[datastructure.Index]
	graph *datastructure.Graph
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[datastructure.Index]
	return &Rtree{
		tr: &tr,
	}
}

// Build indexes every vertex point of the graph.
func (rt *Rtree) Build(graph *datastructure.Graph, log *zap.Logger) {
	log.Info("building r-tree spatial index", zap.Int("vertices", graph.NumberOfVertices()))
	rt.graph = graph

	for v := datastructure.Index(0); v < datastructure.Index(graph.NumberOfVertices()); v++ {
		lat, lon := graph.GetVertexCoordinates(v)
		point := [2]float64{lon, lat}
		rt.tr.Insert(point, point, v)
	}
}

// NearestVertex nearest graph vertex to (lat, lon), searching a bounding
// box of searchRadiusKm around the query point. candidates are ranked by
// s2 chordal angle, which orders identically to great-circle distance.
func (rt *Rtree) NearestVertex(lat, lon, searchRadiusKm float64) (datastructure.Index, error) {
	lowerLat, lowerLon := geo.GetDestinationPoint(lat, lon, 225, searchRadiusKm)
	upperLat, upperLon := geo.GetDestinationPoint(lat, lon, 45, searchRadiusKm)

	queryPoint := s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))

	best := datastructure.INVALID_VERTEX_ID
	bestAngle := 0.0

	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, v datastructure.Index) bool {
			vLat, vLon := rt.graph.GetVertexCoordinates(v)
			candidate := s2.PointFromLatLng(s2.LatLngFromDegrees(vLat, vLon))
			angle := queryPoint.Distance(candidate).Radians()

			if best == datastructure.INVALID_VERTEX_ID || angle < bestAngle {
				best = v
				bestAngle = angle
			}
			return true
		})

	if best == datastructure.INVALID_VERTEX_ID {
		return datastructure.INVALID_VERTEX_ID, util.WrapErrorf(nil, util.ErrNotFound,
			"no road network node within %.2f km of (%f, %f)", searchRadiusKm, lat, lon)
	}
	return best, nil
}
