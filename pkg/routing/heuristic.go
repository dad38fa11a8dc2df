package routing

import (
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/datastructure"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/geo"
)

// heuristicEstimate admissible lower bound on the remaining cost from v to
// target under the given weight mode, in the same unit as the edge weight.
//
// distance mode: great-circle (haversine) distance in meter. roads are never
// shorter than the great circle, so this never overestimates, and the
// triangle inequality makes it consistent.
//
// time mode: great-circle distance divided by the maximum implied speed
// observed across all edges of the graph. stays a lower bound as long as no
// edge is faster than that bound. a graph without travel times has bound 0
// and the estimate collapses to 0, degrading a* to dijkstra but never
// breaking admissibility.
func heuristicEstimate(g *datastructure.Graph, v, target datastructure.Index, mode datastructure.WeightMode) float64 {
	vLat, vLon := g.GetVertexCoordinates(v)
	tLat, tLon := g.GetVertexCoordinates(target)

	meters := geo.CalculateHaversineDistance(vLat, vLon, tLat, tLon) * 1000.0

	if mode == datastructure.TIME_MODE {
		bound := g.MaxSpeed()
		if bound <= 0 {
			return 0
		}
		return meters / bound
	}
	return meters
}
