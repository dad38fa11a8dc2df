package routing

import (
	"time"

	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/datastructure"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/geo"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/util"
)

// Searcher single best-first search engine over a read-only road graph.
// informed=false runs plain dijkstra, informed=true runs a* with the
// haversine lower bound. the frontier uses lazy deletion: relaxations push
// duplicate entries and stale pops of already settled vertices are skipped,
// so no decrease-key is needed. instances keep no state between runs, one
// Searcher may serve concurrent queries.
type Searcher struct {
	graph *datastructure.Graph
}

func NewSearcher(graph *datastructure.Graph) *Searcher {
	return &Searcher{graph: graph}
}

// Dijkstra uninformed shortest path search from sourceId to targetId.
func (s *Searcher) Dijkstra(sourceId, targetId int64, mode datastructure.WeightMode) (datastructure.SearchResult, error) {
	return s.search(sourceId, targetId, mode, false, pkg.DEFAULT_HEURISTIC_WEIGHT)
}

// AStar informed search. heuristicWeight scales the lower bound: 1.0 keeps
// the search optimal, larger values trade optimality for fewer expansions.
// non-positive weights are rejected.
func (s *Searcher) AStar(sourceId, targetId int64, mode datastructure.WeightMode,
	heuristicWeight float64) (datastructure.SearchResult, error) {
	return s.search(sourceId, targetId, mode, true, heuristicWeight)
}

func (s *Searcher) search(sourceId, targetId int64, mode datastructure.WeightMode,
	informed bool, heuristicWeight float64) (datastructure.SearchResult, error) {

	if informed && heuristicWeight <= 0 {
		return datastructure.SearchResult{}, util.WrapErrorf(nil, util.ErrDegenerateHeuristic,
			"heuristic weight %f must be > 0", heuristicWeight)
	}

	source, err := s.graph.IdToIndex(sourceId)
	if err != nil {
		return datastructure.SearchResult{}, err
	}
	target, err := s.graph.IdToIndex(targetId)
	if err != nil {
		return datastructure.SearchResult{}, err
	}

	n := s.graph.NumberOfVertices()
	dist := make([]float64, n)
	pred := make([]datastructure.Index, n)
	settled := make([]bool, n)
	for v := 0; v < n; v++ {
		dist[v] = pkg.INF_WEIGHT
		pred[v] = datastructure.INVALID_VERTEX_ID
	}

	pq := datastructure.NewFourAryHeap[datastructure.Index]()

	// timing brackets frontier initialization through loop termination only
	start := time.Now()

	dist[source] = 0
	sourceRank := 0.0
	if informed {
		sourceRank = heuristicWeight * heuristicEstimate(s.graph, source, target, mode)
	}
	pq.Insert(sourceRank, source)

	nodesExpanded := 0
	found := false

	for !pq.IsEmpty() {
		minNode, _ := pq.ExtractMin()
		u := minNode.GetItem()

		if settled[u] {
			// stale duplicate from an earlier relaxation
			continue
		}
		settled[u] = true
		nodesExpanded++

		if u == target {
			found = true
			break
		}

		s.graph.ForOutEdgesOf(u, func(e *datastructure.OutEdge) {
			v := e.GetHead()
			if settled[v] {
				return
			}

			newDist := dist[u] + e.Weight(mode)
			if newDist >= pkg.INF_WEIGHT {
				return
			}

			if newDist < dist[v] {
				dist[v] = newDist
				pred[v] = u

				rank := newDist
				if informed {
					rank += heuristicWeight * heuristicEstimate(s.graph, v, target, mode)
				}
				pq.Insert(rank, v)
			}
		})
	}

	elapsed := time.Since(start)

	if !found {
		return datastructure.NewUnreachableResult(nodesExpanded, elapsed), nil
	}

	path, coords := s.reconstructPath(source, target, pred)

	return datastructure.SearchResult{
		Path:          path,
		Coords:        coords,
		TotalCost:     dist[target],
		NodesExpanded: nodesExpanded,
		Elapsed:       elapsed,
		Found:         true,
	}, nil
}

// reconstructPath walks predecessor links from target back to source and
// reverses, returning osm node ids and their coordinates.
func (s *Searcher) reconstructPath(source, target datastructure.Index,
	pred []datastructure.Index) ([]int64, []geo.Coordinate) {

	reversed := make([]datastructure.Index, 0)
	for cur := target; ; cur = pred[cur] {
		reversed = append(reversed, cur)
		if cur == source {
			break
		}
	}

	path := make([]int64, 0, len(reversed))
	coords := make([]geo.Coordinate, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		v := reversed[i]
		path = append(path, s.graph.GetVertexOsmId(v))
		lat, lon := s.graph.GetVertexCoordinates(v)
		coords = append(coords, geo.NewCoordinate(lat, lon))
	}
	return path, coords
}
