package datastructure

import (
	"time"

	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/geo"
)

// SearchResult outcome of a single algorithm run. when Found is false the
// target is unreachable from the source: Path/Coords are empty and
// TotalCost carries no meaning.
type SearchResult struct {
	Path          []int64
	Coords        []geo.Coordinate
	TotalCost     float64
	NodesExpanded int
	Elapsed       time.Duration
	Found         bool
}

func NewUnreachableResult(nodesExpanded int, elapsed time.Duration) SearchResult {
	return SearchResult{
		Path:          []int64{},
		Coords:        []geo.Coordinate{},
		NodesExpanded: nodesExpanded,
		Elapsed:       elapsed,
		Found:         false,
	}
}

// ComparisonReport one dijkstra run and one a* run over the identical
// query, plus derived statistics. FastestByTime is a third time-weighted
// dijkstra pass, only attached when the primary mode is distance and the
// graph carries travel times.
type ComparisonReport struct {
	WeightMode      WeightMode
	HeuristicWeight float64

	Dijkstra      SearchResult
	Astar         SearchResult
	FastestByTime *SearchResult

	Speedup      float64
	SpeedupValid bool

	NodeEfficiency float64 // percentage of node expansions a* saved over dijkstra
	CostEqual      bool
	TimeSaved      time.Duration
}
