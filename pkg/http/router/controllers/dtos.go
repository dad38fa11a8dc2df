package controllers

import (
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/datastructure"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/geo"
)

type compareRoutesRequest struct {
	// coordinates are range-checked only. "required" would reject the zero
	// value, and 0 is a legal latitude/longitude (equator, prime meridian).
	SourceLat       float64 `json:"source_lat" validate:"min=-90,max=90"`
	SourceLon       float64 `json:"source_lon" validate:"min=-180,max=180"`
	DestinationLat  float64 `json:"destination_lat" validate:"min=-90,max=90"`
	DestinationLon  float64 `json:"destination_lon" validate:"min=-180,max=180"`
	Mode            string  `json:"mode" validate:"omitempty,oneof=distance time"`
	HeuristicWeight float64 `json:"heuristic_weight" validate:"omitempty,gt=0"`
}

type algorithmRunResponse struct {
	Found         bool    `json:"found"`
	TotalCost     float64 `json:"total_cost"`
	NodesExpanded int     `json:"nodes_expanded"`
	ElapsedMs     float64 `json:"elapsed_ms"`
	Path          string  `json:"path"`
}

func newAlgorithmRunResponse(result datastructure.SearchResult) algorithmRunResponse {
	resp := algorithmRunResponse{
		Found:         result.Found,
		NodesExpanded: result.NodesExpanded,
		ElapsedMs:     float64(result.Elapsed.Microseconds()) / 1000.0,
	}
	if result.Found {
		resp.TotalCost = result.TotalCost
		resp.Path = geo.PolylineFromCoords(result.Coords)
	}
	return resp
}

type compareRoutesResponse struct {
	Mode            string                `json:"mode"`
	HeuristicWeight float64               `json:"heuristic_weight"`
	Dijkstra        algorithmRunResponse  `json:"dijkstra"`
	Astar           algorithmRunResponse  `json:"astar"`
	FastestByTime   *algorithmRunResponse `json:"fastest_by_time,omitempty"`

	Speedup           *float64 `json:"speedup"` // null when a* elapsed is unmeasurable
	NodeEfficiencyPct float64  `json:"node_efficiency_pct"`
	CostEqual         bool     `json:"cost_equal"`
	TimeSavedMs       float64  `json:"time_saved_ms"`
}

func NewCompareRoutesResponse(report datastructure.ComparisonReport) compareRoutesResponse {
	resp := compareRoutesResponse{
		Mode:              report.WeightMode.String(),
		HeuristicWeight:   report.HeuristicWeight,
		Dijkstra:          newAlgorithmRunResponse(report.Dijkstra),
		Astar:             newAlgorithmRunResponse(report.Astar),
		NodeEfficiencyPct: report.NodeEfficiency,
		CostEqual:         report.CostEqual,
		TimeSavedMs:       float64(report.TimeSaved.Microseconds()) / 1000.0,
	}
	if report.SpeedupValid {
		speedup := report.Speedup
		resp.Speedup = &speedup
	}
	if report.FastestByTime != nil {
		fastest := newAlgorithmRunResponse(*report.FastestByTime)
		resp.FastestByTime = &fastest
	}
	return resp
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
