package comparison

import (
	geojson "github.com/paulmach/go.geojson"

	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/datastructure"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/geo"
)

// ReportToGeoJSON renders the compared routes as a geojson feature
// collection, one linestring per algorithm. this replaces a raster route
// overlay: any geojson viewer draws the routes on a background map.
func ReportToGeoJSON(report datastructure.ComparisonReport) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if report.Dijkstra.Found {
		fc.AddFeature(routeFeature("dijkstra", "#ff0000", report.Dijkstra))
	}
	if report.Astar.Found {
		fc.AddFeature(routeFeature("astar", "#0000ff", report.Astar))
	}
	if report.FastestByTime != nil && report.FastestByTime.Found {
		fc.AddFeature(routeFeature("fastest_by_time", "#00aa00", *report.FastestByTime))
	}

	return fc
}

func routeFeature(algorithm, stroke string, result datastructure.SearchResult) *geojson.Feature {
	f := geojson.NewLineStringFeature(lineCoords(result.Coords))
	f.SetProperty("algorithm", algorithm)
	f.SetProperty("stroke", stroke)
	f.SetProperty("total_cost", result.TotalCost)
	f.SetProperty("nodes_expanded", result.NodesExpanded)
	f.SetProperty("elapsed_ms", float64(result.Elapsed.Microseconds())/1000.0)
	return f
}

func lineCoords(coords []geo.Coordinate) [][]float64 {
	line := make([][]float64, 0, len(coords))
	for _, c := range coords {
		line = append(line, []float64{c.GetLon(), c.GetLat()})
	}
	return line
}
