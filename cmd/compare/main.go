package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/comparison"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/datastructure"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/loader"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/logger"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/osmparser"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/spatialindex"
)

var (
	mapFile        = flag.String("map", "./data/karachi.osm.pbf", "openstreetmap pbf extract of the road network")
	networkType    = flag.String("network_type", "drive", "road network type, part of the graph cache key")
	cacheDir       = flag.String("cache_dir", "./data/cache", "directory for compressed graph cache files")
	sourceLat      = flag.Float64("source_lat", 0, "source latitude")
	sourceLon      = flag.Float64("source_lon", 0, "source longitude")
	targetLat      = flag.Float64("target_lat", 0, "target latitude")
	targetLon      = flag.Float64("target_lon", 0, "target longitude")
	mode           = flag.String("mode", "distance", "weight mode: distance or time")
	hWeight        = flag.Float64("heuristic_weight", pkg.DEFAULT_HEURISTIC_WEIGHT, "a* heuristic weight multiplier")
	searchRadiusKm = flag.Float64("search_radius_km", 1.0, "nearest node snapping radius in km")
	geojsonOut     = flag.String("geojson", "", "write the compared routes as geojson to this file")
)

func main() {
	flag.Parse()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	graphCache, err := loader.NewGraphCache(4, *cacheDir, log)
	if err != nil {
		log.Fatal("creating graph cache", zap.Error(err))
	}

	graphLoader := loader.NewLoader(osmparser.NewOsmParser(log), graphCache, log)
	graph, err := graphLoader.Load(*mapFile, *networkType)
	if err != nil {
		log.Fatal("loading road network graph", zap.Error(err))
	}

	rtree := spatialindex.NewRtree()
	rtree.Build(graph, log)

	source, err := rtree.NearestVertex(*sourceLat, *sourceLon, *searchRadiusKm)
	if err != nil {
		log.Fatal("snapping source coordinates", zap.Error(err))
	}
	target, err := rtree.NearestVertex(*targetLat, *targetLon, *searchRadiusKm)
	if err != nil {
		log.Fatal("snapping target coordinates", zap.Error(err))
	}

	weightMode := datastructure.DISTANCE_MODE
	if *mode == "time" {
		weightMode = datastructure.TIME_MODE
	}

	comparator := comparison.NewComparator(graph, log)
	report, err := comparator.Compare(graph.GetVertexOsmId(source), graph.GetVertexOsmId(target),
		weightMode, *hWeight)
	if err != nil {
		log.Fatal("running comparison", zap.Error(err))
	}

	printReport(report)

	if *geojsonOut != "" {
		fc := comparison.ReportToGeoJSON(report)
		data, err := json.MarshalIndent(fc, "", "  ")
		if err != nil {
			log.Fatal("encoding geojson", zap.Error(err))
		}
		if err := os.WriteFile(*geojsonOut, data, 0o644); err != nil {
			log.Fatal("writing geojson file", zap.Error(err))
		}
		log.Info("routes written", zap.String("file", *geojsonOut))
	}
}

func printReport(report datastructure.ComparisonReport) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "Algorithm\tTime (ms)\tCost (%s)\tNodes Expanded\tFound\n", costUnit(report.WeightMode))
	fmt.Fprintf(w, "Dijkstra\t%.4f\t%.2f\t%d\t%v\n",
		ms(report.Dijkstra), cost(report.Dijkstra, report.WeightMode), report.Dijkstra.NodesExpanded, report.Dijkstra.Found)
	fmt.Fprintf(w, "A* (weight %.2f)\t%.4f\t%.2f\t%d\t%v\n",
		report.HeuristicWeight, ms(report.Astar), cost(report.Astar, report.WeightMode), report.Astar.NodesExpanded, report.Astar.Found)
	if report.FastestByTime != nil && report.FastestByTime.Found {
		fmt.Fprintf(w, "Fastest by time\t%.4f\t%.1f min ETA\t%d\t%v\n",
			ms(*report.FastestByTime), report.FastestByTime.TotalCost/60.0,
			report.FastestByTime.NodesExpanded, report.FastestByTime.Found)
	}
	w.Flush()

	fmt.Println()
	if report.SpeedupValid {
		fmt.Printf("A* speedup:       %.2fx\n", report.Speedup)
	} else {
		fmt.Println("A* speedup:       N/A")
	}
	fmt.Printf("Node efficiency:  %.1f%% fewer nodes\n", report.NodeEfficiency)
	fmt.Printf("Costs equal:      %v\n", report.CostEqual)
	fmt.Printf("Time saved:       %.4f ms\n", float64(report.TimeSaved.Microseconds())/1000.0)
}

func ms(r datastructure.SearchResult) float64 {
	return float64(r.Elapsed.Microseconds()) / 1000.0
}

// cost distance results in km, time results in seconds
func cost(r datastructure.SearchResult, mode datastructure.WeightMode) float64 {
	if !r.Found {
		return 0
	}
	if mode == datastructure.DISTANCE_MODE {
		return r.TotalCost / 1000.0
	}
	return r.TotalCost
}

func costUnit(mode datastructure.WeightMode) string {
	if mode == datastructure.DISTANCE_MODE {
		return "km"
	}
	return "s"
}
