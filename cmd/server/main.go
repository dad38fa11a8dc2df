package main

import (
	"context"
	"flag"

	"go.uber.org/zap"

	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/comparison"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/http"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/http/usecases"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/loader"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/logger"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/osmparser"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/spatialindex"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/util"
)

var (
	mapFile        = flag.String("map", "./data/karachi.osm.pbf", "openstreetmap pbf extract of the road network")
	networkType    = flag.String("network_type", "drive", "road network type, part of the graph cache key")
	cacheDir       = flag.String("cache_dir", "./data/cache", "directory for compressed graph cache files")
	searchRadiusKm = flag.Float64("search_radius_km", 1.0, "nearest node snapping radius in km")
	useRateLimit   = flag.Bool("rate_limit", false, "enable per client rate limiting")
	configDir      = flag.String("config_dir", "./data", "directory holding the optional config file")
)

func main() {
	flag.Parse()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := util.ReadConfig(*configDir); err != nil {
		log.Warn("config file not loaded, using defaults", zap.Error(err))
	}

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

	comparator := comparison.NewComparator(graph, log)
	comparisonService := usecases.NewComparisonService(log, graph, comparator, rtree, *searchRadiusKm)

	api := http.NewServer(log)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		<-http.GracefulShutdown()
		cancel()
	}()

	if err := api.Use(ctx, log, *useRateLimit, comparisonService); err != nil {
		log.Fatal("api server stopped", zap.Error(err))
	}
}
