package usecases

import (
	"go.uber.org/zap"

	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/datastructure"
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/util"
)

type ComparisonService struct {
	log            *zap.Logger
	graph          *datastructure.Graph
	comparator     Comparator
	spatialIndex   SpatialIndex
	searchRadiusKm float64
}

func NewComparisonService(log *zap.Logger, graph *datastructure.Graph, comparator Comparator,
	spatialIndex SpatialIndex, searchRadiusKm float64) *ComparisonService {
	return &ComparisonService{
		log:            log,
		graph:          graph,
		comparator:     comparator,
		spatialIndex:   spatialIndex,
		searchRadiusKm: searchRadiusKm,
	}
}

// CompareRoutes snaps the query coordinates to the nearest road network
// nodes and runs the dijkstra vs a* comparison between them.
func (cs *ComparisonService) CompareRoutes(srcLat, srcLon, dstLat, dstLon float64,
	mode string, heuristicWeight float64) (datastructure.ComparisonReport, error) {

	weightMode, err := parseWeightMode(mode)
	if err != nil {
		return datastructure.ComparisonReport{}, err
	}
	if heuristicWeight == 0 {
		heuristicWeight = pkg.DEFAULT_HEURISTIC_WEIGHT
	}

	source, err := cs.spatialIndex.NearestVertex(srcLat, srcLon, cs.searchRadiusKm)
	if err != nil {
		return datastructure.ComparisonReport{}, err
	}
	target, err := cs.spatialIndex.NearestVertex(dstLat, dstLon, cs.searchRadiusKm)
	if err != nil {
		return datastructure.ComparisonReport{}, err
	}

	sourceId := cs.graph.GetVertexOsmId(source)
	targetId := cs.graph.GetVertexOsmId(target)
	cs.log.Info("snapped query coordinates",
		zap.Int64("sourceNode", sourceId), zap.Int64("targetNode", targetId))

	return cs.comparator.Compare(sourceId, targetId, weightMode, heuristicWeight)
}

func parseWeightMode(mode string) (datastructure.WeightMode, error) {
	switch mode {
	case "", "distance":
		return datastructure.DISTANCE_MODE, nil
	case "time":
		return datastructure.TIME_MODE, nil
	default:
		return datastructure.DISTANCE_MODE, util.WrapErrorf(nil, util.ErrBadParamInput,
			"unknown weight mode %q, want distance or time", mode)
	}
}
