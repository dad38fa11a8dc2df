package usecases

import (
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/datastructure"
)

type SpatialIndex interface {
	NearestVertex(lat, lon, searchRadiusKm float64) (datastructure.Index, error)
}

type Comparator interface {
	Compare(sourceId, targetId int64, mode datastructure.WeightMode,
		heuristicWeight float64) (datastructure.ComparisonReport, error)
}
