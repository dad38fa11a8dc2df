package controllers

import (
	"github.com/zaid783/A-vs-Dijkstra-Performance-Analysis-on-Real-Road-Networks/pkg/datastructure"
)

type ComparisonService interface {
	CompareRoutes(srcLat, srcLon, dstLat, dstLon float64,
		mode string, heuristicWeight float64) (datastructure.ComparisonReport, error)
}
