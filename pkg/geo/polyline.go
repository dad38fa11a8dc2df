package geo

import (
	gopolyline "github.com/twpayne/go-polyline"
)

// PolylineFromCoords encodes route coordinates into a google maps encoded polyline.
func PolylineFromCoords(coords []Coordinate) string {
	latLngs := make([][]float64, 0, len(coords))
	for _, c := range coords {
		latLngs = append(latLngs, []float64{c.GetLat(), c.GetLon()})
	}
	return string(gopolyline.EncodeCoords(latLngs))
}
