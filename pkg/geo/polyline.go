package geo

import (
	"github.com/twpayne/go-polyline"
)

func PolylineFromCoords(coords []Coordinate) string {
	cs := make([][]float64, 0, len(coords))
	for _, c := range coords {
		cs = append(cs, []float64{c.Lat, c.Lon})
	}
	return string(polyline.EncodeCoords(cs))
}
