package routing

import (
	da "github.com/lintang-b-s/Taxinav/pkg/datastructure"
	"github.com/lintang-b-s/Taxinav/pkg/geo"
)

type Graph interface {
	GetConnections(v da.Index, opts da.ConnectionOptions) []da.Index
	GetCost(u, v da.Index) (float64, bool)
	GetCostWith(u, v da.Index, opts da.ConnectionOptions) (float64, bool)
	GetVertexCoordinate(id da.Index) geo.Coordinate
	GetVertex(id da.Index) (*da.Vertex, bool)
	NumberOfVertices() int
}
