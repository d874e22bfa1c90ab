package routing

import (
	da "github.com/lintang-b-s/Taxinav/pkg/datastructure"
	"github.com/lintang-b-s/Taxinav/pkg/geo"
)

// AStar. best first search, g(n) = accumulated edge cost, h(n) = haversine distance to the target.
// edge costs are geodesic lengths, so h never overestimates and is consistent.
type AStar struct {
	graph Graph

	info   map[da.Index]*vertexInfo
	closed map[da.Index]struct{}
	pq     *da.MinHeap[da.Index]

	numSettledNodes int
}

func NewAStar(graph Graph) *AStar {
	return &AStar{
		graph:  graph,
		info:   make(map[da.Index]*vertexInfo),
		closed: make(map[da.Index]struct{}),
		pq:     da.NewFourAryHeap[da.Index](),
	}
}

func (as *AStar) heuristic(v da.Index, target geo.Coordinate) float64 {
	return geo.DistanceMeters(as.graph.GetVertexCoordinate(v), target)
}

// ShortestPath. ok is false when the open set runs empty before reaching stop.
func (as *AStar) ShortestPath(start, stop da.Index) ([]da.Index, bool) {
	if _, ok := as.graph.GetVertex(start); !ok {
		return nil, false
	}
	if _, ok := as.graph.GetVertex(stop); !ok {
		return nil, false
	}

	as.info = make(map[da.Index]*vertexInfo)
	as.closed = make(map[da.Index]struct{})
	as.pq.Clear()
	as.numSettledNodes = 0

	target := as.graph.GetVertexCoordinate(stop)

	sNode := da.NewPriorityQueueNode(as.heuristic(start, target), start)
	as.info[start] = newVertexInfo(0, sNode)
	as.pq.Insert(sNode)

	for !as.pq.IsEmpty() {
		node, _ := as.pq.ExtractMin()
		u := node.GetItem()

		if u == stop {
			path := reconstructPath(as.info, start, stop)
			return path, path != nil
		}

		as.closed[u] = struct{}{}
		as.numSettledNodes++

		uG := as.info[u].dist
		for _, v := range as.graph.GetConnections(u, da.ConnectionOptions{}) {
			if _, ok := as.closed[v]; ok {
				continue
			}
			w, _ := as.graph.GetCost(u, v)
			tentativeG := uG + w

			vInfo, open := as.info[v]
			if open && tentativeG >= vInfo.dist {
				continue
			}

			f := tentativeG + as.heuristic(v, target)
			if open {
				vInfo.dist = tentativeG
				vInfo.setParent(u)
				as.pq.DecreaseKey(vInfo.heapNode, f)
			} else {
				vNode := da.NewPriorityQueueNode(f, v)
				vInfo = newVertexInfo(tentativeG, vNode)
				vInfo.setParent(u)
				as.info[v] = vInfo
				as.pq.Insert(vNode)
			}
		}
	}

	return nil, false
}

func (as *AStar) NumSettledNodes() int {
	return as.numSettledNodes
}
