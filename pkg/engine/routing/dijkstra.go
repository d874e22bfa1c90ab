package routing

import (
	"github.com/lintang-b-s/Taxinav/pkg"
	da "github.com/lintang-b-s/Taxinav/pkg/datastructure"
)

const infWeight = pkg.INF_WEIGHT

type Dijkstra struct {
	graph Graph

	info map[da.Index]*vertexInfo
	pq   *da.MinHeap[da.Index]

	numSettledNodes int
}

func NewDijkstra(graph Graph) *Dijkstra {
	return &Dijkstra{
		graph: graph,
		info:  make(map[da.Index]*vertexInfo),
		pq:    da.NewFourAryHeap[da.Index](),
	}
}

/*
ShortestPath. classic single source dijkstra from s, neighbors filtered by opts.
the search settles every reachable vertex (not only t), then the s->t path is rebuilt from the predecessor
links. ok is false when t never got a predecessor.
*/
func (d *Dijkstra) ShortestPath(s, t da.Index, opts da.ConnectionOptions) ([]da.Index, bool) {
	if _, ok := d.graph.GetVertex(s); !ok {
		return nil, false
	}
	if _, ok := d.graph.GetVertex(t); !ok {
		return nil, false
	}

	d.info = make(map[da.Index]*vertexInfo, d.graph.NumberOfVertices())
	d.pq.Preallocate(d.graph.NumberOfVertices())
	d.numSettledNodes = 0

	sNode := da.NewPriorityQueueNode(0, s)
	d.info[s] = newVertexInfo(0, sNode)
	d.pq.Insert(sNode)

	settled := make(map[da.Index]struct{}, d.graph.NumberOfVertices())

	for !d.pq.IsEmpty() {
		node, _ := d.pq.ExtractMin()
		u := node.GetItem()
		if _, ok := settled[u]; ok {
			continue
		}
		settled[u] = struct{}{}
		d.numSettledNodes++

		uDist := d.info[u].dist
		for _, v := range d.graph.GetConnections(u, opts) {
			if _, ok := settled[v]; ok {
				continue
			}
			w, _ := d.graph.GetCostWith(u, v, opts)
			newDist := uDist + w

			vInfo, labelled := d.info[v]
			if labelled && newDist >= vInfo.dist {
				continue
			}

			if labelled {
				vInfo.dist = newDist
				vInfo.setParent(u)
				d.pq.DecreaseKey(vInfo.heapNode, newDist)
			} else {
				vNode := da.NewPriorityQueueNode(newDist, v)
				vInfo = newVertexInfo(newDist, vNode)
				vInfo.setParent(u)
				d.info[v] = vInfo
				d.pq.Insert(vNode)
			}
		}
	}

	if s == t {
		return []da.Index{s}, true
	}
	if vi, ok := d.info[t]; !ok || !vi.hasPrev {
		return nil, false
	}

	path := reconstructPath(d.info, s, t)
	return path, path != nil
}

// Distance. tentative distance of v after the last search, INF_WEIGHT if unreachable.
func (d *Dijkstra) Distance(v da.Index) float64 {
	if vi, ok := d.info[v]; ok {
		return vi.dist
	}
	return infWeight
}

func (d *Dijkstra) NumSettledNodes() int {
	return d.numSettledNodes
}
