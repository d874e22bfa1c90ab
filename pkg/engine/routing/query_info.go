package routing

import (
	da "github.com/lintang-b-s/Taxinav/pkg/datastructure"
	"github.com/lintang-b-s/Taxinav/pkg/util"
)

type vertexInfo struct {
	dist     float64
	parent   da.Index
	hasPrev  bool
	heapNode *da.PriorityQueueNode[da.Index]
}

func newVertexInfo(dist float64, hnode *da.PriorityQueueNode[da.Index]) *vertexInfo {
	return &vertexInfo{
		dist:     dist,
		heapNode: hnode,
	}
}

func (vi *vertexInfo) setParent(p da.Index) {
	vi.parent = p
	vi.hasPrev = true
}

// reconstructPath. follow parent links from t back to s.
func reconstructPath(info map[da.Index]*vertexInfo, s, t da.Index) []da.Index {
	path := []da.Index{t}
	cur := t
	for cur != s {
		vi := info[cur]
		if vi == nil || !vi.hasPrev {
			return nil
		}
		cur = vi.parent
		path = append(path, cur)
	}
	return util.ReverseG(path)
}

// PathCost. sum of hop costs, INF_WEIGHT if a hop is not an edge of g.
func PathCost(g Graph, path []da.Index) float64 {
	cost := 0.0
	for i := 0; i+1 < len(path); i++ {
		c, ok := g.GetCost(path[i], path[i+1])
		if !ok {
			return infWeight
		}
		cost += c
	}
	return cost
}
