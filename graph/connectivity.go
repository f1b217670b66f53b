package graph

import (
	"strconv"

	"github.com/necrashter/dmsgo/dfs"
)

// ConnectedComponents groups bus indices into connected components of
// the branch topology, in ascending order within each component. A
// network is fully connected iff it returns a single component; an
// isolated bus (no branches) forms its own singleton component.
func (g *Graph) ConnectedComponents() [][]int {
	visited := make(map[string]bool, g.busCount)
	var components [][]int
	for i := 0; i < g.busCount; i++ {
		id := strconv.Itoa(i)
		if visited[id] {
			continue
		}
		res, err := dfs.DFS(g.topology, id)
		if err != nil {
			panic("graph: ConnectedComponents: dfs: " + err.Error())
		}
		comp := make([]int, 0, len(res.Order))
		for _, v := range res.Order {
			visited[v] = true
			n, convErr := strconv.Atoi(v)
			if convErr != nil {
				continue
			}
			comp = append(comp, n)
		}
		sortInts(comp)
		components = append(components, comp)
	}
	return components
}
