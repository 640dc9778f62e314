package spatial

import (
	"sort"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/graph/simple"

	"objmask/pkg/object"
)

// SeparateHandles groups the indexed handles into clusters whose keys are
// transitively connected by box intersection. Members of different clusters
// have non-intersecting boxes; members of one cluster need not intersect
// pairwise. Connectivity is judged on boxes only, never on voxels. Masks
// of the collection with an empty bounding box are never indexed; each
// forms a cluster of its own.
//
// Clusters are ordered by their lowest handle and list handles ascending.
func (idx *Index) SeparateHandles() [][]int {
	seeds := append([]*entry(nil), idx.entries...)
	sort.SliceStable(seeds, func(i, j int) bool { return seeds[i].handle < seeds[j].handle })

	visited := make(map[*entry]bool, len(seeds))
	var clusters [][]int
	for _, seed := range seeds {
		if visited[seed] {
			continue
		}
		visited[seed] = true
		members := map[int]bool{seed.handle: true}
		frontier := []*entry{seed}
		for len(frontier) > 0 {
			e := frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
			for _, n := range idx.search(e.box) {
				if visited[n] {
					continue
				}
				visited[n] = true
				members[n.handle] = true
				frontier = append(frontier, n)
			}
		}
		clusters = append(clusters, sortedKeys(members))
	}
	for _, h := range idx.unindexable() {
		clusters = append(clusters, []int{h})
	}
	sort.SliceStable(clusters, func(i, j int) bool { return clusters[i][0] < clusters[j][0] })

	idx.log.WithFields(logrus.Fields{
		"entries":  len(seeds),
		"clusters": len(clusters),
	}).Debug("spatially separated objects")
	return clusters
}

// SpatiallySeparate partitions the indexed masks into collections whose
// bounding boxes do not intersect across collections. See SeparateHandles.
func (idx *Index) SpatiallySeparate() []*object.Collection {
	clusters := idx.SeparateHandles()
	out := make([]*object.Collection, len(clusters))
	for i, handles := range clusters {
		c := object.NewCollection()
		for _, h := range handles {
			c.Add(idx.objects.Get(h))
		}
		out[i] = c
	}
	return out
}

// IntersectionGraph returns an undirected graph with one node per indexed
// handle and an edge between two handles whose keys intersect. Masks with an
// empty bounding box appear as isolated nodes.
func (idx *Index) IntersectionGraph() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for _, h := range idx.unindexable() {
		g.AddNode(simple.Node(h))
	}
	for _, e := range idx.entries {
		if g.Node(int64(e.handle)) == nil {
			g.AddNode(simple.Node(e.handle))
		}
	}
	for _, e := range idx.entries {
		for _, n := range idx.search(e.box) {
			if n.handle == e.handle {
				continue
			}
			g.SetEdge(simple.Edge{F: simple.Node(e.handle), T: simple.Node(n.handle)})
		}
	}
	return g
}

// unindexable lists the handles of masks in the collection whose bounding
// box is empty.
func (idx *Index) unindexable() []int {
	var out []int
	for i, m := range idx.objects.Masks() {
		if m.BoundingBox().Extent.IsEmpty() {
			out = append(out, i)
		}
	}
	return out
}

func sortedKeys(set map[int]bool) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
