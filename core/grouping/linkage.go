package grouping

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Merge is one step of the dendrogram. A and B are cluster ids: ids below n
// are single observations, id n+s is the cluster created by step s.
type Merge struct {
	A, B   int
	Height float64
	Size   int
}

// Linkage builds the Ward dendrogram of the 1-D points. It returns n-1
// merges in the order they were made; heights are non-decreasing.
// Equidistant candidates are resolved by the lowest pair of slots.
func Linkage(points []float64) []Merge {
	n := len(points)
	if n < 2 {
		return nil
	}
	dist := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist.SetSym(i, j, math.Abs(points[i]-points[j]))
		}
	}

	active := make([]bool, n)
	size := make([]int, n)
	id := make([]int, n)
	for i := range active {
		active[i] = true
		size[i] = 1
		id[i] = i
	}

	merges := make([]Merge, 0, n-1)
	for step := 0; step < n-1; step++ {
		a, b := -1, -1
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if !active[j] {
					continue
				}
				if d := dist.At(i, j); d < best {
					best, a, b = d, i, j
				}
			}
		}

		na, nb := float64(size[a]), float64(size[b])
		for k := 0; k < n; k++ {
			if !active[k] || k == a || k == b {
				continue
			}
			nk := float64(size[k])
			dak, dbk := dist.At(a, k), dist.At(b, k)
			v := ((na+nk)*dak*dak + (nb+nk)*dbk*dbk - nk*best*best) / (na + nb + nk)
			dist.SetSym(a, k, math.Sqrt(math.Max(v, 0)))
		}

		ca, cb := id[a], id[b]
		if ca > cb {
			ca, cb = cb, ca
		}
		merges = append(merges, Merge{A: ca, B: cb, Height: best, Size: size[a] + size[b]})
		active[b] = false
		size[a] += size[b]
		id[a] = n + step
	}
	return merges
}

// CutTree flattens a dendrogram over n observations: every merge with a
// height at or below threshold is applied. Labels start at 1 and are
// numbered in order of first appearance by observation index.
func CutTree(merges []Merge, n int, threshold float64) []int {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	// rep maps a cluster id to one of its observations.
	rep := make([]int, n+len(merges))
	for i := 0; i < n; i++ {
		rep[i] = i
	}
	for s, m := range merges {
		rep[n+s] = rep[m.A]
		if m.Height <= threshold {
			ra, rb := find(rep[m.A]), find(rep[m.B])
			if ra != rb {
				parent[rb] = ra
			}
		}
	}

	labels := make([]int, n)
	byRoot := make(map[int]int)
	for i := 0; i < n; i++ {
		r := find(i)
		l, ok := byRoot[r]
		if !ok {
			l = len(byRoot) + 1
			byRoot[r] = l
		}
		labels[i] = l
	}
	return labels
}
