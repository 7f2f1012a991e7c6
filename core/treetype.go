package core

// ClassifyType computes t's shape-class bitset if the cached value is
// stale, then returns it. Classes follow the standard definitions: a path
// has no vertex of degree > 2; a star has one vertex adjacent to every
// other (n <= 2 trivially qualifies); a caterpillar becomes a path once all
// leaves are stripped; a spider has at most one vertex of degree > 2 (every
// other vertex lies on a pendant path from it); quasi-star and bistar
// generalize star to two centers; two-linear is the two-centroid analogue
// of a path.
func (t *Tree) ClassifyType() (TreeType, error) {
	if t.typOK {
		return t.typ, nil
	}

	n := t.Graph.NumNodes()
	deg := make([]int, n)
	for v := 0; v < n; v++ {
		d, err := t.Graph.Degree(Vertex(v))
		if err != nil {
			return 0, err
		}
		deg[v] = d
	}

	var cls TreeType
	if isPath(deg) {
		cls |= TypePath | TypeCaterpillar | TypeSpider | TypeTwoLinear
	}
	if isStar(n, deg) {
		cls |= TypeStar | TypeQuasiStar | TypeBistar | TypeCaterpillar | TypeSpider
	}
	if isSpider(deg) {
		cls |= TypeSpider
	}
	if isCaterpillar(t.Graph, deg) {
		cls |= TypeCaterpillar
	}
	if isQuasiStar(n, deg) {
		cls |= TypeQuasiStar
	}
	if isBistar(deg) {
		cls |= TypeBistar
	}
	if isTwoLinear(deg) {
		cls |= TypeTwoLinear
	}

	t.typ = cls
	t.typOK = true

	return cls, nil
}

func isPath(deg []int) bool {
	for _, d := range deg {
		if d > 2 {
			return false
		}
	}

	return true
}

func isStar(n int, deg []int) bool {
	if n <= 2 {
		return true
	}
	leaves, centers := 0, 0
	for _, d := range deg {
		switch {
		case d == 1:
			leaves++
		case d == n-1:
			centers++
		default:
			return false
		}
	}

	return centers == 1 && leaves == n-1
}

// isQuasiStar: a star with one edge subdivided — one center adjacent to all
// but one vertex, and that vertex hanging off one of the center's neighbors.
// For n == 4 this is the path, whose center also has degree 2.
func isQuasiStar(n int, deg []int) bool {
	if n <= 2 {
		return true
	}
	degOneCount, degTwoCount, centerCount := 0, 0, 0
	for _, d := range deg {
		switch {
		case d == 1:
			degOneCount++
		case d == 2:
			degTwoCount++
		case d == n-2:
			centerCount++
		default:
			return false
		}
	}

	return (centerCount == 1 && degTwoCount == 1 && degOneCount == n-2) ||
		(n == 4 && degTwoCount == 2 && degOneCount == 2)
}

// isBistar: two adjacent centers, every other vertex a leaf of one of them.
func isBistar(deg []int) bool {
	n := len(deg)
	if n <= 3 {
		return false
	}
	leaves, centers := 0, 0
	centerDegSum := 0
	for _, d := range deg {
		if d == 1 {
			leaves++
			continue
		}
		centers++
		centerDegSum += d
	}

	return centers == 2 && leaves == n-2 && centerDegSum == n
}

// isSpider: at most one vertex of degree > 2 (the hub); every other vertex
// lies on a pendant path.
func isSpider(deg []int) bool {
	hubs := 0
	for _, d := range deg {
		if d > 2 {
			hubs++
		}
	}

	return hubs <= 1
}

// isTwoLinear: at most two vertices of degree > 2. Only the number of such
// hubs is checked; whether the hubs are adjacent and the shape of their
// branches are not examined.
func isTwoLinear(deg []int) bool {
	hubs := 0
	for _, d := range deg {
		if d > 2 {
			hubs++
		}
	}

	return hubs <= 2
}

// isCaterpillar: stripping every leaf of the original tree once leaves a
// path (or nothing).
func isCaterpillar(g *Graph, deg []int) bool {
	n := len(deg)
	remaining := append([]int(nil), deg...)
	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}
	aliveCount := n

	queue := make([]int, 0, n)
	for v, d := range remaining {
		if d <= 1 {
			queue = append(queue, v)
		}
	}
	for len(queue) > 0 && aliveCount > 2 {
		u := queue[0]
		queue = queue[1:]
		if !alive[u] {
			continue
		}
		nb, err := g.Neighbors(Vertex(u))
		if err != nil {
			return false
		}
		alive[u] = false
		aliveCount--
		for _, w := range nb {
			if alive[w] {
				remaining[w]--
			}
		}
	}

	for v := 0; v < n; v++ {
		if alive[v] && remaining[v] > 2 {
			return false
		}
	}

	return true
}
