package assign

// jvSolve runs the Jonker–Volgenant potentials variant of Kuhn–Munkres
// on a square cost matrix and returns perm with perm[i] = column
// assigned to row i. Costs must be finite; callers validate.
//
// The shortest augmenting path search keeps row potentials u and
// column potentials v so that reduced costs c[i][j]-u[i]-v[j] stay
// non-negative on matched pairs; each of the n augmentations runs a
// Dijkstra-like scan over columns.
//
// Internals are 1-indexed for cleaner index arithmetic; column 0 is
// the virtual start of every augmenting path.
//
// Complexity: O(n³) time, O(n) extra space.
func jvSolve(c [][]float64) []int {
	n := len(c)
	if n == 0 {
		return nil
	}

	const inf = 1e308 // larger than any finite path cost in a validated matrix

	var (
		u    = make([]float64, n+1) // row potentials
		v    = make([]float64, n+1) // column potentials
		p    = make([]int, n+1)     // p[j] = row matched to column j (0 = free)
		way  = make([]int, n+1)     // way[j] = previous column on the augmenting path
		minv = make([]float64, n+1) // minimal reduced cost to reach column j
		used = make([]bool, n+1)    // columns already scanned this round
	)

	var (
		i, j, j0, j1, i0 int
		cur, delta       float64
	)
	for i = 1; i <= n; i++ {
		p[0] = i
		j0 = 0
		for j = 1; j <= n; j++ {
			minv[j] = inf
			used[j] = false
		}

		// Grow the alternating tree until a free column is reached.
		for {
			used[j0] = true
			i0 = p[j0]
			delta = inf
			j1 = 0

			for j = 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur = c[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			// Shift potentials so the cheapest reachable column becomes tight.
			for j = 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Augment: flip matches along the path back to the virtual column.
		for j0 != 0 {
			p[j0] = p[way[j0]]
			j0 = way[j0]
		}
	}

	perm := make([]int, n)
	for j = 1; j <= n; j++ {
		perm[p[j]-1] = j - 1
	}

	return perm
}
