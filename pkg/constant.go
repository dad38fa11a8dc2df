package pkg

const (
	INF_WEIGHT float64 = 1e15

	// relative tolerance when deciding two path costs are equal
	COST_EQUAL_RELATIVE_EPS = 1e-6

	DEFAULT_HEURISTIC_WEIGHT = 1.0
)

const (
	DEBUG = false
)
