package mcst

import "math"

// UCT scores a candidate child node against its parent:
//
//	UCT(c) = c.Value/c.NumSimulations
//	       + W_b * C * sqrt(ln(parent.NumSimulations) / c.NumSimulations)
//
// with C = cfg.ExplorationFactor (default sqrt(2)) and
// W_b = 0.2 * branchingFactor * cfg.ExplorationWeightTuned / c.Depth.
//
// The 0.2*branchingFactor term biases toward exploration when the fan-out
// is wide and toward exploitation when it is narrow; the 1/depth factor
// damps exploration deep in the tree. UCT panics with InvariantViolation
// if called on an unexplored child or the root (both are programmer
// errors: callers must filter those out before scoring).
func UCT[M MoveLike](arena *Arena[M], cfg *Config, child *Node[M], branchingFactor int) float64 {
	if child.NumSimulations == 0 {
		panicInvariant("UCT called on unexplored child (index=%d)", child.Index)
	}
	if child.Parent == InvalidIndex {
		panicInvariant("UCT called on the root (index=%d)", child.Index)
	}

	parent := arena.Node(child.Parent)

	branchWeight := 0.2 * float64(branchingFactor)
	weightedExploration := branchWeight * cfg.ExplorationWeightTuned * cfg.ExplorationFactor / float64(child.Depth)

	exploitation := child.Value / float64(child.NumSimulations)
	exploration := weightedExploration * math.Sqrt(math.Log(float64(parent.NumSimulations))/float64(child.NumSimulations))

	return exploitation + exploration
}
