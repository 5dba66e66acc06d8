package mcst

// NumberOfSimulationsRan reports how many simulations have accumulated
// at root across however many Evaluate calls have run on this arena
// since the last Clear.
func NumberOfSimulationsRan[M MoveLike](arena *Arena[M], root NodeIndex) int {
	return arena.Node(root).NumSimulations
}

// Evaluate runs the Select/Expand-or-revisit/Simulate/BackPropagate loop
// against root until terminate reports done. root is
// marked Controlled on its first call (the engine always searches from
// its own side to move). legalAtRoot is the move set available at root
// going into this call; Select clones it per descent and never mutates
// the caller's copy. An empty legalAtRoot returns ErrEmptyLegalSet before
// any iteration runs.
//
// On each iteration: Select walks to a leaf. If root itself comes back
// terminal - the only way Select returns root as the selected node -
// there is nothing left to learn: terminate(true) fires once and
// Evaluate returns immediately without a further simulate/backpropagate
// pass, since root has no parent to climb to. Otherwise, if the leaf is
// already terminal (a prior promotion or expansion decided it), Evaluate
// skips simulate and backpropagates the leaf's existing Value/
// NumSimulations as they stand - a terminal leaf is never resimulated,
// so a repeat visit re-adds the same totals up the tree rather than
// growing them. A non-terminal leaf is handed to simulate, which is
// expected to set its Value/NumSimulations (starting from zero); those
// become what gets backpropagated. Either way, terminate(false) is
// polled once more before the next iteration.
func Evaluate[M MoveLike](arena *Arena[M], cfg *Config, root NodeIndex, legalAtRoot MoveSet[M], simulate Simulate[M], terminate Terminate) error {
	if legalAtRoot.MovesLeft == 0 {
		return ErrEmptyLegalSet
	}

	rootNode := arena.Node(root)
	if rootNode.ControlledType == None {
		rootNode.ControlledType = Controlled
	}

	for {
		result, err := Select(arena, cfg, root, legalAtRoot)
		if err != nil {
			return err
		}

		leaf := result.SelectedNode
		leafNode := arena.Node(leaf)

		if leaf == root && leafNode.IsTerminal() {
			terminate(true)
			return nil
		}

		if !leafNode.IsTerminal() {
			simulate(result.MovePrefix, leafNode, arena)
			if leafNode.NumSimulations == 0 {
				panicInvariant("Evaluate: simulate ran zero playouts on node %d", leaf)
			}
		}

		BackPropagate(arena, leaf, leafNode.Value, leafNode.NumSimulations)

		if terminate(false) {
			return nil
		}
	}
}

// PickBestRootMove chooses root's best child under cfg's
// WinningSelectionStrategy and returns the move that reaches it.
// Children are ranked by tier first - a forced win always
// beats an undecided or neutral child, which always beats a forced
// loss. Within the winning tier the shallowest forced-win depth comes
// first, and within the losing tier the deepest forced-loss depth comes
// first, under either strategy. Remaining ties (and the whole
// undecided/neutral tier) go to a strategy-specific tiebreaker:
// StrategyUCT uses the UCT score (computed the way SelectChild treats a
// Controlled node, since root is always Controlled); StrategyMostSimulated
// uses the raw visit count. Returns ErrEmptyLegalSet if root has no
// children.
func PickBestRootMove[M MoveLike](arena *Arena[M], cfg *Config, root NodeIndex) (M, error) {
	var zero M
	children := arena.Children(root)
	if len(children) == 0 {
		return zero, ErrEmptyLegalSet
	}
	branchingFactor := len(children)

	best := InvalidIndex
	bestTier := 3
	var bestPrimary, bestSecondary float64

	for _, idx := range children {
		child := arena.Node(idx)

		tier := 1
		if child.IsTerminal() {
			switch child.TerminalType {
			case Winning:
				tier = 0
			case Losing:
				tier = 2
			}
		}

		var primary float64
		switch tier {
		case 0:
			primary = -float64(child.TerminalDepth.Winning)
		case 2:
			primary = float64(child.TerminalDepth.Losing)
		}

		var secondary float64
		if cfg.WinningSelectionStrategy == StrategyMostSimulated {
			secondary = float64(child.NumSimulations)
		} else {
			secondary = UCT(arena, cfg, child, branchingFactor)
		}

		better := best == InvalidIndex ||
			tier < bestTier ||
			(tier == bestTier && primary > bestPrimary) ||
			(tier == bestTier && primary == bestPrimary && secondary > bestSecondary)

		if better {
			best, bestTier, bestPrimary, bestSecondary = idx, tier, primary, secondary
		}
	}

	return arena.Node(best).MoveToGetHere, nil
}
