package mcst

// Expand allocates a fresh node via the arena, sets its ControlledType to
// the inverse of parent's, and returns it without yet attaching it to the
// tree - the caller is expected to AddChild it with the chosen move. The
// new node has NumSimulations == 0, signalling "please simulate me".
func Expand[M MoveLike](arena *Arena[M], parent NodeIndex) (*Node[M], error) {
	parentNode := arena.Node(parent)
	if parentNode.ControlledType != Controlled && parentNode.ControlledType != Uncontrolled {
		panicInvariant("Expand: parent %d has uninitialised ControlledType", parent)
	}

	child, err := arena.Allocate(parent)
	if err != nil {
		return nil, err
	}
	child.ControlledType = parentNode.ControlledType.Invert()
	return child, nil
}

// Select walks from root, choosing one child per level via selectChild,
// deleting the chosen move from a local working copy of the legal set and
// appending it to the returned move prefix. Stops at the first of: an
// already-terminal root, an exhausted legal set, a terminal selected
// child, or a freshly-expanded unsimulated leaf.
func Select[M MoveLike](arena *Arena[M], cfg *Config, root NodeIndex, legalAtRoot MoveSet[M]) (SelectionResult[M], error) {
	rootNode := arena.Node(root)
	if rootNode.IsTerminal() {
		return SelectionResult[M]{SelectedNode: root}, nil
	}

	currentLegal := legalAtRoot.Clone()
	current := root

	for {
		if currentLegal.MovesLeft == 0 {
			return SelectionResult[M]{SelectedNode: current, MovePrefix: buildMovePrefix(arena, root, current)}, nil
		}

		selected, err := selectChild(arena, cfg, current, currentLegal)
		if err != nil {
			return SelectionResult[M]{}, err
		}

		selectedNode := arena.Node(selected)
		if selectedNode.IsTerminal() {
			return SelectionResult[M]{SelectedNode: selected, MovePrefix: buildMovePrefix(arena, root, selected)}, nil
		}

		result := SelectionResult[M]{SelectedNode: selected}
		if selectedNode.hasMoveToGetHere {
			result.MovePrefix = buildMovePrefix(arena, root, selected)
		}

		if selectedNode.NumSimulations == 0 {
			return result, nil
		}

		currentLegal.DeleteMove(selectedNode.MoveToGetHere)
		current = selected
	}
}

// buildMovePrefix reconstructs the move sequence from root down to node,
// walking parent links. Cheap enough at tic-tac-toe depths; kept as a
// reconstruction rather than threading a prefix through recursion so
// Select's iterative loop stays simple.
func buildMovePrefix[M MoveLike](arena *Arena[M], root, node NodeIndex) MoveSequence[M] {
	var reversed []M
	for idx := node; idx != root; {
		n := arena.Node(idx)
		reversed = append(reversed, n.MoveToGetHere)
		idx = n.Parent
	}
	seq := MoveSequence[M]{Moves: make([]M, len(reversed))}
	for i, m := range reversed {
		seq.Moves[len(reversed)-1-i] = m
	}
	return seq
}

// selectChild classifies from_node's existing children by the
// controlled/terminal priority table (a Controlled node prefers a
// forced win outright, then the best-UCT neutral or non-terminal
// candidate, falling back to the least-bad loss; an Uncontrolled node
// mirrors this pessimistically for the opponent), expands a fresh child
// if no neutral candidate exists yet and there's room, and otherwise
// returns the winning candidate in priority order - possibly promoting
// from_node itself to terminal when every child is decided against it.
func selectChild[M MoveLike](arena *Arena[M], cfg *Config, from NodeIndex, legal MoveSet[M]) (NodeIndex, error) {
	fromNode := arena.Node(from)
	branchingFactor := legal.MovesLeft

	var (
		haveNeutral, haveLosing, haveWinning, haveBest bool
		neutralIdx, losingIdx, winningIdx, bestIdx      NodeIndex
		neutralUCT, losingUCT, winningUCT, bestUCT      float64
	)

	remaining := legal.Clone()

	for _, childIdx := range arena.Children(from) {
		child := arena.Node(childIdx)
		remaining.DeleteMove(child.MoveToGetHere)

		if child.NumSimulations == 0 {
			panicInvariant("selectChild: child %d chosen as a move but never simulated", childIdx)
		}

		if child.IsTerminal() {
			switch child.TerminalType {
			case Winning:
				if fromNode.ControlledType == Controlled {
					// Immediate return: the engine can force this win.
					return childIdx, nil
				}
				// Uncontrolled: opponent-pessimal, prefer lowest UCT.
				uct := UCT(arena, cfg, child, branchingFactor)
				if !haveWinning || uct < winningUCT {
					haveWinning, winningIdx, winningUCT = true, childIdx, uct
				}
			case Losing:
				if fromNode.ControlledType == Uncontrolled {
					panicInvariant("selectChild: losing child %d under uncontrolled parent %d was not already propagated", childIdx, from)
				}
				// Controlled: slowest loss, prefer highest UCT.
				uct := UCT(arena, cfg, child, branchingFactor)
				if !haveLosing || uct > losingUCT {
					haveLosing, losingIdx, losingUCT = true, childIdx, uct
				}
			case Neutral:
				uct := UCT(arena, cfg, child, branchingFactor)
				better := !haveNeutral
				if haveNeutral {
					if fromNode.ControlledType == Controlled {
						better = uct > neutralUCT
					} else {
						better = uct < neutralUCT
					}
				}
				if better {
					haveNeutral, neutralIdx, neutralUCT = true, childIdx, uct
				}
			default:
				panicInvariant("selectChild: unexpected terminal type %v on child %d", child.TerminalType, childIdx)
			}
			continue
		}

		uct := UCT(arena, cfg, child, branchingFactor)
		better := !haveBest
		if haveBest {
			if fromNode.ControlledType == Controlled {
				better = uct > bestUCT
			} else {
				better = uct < bestUCT
			}
		}
		if better {
			haveBest, bestIdx, bestUCT = true, childIdx, uct
		}
	}

	canExpand := !haveNeutral && arena.NumChildren(from) < arena.MaxMoves() && remaining.MovesLeft > 0
	if canExpand {
		moves := remaining.Moves()
		move := moves[cfg.Rand.Intn(len(moves))]

		fresh, err := Expand(arena, from)
		if err != nil {
			return InvalidIndex, err
		}
		if err := arena.AddChild(from, fresh.Index, move); err != nil {
			return InvalidIndex, err
		}
		return fresh.Index, nil
	}

	if haveBest {
		return bestIdx, nil
	}

	switch fromNode.ControlledType {
	case Controlled:
		if haveNeutral {
			fromNode.TerminalType = Neutral
			return from, nil
		}
		if haveLosing {
			fromNode.TerminalType = Losing
			return from, nil
		}
	case Uncontrolled:
		if haveNeutral {
			fromNode.TerminalType = Neutral
			return from, nil
		}
		if haveWinning {
			fromNode.TerminalType = Winning
			return from, nil
		}
	}

	panicInvariant("selectChild: no selectable child for node %d (controlled_type=%v)", from, fromNode.ControlledType)
	return InvalidIndex, nil
}
