package mcst

import "testing"

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 17: 32}
	for in, want := range cases {
		if got := nextPowerOfTwo(in); got != want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestNewArenaRejectsNonPositiveArgs(t *testing.T) {
	if _, err := NewArena[int](0, 9); err == nil {
		t.Fatal("expected error for zero capacity")
	}
	if _, err := NewArena[int](16, 0); err == nil {
		t.Fatal("expected error for zero maxMoves")
	}
}

func TestArenaAllocateExhaustion(t *testing.T) {
	arena, err := NewArena[int](2, 4)
	if err != nil {
		t.Fatal(err)
	}

	// capacity rounds up to the next power of two (2), so exactly two
	// allocations should succeed before ErrOutOfNodes.
	if _, err := arena.Allocate(InvalidIndex); err != nil {
		t.Fatalf("first allocate: %v", err)
	}
	if _, err := arena.Allocate(InvalidIndex); err != nil {
		t.Fatalf("second allocate: %v", err)
	}
	if _, err := arena.Allocate(InvalidIndex); err == nil {
		t.Fatal("expected ErrOutOfNodes on third allocate")
	}
}

func TestArenaAddChildTableFull(t *testing.T) {
	arena, err := NewArena[int](16, 2)
	if err != nil {
		t.Fatal(err)
	}
	root, _ := arena.Allocate(InvalidIndex)
	c1, _ := arena.Allocate(root.Index)
	c2, _ := arena.Allocate(root.Index)
	c3, _ := arena.Allocate(root.Index)

	if err := arena.AddChild(root.Index, c1.Index, 0); err != nil {
		t.Fatalf("first AddChild: %v", err)
	}
	if err := arena.AddChild(root.Index, c2.Index, 1); err != nil {
		t.Fatalf("second AddChild: %v", err)
	}
	if err := arena.AddChild(root.Index, c3.Index, 2); err == nil {
		t.Fatal("expected ErrChildTableFull on third AddChild")
	}
}

func TestArenaClearResetsState(t *testing.T) {
	arena, err := NewArena[int](8, 4)
	if err != nil {
		t.Fatal(err)
	}
	root, _ := arena.Allocate(InvalidIndex)
	child, _ := arena.Allocate(root.Index)
	if err := arena.AddChild(root.Index, child.Index, 5); err != nil {
		t.Fatal(err)
	}
	if arena.NumChildren(root.Index) != 1 {
		t.Fatalf("expected 1 child before clear, got %d", arena.NumChildren(root.Index))
	}

	arena.Clear()

	if arena.Size() != 0 {
		t.Fatalf("expected size 0 after clear, got %d", arena.Size())
	}
	newRoot, err := arena.Allocate(InvalidIndex)
	if err != nil {
		t.Fatal(err)
	}
	if newRoot.Index != 0 {
		t.Fatalf("expected first post-clear allocation to reuse index 0, got %d", newRoot.Index)
	}
	if arena.NumChildren(newRoot.Index) != 0 {
		t.Fatalf("expected reused slot's child table cleared, got %d children", arena.NumChildren(newRoot.Index))
	}
}

// TestMergeTerminalDepthZeroAdoptQuirk pins the intentional "if-zero-adopt,
// then unconditionally-monotone" merge behaviour: merging an all-zero
// child depth into an already-set parent depth can still clobber the
// parent's Winning field back toward zero, because the unconditional
// "child.Winning < parent.Winning" comparison runs even when child never
// became terminal. This is not a bug to fix; see DESIGN.md.
func TestMergeTerminalDepthZeroAdoptQuirk(t *testing.T) {
	parent := TerminalDepth{Winning: 4, Losing: 2, Neutral: 3}
	child := TerminalDepth{} // never became terminal: all fields zero

	mergeTerminalDepth(&parent, child)

	if parent.Winning != 0 {
		t.Fatalf("expected the zero-adopt quirk to reset Winning to 0, got %d", parent.Winning)
	}
	if parent.Losing != 2 {
		t.Fatalf("Losing should adopt via max(2, 0) = 2, got %d", parent.Losing)
	}
	if parent.Neutral != 3 {
		t.Fatalf("Neutral should adopt via max(3, 0) = 3, got %d", parent.Neutral)
	}
}

func TestMergeTerminalDepthNormalMonotonicity(t *testing.T) {
	parent := TerminalDepth{Winning: 5, Losing: 2, Neutral: 0}
	mergeTerminalDepth(&parent, TerminalDepth{Winning: 3, Losing: 6, Neutral: 4})

	if parent.Winning != 3 {
		t.Fatalf("Winning should take the min (3), got %d", parent.Winning)
	}
	if parent.Losing != 6 {
		t.Fatalf("Losing should take the max (6), got %d", parent.Losing)
	}
	if parent.Neutral != 4 {
		t.Fatalf("Neutral was unset (0), should adopt child's 4, got %d", parent.Neutral)
	}
}
