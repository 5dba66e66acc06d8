// Package versus runs self-play batches between two move-picking agents
// and tallies results. Concrete over tic-tac-toe's move/position types
// rather than generic over arbitrary games - the engine itself
// (pkg/mcst) stays generic; this harness does not need to be.
package versus

import (
	"context"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/internal/ttt"
)

// AgentFunc picks a move for side in pos. Errors abort the game in
// progress, which is recorded but does not stop the rest of the batch.
type AgentFunc func(pos *ttt.Position, side ttt.Player) (ttt.Square, error)

// MatchResult is a finished game's outcome, relative to Player1/Player2
// rather than to X/O (which player went first varies game to game).
type MatchResult int

const (
	Draw MatchResult = iota
	Player1Win
	Player2Win
)

func (r MatchResult) String() string {
	switch r {
	case Player1Win:
		return "player1"
	case Player2Win:
		return "player2"
	default:
		return "draw"
	}
}

// GameRecord is one played game's outcome and move list.
type GameRecord struct {
	ID               uuid.UUID
	Moves            []ttt.Square
	Result           MatchResult
	Player1WentFirst bool
}

// Summary tallies a finished (or cancelled) batch.
type Summary struct {
	TotalGames        int
	Player1Wins       int
	Player2Wins       int
	Draws             int
	FirstToMoveWins   int
	SecondToMoveWins  int
	Games             []GameRecord
}

// Arena plays NumGames games between Player1 and Player2, choosing
// who moves first by a coin flip per game, across Concurrency worker goroutines -
// each game is an independent sequential mcst.Evaluate run underneath,
// so running several concurrently does not touch the single-threaded
// redesign of the search engine itself.
type Arena struct {
	Player1, Player2 AgentFunc
	NumGames         int
	Concurrency      int
	Rand             *rand.Rand
}

// NewArena returns an Arena configured for a single-threaded 100-game
// batch; callers override via the chained setters.
func NewArena(player1, player2 AgentFunc) *Arena {
	return &Arena{
		Player1:     player1,
		Player2:     player2,
		NumGames:    100,
		Concurrency: 1,
		Rand:        rand.New(rand.NewSource(1)),
	}
}

func (a *Arena) SetNumGames(n int) *Arena    { a.NumGames = n; return a }
func (a *Arena) SetConcurrency(n int) *Arena { a.Concurrency = n; return a }
func (a *Arena) SetSeed(seed int64) *Arena   { a.Rand = rand.New(rand.NewSource(seed)); return a }

// Run plays the configured batch, returning the accumulated Summary
// alongside an aggregated error (via go-multierror) of every game that
// failed - a failed game still counts toward TotalGames but not toward
// any win/draw tally. Context cancellation stops dispatching new games;
// a game already in flight stops before its next move and is counted as
// failed with the context's error.
func (a *Arena) Run(ctx context.Context) (Summary, error) {
	type outcome struct {
		rec GameRecord
		err error
	}

	results := make(chan outcome, a.NumGames)
	sem := make(chan struct{}, max(1, a.Concurrency))
	var wg sync.WaitGroup

	for i := 0; i < a.NumGames; i++ {
		select {
		case <-ctx.Done():
			goto dispatched
		default:
		}

		player1GoesFirst := a.Rand.Intn(2) == 0

		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			rec, err := playGame(ctx, a.Player1, a.Player2, player1GoesFirst)
			results <- outcome{rec: rec, err: err}
		}()
	}
dispatched:

	go func() {
		wg.Wait()
		close(results)
	}()

	var summary Summary
	var errs error
	summary.Games = make([]GameRecord, 0, a.NumGames)

	for o := range results {
		summary.TotalGames++
		if o.err != nil {
			errs = multierror.Append(errs, o.err)
			continue
		}

		summary.Games = append(summary.Games, o.rec)
		switch o.rec.Result {
		case Player1Win:
			summary.Player1Wins++
		case Player2Win:
			summary.Player2Wins++
		default:
			summary.Draws++
		}

		firstWon := (o.rec.Player1WentFirst && o.rec.Result == Player1Win) ||
			(!o.rec.Player1WentFirst && o.rec.Result == Player2Win)
		if o.rec.Result != Draw {
			if firstWon {
				summary.FirstToMoveWins++
			} else {
				summary.SecondToMoveWins++
			}
		}
	}

	return summary, errs
}

// playGame runs one game to completion, alternating move calls between
// whichever agent is "to move" - the agent that moves first always
// plays X, since tic-tac-toe always starts with X.
func playGame(ctx context.Context, player1, player2 AgentFunc, player1First bool) (GameRecord, error) {
	rec := GameRecord{ID: uuid.New(), Player1WentFirst: player1First}

	pos := ttt.NewPosition()
	toMove, other := player1, player2
	if !player1First {
		toMove, other = player2, player1
	}

	for !pos.IsOver() {
		select {
		case <-ctx.Done():
			return rec, ctx.Err()
		default:
		}

		mv, err := toMove(pos, pos.Turn())
		if err != nil {
			return rec, err
		}
		pos.MakeMove(mv)
		rec.Moves = append(rec.Moves, mv)
		toMove, other = other, toMove
	}

	switch pos.Outcome() {
	case ttt.OutcomeDraw:
		rec.Result = Draw
	case ttt.OutcomeXWon:
		if player1First {
			rec.Result = Player1Win
		} else {
			rec.Result = Player2Win
		}
	case ttt.OutcomeOWon:
		if player1First {
			rec.Result = Player2Win
		} else {
			rec.Result = Player1Win
		}
	}

	return rec, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
