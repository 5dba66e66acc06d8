package main

import (
	"sync/atomic"
	"time"

	"github.com/Gilqamesh/Monte-Carlo-Search-Tree-sub000/pkg/mcst"
)

// buildConfig assembles a Config from the persistent CLI flags, shared
// across move/play/bench.
func buildConfig() *mcst.Config {
	cfg := mcst.DefaultConfig(9).SetArenaCapacity(arenaCapacity).SetSeed(seed)
	if mostSimulated {
		cfg.SetWinningSelectionStrategy(mcst.StrategyMostSimulated)
	}
	return cfg
}

// buildTerminate returns a Terminate that stops as soon as the engine
// reports a decisive result (root became terminal, whether a forced win,
// loss or draw), or once movetimeMs has elapsed, or once cycles cycles have
// run - whichever comes first. A zero movetimeMs/cycles disables that
// particular bound. A background timer flips an atomic flag that the
// predicate polls on every cycle.
func buildTerminate(movetimeMs, cycles int) mcst.Terminate {
	var expired atomic.Bool
	if movetimeMs > 0 {
		time.AfterFunc(time.Duration(movetimeMs)*time.Millisecond, func() {
			expired.Store(true)
		})
	}

	count := 0
	return func(foundPerfectMove bool) bool {
		if foundPerfectMove {
			return true
		}
		if expired.Load() {
			return true
		}
		count++
		if cycles > 0 && count >= cycles {
			return true
		}
		return false
	}
}
