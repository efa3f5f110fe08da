// Package autoplay drives a Simulation without a human: placement
// strategies decide what to build between waves and a fixed-step Runner
// plays waves until the game ends or a budget runs out.
package autoplay

import (
	"github.com/vovakirdan/wizard-td/internal/config"
	"github.com/vovakirdan/wizard-td/internal/core"
	"github.com/vovakirdan/wizard-td/internal/engine"
	"github.com/vovakirdan/wizard-td/internal/registry"
)

func init() {
	registry.Register("greedy", func() registry.Strategy { return &Greedy{} })
	registry.Register("frugal", func() registry.Strategy { return &Frugal{} })
	registry.Register("idle", func() registry.Strategy { return Idle{} })
}

// Greedy spends everything each wave, always on the most expensive
// defender it can afford.
type Greedy struct{}

func (*Greedy) Name() string { return "greedy" }

func (*Greedy) Description() string {
	return "Spends all gold each wave on the strongest affordable wizards"
}

func (*Greedy) Plan(sim *engine.Simulation) {
	collectDrops(sim)
	for {
		kind, ok := pickKind(sim, func(a, b engine.DefenderStats) bool { return a.Cost > b.Cost })
		if !ok || !placeBest(sim, kind) {
			return
		}
	}
}

// Frugal buys a single cheapest defender per wave and banks the rest.
type Frugal struct{}

func (*Frugal) Name() string { return "frugal" }

func (*Frugal) Description() string {
	return "Places one cheap wizard per wave and saves the rest"
}

func (*Frugal) Plan(sim *engine.Simulation) {
	collectDrops(sim)
	kind, ok := pickKind(sim, func(a, b engine.DefenderStats) bool { return a.Cost < b.Cost })
	if ok {
		placeBest(sim, kind)
	}
}

// Idle never builds anything. Useful as a baseline.
type Idle struct{}

func (Idle) Name() string                { return "idle" }
func (Idle) Description() string         { return "Never places a wizard (baseline)" }
func (Idle) Plan(sim *engine.Simulation) {}

// collectDrops picks up every item lying on the field.
func collectDrops(sim *engine.Simulation) {
	for _, d := range sim.Drops() {
		sim.PickUpDrop(d.ID)
	}
}

// pickKind returns the unlocked, affordable kind that sorts first under
// better. Kinds are visited in roster order so ties are stable.
func pickKind(sim *engine.Simulation, better func(a, b engine.DefenderStats) bool) (string, bool) {
	gold := sim.Economy().Gold
	var best engine.DefenderStats
	found := false
	for _, kind := range sim.Settings().DefenderKinds() {
		st, ok := sim.DefenderStats(kind)
		if !ok || !st.Unlocked || st.Cost > gold {
			continue
		}
		if !found || better(st, best) {
			best, found = st, true
		}
	}
	return best.Kind, found
}

// placeBest puts kind on the free cell that covers the most path.
func placeBest(sim *engine.Simulation, kind string) bool {
	cell, ok := BestCell(sim, kind)
	if !ok {
		return false
	}
	return sim.PlaceDefender(kind, cell.Col, cell.Row)
}

// BestCell returns the free cell from which kind would cover the most path
// waypoints. Ties go to the first cell in row-major order.
func BestCell(sim *engine.Simulation, kind string) (config.Cell, bool) {
	st, ok := sim.DefenderStats(kind)
	if !ok {
		return config.Cell{}, false
	}
	grid := sim.Grid()
	path := grid.Path()

	var best config.Cell
	bestScore := -1
	for _, c := range grid.FreeCells() {
		if score := Coverage(grid.GridToWorld(c.Col, c.Row), st.Range, path); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best, bestScore >= 0
}

// Coverage counts the waypoints within rng of pos.
func Coverage(pos core.Vec, rng int, path []engine.GridPosition) int {
	n := 0
	for _, wp := range path {
		if core.Dist(pos, wp.Pos()) <= float64(rng) {
			n++
		}
	}
	return n
}
