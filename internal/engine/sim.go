// Package engine implements the tower-defense simulation: a grid with a
// fixed enemy path, an economy, waves of scaling enemies, wizard defenders
// with delayed hits, collectible item upgrades and summoned skeletons.
//
// The simulation is single-threaded and advanced only by Update. All time
// is simulation time in milliseconds; nothing reads the wall clock. Given
// the same settings, seed, commands and deltas, two runs produce identical
// event streams.
package engine

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wizard-td/internal/config"
	"github.com/vovakirdan/wizard-td/internal/core"
)

// Options configures a Simulation beyond its game settings.
type Options struct {
	Runtime core.RuntimeConfig // Seed drives item drops
	Logger  *log.Logger        // nil discards log output
}

// Stats are running counters for the current session.
type Stats struct {
	ShotsFired     int
	HitsLanded     int
	HitsDropped    int
	DamageDealt    int
	Kills          int
	Leaks          int
	GoldFromKills  int
	ItemsCollected int
	WavesCleared   int
}

// task is a unit of deferred work. Exactly one field is set.
type task struct {
	hit     *pendingHit
	collect *pendingCollect
}

type pendingCollect struct {
	session uint64
	drop    DropID
}

// Simulation is the game session. It owns every component and is the only
// way hosts issue commands.
type Simulation struct {
	settings config.Settings
	runtime  core.RuntimeConfig
	sink     EventSink
	logger   *log.Logger

	grid      *Grid
	path      []GridPosition
	economy   *Economy
	effects   *EffectRegistry
	waves     *WaveController
	combat    *CombatResolver
	inventory *Inventory
	dropTable *DropTable
	tasks     *Scheduler[task]
	rng       *rand.Rand

	enemies      []*Enemy
	enemyByID    map[EnemyID]*Enemy
	defenders    []*Defender
	defenderByID map[DefenderID]*Defender
	skeletons    []*Skeleton
	drops        []*Drop
	selected     string

	now     float64
	tick    uint64
	session uint64
	stats   Stats

	updating       bool
	restartPending bool

	nextEnemyID    int
	nextDefenderID int
	nextSkeletonID int
	nextDropID     int
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func newRNG(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// New validates settings and returns a simulation at wave 1 with the
// starting balance. A nil sink discards events.
func New(settings config.Settings, sink EventSink, opts Options) (*Simulation, error) {
	if err := config.Validate(settings); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	settings = settings.Clone()

	grid, err := NewGrid(settings.Grid)
	if err != nil {
		return nil, err
	}
	if sink == nil {
		sink = discardSink{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}

	s := &Simulation{
		settings:     settings,
		runtime:      opts.Runtime,
		sink:         sink,
		logger:       logger,
		grid:         grid,
		path:         grid.Path(),
		economy:      NewEconomy(settings.Game.StartingGold, settings.Game.StartingLives, logger),
		effects:      NewEffectRegistry(),
		waves:        NewWaveController(settings.Waves),
		combat:       NewCombatResolver(settings.Combat, grid.TileSize()),
		inventory:    NewInventory(settings.Items.InventorySize),
		dropTable:    NewDropTable(settings.Items),
		tasks:        NewScheduler[task](),
		rng:          newRNG(opts.Runtime.Seed),
		enemyByID:    make(map[EnemyID]*Enemy),
		defenderByID: make(map[DefenderID]*Defender),
	}

	s.economy.OnGoldChange(func(gold int) { s.emit(GoldChanged{Gold: gold}) })
	s.economy.OnLivesChange(func(lives int) { s.emit(LivesChanged{Lives: lives}) })
	s.economy.OnWaveChange(func(wave int) { s.emit(WaveChanged{Wave: wave}) })
	s.economy.OnGameOver(func(finalWave int) { s.emit(GameOver{FinalWave: finalWave}) })

	return s, nil
}

func (s *Simulation) emit(e Event) {
	s.sink.Handle(e)
}

// Update advances the simulation by deltaMs. Within a tick the order is:
// deferred hits and collections due from earlier ticks, wave spawning,
// enemy movement and skeleton contact, defender summons and firing, and
// finally the wave-completion check. Non-positive deltas and game-over
// sessions are left untouched.
func (s *Simulation) Update(deltaMs float64) {
	if deltaMs <= 0 || s.economy.GameOver() {
		return
	}
	s.updating = true
	defer s.finishUpdate()

	s.tick++
	s.now += deltaMs

	s.runDueTasks()
	s.spawnEnemies(deltaMs)
	s.moveEnemies(deltaMs)
	if s.economy.GameOver() {
		return
	}
	s.summonSkeletons()
	s.fireDefenders()
	s.checkWaveComplete()
}

// finishUpdate runs a Restart requested by an event handler during the tick.
func (s *Simulation) finishUpdate() {
	s.updating = false
	if s.restartPending {
		s.restartPending = false
		s.restart()
	}
}

func (s *Simulation) runDueTasks() {
	for _, t := range s.tasks.PopDue(s.now, s.tick) {
		switch {
		case t.hit != nil:
			s.resolveHit(t.hit)
		case t.collect != nil:
			s.autoCollect(t.collect)
		}
	}
}

func (s *Simulation) spawnEnemies(deltaMs float64) {
	if !s.economy.WaveInProgress() {
		return
	}
	kind, ok := s.waves.Tick(deltaMs)
	if !ok {
		return
	}
	cfg, found := s.settings.Enemies[kind]
	if !found {
		s.logger.Warn("unknown enemy kind in rotation", "kind", kind)
		return
	}

	s.nextEnemyID++
	e := NewEnemy(EnemyID(s.nextEnemyID), kind, cfg, s.settings.Waves, s.economy.Wave(), s.path, s.settings.Combat.WaypointTolerance)
	s.enemies = append(s.enemies, e)
	s.enemyByID[e.ID] = e
	s.logger.Debug("enemy spawned", "enemy", e.ID, "kind", kind, "health", e.Health, "speed", e.Speed)
	s.emit(EnemySpawned{ID: e.ID, Kind: kind, Pos: e.Pos(), Health: e.Health})
}

func (s *Simulation) moveEnemies(deltaMs float64) {
	for _, e := range s.enemies {
		if !e.Active() {
			continue
		}
		if e.Update(deltaMs) {
			s.stats.Leaks++
			s.logger.Debug("enemy escaped", "enemy", e.ID)
			s.emit(EnemyReachedEnd{ID: e.ID})
			s.economy.LoseLife()
			if s.economy.GameOver() {
				break
			}
			continue
		}
		s.emit(EnemyMoved{ID: e.ID, Pos: e.Pos()})
	}

	if !s.economy.GameOver() {
		s.resolveSkeletonContacts()
	}
	s.pruneEnemies()
}

// pruneEnemies forgets dead and escaped enemies. Hits still in flight to
// them are dropped when they land.
func (s *Simulation) pruneEnemies() {
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		if e.Active() {
			kept = append(kept, e)
			continue
		}
		delete(s.enemyByID, e.ID)
	}
	for i := len(kept); i < len(s.enemies); i++ {
		s.enemies[i] = nil
	}
	s.enemies = kept
}

func (s *Simulation) liveEnemies() int {
	n := 0
	for _, e := range s.enemies {
		if e.Active() {
			n++
		}
	}
	return n
}

func (s *Simulation) checkWaveComplete() {
	if !s.waves.Complete(s.liveEnemies()) {
		return
	}
	cleared := s.economy.Wave()
	s.economy.SetWaveInProgress(false)
	s.economy.NextWave()
	bonus := s.waves.CompletionBonus(s.economy.Wave())
	s.economy.AddGold(bonus)
	s.pruneSkeletons(true)
	s.stats.WavesCleared++

	s.logger.Debug("wave completed", "wave", cleared, "bonus", bonus, "gold", s.economy.Gold())
	s.emit(WaveCompleted{Wave: cleared, Bonus: bonus})
}

// StartWave begins spawning the current wave. It fails while a wave is in
// progress or after game over.
func (s *Simulation) StartWave() bool {
	if s.economy.GameOver() || s.economy.WaveInProgress() {
		return false
	}
	wave := s.economy.Wave()
	if !s.waves.Start(wave) {
		return false
	}
	s.economy.SetWaveInProgress(true)
	s.logger.Debug("wave started", "wave", wave, "enemies", s.waves.Total())
	s.emit(WaveStarted{Wave: wave, Enemies: s.waves.Total()})

	// An empty wave is complete as soon as it starts.
	if s.waves.Total() == 0 {
		s.checkWaveComplete()
	}
	return true
}

// PlaceDefender buys and places a defender of kind at (col,row). Nothing
// changes unless the cell is free, the kind is unlocked and gold covers
// the cost.
func (s *Simulation) PlaceDefender(kind string, col, row int) bool {
	if s.economy.GameOver() {
		return false
	}
	cfg, ok := s.settings.Defenders[kind]
	if !ok {
		return false
	}
	if !s.grid.CanPlace(col, row) || !s.Unlocked(kind) || s.economy.Gold() < cfg.Cost {
		return false
	}
	if !s.economy.SpendGold(cfg.Cost) {
		return false
	}
	s.grid.Place(col, row)

	s.nextDefenderID++
	d := NewDefender(DefenderID(s.nextDefenderID), kind, cfg, col, row, s.grid.GridToWorld(col, row), s.effects)
	s.defenders = append(s.defenders, d)
	s.defenderByID[d.ID] = d

	s.logger.Debug("defender placed", "defender", d.ID, "kind", kind, "col", col, "row", row)
	s.emit(DefenderPlaced{ID: d.ID, Kind: kind, Col: col, Row: row, Pos: d.Pos(), Cost: cfg.Cost})
	return true
}

// SelectDefenderType arms kind for PlaceSelected. Locked or unknown kinds
// are refused.
func (s *Simulation) SelectDefenderType(kind string) bool {
	if s.economy.GameOver() || !s.Unlocked(kind) {
		return false
	}
	s.selected = kind
	return true
}

// ClearSelection disarms the selected kind.
func (s *Simulation) ClearSelection() {
	s.selected = ""
}

// PlaceSelected places the selected kind and clears the selection on success.
func (s *Simulation) PlaceSelected(col, row int) bool {
	if s.selected == "" {
		return false
	}
	if !s.PlaceDefender(s.selected, col, row) {
		return false
	}
	s.selected = ""
	return true
}

// PlaceAt places the selected kind on the cell under a world position.
func (s *Simulation) PlaceAt(x, y float64) bool {
	col, row := s.grid.WorldToGrid(x, y)
	return s.PlaceSelected(col, row)
}

// CollectItem adds item to the inventory and applies its effect.
// It fails when the inventory is full.
func (s *Simulation) CollectItem(item Item) bool {
	if s.economy.GameOver() {
		return false
	}
	if !s.inventory.Add(item) {
		s.logger.Debug("inventory full", "item", item.ID)
		return false
	}
	s.effects.Apply(item.Effect, item.Value)
	s.stats.ItemsCollected++

	s.logger.Debug("item collected", "item", item.ID, "effect", item.Effect, "value", item.Value)
	s.emit(ItemCollected{Item: item, Inventory: s.inventory.Len()})
	s.emit(ItemEffectsUpdated{Effects: s.effects.Snapshot()})
	return true
}

// PickUpDrop collects a drop before its auto-collect time. The drop leaves
// the field even if the inventory is full.
func (s *Simulation) PickUpDrop(id DropID) bool {
	if s.economy.GameOver() {
		return false
	}
	d := s.takeDrop(id)
	if d == nil {
		return false
	}
	return s.CollectItem(d.Item)
}

func (s *Simulation) rollDrop(pos core.Vec) {
	item, ok := s.dropTable.Roll(s.rng)
	if !ok {
		return
	}
	s.nextDropID++
	d := &Drop{
		ID:          DropID(s.nextDropID),
		Item:        item,
		Pos:         pos,
		CollectAtMs: s.now + s.settings.Items.AutoCollectMs,
	}
	s.drops = append(s.drops, d)
	s.tasks.Schedule(d.CollectAtMs, s.tick, task{collect: &pendingCollect{session: s.session, drop: d.ID}})

	s.logger.Debug("item dropped", "drop", d.ID, "item", item.ID)
	s.emit(ItemDropped{ID: d.ID, Item: item, Pos: pos})
}

func (s *Simulation) autoCollect(c *pendingCollect) {
	if c.session != s.session {
		return
	}
	if d := s.takeDrop(c.drop); d != nil {
		s.CollectItem(d.Item)
	}
}

func (s *Simulation) takeDrop(id DropID) *Drop {
	for i, d := range s.drops {
		if d.ID == id {
			s.drops = append(s.drops[:i], s.drops[i+1:]...)
			return d
		}
	}
	return nil
}

// Restart tears the session down and starts over at wave 1. Deferred work
// from the old session is discarded and never fires.
//
// Called from an event handler while Update is running, the restart takes
// effect once the current tick has finished, so no unit of the old session
// acts on the new one.
func (s *Simulation) Restart() {
	if s.updating {
		s.restartPending = true
		return
	}
	s.restart()
}

func (s *Simulation) restart() {
	s.session++
	s.tasks.Clear()

	s.grid.Reset()
	s.effects.Reset()
	s.inventory.Reset()
	s.waves.Reset()
	s.rng = newRNG(s.runtime.Seed)

	s.enemies = nil
	s.enemyByID = make(map[EnemyID]*Enemy)
	s.defenders = nil
	s.defenderByID = make(map[DefenderID]*Defender)
	s.skeletons = nil
	s.drops = nil
	s.selected = ""
	s.now = 0
	s.tick = 0
	s.stats = Stats{}

	s.economy.Reset()
	s.logger.Info("game restarted", "session", s.session)
	s.emit(GameRestarted{})
}
