package engine

import "github.com/vovakirdan/wizard-td/internal/core"

// Event is something the simulation reports to its host.
// The set of events is closed; hosts switch on the concrete type.
type Event interface {
	simEvent()
}

// GoldChanged is sent after every change to the gold balance.
type GoldChanged struct {
	Gold int
}

// LivesChanged is sent after a life is lost or lives are reset.
type LivesChanged struct {
	Lives int
}

// WaveChanged is sent when the wave counter advances or is reset.
type WaveChanged struct {
	Wave int
}

// WaveStarted is sent when a wave begins spawning.
type WaveStarted struct {
	Wave    int
	Enemies int
}

// WaveCompleted is sent once a started wave is fully cleared.
type WaveCompleted struct {
	Wave  int // The wave that was cleared
	Bonus int // Completion gold awarded
}

// EnemySpawned is sent when an enemy enters the path.
type EnemySpawned struct {
	ID     EnemyID
	Kind   string
	Pos    core.Vec
	Health int
}

// EnemyMoved is sent for each enemy that moved during a tick.
type EnemyMoved struct {
	ID  EnemyID
	Pos core.Vec
}

// EnemyDied is sent exactly once when an enemy is killed.
type EnemyDied struct {
	ID     EnemyID
	Pos    core.Vec
	Reward int
}

// EnemyReachedEnd is sent when an enemy escapes through the exit.
type EnemyReachedEnd struct {
	ID EnemyID
}

// DefenderPlaced is sent after a successful placement.
type DefenderPlaced struct {
	ID   DefenderID
	Kind string
	Col  int
	Row  int
	Pos  core.Vec
	Cost int
}

// DefenderFired is sent when a defender commits to a target.
// Damage lands later, see HitLanded.
type DefenderFired struct {
	ID        DefenderID
	Target    EnemyID
	TargetPos core.Vec
	Element   Element
}

// HitLanded is sent for every enemy damaged by a resolved hit.
type HitLanded struct {
	Defender DefenderID
	Target   EnemyID
	Damage   int
	Killed   bool
}

// SkeletonSummoned is sent when a necromancer raises a skeleton.
type SkeletonSummoned struct {
	ID     SkeletonID
	Owner  DefenderID
	Pos    core.Vec
	Health int
}

// SkeletonExpired is sent when a skeleton is destroyed or dismissed.
type SkeletonExpired struct {
	ID SkeletonID
}

// ItemDropped is sent when a slain enemy leaves an item behind.
type ItemDropped struct {
	ID   DropID
	Item Item
	Pos  core.Vec
}

// ItemCollected is sent when an item enters the inventory.
type ItemCollected struct {
	Item      Item
	Inventory int // Items held after collection
}

// ItemEffectsUpdated carries the registry totals after an item is applied.
type ItemEffectsUpdated struct {
	Effects EffectSnapshot
}

// GameOver is sent once, when the last life is lost.
type GameOver struct {
	FinalWave int
}

// GameRestarted is sent after Restart has reset every component.
type GameRestarted struct{}

func (GoldChanged) simEvent()        {}
func (LivesChanged) simEvent()       {}
func (WaveChanged) simEvent()        {}
func (WaveStarted) simEvent()        {}
func (WaveCompleted) simEvent()      {}
func (EnemySpawned) simEvent()       {}
func (EnemyMoved) simEvent()         {}
func (EnemyDied) simEvent()          {}
func (EnemyReachedEnd) simEvent()    {}
func (DefenderPlaced) simEvent()     {}
func (DefenderFired) simEvent()      {}
func (HitLanded) simEvent()          {}
func (SkeletonSummoned) simEvent()   {}
func (SkeletonExpired) simEvent()    {}
func (ItemDropped) simEvent()        {}
func (ItemCollected) simEvent()      {}
func (ItemEffectsUpdated) simEvent() {}
func (GameOver) simEvent()           {}
func (GameRestarted) simEvent()      {}

// EventSink receives simulation events synchronously, in emission order.
type EventSink interface {
	Handle(e Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(e Event)

// Handle calls f(e).
func (f EventSinkFunc) Handle(e Event) {
	f(e)
}

// MultiSink fans events out to several sinks in order.
type MultiSink []EventSink

// Handle forwards e to every sink.
func (m MultiSink) Handle(e Event) {
	for _, s := range m {
		if s != nil {
			s.Handle(e)
		}
	}
}

type discardSink struct{}

func (discardSink) Handle(Event) {}

// Recorder is an EventSink that keeps every event it receives.
type Recorder struct {
	Events []Event
}

// Handle appends e.
func (r *Recorder) Handle(e Event) {
	r.Events = append(r.Events, e)
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

// EventsOf returns the recorded events of type T, in order.
func EventsOf[T Event](r *Recorder) []T {
	var out []T
	for _, e := range r.Events {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
