package engine

import "github.com/vovakirdan/wizard-td/internal/core"

// SkeletonID identifies a summoned skeleton.
type SkeletonID int

// Skeleton is a stationary minion raised on the path by a necromancer.
// It trades health with enemies that walk into it.
type Skeleton struct {
	ID     SkeletonID
	Owner  DefenderID
	Pos    core.Vec
	Health int
}

// Alive reports whether the skeleton can still block.
func (s *Skeleton) Alive() bool {
	return s.Health > 0
}

// nearestWaypoint returns the path position closest to p.
// Ties go to the earlier waypoint.
func nearestWaypoint(path []GridPosition, p core.Vec) (core.Vec, bool) {
	if len(path) == 0 {
		return core.Vec{}, false
	}
	best := path[0].Pos()
	bestDist := core.Dist(best, p)
	for _, wp := range path[1:] {
		if d := core.Dist(wp.Pos(), p); d < bestDist {
			best, bestDist = wp.Pos(), d
		}
	}
	return best, true
}

// summonSkeletons lets every necromancer without a live skeleton raise one
// once its cooldown allows. Only runs while a wave is being fought.
func (s *Simulation) summonSkeletons() {
	if !s.economy.WaveInProgress() {
		return
	}
	for _, d := range s.defenders {
		if !d.canSummon(s.now) || s.skeletonOf(d.ID) != nil {
			continue
		}
		pos, ok := nearestWaypoint(s.path, d.Pos())
		if !ok {
			continue
		}
		d.markSummoned(s.now)

		s.nextSkeletonID++
		sk := &Skeleton{
			ID:     SkeletonID(s.nextSkeletonID),
			Owner:  d.ID,
			Pos:    pos,
			Health: d.cfg.SkeletonHealth,
		}
		s.skeletons = append(s.skeletons, sk)
		s.logger.Debug("skeleton summoned", "skeleton", sk.ID, "owner", d.ID)
		s.emit(SkeletonSummoned{ID: sk.ID, Owner: d.ID, Pos: sk.Pos, Health: sk.Health})
	}
}

func (s *Simulation) skeletonOf(owner DefenderID) *Skeleton {
	for _, sk := range s.skeletons {
		if sk.Owner == owner && sk.Alive() {
			return sk
		}
	}
	return nil
}

// resolveSkeletonContacts trades health between each skeleton and the
// enemies touching it, in enemy spawn order. Both sides lose
// min(skeleton health, enemy health).
func (s *Simulation) resolveSkeletonContacts() {
	radius := s.settings.Combat.SkeletonContactRadius
	for _, sk := range s.skeletons {
		for _, e := range s.enemies {
			if !sk.Alive() {
				break
			}
			if !e.Active() || core.Dist(sk.Pos, e.Pos()) > radius {
				continue
			}
			dmg := min(sk.Health, e.Health)
			sk.Health -= dmg
			s.damageEnemy(e, dmg, 0)
		}
	}
	s.pruneSkeletons(false)
}

// pruneSkeletons removes dead skeletons, or every skeleton when all is set.
func (s *Simulation) pruneSkeletons(all bool) {
	kept := s.skeletons[:0]
	for _, sk := range s.skeletons {
		if all || !sk.Alive() {
			s.emit(SkeletonExpired{ID: sk.ID})
			continue
		}
		kept = append(kept, sk)
	}
	for i := len(kept); i < len(s.skeletons); i++ {
		s.skeletons[i] = nil
	}
	s.skeletons = kept
}
