package engine

import (
	"math"
	"sort"

	"github.com/vovakirdan/wizard-td/internal/config"
	"github.com/vovakirdan/wizard-td/internal/core"
)

// CombatResolver holds the target-selection rules shared by every defender.
// It never mutates enemies; the simulation applies the damage it decides on.
type CombatResolver struct {
	cfg      config.CombatConfig
	halfTile float64
}

// NewCombatResolver returns a resolver for the given combat settings.
func NewCombatResolver(cfg config.CombatConfig, tileSize float64) *CombatResolver {
	return &CombatResolver{cfg: cfg, halfTile: tileSize / 2}
}

// SelectTarget returns the active enemy in range closest to d, or nil.
// Ties keep the enemy that appears first in the list.
func (c *CombatResolver) SelectTarget(d *Defender, enemies []*Enemy) *Enemy {
	var best *Enemy
	bestDist := math.Inf(1)
	rng := float64(d.EffectiveRange())
	for _, e := range enemies {
		if !e.Active() {
			continue
		}
		dist := d.DistanceTo(e.Pos())
		if dist > rng {
			continue
		}
		if dist < bestDist {
			best, bestDist = e, dist
		}
	}
	return best
}

// AuraMultiplier returns the strongest enchanter aura covering d.
// Auras do not stack and an enchanter does not buff itself.
func (c *CombatResolver) AuraMultiplier(d *Defender, defenders []*Defender) float64 {
	mult := 1.0
	for _, o := range defenders {
		if o.ID == d.ID || !o.Enchanter() {
			continue
		}
		if core.Dist(o.Pos(), d.Pos()) <= o.cfg.BuffRange && o.cfg.BuffMultiplier > mult {
			mult = o.cfg.BuffMultiplier
		}
	}
	return mult
}

// PierceTargets returns up to pierce_count-1 extra enemies along the line
// from d through primary, nearest first. Candidates must be in range and
// within half a tile of the line.
func (c *CombatResolver) PierceTargets(d *Defender, primary *Enemy, enemies []*Enemy) []*Enemy {
	extra := d.cfg.PierceCount - 1
	if extra <= 0 {
		return nil
	}

	type candidate struct {
		e     *Enemy
		along float64
	}
	var cands []candidate
	for _, e := range enemies {
		if e == primary || !e.Active() || !d.CanTarget(e.Pos()) {
			continue
		}
		perp, along := core.DistToRay(d.Pos(), primary.Pos(), e.Pos())
		if along <= 0 || perp > c.halfTile {
			continue
		}
		cands = append(cands, candidate{e: e, along: along})
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].along < cands[j].along
	})

	out := make([]*Enemy, 0, min(extra, len(cands)))
	for _, cd := range cands {
		if len(out) == extra {
			break
		}
		out = append(out, cd.e)
	}
	return out
}

// SplashTargets returns active enemies other than exclude within radius
// of center, in list order.
func (c *CombatResolver) SplashTargets(center core.Vec, radius float64, exclude *Enemy, enemies []*Enemy) []*Enemy {
	if radius <= 0 {
		return nil
	}
	var out []*Enemy
	for _, e := range enemies {
		if e == exclude || !e.Active() {
			continue
		}
		if core.Dist(center, e.Pos()) <= radius {
			out = append(out, e)
		}
	}
	return out
}

// ChainTarget returns the active enemy nearest to center within radius,
// excluding exclude.
func (c *CombatResolver) ChainTarget(center core.Vec, radius float64, exclude *Enemy, enemies []*Enemy) *Enemy {
	var best *Enemy
	bestDist := math.Inf(1)
	for _, e := range enemies {
		if e == exclude || !e.Active() {
			continue
		}
		dist := core.Dist(center, e.Pos())
		if dist <= radius && dist < bestDist {
			best, bestDist = e, dist
		}
	}
	return best
}

// BossDamage applies a defender's boss bonus when the target is a boss.
func (c *CombatResolver) BossDamage(d *Defender, target *Enemy, dmg int) int {
	if target.Boss && d.cfg.BossBonus > 0 {
		return floorStat(float64(dmg) * d.cfg.BossBonus)
	}
	return dmg
}

// pendingHit is a shot in flight. It is resolved by identity when it
// lands, so a target that died or escaped meanwhile simply drops the hit.
type pendingHit struct {
	session  uint64
	defender DefenderID
	target   EnemyID
	element  Element
}

// fireDefenders lets every ready defender pick a target and commit a
// delayed hit, in placement order.
func (s *Simulation) fireDefenders() {
	for _, d := range s.defenders {
		if !d.CanFire(s.now) {
			continue
		}
		target := s.combat.SelectTarget(d, s.enemies)
		if target == nil {
			continue
		}
		el := d.Fire(s.now)
		s.stats.ShotsFired++
		s.tasks.Schedule(s.now+s.settings.Combat.HitDelayMs, s.tick, task{
			hit: &pendingHit{
				session:  s.session,
				defender: d.ID,
				target:   target.ID,
				element:  el,
			},
		})
		s.emit(DefenderFired{ID: d.ID, Target: target.ID, TargetPos: target.Pos(), Element: el})
	}
}

// resolveHit applies a landed shot. Damage is computed at impact so item
// bonuses collected in flight count.
func (s *Simulation) resolveHit(h *pendingHit) {
	if h.session != s.session {
		return
	}
	d := s.defenderByID[h.defender]
	target := s.enemyByID[h.target]
	if d == nil || target == nil || !target.Active() {
		s.stats.HitsDropped++
		s.logger.Debug("hit dropped", "defender", h.defender, "target", h.target)
		return
	}

	dmg := floorStat(float64(d.EffectiveDamage()) * s.combat.AuraMultiplier(d, s.defenders))
	center := target.Pos()

	// Secondary targets are chosen before the primary takes damage so the
	// geometry matches the moment of impact.
	var pierce []*Enemy
	if d.cfg.PierceCount > 1 {
		pierce = s.combat.PierceTargets(d, target, s.enemies)
	}

	switch h.element {
	case ElementFire:
		splash := s.combat.SplashTargets(center, d.cfg.AoeRange, target, s.enemies)
		s.damageEnemy(target, dmg, d.ID)
		for _, e := range splash {
			s.damageEnemy(e, dmg, d.ID)
		}
	case ElementIce:
		slowed := append([]*Enemy{target}, s.combat.SplashTargets(center, d.cfg.AoeRange, target, s.enemies)...)
		s.damageEnemy(target, dmg, d.ID)
		for _, e := range slowed {
			e.ApplySlow(s.settings.Combat.IceSlowFactor, s.settings.Combat.IceSlowMs)
		}
	case ElementLightning:
		chain := s.combat.ChainTarget(center, d.cfg.AoeRange, target, s.enemies)
		s.damageEnemy(target, dmg, d.ID)
		if chain != nil {
			s.damageEnemy(chain, floorStat(float64(dmg)*s.settings.Combat.LightningChainFactor), d.ID)
		}
	default:
		s.damageEnemy(target, s.combat.BossDamage(d, target, dmg), d.ID)
		for _, e := range pierce {
			s.damageEnemy(e, s.combat.BossDamage(d, e, dmg), d.ID)
		}
	}
}

// damageEnemy applies damage and, on the killing blow, pays the bounty
// and rolls for a drop. source is zero for skeleton contact.
func (s *Simulation) damageEnemy(e *Enemy, dmg int, source DefenderID) bool {
	if !e.Active() {
		s.logger.Warn("damage to inactive enemy ignored", "enemy", e.ID, "state", e.State())
		return false
	}
	if dmg <= 0 {
		return false
	}
	killed := e.TakeDamage(dmg)
	s.stats.DamageDealt += dmg
	if source != 0 {
		s.stats.HitsLanded++
	}
	s.emit(HitLanded{Defender: source, Target: e.ID, Damage: dmg, Killed: killed})
	if !killed {
		return false
	}

	reward := floorStat(float64(e.GoldReward) * s.effects.Multiplier(EffectGoldBonus))
	s.stats.Kills++
	s.stats.GoldFromKills += reward
	s.economy.AddGold(reward)
	s.emit(EnemyDied{ID: e.ID, Pos: e.Pos(), Reward: reward})
	s.rollDrop(e.Pos())
	return true
}
