package match

// EffectType enumerates the timed effects a unit can carry.
type EffectType string

const (
	EffectStun     EffectType = "stun"
	EffectRoot     EffectType = "root"
	EffectSlow     EffectType = "slow"
	EffectStealth  EffectType = "stealth"
	EffectStatBuff EffectType = "stat_buff"
	// EffectEmpowerNext is the "empower next ability" buff (Voltaic R). It is
	// consumed by the next qualifying cast and never stacks.
	EffectEmpowerNext EffectType = "empower_next"
	// EffectEmpoweredStrike empowers the next auto-attack (Shadebow Tumble).
	EffectEmpoweredStrike EffectType = "empowered_strike"
)

// Effect is an active timed modifier on a unit. Expiry reverts the stat or
// behavior change; hard CC blocks orders but never passive timers.
type Effect struct {
	Type      EffectType
	SourceID  string
	Remaining float64

	// Additive stat modifiers while active.
	Mods Stats
	// Multiplicative move-speed adjustment (-0.3 is a 30% slow).
	MoveSpeedPct float64

	// EffectEmpowerNext parameters.
	AmplifyPct     float64
	RefundFraction float64
	// EffectEmpoweredStrike bonus as a fraction of attack damage.
	BonusRatio float64
}

// addEffect attaches an effect and recomputes stats. Same-type effects from
// any source replace rather than stack; the fresh application wins.
func (m *Match) addEffect(u *Unit, e *Effect) {
	for i, old := range u.Effects {
		if old.Type == e.Type {
			u.Effects[i] = e
			m.recomputeStats(u)
			return
		}
	}
	u.Effects = append(u.Effects, e)
	m.recomputeStats(u)
}

func (m *Match) removeEffect(u *Unit, t EffectType) bool {
	for i, e := range u.Effects {
		if e.Type == t {
			u.Effects = append(u.Effects[:i], u.Effects[i+1:]...)
			m.recomputeStats(u)
			return true
		}
	}
	return false
}

func (u *Unit) effect(t EffectType) *Effect {
	for _, e := range u.Effects {
		if e.Type == t {
			return e
		}
	}
	return nil
}

func (u *Unit) Stunned() bool   { return u.effect(EffectStun) != nil }
func (u *Unit) Rooted() bool    { return u.effect(EffectRoot) != nil }
func (u *Unit) Stealthed() bool { return u.effect(EffectStealth) != nil }

// HardCrowdControlled blocks casting, movement and attacking. Passive timers
// (cooldowns, buffs, regen) keep running.
func (u *Unit) HardCrowdControlled() bool { return u.Stunned() || u.Rooted() }

// breakStealth removes stealth after any outgoing ability cast or attack.
func (m *Match) breakStealth(u *Unit) {
	m.removeEffect(u, EffectStealth)
}

// tickEffects advances effect timers by dt and reverts expired effects.
func (m *Match) tickEffects(u *Unit, dt float64) {
	changed := false
	kept := u.Effects[:0]
	for _, e := range u.Effects {
		e.Remaining -= dt
		if e.Remaining > 0 {
			kept = append(kept, e)
		} else {
			changed = true
		}
	}
	u.Effects = kept
	if changed {
		m.recomputeStats(u)
	}

	keptShields := u.Shields[:0]
	for _, s := range u.Shields {
		s.Remaining -= dt
		if s.Remaining > 0 && s.Amount > 0 {
			keptShields = append(keptShields, s)
		}
	}
	u.Shields = keptShields
}
