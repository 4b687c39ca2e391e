package match

// recomputeStats rebuilds a champion's derived stats from the level curve,
// equipped items, and active effect modifiers. It is pure given those inputs
// and idempotent; call it after any change to level, items, or effects.
// Derived stats are never stored stale.
func (m *Match) recomputeStats(u *Unit) {
	if u.Kind != KindChampion {
		return
	}
	def := m.cats.Champions.ByName[u.Champion]

	s := Stats{
		AttackDamage: def.AttackDamage.At(u.Level),
		AbilityPower: def.AbilityPower.At(u.Level),
		Armor:        def.Armor.At(u.Level),
		MagicResist:  def.MagicResist.At(u.Level),
		MoveSpeed:    def.MoveSpeed.At(u.Level),
		AttackRange:  def.AttackRange.At(u.Level),
		AttackSpeed:  def.AttackSpeed.At(u.Level),
	}
	maxHealth := def.Health.At(u.Level)
	maxMana := def.Mana.At(u.Level)

	for _, id := range u.Items {
		it, ok := m.cats.Items.ByID[id]
		if !ok {
			continue
		}
		maxHealth += it.Health
		maxMana += it.Mana
		s.AttackDamage += it.AttackDamage
		s.AbilityPower += it.AbilityPower
		s.Armor += it.Armor
		s.MagicResist += it.MagicResist
		s.MoveSpeed += it.MoveSpeed
	}

	msPct := 0.0
	for _, e := range u.Effects {
		s.AttackDamage += e.Mods.AttackDamage
		s.AbilityPower += e.Mods.AbilityPower
		s.Armor += e.Mods.Armor
		s.MagicResist += e.Mods.MagicResist
		s.AttackSpeed += e.Mods.AttackSpeed
		msPct += e.MoveSpeedPct
	}
	// Slows and haste are multiplicative on the summed move speed.
	s.MoveSpeed *= 1 + msPct

	// Derived stats never go negative.
	s.AttackDamage = max0(s.AttackDamage)
	s.AbilityPower = max0(s.AbilityPower)
	s.Armor = max0(s.Armor)
	s.MagicResist = max0(s.MagicResist)
	s.MoveSpeed = max0(s.MoveSpeed)
	s.AttackRange = max0(s.AttackRange)
	s.AttackSpeed = max0(s.AttackSpeed)

	// Growing max health/mana preserves the missing amount, not the fraction.
	if delta := maxHealth - u.MaxHealth; delta != 0 && u.Alive {
		u.Health = clamp(u.Health+delta, 0, maxHealth)
	}
	if delta := maxMana - u.MaxMana; delta != 0 && u.Alive {
		u.Mana = clamp(u.Mana+delta, 0, maxMana)
	}
	u.MaxHealth = maxHealth
	u.MaxMana = maxMana
	u.Health = clamp(u.Health, 0, u.MaxHealth)
	u.Mana = clamp(u.Mana, 0, u.MaxMana)
	u.Stats = s
}

// mitigate applies the armor/magic-resist reduction curve. True damage
// bypasses mitigation entirely.
func mitigate(raw float64, dtype string, target *Unit) float64 {
	var resist float64
	switch dtype {
	case DamagePhysical:
		resist = target.Stats.Armor
	case DamageMagic:
		resist = target.Stats.MagicResist
	case DamageTrue:
		return raw
	default:
		return raw
	}
	if resist < 0 {
		resist = 0
	}
	reduction := resist / (100 + resist)
	return raw * (1 - reduction)
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
