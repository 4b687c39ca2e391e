package match

import (
	"math"

	"leagueofmolts.ai/internal/protocol"
)

// tickEconomy accrues passive gold to every living champion on the fixed
// interval, plus out-of-combat style regen. Only runs while PLAYING.
func (m *Match) tickEconomy(dt float64) {
	m.passiveGoldIn -= dt
	payout := false
	if m.passiveGoldIn <= 0 {
		m.passiveGoldIn += m.cfg.Economy.PassiveGoldEverySec
		payout = true
	}
	for _, u := range m.units {
		if u.Kind != KindChampion || !u.Alive {
			continue
		}
		if payout {
			u.Gold += m.cfg.Economy.PassiveGold
		}
		u.Health = clamp(u.Health+m.cfg.Regen.HealthPerSec*dt, 0, u.MaxHealth)
		u.Mana = clamp(u.Mana+m.cfg.Regen.ManaPerSec*dt, 0, u.MaxMana)
	}
}

// awardXP accumulates experience and resolves as many level-ups as the
// thresholds allow in the same tick, up to the level cap. Leveling
// recomputes derived stats immediately.
func (m *Match) awardXP(u *Unit, amount int) {
	if u.Kind != KindChampion || amount <= 0 {
		return
	}
	u.XP += amount
	leveled := false
	for u.Level < m.cfg.Leveling.LevelCap {
		need := m.xpToNext(u.Level)
		if u.XP < need {
			break
		}
		u.XP -= need
		u.Level++
		leveled = true
		m.emit(protocol.Event{"type": protocol.EventLevelUp, "unit_id": u.ID, "level": u.Level})
	}
	if leveled {
		m.recomputeStats(u)
	}
}

// xpToNext is the XP required to advance from the given level.
func (m *Match) xpToNext(level int) int {
	return m.cfg.Leveling.XPBase + m.cfg.Leveling.XPPerLevel*(level-1)
}

// BuyItem purchases an item for a champion. It fails without side effects
// when the item is unknown, gold is short, or the inventory is full.
// A successful purchase recomputes derived stats within the same tick.
func (m *Match) BuyItem(u *Unit, itemID string) bool {
	if u == nil || u.Kind != KindChampion || !u.Alive {
		return false
	}
	it, ok := m.cats.Items.ByID[itemID]
	if !ok {
		return false
	}
	if u.Gold < it.Cost || len(u.Items) >= m.cfg.Economy.InventoryCapacity {
		return false
	}
	u.Gold -= it.Cost
	u.Items = append(u.Items, itemID)
	m.recomputeStats(u)
	return true
}

// SellItem removes the first matching item and refunds the configured
// fraction of its original cost.
func (m *Match) SellItem(u *Unit, itemID string) bool {
	if u == nil || u.Kind != KindChampion {
		return false
	}
	for i, id := range u.Items {
		if id != itemID {
			continue
		}
		it := m.cats.Items.ByID[id]
		u.Items = append(u.Items[:i], u.Items[i+1:]...)
		u.Gold += int(math.Round(float64(it.Cost) * m.cfg.Economy.SellRefundFraction))
		m.recomputeStats(u)
		return true
	}
	return false
}
