package match

import (
	"testing"

	"leagueofmolts.ai/internal/protocol"
)

func TestBuyItemAppliesStatsSameTick(t *testing.T) {
	m := newPlayingMatch(t)
	u := champ(t, m, "blue_1")
	ad := u.Stats.AttackDamage
	if !m.BuyItem(u, "long_sword") {
		t.Fatalf("buy failed")
	}
	if u.Gold != 500-350 {
		t.Fatalf("gold = %d, want 150", u.Gold)
	}
	if !almostEqual(u.Stats.AttackDamage, ad+10) {
		t.Fatalf("AD = %v, want %v", u.Stats.AttackDamage, ad+10)
	}
}

func TestBuyItemGates(t *testing.T) {
	m := newPlayingMatch(t)
	u := champ(t, m, "blue_1")

	if m.BuyItem(u, "no_such_item") {
		t.Fatalf("unknown item purchase succeeded")
	}
	if m.BuyItem(u, "bf_sword") { // costs 1300, starting gold 500
		t.Fatalf("purchase succeeded without gold")
	}
	if u.Gold != 500 || len(u.Items) != 0 {
		t.Fatalf("failed purchase mutated state")
	}

	u.Gold = 100000
	for i := 0; i < m.cfg.Economy.InventoryCapacity; i++ {
		if !m.BuyItem(u, "long_sword") {
			t.Fatalf("buy %d failed", i)
		}
	}
	if m.BuyItem(u, "long_sword") {
		t.Fatalf("purchase succeeded with a full inventory")
	}
}

func TestSellRefundsFraction(t *testing.T) {
	m := newPlayingMatch(t)
	u := champ(t, m, "blue_1")
	if !m.BuyItem(u, "long_sword") {
		t.Fatalf("buy failed")
	}
	gold := u.Gold
	ad := u.Stats.AttackDamage
	if !m.SellItem(u, "long_sword") {
		t.Fatalf("sell failed")
	}
	if u.Gold != gold+245 { // 70% of 350
		t.Fatalf("gold after sell = %d, want %d", u.Gold, gold+245)
	}
	if !almostEqual(u.Stats.AttackDamage, ad-10) {
		t.Fatalf("selling must remove the item's stats")
	}
	if m.SellItem(u, "long_sword") {
		t.Fatalf("selling an unowned item succeeded")
	}
}

func TestHealthItemPreservesMissingAmount(t *testing.T) {
	m := newPlayingMatch(t)
	u := champ(t, m, "blue_1")
	u.Health = u.MaxHealth - 100
	if !m.BuyItem(u, "ruby_crystal") { // +150 max health
		t.Fatalf("buy failed")
	}
	if !almostEqual(u.MaxHealth-u.Health, 100) {
		t.Fatalf("missing health changed: max=%v cur=%v", u.MaxHealth, u.Health)
	}
}

func TestMultiLevelUpInOneAward(t *testing.T) {
	m := newPlayingMatch(t)
	u := champ(t, m, "blue_1")
	// Level 1->2 needs 100, 2->3 needs 180.
	m.awardXP(u, 280)
	if u.Level != 3 {
		t.Fatalf("level = %d, want 3", u.Level)
	}
	if u.XP != 0 {
		t.Fatalf("leftover xp = %d, want 0", u.XP)
	}
	if countEvents(m, protocol.EventLevelUp) != 2 {
		t.Fatalf("expected two level_up events, got %v", eventTypes(m))
	}
}

func TestLevelCapStopsXP(t *testing.T) {
	m := newPlayingMatch(t)
	u := champ(t, m, "blue_1")
	m.awardXP(u, 1_000_000)
	if u.Level != m.cfg.Leveling.LevelCap {
		t.Fatalf("level = %d, want cap %d", u.Level, m.cfg.Leveling.LevelCap)
	}
}

func TestLevelUpRaisesStats(t *testing.T) {
	m := newPlayingMatch(t)
	u := champ(t, m, "blue_1")
	hp := u.MaxHealth
	ad := u.Stats.AttackDamage
	m.awardXP(u, 100)
	if u.Level != 2 {
		t.Fatalf("level = %d, want 2", u.Level)
	}
	if u.MaxHealth <= hp || u.Stats.AttackDamage <= ad {
		t.Fatalf("level up must raise growth stats")
	}
}

func TestPassiveGoldCadence(t *testing.T) {
	m := newPlayingMatch(t)
	u := champ(t, m, "blue_1")
	gold := u.Gold
	dt := 1.0 / float64(m.cfg.TickRateHz)
	for i := 0; i < m.cfg.TickRateHz; i++ { // exactly one second
		m.tickEconomy(dt)
	}
	if u.Gold != gold+m.cfg.Economy.PassiveGold {
		t.Fatalf("gold after 1s = %d, want %d", u.Gold, gold+m.cfg.Economy.PassiveGold)
	}
}

func TestDeadChampionEarnsNoPassiveGold(t *testing.T) {
	m := newPlayingMatch(t)
	u := champ(t, m, "blue_1")
	m.ApplyDamage(nil, u, u.Health+u.MaxHealth, DamageTrue)
	gold := u.Gold
	for i := 0; i < 2*m.cfg.TickRateHz; i++ {
		m.tickEconomy(1.0 / float64(m.cfg.TickRateHz))
	}
	if u.Gold != gold {
		t.Fatalf("dead champion accrued gold")
	}
}

func TestRegenDuringPlay(t *testing.T) {
	m := newPlayingMatch(t)
	u := champ(t, m, "blue_1")
	u.Health -= 50
	u.Mana -= 50
	for i := 0; i < m.cfg.TickRateHz; i++ {
		m.tickEconomy(1.0 / float64(m.cfg.TickRateHz))
	}
	if !almostEqual(u.Health, u.MaxHealth-50+m.cfg.Regen.HealthPerSec) {
		t.Fatalf("health after 1s regen = %v", u.Health)
	}
	if !almostEqual(u.Mana, u.MaxMana-50+m.cfg.Regen.ManaPerSec) {
		t.Fatalf("mana after 1s regen = %v", u.Mana)
	}
}
