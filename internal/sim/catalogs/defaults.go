package catalogs

// Defaults returns the built-in catalogs. configs/items.yaml and
// configs/champions.yaml mirror these values; tests use Defaults directly so
// they do not depend on the working directory.
func Defaults() Catalogs {
	c, err := build(defaultItems(), defaultChampions())
	if err != nil {
		panic(err) // static data; cannot fail
	}
	return c
}

func defaultItems() []Item {
	return []Item{
		{ID: "long_sword", Name: "Long Sword", Cost: 350, AttackDamage: 10},
		{ID: "bf_sword", Name: "B.F. Sword", Cost: 1300, AttackDamage: 40},
		{ID: "blasting_wand", Name: "Blasting Wand", Cost: 860, AbilityPower: 40},
		{ID: "arcane_rod", Name: "Arcane Rod", Cost: 1250, AbilityPower: 60},
		{ID: "chain_vest", Name: "Chain Vest", Cost: 800, Armor: 40},
		{ID: "null_mantle", Name: "Null-Magic Mantle", Cost: 720, MagicResist: 40},
		{ID: "boots", Name: "Boots of Speed", Cost: 300, MoveSpeed: 45},
		{ID: "ruby_crystal", Name: "Ruby Crystal", Cost: 400, Health: 150},
		{ID: "sapphire_crystal", Name: "Sapphire Crystal", Cost: 350, Mana: 250},
	}
}

func defaultChampions() []Champion {
	return []Champion{
		{
			Name:         "Ironclad",
			Health:       Growth{Base: 650, PerLevel: 95},
			Mana:         Growth{Base: 280, PerLevel: 35},
			AttackDamage: Growth{Base: 62, PerLevel: 3.5},
			AbilityPower: Growth{Base: 0, PerLevel: 0},
			Armor:        Growth{Base: 34, PerLevel: 4},
			MagicResist:  Growth{Base: 32, PerLevel: 3.5},
			MoveSpeed:    Growth{Base: 335, PerLevel: 0},
			AttackRange:  Growth{Base: 125, PerLevel: 0},
			AttackSpeed:  Growth{Base: 0.7, PerLevel: 0.02},
			Ranged:       false,
			Abilities: map[string]Ability{
				"Q": {
					Name: "Shield Bash", Cooldown: 8, ManaCost: 40, Range: 150,
					Damage: 50, ADRatio: 0.7, DamageType: "physical", StunSec: 0.75,
				},
				"W": {
					Name: "Iron Skin", Cooldown: 16, ManaCost: 50, Duration: 5,
					BuffArmor: 40, BuffMagicResist: 30, ShieldBase: 120, ShieldPerLevel: 12,
				},
				"E": {
					Name: "Charge", Cooldown: 12, ManaCost: 60, Range: 450, DashSpeed: 900,
					Damage: 60, ADRatio: 0.5, DamageType: "physical", Radius: 180,
				},
				"R": {
					Name: "Earthquake", Cooldown: 80, ManaCost: 100, LevelRequired: 6,
					Duration: 3, TickInterval: 0.5, Radius: 300,
					Damage: 70, ADRatio: 0.4, DamageType: "magic",
				},
			},
		},
		{
			Name:         "Voltaic",
			Health:       Growth{Base: 530, PerLevel: 70},
			Mana:         Growth{Base: 400, PerLevel: 55},
			AttackDamage: Growth{Base: 52, PerLevel: 2.5},
			AbilityPower: Growth{Base: 50, PerLevel: 7},
			Armor:        Growth{Base: 22, PerLevel: 3},
			MagicResist:  Growth{Base: 30, PerLevel: 3},
			MoveSpeed:    Growth{Base: 330, PerLevel: 0},
			AttackRange:  Growth{Base: 550, PerLevel: 0},
			AttackSpeed:  Growth{Base: 0.62, PerLevel: 0.015},
			Ranged:       true,
			Abilities: map[string]Ability{
				"Q": {
					Name: "Arc Bolt", Cooldown: 6, ManaCost: 45, Range: 700, Speed: 1100,
					Damage: 80, APRatio: 0.75, DamageType: "magic",
					ChainCount: 3, ChainRadius: 250, ChainFalloff: 0.7,
				},
				"W": {
					Name: "Static Field", Cooldown: 14, ManaCost: 70, Range: 600,
					Radius: 220, Duration: 4, TickInterval: 0.5,
					Damage: 30, APRatio: 0.25, DamageType: "magic",
					SlowPct: 0.3, SlowSec: 1,
				},
				"E": {
					Name: "Blink", Cooldown: 18, ManaCost: 60, Range: 400,
				},
				"R": {
					Name: "Overcharge", Cooldown: 60, ManaCost: 50, LevelRequired: 6,
					Duration: 8, AmplifyPct: 0.35, RefundFraction: 0.5,
				},
			},
		},
		{
			Name:         "Shadebow",
			Health:       Growth{Base: 560, PerLevel: 80},
			Mana:         Growth{Base: 300, PerLevel: 40},
			AttackDamage: Growth{Base: 68, PerLevel: 4},
			AbilityPower: Growth{Base: 0, PerLevel: 0},
			Armor:        Growth{Base: 26, PerLevel: 3.5},
			MagicResist:  Growth{Base: 30, PerLevel: 3},
			MoveSpeed:    Growth{Base: 340, PerLevel: 0},
			AttackRange:  Growth{Base: 500, PerLevel: 0},
			AttackSpeed:  Growth{Base: 0.75, PerLevel: 0.03},
			Ranged:       true,
			Abilities: map[string]Ability{
				"Q": {
					Name: "Piercing Arrow", Cooldown: 7, ManaCost: 50, Range: 900, Speed: 1300,
					Damage: 70, ADRatio: 0.8, DamageType: "physical",
				},
				"W": {
					Name: "Shadow Veil", Cooldown: 22, ManaCost: 60, Duration: 4,
					BuffMoveSpeedPct: 0.1,
				},
				"E": {
					Name: "Tumble", Cooldown: 10, ManaCost: 40, Range: 300, DashSpeed: 800,
					EmpowerSec: 3, EmpowerBonus: 0.4,
				},
				"R": {
					Name: "Arrow Storm", Cooldown: 70, ManaCost: 100, LevelRequired: 6,
					Range: 800, Radius: 350, Duration: 1.5, TickInterval: 0.5,
					Damage: 60, ADRatio: 0.45, DamageType: "physical",
				},
			},
		},
	}
}
