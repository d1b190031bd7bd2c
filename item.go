package main

// ItemKind enumerates everything that can sit on a map pad
type ItemKind int

const (
	ItemHealth25 ItemKind = iota
	ItemHealth50
	ItemMegaHealth
	ItemArmorShard
	ItemArmorCombat
	ItemArmorHeavy
	ItemShotgun
	ItemGrenadeLauncher
	ItemRocketLauncher
	ItemLightning
	ItemRailgun
	ItemPlasmagun
	ItemBFG
	ItemQuad
	ItemBattleSuit
	ItemHaste
	ItemRegen
	ItemInvis
	ItemFlight
	ItemKindCount
)

// ItemClass groups kinds for the respawn table
type ItemClass int

const (
	ClassHealth ItemClass = iota
	ClassArmor
	ClassWeapon
	ClassPowerup
)

const (
	PickupRadius = 36.0

	// Respawn delays per class, seconds
	RespawnHealth  = 35.0
	RespawnArmor   = 25.0
	RespawnWeapon  = 5.0
	RespawnPowerup = 120.0

	PowerupDuration = 30.0 // active time granted by any powerup pickup
)

// ItemDef is the immutable per-kind item description
type ItemDef struct {
	Name   string
	Class  ItemClass
	Amount int        // health or armor points
	Mega   bool       // health may overheal
	Weapon WeaponKind // ClassWeapon
}

var itemCatalog = [ItemKindCount]ItemDef{
	ItemHealth25:        {Name: "25 Health", Class: ClassHealth, Amount: 25},
	ItemHealth50:        {Name: "50 Health", Class: ClassHealth, Amount: 50},
	ItemMegaHealth:      {Name: "Mega Health", Class: ClassHealth, Amount: 100, Mega: true},
	ItemArmorShard:      {Name: "Armor Shard", Class: ClassArmor, Amount: 5},
	ItemArmorCombat:     {Name: "Combat Armor", Class: ClassArmor, Amount: 50},
	ItemArmorHeavy:      {Name: "Heavy Armor", Class: ClassArmor, Amount: 100},
	ItemShotgun:         {Name: "Shotgun", Class: ClassWeapon, Weapon: WeaponShotgun},
	ItemGrenadeLauncher: {Name: "Grenade Launcher", Class: ClassWeapon, Weapon: WeaponGrenadeLauncher},
	ItemRocketLauncher:  {Name: "Rocket Launcher", Class: ClassWeapon, Weapon: WeaponRocketLauncher},
	ItemLightning:       {Name: "Lightning Gun", Class: ClassWeapon, Weapon: WeaponLightning},
	ItemRailgun:         {Name: "Railgun", Class: ClassWeapon, Weapon: WeaponRailgun},
	ItemPlasmagun:       {Name: "Plasma Gun", Class: ClassWeapon, Weapon: WeaponPlasmagun},
	ItemBFG:             {Name: "BFG10K", Class: ClassWeapon, Weapon: WeaponBFG},
	ItemQuad:            {Name: "Quad Damage", Class: ClassPowerup},
	ItemBattleSuit:      {Name: "Battle Suit", Class: ClassPowerup},
	ItemHaste:           {Name: "Haste", Class: ClassPowerup},
	ItemRegen:           {Name: "Regeneration", Class: ClassPowerup},
	ItemInvis:           {Name: "Invisibility", Class: ClassPowerup},
	ItemFlight:          {Name: "Flight", Class: ClassPowerup},
}

// defFor returns the catalog entry; out-of-range kinds are a
// programming error, same rule as the weapon catalog
func defFor(kind ItemKind) ItemDef {
	if kind < 0 || kind >= ItemKindCount {
		panic("defFor: item kind out of catalog")
	}
	return itemCatalog[kind]
}

// respawnTime returns the class respawn delay for an item kind
func respawnTime(kind ItemKind) float64 {
	switch defFor(kind).Class {
	case ClassHealth:
		return RespawnHealth
	case ClassArmor:
		return RespawnArmor
	case ClassWeapon:
		return RespawnWeapon
	default:
		return RespawnPowerup
	}
}

// Item is a spawned map item. Depleted items keep their kind and
// reactivate when the respawn deadline passes.
type Item struct {
	ID        string
	Kind      ItemKind
	X, Y      float64
	Active    bool
	RespawnAt float64 // world time deadline while depleted
}

// NewItem places an item at a map position
func NewItem(kind ItemKind, x, y float64) *Item {
	return &Item{
		ID:     GenerateID(3),
		Kind:   kind,
		X:      x,
		Y:      y,
		Active: true,
	}
}

// Tick reactivates a depleted item once its deadline passes
func (it *Item) Tick(now float64) {
	if !it.Active && now >= it.RespawnAt {
		it.Active = true
	}
}

// PickupResult reports the outcome of a pickup attempt
type PickupResult struct {
	PickedUp bool
	Audio    AudioKind
}

// TryPickup applies an item to a player. Fails when the item is
// depleted, the player is out of range, or the pickup would do nothing
// (full health/armor, weapon already held at max ammo). Powerups apply
// or refresh unconditionally. On success the item depletes and
// schedules its respawn.
func TryPickup(p *Player, it *Item, now float64) PickupResult {
	if !it.Active || !p.Alive {
		return PickupResult{}
	}
	if !CheckCollision(p.X, p.Y, PlayerRadius, it.X, it.Y, PickupRadius-PlayerRadius) {
		return PickupResult{}
	}

	def := defFor(it.Kind)
	var audio AudioKind

	switch def.Class {
	case ClassHealth:
		if !p.AddHealth(def.Amount, def.Mega) {
			return PickupResult{}
		}
		audio = AudioPickupHealth
	case ClassArmor:
		if !p.AddArmor(def.Amount) {
			return PickupResult{}
		}
		audio = AudioPickupArmor
	case ClassWeapon:
		if p.HasWeapon[def.Weapon] && p.Ammo[def.Weapon] >= maxAmmo {
			return PickupResult{}
		}
		p.GiveWeapon(def.Weapon)
		audio = AudioPickupWeapon
	case ClassPowerup:
		applyPowerup(p, it.Kind)
		audio = AudioPickupPowerup
	}

	it.Active = false
	it.RespawnAt = now + respawnTime(it.Kind)
	return PickupResult{PickedUp: true, Audio: audio}
}

// applyPowerup grants or refreshes the powerup's full duration
func applyPowerup(p *Player, kind ItemKind) {
	switch kind {
	case ItemQuad:
		p.Powerups.Quad = PowerupDuration
	case ItemBattleSuit:
		p.Powerups.Battle = PowerupDuration
	case ItemHaste:
		p.Powerups.Haste = PowerupDuration
	case ItemRegen:
		p.Powerups.Regen = PowerupDuration
	case ItemInvis:
		p.Powerups.Invis = PowerupDuration
	case ItemFlight:
		p.Powerups.Flight = PowerupDuration
	}
}

// TickPowerups counts down a player's active powerups, removing each at
// zero
func TickPowerups(p *Player, dt float64) {
	tick := func(v *float64) {
		if *v > 0 {
			*v -= dt
			if *v < 0 {
				*v = 0
			}
		}
	}
	tick(&p.Powerups.Quad)
	tick(&p.Powerups.Battle)
	tick(&p.Powerups.Haste)
	tick(&p.Powerups.Regen)
	tick(&p.Powerups.Invis)
	tick(&p.Powerups.Flight)
}

// DefaultItems is the standard item layout for the default arena
func DefaultItems() []*Item {
	return []*Item{
		NewItem(ItemHealth25, 500, PlayerRadius),
		NewItem(ItemHealth25, 2700, PlayerRadius),
		NewItem(ItemHealth50, 1600, PlayerRadius),
		NewItem(ItemArmorShard, 700, PlayerRadius),
		NewItem(ItemArmorCombat, 1200, PlayerRadius),
		NewItem(ItemArmorHeavy, 2000, PlayerRadius),
		NewItem(ItemShotgun, 400, PlayerRadius),
		NewItem(ItemGrenadeLauncher, 900, PlayerRadius),
		NewItem(ItemRocketLauncher, 1400, PlayerRadius),
		NewItem(ItemLightning, 1800, PlayerRadius),
		NewItem(ItemRailgun, 2200, PlayerRadius),
		NewItem(ItemPlasmagun, 2600, PlayerRadius),
		NewItem(ItemBFG, 1600, 400),
		NewItem(ItemQuad, 800, 300),
		NewItem(ItemBattleSuit, 2400, 300),
		NewItem(ItemMegaHealth, 1600, 600),
	}
}

// ToState converts to the protocol snapshot form
func (it *Item) ToState() ItemState {
	return ItemState{
		ID:     it.ID,
		Kind:   int(it.Kind),
		X:      round1(it.X),
		Y:      round1(it.Y),
		Active: it.Active,
	}
}
