package main

// CombatEvent is a tick-scoped raw hit record produced by hitscan and
// projectile resolution and consumed the same tick by the combat
// resolver and award tracker. Never persisted.
type CombatEvent struct {
	AttackerID string // empty = environment kill
	VictimID   string // empty for victimless splash centers
	Damage     int    // raw, before resolver stages
	X, Y       float64
	Weapon     WeaponKind
	MidAir     bool // victim airborne at hit time
	Splash     bool
	Telefrag   bool
}

// AudioKind enumerates the sounds the core can request
type AudioKind int

const (
	AudioWeaponFire AudioKind = iota
	AudioWeaponSwitch
	AudioExplosion
	AudioPain
	AudioDeath
	AudioGib
	AudioJump
	AudioLand
	AudioHitConfirm
	AudioPickupHealth
	AudioPickupArmor
	AudioPickupWeapon
	AudioPickupPowerup
	AudioAward
)

// AudioEvent is one entry of the outbound audio batch. The core only
// appends these; playback is the audio collaborator's problem.
type AudioEvent struct {
	Kind     AudioKind
	X, Y     float64
	Weapon   WeaponKind // AudioWeaponFire
	Pain     int        // AudioPain: victim health after the hit
	Award    AwardKind  // AudioAward
	PlayerID string
}

// VisualKind enumerates transient effects the renderer may draw
type VisualKind int

const (
	VisualExplosion VisualKind = iota
	VisualRailTrail
	VisualLightningBeam
	VisualBulletImpact
	VisualGib
)

// VisualEvent is one entry of the outbound visual batch
type VisualEvent struct {
	Kind   VisualKind
	X, Y   float64
	X2, Y2 float64 // beam/trail endpoint
	Radius float64 // explosion radius
}

// EventBatch accumulates the tick's side-effect events. Append during
// the tick, drain once after: the consumer gets an immutable value and
// the queue starts the next tick empty. No replay semantics.
type EventBatch struct {
	Audio  []AudioEvent
	Visual []VisualEvent
}

// PushAudio appends an audio event to the batch
func (b *EventBatch) PushAudio(e AudioEvent) {
	b.Audio = append(b.Audio, e)
}

// PushVisual appends a visual event to the batch
func (b *EventBatch) PushVisual(e VisualEvent) {
	b.Visual = append(b.Visual, e)
}

// Drain hands off the accumulated batch and resets the queue
func (b *EventBatch) Drain() EventBatch {
	out := EventBatch{Audio: b.Audio, Visual: b.Visual}
	b.Audio = nil
	b.Visual = nil
	return out
}

// Empty reports whether the batch holds no events
func (b *EventBatch) Empty() bool {
	return len(b.Audio) == 0 && len(b.Visual) == 0
}
