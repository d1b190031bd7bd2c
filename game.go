package main

import (
	"sort"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	TickRate       = 60 // physics ticks per second
	BroadcastRate  = 30 // state broadcasts per second
	TickDuration   = time.Second / TickRate
	BroadcastEvery = TickRate / BroadcastRate
)

const (
	maxProjectilesPerSession = 500
	maxPlayersPerSession     = 16
	maxBotsPerSession        = 8
)

// Broadcaster interface for sending messages to clients
type Broadcaster interface {
	SendJSON(msg interface{})
	SendBinary(data []byte)
}

// Game holds the state for one arena session. All entity containers
// are owned and mutated exclusively by update(); sub-systems get
// exactly the state slices they need.
type Game struct {
	mu          sync.RWMutex
	arena       *Arena
	players     map[string]*Player
	projectiles map[string]*Projectile
	items       []*Item
	bots        map[string]*Bot
	clients     map[string]Broadcaster

	awards *AwardTracker
	match  MatchState
	events EventBatch

	grid     SpatialGrid
	queryBuf []EntityRef
	idBuf    []string

	time    float64 // world clock, seconds
	tick    uint64
	running bool
	stop    chan struct{}

	db        *DB
	analytics *Analytics
	matchRun  float64 // elapsed playing time, for persistence
}

// NewGame creates a new Game for the given mode
func NewGame(mode GameMode, db *DB, analytics *Analytics) *Game {
	return &Game{
		arena:       DefaultArena(),
		players:     make(map[string]*Player),
		projectiles: make(map[string]*Projectile),
		items:       DefaultItems(),
		bots:        make(map[string]*Bot),
		clients:     make(map[string]Broadcaster),
		awards:      NewAwardTracker(),
		match:       NewMatchState(DefaultConfig(mode)),
		stop:        make(chan struct{}),
		db:          db,
		analytics:   analytics,
	}
}

// Run starts the game loop
func (g *Game) Run() {
	g.mu.Lock()
	g.running = true
	g.mu.Unlock()

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.update()
		case <-g.stop:
			return
		}
	}
}

// Stop terminates the game loop
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		g.running = false
		close(g.stop)
	}
}

// AddPlayer adds a new player to the game, spawned at the point
// farthest from the action
func (g *Game) AddPlayer(name string) *Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.players) >= maxPlayersPerSession {
		return nil
	}

	p := NewPlayer(GenerateID(4), name)
	p.Team = g.match.AssignTeam(g.players)
	g.placeJoiner(p)
	g.players[p.ID] = p
	return p
}

// placeJoiner puts a newly added player on the farthest spawn point.
// Joining mid-match telefrags an occupant the same way a respawn does.
func (g *Game) placeJoiner(p *Player) {
	sp := g.arena.SelectSpawn(g.players, p.ID)
	if g.match.Phase == PhasePlaying {
		for _, ev := range CheckTelefrag(p.ID, sp.X, sp.Y, g.players) {
			g.applyCombat(ev)
		}
	}
	p.X = sp.X
	p.Y = sp.Y
}

// AddBot adds an AI-driven player
func (g *Game) AddBot(name string) *Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.players) >= maxPlayersPerSession || len(g.bots) >= maxBotsPerSession {
		return nil
	}

	p := NewPlayer(GenerateID(4), name)
	p.Bot = true
	p.Team = g.match.AssignTeam(g.players)
	g.placeJoiner(p)
	g.players[p.ID] = p
	g.bots[p.ID] = NewBot(p.ID)
	return p
}

// RemovePlayer removes a player from the game
func (g *Game) RemovePlayer(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.players, id)
	delete(g.bots, id)
	delete(g.clients, id)
	delete(g.match.ReadyPlayers, id)
}

// SetClient associates a broadcaster with a player
func (g *Game) SetClient(playerID string, client Broadcaster) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clients[playerID] = client
}

// HandleInput stores a player's intent for the next tick
func (g *Game) HandleInput(playerID string, input ClientInput) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.players[playerID]
	if !ok || p.Bot {
		return
	}
	sw := WeaponKind(-1)
	if input.Switch >= 1 && input.Switch <= int(WeaponCount) {
		sw = WeaponKind(input.Switch - 1)
	}
	p.Intent = Intent{
		MoveX:  Clamp(input.MoveX, -1, 1),
		Aim:    NormalizeAngle(input.Aim),
		Fire:   input.Fire,
		Jump:   input.Jump,
		Crouch: input.Crouch,
		Switch: sw,
	}
}

// HandleReady marks a player ready in the lobby
func (g *Game) HandleReady(playerID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.players[playerID]; ok {
		g.match.ReadyPlayers[playerID] = true
	}
}

// HandleRematch returns a finished session to the lobby
func (g *Game) HandleRematch() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.match.Phase == PhaseResult {
		g.match.Phase = PhaseLobby
		g.match.ReadyPlayers = make(map[string]bool)
	}
}

// PlayerCount returns the number of players, bots included
func (g *Game) PlayerCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.players)
}

// HumanCount returns the number of connected human players
func (g *Game) HumanCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.players) - len(g.bots)
}

// Phase returns the current match phase
func (g *Game) Phase() MatchPhase {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.match.Phase
}

// sortedPlayerIDs returns player ids in ascending order. Every per-tick
// iteration over players uses this so contested outcomes (item
// pickups, simultaneous fire) resolve deterministically.
func (g *Game) sortedPlayerIDs() []string {
	g.idBuf = g.idBuf[:0]
	for id := range g.players {
		g.idBuf = append(g.idBuf, id)
	}
	sort.Strings(g.idBuf)
	return g.idBuf
}

// update runs one fixed tick. Component order is load-bearing:
// intents, movement, respawns, weapon fire, projectiles, combat,
// items, awards, match limits, then the outbound event batch.
func (g *Game) update() {
	g.mu.Lock()
	defer g.mu.Unlock()

	dt := 1.0 / float64(TickRate)
	g.tick++
	g.time += dt

	g.tickPhase(dt)
	if g.match.Phase == PhaseResult {
		// Simulation halted at the boundary; keep clients fed
		g.flushEvents()
		if g.tick%BroadcastEvery == 0 {
			g.broadcastState()
		}
		return
	}

	ids := g.sortedPlayerIDs()

	// Bot intents go through the same path as client input
	for _, id := range ids {
		if bot, ok := g.bots[id]; ok {
			g.players[id].Intent = bot.Think(g.players[id], g.players, dt)
		}
	}

	// Movement
	for _, id := range ids {
		p := g.players[id]
		wasGrounded := p.OnGround
		wasAlive := p.Alive
		wasWeapon := p.Weapon
		p.Update(dt, g.arena)
		if wasAlive && p.Alive {
			if wasGrounded && !p.OnGround && p.VY > 0 {
				g.events.PushAudio(AudioEvent{Kind: AudioJump, X: p.X, Y: p.Y, PlayerID: p.ID})
			} else if !wasGrounded && p.OnGround {
				g.events.PushAudio(AudioEvent{Kind: AudioLand, X: p.X, Y: p.Y, PlayerID: p.ID})
			}
			if p.Weapon != wasWeapon {
				g.events.PushAudio(AudioEvent{Kind: AudioWeaponSwitch, X: p.X, Y: p.Y, Weapon: p.Weapon, PlayerID: p.ID})
			}
		}
	}

	// Respawns, including telefrag resolution at the spawn point
	g.processRespawns(ids)

	var combatEvents []CombatEvent

	// Weapon fire
	for _, id := range ids {
		p := g.players[id]
		if !p.Alive || !p.Intent.Fire {
			continue
		}
		combatEvents = g.resolveFire(p, combatEvents)
	}

	// Projectiles
	g.rebuildGrid(ids)
	combatEvents = g.advanceProjectiles(dt, ids, combatEvents)

	// Combat resolution, in event order
	for _, ev := range combatEvents {
		g.applyCombat(ev)
	}

	// Items and powerups
	for _, it := range g.items {
		it.Tick(g.time)
	}
	for _, id := range ids {
		p := g.players[id]
		TickPowerups(p, dt)
		if !p.Alive {
			continue
		}
		for _, it := range g.items {
			res := TryPickup(p, it, g.time)
			if res.PickedUp {
				g.events.PushAudio(AudioEvent{Kind: res.Audio, X: it.X, Y: it.Y, PlayerID: p.ID})
				if g.analytics != nil {
					g.analytics.Track(EvtPickup, p.AccountID, "", defFor(it.Kind).Name)
				}
			}
		}
	}

	// Awards: continuous conditions plus window pruning
	for _, id := range ids {
		if g.awards.CheckAccuracy(g.players[id], g.time) {
			g.announceAward(g.players[id], AwardAccuracy)
		}
	}
	g.awards.Prune(g.time)

	// Match end is checked only at the tick boundary
	if g.match.Phase == PhasePlaying {
		g.matchRun += dt
		g.match.TimeLeft -= dt
		if g.match.LimitReached(g.players) {
			g.endMatch()
		}
	}

	g.flushEvents()
	if g.tick%BroadcastEvery == 0 {
		g.broadcastState()
	}
}

// tickPhase advances the lobby/countdown/result machine
func (g *Game) tickPhase(dt float64) {
	switch g.match.Phase {
	case PhaseLobby:
		ready := 0
		for id := range g.match.ReadyPlayers {
			if _, ok := g.players[id]; ok {
				ready++
			}
		}
		// Bots are always ready
		if ready+len(g.bots) >= minPlayersToGo && ready > 0 {
			g.match.Phase = PhaseCountdown
			g.match.CountdownT = CountdownTime
		}
	case PhaseCountdown:
		g.match.CountdownT -= dt
		if g.match.CountdownT <= 0 {
			g.startMatch()
		}
	case PhaseResult:
		g.match.ResultT -= dt
		if g.match.ResultT <= 0 {
			g.match.Phase = PhaseLobby
			g.match.ReadyPlayers = make(map[string]bool)
		}
	}
}

// startMatch resets the world for a fresh match
func (g *Game) startMatch() {
	g.match.Phase = PhasePlaying
	g.match.TimeLeft = g.match.Config.TimeLimit
	g.match.TeamFrags = [3]int{}
	g.match.WinnerID = ""
	g.match.WinnerTeam = TeamNone
	g.matchRun = 0
	g.awards.Reset()
	g.projectiles = make(map[string]*Projectile)
	g.items = DefaultItems()

	for _, id := range g.sortedPlayerIDs() {
		p := g.players[id]
		p.Frags = 0
		p.Deaths = 0
		p.ShotsFired = 0
		p.ShotsHit = 0
		sp := g.arena.SelectSpawn(g.players, p.ID)
		p.Respawn(sp.X, sp.Y)
	}

	if g.analytics != nil {
		g.analytics.Track(EvtMatchStart, 0, "", "")
	}
}

// processRespawns brings dead players back once their timer expires.
// Spawning onto an occupied point telefrags the occupant before the
// spawner materializes.
func (g *Game) processRespawns(ids []string) {
	for _, id := range ids {
		p := g.players[id]
		if p.Alive || p.RespawnT > 0 {
			continue
		}
		sp := g.arena.SelectSpawn(g.players, p.ID)
		for _, ev := range CheckTelefrag(p.ID, sp.X, sp.Y, g.players) {
			g.applyCombat(ev)
		}
		p.Respawn(sp.X, sp.Y)
	}
}

// resolveFire turns one player's trigger pull into combat events or a
// projectile spawn
func (g *Game) resolveFire(p *Player, events []CombatEvent) []CombatEvent {
	outcome := Fire(p, p.Weapon, p.AimAngle)
	if !outcome.Fired {
		return events
	}

	g.events.PushAudio(AudioEvent{Kind: AudioWeaponFire, X: p.X, Y: p.Y, Weapon: p.Weapon, PlayerID: p.ID})

	if outcome.Spawn != nil {
		if len(g.projectiles) < maxProjectilesPerSession {
			proj := NewProjectile(p, outcome.Spawn)
			g.projectiles[proj.ID] = proj
		}
		return events
	}

	hitAny := false
	for _, ray := range outcome.Rays {
		rayEvents, endX, endY := ResolveHitscan(ray, p, statsFor(p.Weapon), g.players, g.arena)
		if len(rayEvents) > 0 {
			hitAny = true
		}
		events = append(events, rayEvents...)

		switch p.Weapon {
		case WeaponRailgun:
			g.events.PushVisual(VisualEvent{Kind: VisualRailTrail, X: ray.OX, Y: ray.OY, X2: endX, Y2: endY})
		case WeaponLightning:
			g.events.PushVisual(VisualEvent{Kind: VisualLightningBeam, X: ray.OX, Y: ray.OY, X2: endX, Y2: endY})
		default:
			g.events.PushVisual(VisualEvent{Kind: VisualBulletImpact, X: endX, Y: endY})
		}
	}
	if hitAny {
		// One confirmed hit per trigger pull, however many pellets land
		p.ShotsHit++
		g.events.PushAudio(AudioEvent{Kind: AudioHitConfirm, PlayerID: p.ID})
	}
	return events
}

// rebuildGrid refreshes the broad-phase grid with living players
func (g *Game) rebuildGrid(ids []string) {
	g.grid.Clear()
	for i, id := range ids {
		p := g.players[id]
		if p.Alive {
			g.grid.InsertCircle(p.X, p.Y, PlayerRadius, EntityRef{Kind: 'p', Idx: i})
		}
	}
}

// advanceProjectiles integrates every projectile and resolves direct
// hits and explosions into combat events
func (g *Game) advanceProjectiles(dt float64, ids []string, events []CombatEvent) []CombatEvent {
	projIDs := make([]string, 0, len(g.projectiles))
	for id := range g.projectiles {
		projIDs = append(projIDs, id)
	}
	sort.Strings(projIDs)

	for _, id := range projIDs {
		pr := g.projectiles[id]
		pr.Update(dt, g.arena)

		if pr.Alive {
			// Direct player hit over the full travel segment
			if victim, hx, hy := g.projectileDirectHit(pr, ids); victim != nil {
				pr.detonateAt(hx, hy)
				events = append(events, CombatEvent{
					AttackerID: pr.OwnerID,
					VictimID:   victim.ID,
					Damage:     pr.Damage,
					X:          hx,
					Y:          hy,
					Weapon:     pr.Weapon,
					MidAir:     victim.MidAir(),
					Splash:     true,
				})
				// A direct hit confirms the shot for accuracy, same as
				// a landed ray
				if owner := g.players[pr.OwnerID]; owner != nil {
					owner.ShotsHit++
					g.events.PushAudio(AudioEvent{Kind: AudioHitConfirm, PlayerID: owner.ID})
				}
				if pr.Splash > 0 {
					events = g.explode(pr, victim.ID, events)
				}
			}
		} else if pr.Detonated {
			events = g.explode(pr, "", events)
		}

		if !pr.Alive {
			delete(g.projectiles, id)
		}
	}
	return events
}

// projectileDirectHit finds the earliest player contact along the
// projectile's travel segment this tick
func (g *Game) projectileDirectHit(pr *Projectile, ids []string) (*Player, float64, float64) {
	midX := (pr.PrevX + pr.X) / 2
	midY := (pr.PrevY + pr.Y) / 2
	reach := Distance(pr.PrevX, pr.PrevY, pr.X, pr.Y)/2 + PlayerRadius + pr.Radius()

	g.queryBuf = g.queryBuf[:0]
	g.queryBuf = g.grid.QueryBuf(midX, midY, reach, g.queryBuf)

	var best *Player
	bestT := 2.0
	seen := make(map[int]bool, len(g.queryBuf))
	for _, ref := range g.queryBuf {
		if ref.Kind != 'p' || seen[ref.Idx] {
			continue
		}
		seen[ref.Idx] = true
		p := g.players[ids[ref.Idx]]
		if p.ID == pr.OwnerID || !p.Alive {
			continue
		}
		t, ok := segmentCircleHit(pr.PrevX, pr.PrevY, pr.X, pr.Y, p.X, p.Y, PlayerRadius+pr.Radius())
		if ok && t < bestT {
			bestT = t
			best = p
		}
	}
	if best == nil {
		return nil, 0, 0
	}
	return best,
		pr.PrevX + (pr.X-pr.PrevX)*bestT,
		pr.PrevY + (pr.Y-pr.PrevY)*bestT
}

// explode applies radius damage around a detonated projectile,
// skipping the direct-hit victim who already took full damage. The
// owner is not skipped: splash self-damage is how rocket jumps work.
func (g *Game) explode(pr *Projectile, directVictimID string, events []CombatEvent) []CombatEvent {
	if pr.Splash <= 0 {
		return events
	}

	g.events.PushAudio(AudioEvent{Kind: AudioExplosion, X: pr.X, Y: pr.Y})
	g.events.PushVisual(VisualEvent{Kind: VisualExplosion, X: pr.X, Y: pr.Y, Radius: pr.Splash})

	for _, id := range g.sortedPlayerIDs() {
		p := g.players[id]
		if !p.Alive || p.ID == directVictimID {
			continue
		}
		dist := Distance(pr.X, pr.Y, p.X, p.Y)
		damage := ExplosionDamage(pr.Damage, dist, pr.Splash)
		if damage <= 0 {
			continue
		}
		events = append(events, CombatEvent{
			AttackerID: pr.OwnerID,
			VictimID:   p.ID,
			Damage:     damage,
			X:          pr.X,
			Y:          pr.Y,
			Weapon:     pr.Weapon,
			MidAir:     p.MidAir(),
			Splash:     true,
		})
	}
	return events
}

// applyCombat runs one combat event through the resolver and handles
// the fallout: audio, kill credit, awards, kill feed
func (g *Game) applyCombat(ev CombatEvent) {
	victim := g.players[ev.VictimID]
	if victim == nil || !victim.Alive {
		return
	}
	var attacker *Player
	if ev.AttackerID != "" {
		attacker = g.players[ev.AttackerID]
	}

	// Friendly fire does nothing in team modes (self-damage still does)
	if g.match.Config.IsTeamMode() && attacker != nil && attacker.ID != victim.ID &&
		attacker.Team == victim.Team && !ev.Telefrag {
		return
	}

	result := ApplyCombatEvent(ev, attacker, victim)
	if result.Applied == 0 && !result.Died {
		return
	}

	if !result.Died {
		g.events.PushAudio(AudioEvent{Kind: AudioPain, X: victim.X, Y: victim.Y, Pain: victim.Health, PlayerID: victim.ID})
		return
	}

	// Death fallout
	CreditKill(attacker, victim)
	if attacker != nil && attacker.ID != victim.ID && g.match.Config.IsTeamMode() {
		g.match.TeamFrags[attacker.Team]++
	}

	deathKind := AudioDeath
	if result.Gibbed {
		deathKind = AudioGib
		g.events.PushVisual(VisualEvent{Kind: VisualGib, X: victim.X, Y: victim.Y})
	}
	g.events.PushAudio(AudioEvent{Kind: deathKind, X: victim.X, Y: victim.Y, PlayerID: victim.ID})

	g.awards.RegisterDeath(victim.ID)
	if attacker != nil && attacker.ID != victim.ID {
		for _, kind := range g.awards.RegisterKill(attacker.ID, g.time, ev.Weapon, ev.MidAir) {
			g.announceAward(attacker, kind)
		}
	}

	g.broadcastKill(attacker, victim)
	if g.analytics != nil {
		if attacker != nil {
			g.analytics.Track(EvtPlayerKill, attacker.AccountID, "", statsFor(ev.Weapon).Name)
		}
		g.analytics.Track(EvtPlayerDeath, victim.AccountID, "", "")
	}
}

// announceAward pushes an award into the event batch and persistence
func (g *Game) announceAward(p *Player, kind AwardKind) {
	g.events.PushAudio(AudioEvent{Kind: AudioAward, Award: kind, PlayerID: p.ID})
	if g.analytics != nil {
		g.analytics.Track(EvtAward, p.AccountID, "", kind.String())
	}
	if g.db != nil && p.AccountID != 0 {
		g.db.RecordAward(p.AccountID, kind.String())
	}
}

// broadcastKill feeds the kill ticker on all clients
func (g *Game) broadcastKill(attacker, victim *Player) {
	msg := KillMsg{VictimID: victim.ID, VictimName: victim.Name}
	if attacker != nil {
		msg.KillerID = attacker.ID
		msg.KillerName = attacker.Name
	}
	g.broadcastMsg(Envelope{T: MsgKill, Data: msg})

	if client, ok := g.clients[victim.ID]; ok {
		client.SendJSON(Envelope{T: MsgDeath, Data: DeathMsg{
			KillerID:   msg.KillerID,
			KillerName: msg.KillerName,
		}})
	}
}

// endMatch freezes the simulation and settles stats and awards
func (g *Game) endMatch() {
	g.match.Phase = PhaseResult
	g.match.ResultT = ResultTime
	g.match.DecideWinner(g.players)

	for _, rec := range g.awards.MatchEnd(g.players, g.time) {
		if p, ok := g.players[rec.PlayerID]; ok {
			g.announceAward(p, rec.Kind)
		}
	}

	g.broadcastMsg(Envelope{T: MsgMatchEnd, Data: MatchEndMsg{
		WinnerID:   g.match.WinnerID,
		WinnerTeam: g.match.WinnerTeam,
	}})

	g.persistMatch()
	if g.analytics != nil {
		g.analytics.Track(EvtMatchEnd, 0, "", "")
	}
}

// persistMatch records the finished match and every account-bound
// player's stats
func (g *Game) persistMatch() {
	if g.db == nil {
		return
	}
	matchID, err := g.db.RecordMatch(int(g.match.Config.Mode), g.matchRun, g.match.WinnerTeam)
	if err != nil {
		return
	}
	for _, id := range g.sortedPlayerIDs() {
		p := g.players[id]
		if p.AccountID == 0 {
			continue
		}
		won := p.ID == g.match.WinnerID ||
			(g.match.Config.IsTeamMode() && p.Team == g.match.WinnerTeam)
		xp := 10*p.Frags + 2
		if won {
			xp += 50
		}
		g.db.RecordMatchPlayer(matchID, p.AccountID, p.Team, p.Frags, p.Deaths, xp)
		totalXP, newLevel, err := g.db.UpdateStatsAfterMatch(p.AccountID, p.Frags, p.Deaths, won, g.matchRun, xp)
		if err == nil && g.analytics != nil && CalculateLevel(totalXP-xp) < newLevel {
			g.analytics.Track(EvtLevelUp, p.AccountID, "", "")
		}

		for _, def := range CheckAchievements(g.db, p.AccountID, p.Frags, p.Deaths, won) {
			if client, ok := g.clients[p.ID]; ok {
				client.SendJSON(Envelope{T: MsgAchievement, Data: AchievementMsg{
					ID:   def.ID,
					Name: def.Name,
				}})
			}
		}
	}
}

// flushEvents drains the tick's event batch to all clients. The batch
// is handed off as a value; the queue starts the next tick empty.
func (g *Game) flushEvents() {
	if g.events.Empty() {
		return
	}
	batch := g.events.Drain()
	g.broadcastMsg(Envelope{T: MsgEvents, Data: EventsToMsg(batch)})
}

// broadcastState sends a msgpack world snapshot to all clients
func (g *Game) broadcastState() {
	state := GameState{
		Tick:        g.tick,
		Phase:       int(g.match.Phase),
		TimeLeft:    round1(g.match.TimeLeft),
		Countdown:   round1(g.match.CountdownT),
		TeamFrags:   g.match.TeamFrags,
		Players:     make([]PlayerState, 0, len(g.players)),
		Projectiles: make([]ProjectileState, 0, len(g.projectiles)),
		Items:       make([]ItemState, 0, len(g.items)),
	}
	for _, id := range g.sortedPlayerIDs() {
		state.Players = append(state.Players, g.players[id].ToState())
	}
	for _, pr := range g.projectiles {
		state.Projectiles = append(state.Projectiles, pr.ToState())
	}
	for _, it := range g.items {
		state.Items = append(state.Items, it.ToState())
	}

	data, err := msgpack.Marshal(&state)
	if err != nil {
		return
	}
	for _, client := range g.clients {
		client.SendBinary(data)
	}
}

// broadcastMsg sends a JSON message to all clients in the session
func (g *Game) broadcastMsg(msg Envelope) {
	for _, client := range g.clients {
		client.SendJSON(msg)
	}
}
