package main

import (
	"sync"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

// mockBroadcaster captures sent messages for testing
type mockBroadcaster struct {
	mu       sync.Mutex
	messages []interface{}
	binary   [][]byte
}

func (m *mockBroadcaster) SendJSON(msg interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *mockBroadcaster) SendBinary(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.binary = append(m.binary, cp)
}

func (m *mockBroadcaster) lastBinary() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.binary) == 0 {
		return nil
	}
	return m.binary[len(m.binary)-1]
}

// playingGame returns a Game forced into the playing phase with a flat
// arena and no items, ready for scripted combat
func playingGame() *Game {
	g := NewGame(ModeFFA, nil, nil)
	g.arena = flatArena()
	g.items = nil
	g.match.Phase = PhasePlaying
	g.match.TimeLeft = 600
	return g
}

func groundPlace(p *Player, x float64) {
	p.Respawn(x, PlayerRadius)
	p.OnGround = true
}

func TestGameAddRemovePlayer(t *testing.T) {
	g := NewGame(ModeFFA, nil, nil)
	p := g.AddPlayer("TestPilot")
	if p.Name != "TestPilot" {
		t.Errorf("expected name TestPilot, got %s", p.Name)
	}
	if g.PlayerCount() != 1 {
		t.Errorf("expected 1 player, got %d", g.PlayerCount())
	}

	g.RemovePlayer(p.ID)
	if g.PlayerCount() != 0 {
		t.Errorf("expected 0 players after removal, got %d", g.PlayerCount())
	}
}

func TestGamePlayerCap(t *testing.T) {
	g := NewGame(ModeFFA, nil, nil)
	for i := 0; i < maxPlayersPerSession; i++ {
		if g.AddPlayer("P") == nil {
			t.Fatalf("player %d should fit", i)
		}
	}
	if g.AddPlayer("Overflow") != nil {
		t.Error("session over capacity should reject the player")
	}
}

func TestGameBotCap(t *testing.T) {
	g := NewGame(ModeFFA, nil, nil)
	for i := 0; i < maxBotsPerSession; i++ {
		if g.AddBot("Bot") == nil {
			t.Fatalf("bot %d should fit", i)
		}
	}
	if g.AddBot("Overflow") != nil {
		t.Error("bot cap should reject further bots")
	}
}

func TestHandleInputMapsSwitchSlot(t *testing.T) {
	g := NewGame(ModeFFA, nil, nil)
	p := g.AddPlayer("P")

	// Wire slot numbers are 1-based; 0 means no switch
	g.HandleInput(p.ID, ClientInput{Switch: 2})
	if p.Intent.Switch != WeaponMachinegun {
		t.Errorf("slot 2 should map to the machinegun, got %v", p.Intent.Switch)
	}

	g.HandleInput(p.ID, ClientInput{Switch: 0})
	if p.Intent.Switch != WeaponKind(-1) {
		t.Errorf("slot 0 should mean no switch, got %v", p.Intent.Switch)
	}

	g.HandleInput(p.ID, ClientInput{Switch: 99})
	if p.Intent.Switch != WeaponKind(-1) {
		t.Errorf("out-of-range slot should mean no switch, got %v", p.Intent.Switch)
	}
}

func TestHandleInputClampsMovement(t *testing.T) {
	g := NewGame(ModeFFA, nil, nil)
	p := g.AddPlayer("P")

	g.HandleInput(p.ID, ClientInput{MoveX: 50})
	if p.Intent.MoveX != 1 {
		t.Errorf("movement should clamp to [-1,1], got %f", p.Intent.MoveX)
	}
}

func TestHandleInputIgnoresBots(t *testing.T) {
	g := NewGame(ModeFFA, nil, nil)
	b := g.AddBot("Bot")

	g.HandleInput(b.ID, ClientInput{MoveX: 1, Fire: true})
	if b.Intent.Fire {
		t.Error("client input must not drive bot players")
	}
}

func TestLobbyStartsWhenPlayersReady(t *testing.T) {
	g := NewGame(ModeFFA, nil, nil)
	a := g.AddPlayer("A")
	b := g.AddPlayer("B")

	g.update()
	if g.Phase() != PhaseLobby {
		t.Fatal("nobody ready, match should stay in the lobby")
	}

	g.HandleReady(a.ID)
	g.update()
	if g.Phase() != PhaseLobby {
		t.Fatal("one ready player out of two should not start the countdown")
	}

	g.HandleReady(b.ID)
	g.update()
	if g.Phase() != PhaseCountdown {
		t.Fatalf("both ready, expected countdown, got %v", g.Phase())
	}

	// Countdown runs down to the match start
	for i := 0; i < int(CountdownTime*TickRate)+2; i++ {
		g.update()
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("countdown should end in the playing phase, got %v", g.Phase())
	}
}

func TestBotsCountTowardMatchStart(t *testing.T) {
	g := NewGame(ModeFFA, nil, nil)
	a := g.AddPlayer("A")
	g.AddBot("Bot")

	g.HandleReady(a.ID)
	g.update()
	if g.Phase() != PhaseCountdown {
		t.Errorf("one ready human plus one bot should start the countdown, got %v", g.Phase())
	}
}

func TestRocketKillCreditsFrag(t *testing.T) {
	g := playingGame()
	a := g.AddPlayer("A")
	b := g.AddPlayer("B")
	groundPlace(a, 500)
	groundPlace(b, 800)

	a.GiveWeapon(WeaponRocketLauncher)
	a.Weapon = WeaponRocketLauncher
	g.HandleInput(a.ID, ClientInput{Fire: true, Aim: 0})

	for i := 0; i < 120 && b.Alive; i++ {
		g.update()
	}
	if b.Alive {
		t.Fatal("rocket at close range should kill the target")
	}
	if a.Frags != 1 {
		t.Errorf("attacker should be credited the frag, got %d", a.Frags)
	}
	if b.Deaths != 1 {
		t.Errorf("victim should record a death, got %d", b.Deaths)
	}
}

func TestPickupContestResolvesByAscendingID(t *testing.T) {
	g := playingGame()
	a := g.AddPlayer("A")
	b := g.AddPlayer("B")
	groundPlace(a, 500)
	groundPlace(b, 500)
	a.Health = 50
	b.Health = 50

	g.items = []*Item{NewItem(ItemHealth25, 500, PlayerRadius)}

	g.update()

	winner, loser := a, b
	if b.ID < a.ID {
		winner, loser = b, a
	}
	if winner.Health != 75 {
		t.Errorf("lower-ID player should win the contested pickup, health=%d", winner.Health)
	}
	if loser.Health != 50 {
		t.Errorf("losing player should get nothing, health=%d", loser.Health)
	}
}

func TestMatchEndsAtFragLimit(t *testing.T) {
	g := playingGame()
	a := g.AddPlayer("A")
	g.AddPlayer("B")
	g.match.Config.FragLimit = 3
	a.Frags = 3

	g.update()
	if g.Phase() != PhaseResult {
		t.Fatalf("frag limit should end the match, got %v", g.Phase())
	}
	if g.match.WinnerID != a.ID {
		t.Errorf("top fragger should win, got %s", g.match.WinnerID)
	}
}

func TestMatchEndsAtTimeLimit(t *testing.T) {
	g := playingGame()
	g.AddPlayer("A")
	g.match.TimeLeft = 0.01

	g.update()
	if g.Phase() != PhaseResult {
		t.Errorf("expired clock should end the match, got %v", g.Phase())
	}
}

func TestResultPhaseFreezesSimulation(t *testing.T) {
	g := playingGame()
	p := g.AddPlayer("A")
	groundPlace(p, 500)
	g.match.Phase = PhaseResult
	g.match.ResultT = ResultTime

	g.HandleInput(p.ID, ClientInput{MoveX: 1})
	x := p.X
	for i := 0; i < 30; i++ {
		g.update()
	}
	if p.X != x {
		t.Error("players must not move while the result screen is up")
	}
}

func TestRematchReturnsToLobby(t *testing.T) {
	g := playingGame()
	p := g.AddPlayer("A")
	g.HandleReady(p.ID)
	g.match.Phase = PhaseResult
	g.match.ResultT = ResultTime

	g.HandleRematch()
	if g.Phase() != PhaseLobby {
		t.Fatalf("rematch should return to the lobby, got %v", g.Phase())
	}
	if len(g.match.ReadyPlayers) != 0 {
		t.Error("rematch should clear ready state")
	}
}

func TestRematchIgnoredMidMatch(t *testing.T) {
	g := playingGame()
	g.AddPlayer("A")

	g.HandleRematch()
	if g.Phase() != PhasePlaying {
		t.Error("rematch only applies on the result screen")
	}
}

func TestBroadcastStateIsMsgpack(t *testing.T) {
	g := playingGame()
	p := g.AddPlayer("Watcher")
	groundPlace(p, 500)
	mock := &mockBroadcaster{}
	g.SetClient(p.ID, mock)

	for i := 0; i < BroadcastEvery; i++ {
		g.update()
	}

	raw := mock.lastBinary()
	if raw == nil {
		t.Fatal("expected a binary state snapshot")
	}
	var state GameState
	if err := msgpack.Unmarshal(raw, &state); err != nil {
		t.Fatalf("snapshot should be msgpack: %v", err)
	}
	if len(state.Players) != 1 {
		t.Fatalf("expected 1 player in snapshot, got %d", len(state.Players))
	}
	if state.Players[0].Name != "Watcher" {
		t.Errorf("expected player Watcher, got %s", state.Players[0].Name)
	}
}

func TestTeamModeAssignsBalancedTeams(t *testing.T) {
	g := NewGame(ModeTDM, nil, nil)
	a := g.AddPlayer("A")
	b := g.AddPlayer("B")
	c := g.AddPlayer("C")

	if a.Team == TeamNone || b.Team == TeamNone || c.Team == TeamNone {
		t.Fatal("team mode must assign every player a team")
	}
	red, blue := 0, 0
	for _, p := range []*Player{a, b, c} {
		if p.Team == TeamRed {
			red++
		} else {
			blue++
		}
	}
	if red == 0 || blue == 0 {
		t.Errorf("teams should balance, got red=%d blue=%d", red, blue)
	}
}

func TestFriendlyFireIsNoOp(t *testing.T) {
	g := NewGame(ModeTDM, nil, nil)
	g.arena = flatArena()
	g.items = nil
	g.match.Phase = PhasePlaying
	g.match.TimeLeft = 600

	a := g.AddPlayer("A")
	b := g.AddPlayer("B")
	b.Team = a.Team
	groundPlace(a, 500)
	groundPlace(b, 800)

	g.applyCombat(CombatEvent{
		AttackerID: a.ID, VictimID: b.ID, Damage: 50, Weapon: WeaponMachinegun,
	})
	if b.Health != PlayerMaxHealth {
		t.Errorf("teammates must not damage each other, health=%d", b.Health)
	}
}

func TestProjectileDirectHitCountsForAccuracy(t *testing.T) {
	g := playingGame()
	a := g.AddPlayer("A")
	b := g.AddPlayer("B")
	groundPlace(a, 500)
	groundPlace(b, 800)
	b.Health = 5000

	a.GiveWeapon(WeaponRocketLauncher)
	a.Weapon = WeaponRocketLauncher
	g.HandleInput(a.ID, ClientInput{Fire: true, Aim: 0})

	for i := 0; i < 120 && a.ShotsHit == 0; i++ {
		g.update()
	}
	if a.ShotsFired == 0 {
		t.Fatal("trigger pull should count a shot")
	}
	if a.ShotsHit == 0 {
		t.Fatal("rocket direct hit should confirm the shot")
	}
	if a.ShotsHit > a.ShotsFired {
		t.Errorf("hits %d exceed shots %d", a.ShotsHit, a.ShotsFired)
	}
	if b.Health == 5000 {
		t.Error("victim should have taken rocket damage")
	}
}

func TestMidMatchJoinTelefragsOccupant(t *testing.T) {
	g := playingGame()
	g.arena = &Arena{Width: ArenaWidth, Height: ArenaHeight, GroundY: 0,
		Spawns: []SpawnPoint{{X: 200, Y: PlayerRadius}}}

	a := g.AddPlayer("A")
	b := g.AddPlayer("B")

	if a.Alive {
		t.Fatal("occupant of the only spawn point should be telefragged by a joiner")
	}
	if a.Deaths != 1 {
		t.Errorf("telefragged occupant should record a death, got %d", a.Deaths)
	}
	if b == nil || !b.Alive {
		t.Error("joiner should materialize alive")
	}
}

func TestLobbyJoinDoesNotTelefrag(t *testing.T) {
	g := NewGame(ModeFFA, nil, nil)
	g.arena = &Arena{Width: ArenaWidth, Height: ArenaHeight, GroundY: 0,
		Spawns: []SpawnPoint{{X: 200, Y: PlayerRadius}}}

	a := g.AddPlayer("A")
	g.AddPlayer("B")

	if !a.Alive {
		t.Error("joining during the lobby must not telefrag the occupant")
	}
}
