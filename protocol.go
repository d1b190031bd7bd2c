package main

import (
	"encoding/json"
	"math"
)

// Client -> Server message types
const (
	MsgJoin     = "join"
	MsgLeave    = "leave"
	MsgInput    = "input"
	MsgReady    = "ready"    // lobby ready toggle
	MsgRematch  = "rematch"  // back to lobby from results
	MsgCreate   = "create"   // create session
	MsgList     = "list"     // list sessions
	MsgCheck    = "check"    // check if session exists
	MsgRegister = "register" // account registration
	MsgLogin    = "login"
	MsgAuth     = "auth"    // resume with a token
	MsgProfile  = "profile" // request own profile
)

// Server -> Client message types
const (
	MsgState       = "state"
	MsgWelcome     = "welcome"
	MsgDeath       = "death"
	MsgKill        = "kill"
	MsgEvents      = "events"
	MsgMatchEnd    = "match_end"
	MsgAchievement = "achievement"
	MsgSessions    = "sessions"
	MsgJoined      = "joined"
	MsgCreated     = "created" // session created, client should navigate
	MsgError       = "error"
	MsgChecked     = "checked" // session check response
	MsgAuthOK      = "auth_ok"
	MsgProfileData = "profile_data"
)

// Envelope is the outgoing wire frame: a type tag plus payload
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope defers payload decoding to the per-type handler via
// json.RawMessage
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// ClientInput is one sampled input frame. Clients usually send the
// compact binary form; this JSON shape is the fallback.
type ClientInput struct {
	MoveX  float64 `json:"mx"`  // -1..1 horizontal intent
	Aim    float64 `json:"aim"` // radians
	Fire   bool    `json:"f"`
	Jump   bool    `json:"j"`
	Crouch bool    `json:"c"`
	Switch int     `json:"sw"` // 1-based weapon slot, 0 = no change
}

// JoinMsg requests entry into an existing session
type JoinMsg struct {
	Name      string `json:"name"`
	SessionID string `json:"sid"`
	Token     string `json:"tok,omitempty"` // optional account token
}

// CreateMsg requests a new session, optionally pre-filled with bots
type CreateMsg struct {
	Name        string `json:"name"`
	SessionName string `json:"sname"`
	Mode        int    `json:"mode"` // 0 = FFA, 1 = TDM
	Bots        int    `json:"bots"`
}

// PlayerState is broadcast per player in each state snapshot
type PlayerState struct {
	ID     string  `json:"id" msgpack:"id"`
	Name   string  `json:"n" msgpack:"n"`
	Team   int     `json:"t" msgpack:"t"`
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	VX     float64 `json:"vx" msgpack:"vx"`
	VY     float64 `json:"vy" msgpack:"vy"`
	Aim    float64 `json:"r" msgpack:"r"`
	Health int     `json:"hp" msgpack:"hp"`
	Armor  int     `json:"ar" msgpack:"ar"`
	Weapon int     `json:"w" msgpack:"w"`
	Frags  int     `json:"fr" msgpack:"fr"`
	Deaths int     `json:"d" msgpack:"d"`
	Alive  bool    `json:"a" msgpack:"a"`
	Crouch bool    `json:"cr,omitempty" msgpack:"cr"`
	Quad   bool    `json:"q,omitempty" msgpack:"q"`
	Suit   bool    `json:"bs,omitempty" msgpack:"bs"`
}

// ProjectileState is one in-flight projectile in a snapshot
type ProjectileState struct {
	ID    string  `json:"id" msgpack:"id"`
	Kind  int     `json:"k" msgpack:"k"`
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	Owner string  `json:"o" msgpack:"o"`
}

// ItemState is broadcast per item spawn point
type ItemState struct {
	ID     string  `json:"id" msgpack:"id"`
	Kind   int     `json:"k" msgpack:"k"`
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	Active bool    `json:"a" msgpack:"a"`
}

// GameState is the full state snapshot, sent msgpack-encoded at the
// broadcast rate
type GameState struct {
	Tick        uint64            `json:"tick" msgpack:"tick"`
	Phase       int               `json:"ph" msgpack:"ph"`
	TimeLeft    float64           `json:"tl" msgpack:"tl"`
	Countdown   float64           `json:"cd" msgpack:"cd"`
	TeamFrags   [3]int            `json:"tf" msgpack:"tf"`
	Players     []PlayerState     `json:"p" msgpack:"p"`
	Projectiles []ProjectileState `json:"pr" msgpack:"pr"`
	Items       []ItemState       `json:"it" msgpack:"it"`
}

// AudioEventMsg is one audio cue in the per-tick event batch
type AudioEventMsg struct {
	Kind   int     `json:"k"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Weapon int     `json:"w,omitempty"`
	Pain   int     `json:"hp,omitempty"`
	Award  string  `json:"aw,omitempty"`
	Player string  `json:"pid,omitempty"`
}

// VisualEventMsg is one transient effect in the per-tick event batch
type VisualEventMsg struct {
	Kind   int     `json:"k"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	X2     float64 `json:"x2,omitempty"`
	Y2     float64 `json:"y2,omitempty"`
	Radius float64 `json:"rad,omitempty"`
}

// EventsMsg carries one tick's drained event batch
type EventsMsg struct {
	Audio  []AudioEventMsg  `json:"au,omitempty"`
	Visual []VisualEventMsg `json:"vi,omitempty"`
}

// EventsToMsg converts a drained batch to its wire form
func EventsToMsg(batch EventBatch) EventsMsg {
	msg := EventsMsg{}
	for _, e := range batch.Audio {
		m := AudioEventMsg{
			Kind:   int(e.Kind),
			X:      round1(e.X),
			Y:      round1(e.Y),
			Weapon: int(e.Weapon),
			Pain:   e.Pain,
			Player: e.PlayerID,
		}
		if e.Kind == AudioAward {
			m.Award = e.Award.String()
		}
		msg.Audio = append(msg.Audio, m)
	}
	for _, e := range batch.Visual {
		msg.Visual = append(msg.Visual, VisualEventMsg{
			Kind:   int(e.Kind),
			X:      round1(e.X),
			Y:      round1(e.Y),
			X2:     round1(e.X2),
			Y2:     round1(e.Y2),
			Radius: round1(e.Radius),
		})
	}
	return msg
}

// WelcomeMsg tells a joining player their ID, team and game mode
type WelcomeMsg struct {
	ID   string `json:"id"`
	Team int    `json:"t"`
	Mode int    `json:"mode"`
}

// DeathMsg goes to the victim only
type DeathMsg struct {
	KillerID   string `json:"kid"`
	KillerName string `json:"kn"`
}

// KillMsg feeds the session-wide kill ticker
type KillMsg struct {
	KillerID   string `json:"kid"`
	KillerName string `json:"kn"`
	VictimID   string `json:"vid"`
	VictimName string `json:"vn"`
}

// MatchEndMsg is broadcast when a limit is reached
type MatchEndMsg struct {
	WinnerID   string `json:"wid,omitempty"`
	WinnerTeam int    `json:"wt,omitempty"`
}

// AchievementMsg notifies a player of a newly unlocked achievement
type AchievementMsg struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SessionInfo is one entry of the session browser list
type SessionInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Mode    int    `json:"mode"`
	Players int    `json:"players"`
}

// ErrorMsg carries a human-readable failure reason
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// CheckMsg asks whether a session ID is live before navigating to it
type CheckMsg struct {
	SID string `json:"sid"`
}

// CheckedMsg answers a CheckMsg
type CheckedMsg struct {
	SID     string `json:"sid"`
	Exists  bool   `json:"exists"`
	Name    string `json:"name,omitempty"`
	Players int    `json:"players,omitempty"`
}

// RegisterMsg creates an account
type RegisterMsg struct {
	Username string `json:"u"`
	Password string `json:"p"`
}

// LoginMsg authenticates an account
type LoginMsg struct {
	Username string `json:"u"`
	Password string `json:"p"`
}

// AuthMsg resumes a session from a stored token
type AuthMsg struct {
	Token string `json:"tok"`
}

// AuthOKMsg returns the signed token after register/login
type AuthOKMsg struct {
	Token    string `json:"tok"`
	Username string `json:"u"`
}

// ProfileMsg returns persistent account stats
type ProfileMsg struct {
	Username string  `json:"u"`
	XP       int     `json:"xp"`
	Level    int     `json:"lvl"`
	Frags    int     `json:"fr"`
	Deaths   int     `json:"d"`
	Matches  int     `json:"m"`
	Wins     int     `json:"w"`
	Playtime float64 `json:"pt"` // seconds
}

// round1 trims coordinates to one decimal before serialization
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
