package main

import (
	"sync"
	"time"
)

const (
	maxSessions     = 100
	sessionIdleTime = 10 * time.Minute
)

// Session pairs a running Game with its joinable identity
type Session struct {
	ID         string
	Name       string
	Mode       GameMode
	Game       *Game
	LastActive time.Time
}

// SessionManager owns the live session table
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionManager returns an empty manager
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

// CreateSession starts a new game loop under a fresh UUID. Returns nil
// when the session cap is hit.
func (sm *SessionManager) CreateSession(name string, mode GameMode, db *DB, analytics *Analytics) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if len(sm.sessions) >= maxSessions {
		return nil
	}

	id := GenerateUUID()
	game := NewGame(mode, db, analytics)
	sess := &Session{
		ID:         id,
		Name:       name,
		Mode:       mode,
		Game:       game,
		LastActive: time.Now(),
	}
	sm.sessions[id] = sess
	go game.Run()
	if analytics != nil {
		analytics.Track(EvtSessionStart, 0, id, name)
	}
	return sess
}

// GetSession looks up a session by ID, nil if unknown
func (sm *SessionManager) GetSession(id string) *Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.sessions[id]
}

// MarkActive refreshes a session's idle timer
func (sm *SessionManager) MarkActive(id string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sess, ok := sm.sessions[id]; ok {
		sess.LastActive = time.Now()
	}
}

// RemovePlayer takes a player out of a session and tears the session
// down once no humans remain
func (sm *SessionManager) RemovePlayer(sessionID, playerID string) {
	sm.mu.RLock()
	sess, ok := sm.sessions[sessionID]
	sm.mu.RUnlock()
	if !ok {
		return
	}
	sess.Game.RemovePlayer(playerID)

	// A session with no humans left is done, bots or not
	if sess.Game.HumanCount() == 0 {
		sess.Game.Stop()
		sm.mu.Lock()
		delete(sm.sessions, sessionID)
		sm.mu.Unlock()
		if a := sess.Game.analytics; a != nil {
			a.Track(EvtSessionEnd, 0, sessionID, "")
		}
	}
}

// ReapIdle stops and removes sessions idle past the threshold
func (sm *SessionManager) ReapIdle() {
	cutoff := time.Now().Add(-sessionIdleTime)
	sm.mu.Lock()
	defer sm.mu.Unlock()
	for id, sess := range sm.sessions {
		if sess.LastActive.Before(cutoff) && sess.Game.HumanCount() == 0 {
			sess.Game.Stop()
			delete(sm.sessions, id)
			if a := sess.Game.analytics; a != nil {
				a.Track(EvtSessionEnd, 0, id, "")
			}
		}
	}
}

// ListSessions snapshots the session table for the browser list
func (sm *SessionManager) ListSessions() []SessionInfo {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	list := make([]SessionInfo, 0, len(sm.sessions))
	for _, sess := range sm.sessions {
		list = append(list, SessionInfo{
			ID:      sess.ID,
			Name:    sess.Name,
			Mode:    int(sess.Mode),
			Players: sess.Game.PlayerCount(),
		})
	}
	return list
}
