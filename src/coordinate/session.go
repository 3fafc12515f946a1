// Package coordinate runs the three staffing agents (contract compliance, recruiting,
// project management) as a fixed pipeline and records every hand-off between them.
//
// Coordination state lives in a Session owned by the caller, never in the Coordinator,
// so one Coordinator can serve many concurrent requests without leaking events.
package coordinate

import (
	"sync"

	"github.com/google/uuid"

	"staffline-agent/src/contracts"
)

// Stage is the position of a session in the pipeline.
type Stage int

const (
	StageIdle Stage = iota
	StageContractProcessed
	StageCandidatesMatched
	StageCapacityPlanned
	StageDone
)

var stageNames = map[Stage]string{
	StageIdle:              "IDLE",
	StageContractProcessed: "CONTRACT_PROCESSED",
	StageCandidatesMatched: "CANDIDATES_MATCHED",
	StageCapacityPlanned:   "CAPACITY_PLANNED",
	StageDone:              "DONE",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseStage is the inverse of Stage.String.
func ParseStage(name string) (Stage, bool) {
	for stage, n := range stageNames {
		if n == name {
			return stage, true
		}
	}
	return StageIdle, false
}

// Log is an append-only, ordered record of coordination events.
// It is safe for concurrent use.
type Log struct {
	mu      sync.RWMutex
	entries []contracts.AgentCoordination
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Append adds an event to the end of the log.
func (l *Log) Append(event contracts.AgentCoordination) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, event)
}

// Entries returns a snapshot of the log in append order.
func (l *Log) Entries() []contracts.AgentCoordination {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]contracts.AgentCoordination, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded events.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Session is the per-request context of the pipeline: its identity, its coordination log
// and how far it has progressed. Stages only move forward.
type Session struct {
	ID  string
	Log *Log

	mu    sync.Mutex
	stage Stage
}

// NewSession creates a session in StageIdle. An empty id gets a fresh UUIDv7.
func NewSession(id string) *Session {
	if id == "" {
		id = uuid.Must(uuid.NewV7()).String()
	}
	return &Session{
		ID:  id,
		Log: NewLog(),
	}
}

// Stage returns the current stage.
func (s *Session) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// advance moves the session to stage unless it is already past it.
func (s *Session) advance(stage Stage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stage > s.stage {
		s.stage = stage
	}
}
