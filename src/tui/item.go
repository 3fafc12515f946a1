package tui

import (
	"fmt"
	"strings"

	"staffline-agent/src/contracts"
)

// ItemKind distinguishes the two kinds of rows in the report list.
type ItemKind int

const (
	KindRecommendation ItemKind = iota
	KindCoordination
)

// Item is one row of the report list. It implements bubbles/list.Item.
type Item struct {
	Kind  ItemKind
	Rec   *contracts.Recommendation
	Event *contracts.AgentCoordination
	Rank  int
}

// FilterValue is the value used for fuzzy filtering.
func (i Item) FilterValue() string { return i.Title() }

// Title returns the primary text for the item (required by list.Item).
func (i Item) Title() string {
	switch {
	case i.Rec != nil:
		return i.Rec.Title
	case i.Event != nil:
		return fmt.Sprintf("%s → %s: %s", i.Event.TriggerAgent, i.Event.TargetAgent, i.Event.Action)
	}
	return ""
}

// Description returns the secondary text for the item (required by list.Item).
func (i Item) Description() string {
	if i.Rec != nil {
		return i.Rec.Message
	}
	return ""
}

// Agent is the agent that produced the row.
func (i Item) Agent() string {
	switch {
	case i.Rec != nil:
		return string(i.Rec.Agent)
	case i.Event != nil:
		return string(i.Event.TriggerAgent)
	}
	return ""
}

// Confidence returns the recommendation confidence, or -1 for coordination events.
func (i Item) Confidence() int {
	if i.Rec != nil {
		return i.Rec.Confidence
	}
	return -1
}

// Involves reports whether the given agent produced or received the row.
func (i Item) Involves(agent string) bool {
	if i.Event != nil {
		return string(i.Event.TriggerAgent) == agent || string(i.Event.TargetAgent) == agent
	}
	return i.Agent() == agent
}

// Matches reports whether any visible field contains the lowercase query.
func (i Item) Matches(query string) bool {
	fields := []string{i.Title(), i.Agent()}
	if i.Rec != nil {
		fields = append(fields, i.Rec.Message, i.Rec.Type)
		for k, v := range i.Rec.Data {
			fields = append(fields, k, fmt.Sprint(v))
		}
	}
	if i.Event != nil {
		fields = append(fields, string(i.Event.TargetAgent), string(i.Event.Data))
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
