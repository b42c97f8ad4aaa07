package combat

// EventKind classifies an Event for consumers that do more than print it.
type EventKind string

const (
	EventStart      EventKind = "start"
	EventRound      EventKind = "round"
	EventUse        EventKind = "use"
	EventPass       EventKind = "pass"
	EventMiss       EventKind = "miss"
	EventDamage     EventKind = "damage"
	EventCritical   EventKind = "critical"
	EventEffective  EventKind = "effectiveness"
	EventHeal       EventKind = "heal"
	EventCondition  EventKind = "condition"
	EventStatChange EventKind = "stat_change"
	EventProtect    EventKind = "protect"
	EventBlocked    EventKind = "blocked"
	EventFaint      EventKind = "faint"
	EventResult     EventKind = "result"
)

// Event is one human-readable line of a competition's log.
type Event struct {
	Round  int       `json:"round"`
	Kind   EventKind `json:"kind"`
	Actor  string    `json:"actor,omitempty"`
	Target string    `json:"target,omitempty"`
	Amount int       `json:"amount,omitempty"`
	Text   string    `json:"text"`
}

// Lines returns the text of every event.
func Lines(events []Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.Text
	}
	return out
}
