package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Action types recorded in the audit journal.
const (
	ActionBrew         = "brew"
	ActionPurchase     = "purchase"
	ActionRefill       = "refill"
	ActionAddRecipe    = "add_recipe"
	ActionUpdateRecipe = "update_recipe"
	ActionRemoveRecipe = "remove_recipe"
	ActionHTTPRequest  = "http_request"
)

// Event is one entry of the machine's audit journal.
// The journal is append-only; it is never replayed to rebuild machine state.
// Fields carries action-specific data such as the remaining stock after a brew.
type Event struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	Level      string             `bson:"level" json:"level"`
	Action     string             `bson:"action" json:"action"`
	Message    string             `bson:"message" json:"message"`
	Recipe     string             `bson:"recipe,omitempty" json:"recipe,omitempty"`
	RequestID  string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string             `bson:"method,omitempty" json:"method,omitempty"`
	Path       string             `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration   int64              `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string             `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string             `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error      string             `bson:"error,omitempty" json:"error,omitempty"`
	Fields     map[string]any     `bson:"fields,omitempty" json:"fields,omitempty"`
}

// WithField sets a single entry in Fields, allocating the map if needed.
func (e *Event) WithField(key string, value any) *Event {
	if e.Fields == nil {
		e.Fields = make(map[string]any)
	}
	e.Fields[key] = value
	return e
}

// WithStock records a stock level per ingredient under Fields["stock"].
func (e *Event) WithStock(stock Stock) *Event {
	levels := make(map[string]int, len(stock))
	for ing, qty := range stock {
		levels[ing.String()] = qty
	}
	return e.WithField("stock", levels)
}

// EventQuery filters journal queries. Zero values mean "no filter".
type EventQuery struct {
	RequestID string
	Action    string
	Recipe    string
	Level     string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}

// EventPage is one page of journal entries plus the total matching count.
type EventPage struct {
	Events []*Event
	Total  int64
	Limit  int
	Skip   int
}
