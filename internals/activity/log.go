package activity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Capacity is how many entries the feed keeps. The console only shows the
// most recent handful, older entries are dropped.
const Capacity = 8

const (
	TypeSale       = "sale"
	TypeRevert     = "revert"
	TypeCorrection = "correction"
	TypeCaptain    = "captain"
)

type Entry struct {
	ID      string            `json:"id"`
	Type    string            `json:"type"`
	Message string            `json:"message"`
	At      time.Time         `json:"at"`
	Details map[string]string `json:"details,omitempty"`
}

// Log is a bounded append-only feed of auction events. It is display/audit
// only and never replayed.
type Log struct {
	mu      sync.Mutex
	entries []Entry
	subs    []func(Entry)
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Append(entryType, message string, details map[string]string) Entry {
	entry := Entry{
		ID:      uuid.NewString(),
		Type:    entryType,
		Message: message,
		At:      time.Now(),
		Details: details,
	}

	l.mu.Lock()
	l.entries = append(l.entries, entry)
	if len(l.entries) > Capacity {
		l.entries = l.entries[len(l.entries)-Capacity:]
	}
	subs := make([]func(Entry), len(l.subs))
	copy(subs, l.subs)
	l.mu.Unlock()

	for _, fn := range subs {
		fn(entry)
	}
	return entry
}

// Entries returns the retained entries, newest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// Subscribe registers fn to be called for every appended entry.
func (l *Log) Subscribe(fn func(Entry)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subs = append(l.subs, fn)
}
