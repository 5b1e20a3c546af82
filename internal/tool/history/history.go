// Package history records mutating file operations on a shared stack so the
// most recent one can be reversed. The ledger is append-only for editors;
// only undo consumes entries.
package history

import (
	"sync"
	"time"
)

// Action tags how a file was mutated, which decides how the mutation is
// reversed.
type Action string

const (
	// ActionCreated means the file did not exist before (undo deletes it).
	ActionCreated Action = "create"
	// ActionEdited means prior content was snapshotted (undo restores it).
	ActionEdited Action = "edit"
)

// Entry records one mutating operation.
type Entry struct {
	Path       string
	BackupPath string // empty when the target did not previously exist
	Action     Action
	Batch      bool // part of a multi-file edit
	At         time.Time
}

// Ledger is a LIFO stack of entries shared by the single-file and batch
// editors. Pushes and pops are serialized so editors never need their own
// locking.
type Ledger struct {
	mu      sync.Mutex
	entries []Entry
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Push appends an entry to the top of the stack.
func (l *Ledger) Push(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if e.At.IsZero() {
		e.At = time.Now()
	}
	l.entries = append(l.entries, e)
}

// Pop removes and returns the most recent entry. ok is false when the stack
// is empty.
func (l *Ledger) Pop() (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	e := l.entries[len(l.entries)-1]
	l.entries = l.entries[:len(l.entries)-1]
	return e, true
}

// Len returns the number of recorded entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
