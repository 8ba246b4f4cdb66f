package app

import "time"

// Operation tracks the CLI command being run. Commands that change the
// mirror store mark it dirty so Close uploads a fresh snapshot.
type Operation struct {
	ID      string // log correlation id, e.g. 20240115T103000Z
	Name    string
	Dirty   bool
	Started time.Time
}

// NewOperation creates an operation for the named command, started at now.
func NewOperation(name string, now time.Time) *Operation {
	return &Operation{
		ID:      now.UTC().Format("20060102T150405Z"),
		Name:    name,
		Started: now,
	}
}

// MarkDirty records that the operation wrote to the mirror store.
func (op *Operation) MarkDirty() {
	op.Dirty = true
}
