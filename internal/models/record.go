package models

import (
	"strconv"
	"time"
)

// Kind represents the kind of journal record
type Kind string

const (
	KindLong    Kind = "long"
	KindShort   Kind = "short"
	KindFormula Kind = "formula"
	KindNote    Kind = "note"
)

// Valid reports whether k is one of the known record kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindLong, KindShort, KindFormula, KindNote:
		return true
	}
	return false
}

// IsTrade reports whether records of this kind carry a PnL.
func (k Kind) IsTrade() bool {
	return k == KindLong || k == KindShort
}

// Tab is the list filter chosen by the hosting shell.
type Tab string

const (
	TabAll      Tab = "all"
	TabTrades   Tab = "trades"
	TabFormulas Tab = "formulas"
	TabNotes    Tab = "notes"
)

// Valid reports whether t is one of the known tabs.
func (t Tab) Valid() bool {
	switch t {
	case TabAll, TabTrades, TabFormulas, TabNotes:
		return true
	}
	return false
}

// Includes reports whether a record of the given kind belongs on the tab.
// Unknown tabs behave like TabAll.
func (t Tab) Includes(k Kind) bool {
	switch t {
	case TabTrades:
		return k.IsTrade()
	case TabFormulas:
		return k == KindFormula
	case TabNotes:
		return k == KindNote
	}
	return true
}

// ValidRecordID reports whether id has the shape of a record id: a positive
// decimal integer.
func ValidRecordID(id string) bool {
	n, err := strconv.Atoi(id)
	return err == nil && n > 0
}

// Record is a persisted journal entry (note, trade, or formula).
// Records are stored newest-first as one JSON array.
type Record struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Kind      Kind       `json:"kind"`
	PnL       string     `json:"pnl,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	AgeLabel  string     `json:"ageLabel"`
}
