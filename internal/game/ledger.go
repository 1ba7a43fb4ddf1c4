package game

import (
	"maps"
	"slices"
)

// Ledger maps currencies to balances. A missing key reads as 0.
type Ledger struct {
	values map[Currency]int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{values: make(map[Currency]int)}
}

// Get returns the balance for c.
func (l *Ledger) Get(c Currency) int {
	return l.values[c]
}

// Add changes the balance of c by delta and returns the new value.
func (l *Ledger) Add(c Currency, delta int) int {
	if l.values == nil {
		l.values = make(map[Currency]int)
	}
	l.values[c] += delta
	return l.values[c]
}

// CanAfford reports whether the balance covers cost.
func (l *Ledger) CanAfford(cost Cost) bool {
	return l.Get(cost.Currency) >= cost.Count
}

// Pay subtracts cost without checking. Callers check CanAfford first.
func (l *Ledger) Pay(cost Cost) {
	l.Add(cost.Currency, -cost.Count)
}

// ResetAll clears every balance.
func (l *Ledger) ResetAll() {
	clear(l.values)
}

// Currencies returns the keys present in the ledger, sorted.
func (l *Ledger) Currencies() []Currency {
	return slices.Sorted(maps.Keys(l.values))
}
