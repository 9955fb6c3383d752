// Package engine implements the treasury desk state machine: balance
// bookkeeping, sweep recommendation, approval-gated execution, and the
// guided allocation flow. All monetary movement is a local ledger
// mutation; nothing here touches a real settlement rail.
package engine

import "sweepdesk/internal/money"

// Account identifies one of the three cash buckets. The set is closed.
type Account string

const (
	Operating Account = "Operating"
	Yield     Account = "Yield"
	Payment   Account = "Payment"
)

// Accounts lists every account in display order.
var Accounts = []Account{Operating, Yield, Payment}

// Valid reports whether a names a known account.
func (a Account) Valid() bool {
	return a == Operating || a == Yield || a == Payment
}

// Ledger holds the three account balances. Balances are never
// negative; edits that would go below zero clamp to zero instead of
// being rejected.
type Ledger struct {
	balances map[Account]float64
}

// NewLedger returns a ledger seeded with the given balances. Negative
// seeds clamp to zero, unknown accounts are ignored.
func NewLedger(seed map[Account]float64) *Ledger {
	l := &Ledger{balances: make(map[Account]float64, len(Accounts))}
	for _, a := range Accounts {
		v := seed[a]
		if v < 0 {
			v = 0
		}
		l.balances[a] = v
	}
	return l
}

// Balance returns the current balance for a. Unknown accounts read 0.
func (l *Ledger) Balance(a Account) float64 {
	return l.balances[a]
}

// Balances returns a copy of all balances.
func (l *Ledger) Balances() map[Account]float64 {
	out := make(map[Account]float64, len(l.balances))
	for a, v := range l.balances {
		out[a] = v
	}
	return out
}

// SetBalance parses raw text input into a non-negative amount,
// replaces the stored balance, and returns the normalized amount for
// display. Unknown accounts leave the ledger untouched and return 0.
func (l *Ledger) SetBalance(a Account, raw string) float64 {
	if !a.Valid() {
		return 0
	}
	v := money.ParseAmount(raw)
	l.balances[a] = v
	return v
}

// TotalCash is the sum of all three balances.
func (l *Ledger) TotalCash() float64 {
	var total float64
	for _, v := range l.balances {
		total += v
	}
	return total
}

// Transfer debits from and credits to by amount, both halves together
// or neither. It refuses (returns false) rather than overdraw or move
// a non-positive amount.
func (l *Ledger) Transfer(from, to Account, amount float64) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	if amount <= 0 || amount > l.balances[from] {
		return false
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	return true
}
