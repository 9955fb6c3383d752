package engine

import "testing"

func testLedger() *Ledger {
	return NewLedger(map[Account]float64{
		Operating: 80000,
		Yield:     250000,
		Payment:   40000,
	})
}

func TestTotalCashIsSumOfAccounts(t *testing.T) {
	l := testLedger()
	if got := l.TotalCash(); got != 370000 {
		t.Fatalf("TotalCash = %v, want 370000", got)
	}

	l.SetBalance(Payment, "15,000")
	want := l.Balance(Operating) + l.Balance(Yield) + l.Balance(Payment)
	if got := l.TotalCash(); got != want {
		t.Fatalf("TotalCash = %v, want %v after mutation", got, want)
	}
}

func TestSetBalanceNormalizesInput(t *testing.T) {
	l := testLedger()

	if got := l.SetBalance(Operating, "$75,000"); got != 75000 {
		t.Fatalf("SetBalance($75,000) = %v, want 75000", got)
	}
	if got := l.SetBalance(Operating, "garbage"); got != 0 {
		t.Fatalf("SetBalance(garbage) = %v, want 0", got)
	}
	if got := l.Balance(Operating); got != 0 {
		t.Fatalf("Balance after garbage edit = %v, want 0", got)
	}
}

func TestBalancesNeverNegative(t *testing.T) {
	l := NewLedger(map[Account]float64{Operating: -500})
	if got := l.Balance(Operating); got != 0 {
		t.Fatalf("negative seed clamped: got %v, want 0", got)
	}

	l.SetBalance(Yield, "-100")
	for _, a := range Accounts {
		if l.Balance(a) < 0 {
			t.Fatalf("account %s went negative: %v", a, l.Balance(a))
		}
	}
}

func TestTransferConservesTotal(t *testing.T) {
	l := testLedger()
	before := l.TotalCash()

	if !l.Transfer(Operating, Yield, 20000) {
		t.Fatal("Transfer refused a valid move")
	}
	if got := l.Balance(Operating); got != 60000 {
		t.Fatalf("Operating = %v, want 60000", got)
	}
	if got := l.Balance(Yield); got != 270000 {
		t.Fatalf("Yield = %v, want 270000", got)
	}
	if got := l.Balance(Payment); got != 40000 {
		t.Fatalf("Payment = %v, want 40000 (untouched)", got)
	}
	if got := l.TotalCash(); got != before {
		t.Fatalf("TotalCash = %v, want %v (conserved)", got, before)
	}
}

func TestTransferRefusesInvalidMoves(t *testing.T) {
	l := testLedger()

	cases := []struct {
		name     string
		from, to Account
		amount   float64
	}{
		{"overdraw", Operating, Yield, 80001},
		{"zero", Operating, Yield, 0},
		{"negative", Operating, Yield, -5},
		{"same account", Operating, Operating, 100},
		{"unknown account", Account("Escrow"), Yield, 100},
	}

	for _, c := range cases {
		before := l.Balances()
		if l.Transfer(c.from, c.to, c.amount) {
			t.Fatalf("%s: Transfer accepted, want refusal", c.name)
		}
		for a, v := range before {
			if l.Balance(a) != v {
				t.Fatalf("%s: balance %s changed on refused transfer", c.name, a)
			}
		}
	}
}
