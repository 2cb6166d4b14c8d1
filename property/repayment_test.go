package property

import (
	"math"
	"testing"
)

func TestMonthlyRepayment(t *testing.T) {
	// 250k at 20% deposit leaves a 200k loan; the 4%/25y reference payment
	// is 1055.67 a month.
	mortgage, total := MonthlyRepayment(250_000, 20, 4.0, 25, 1200)
	if math.Abs(mortgage-1055.67) > 0.50 {
		t.Errorf("mortgage = %.2f, want ~1055.67", mortgage)
	}
	if math.Abs(total-(mortgage+100)) > 1e-9 {
		t.Errorf("total = %.2f, want mortgage plus 100 of monthly outgoings", total)
	}
}

func TestMonthlyRepaymentFullDeposit(t *testing.T) {
	mortgage, total := MonthlyRepayment(250_000, 100, 4.0, 25, 600)
	if mortgage != 0 {
		t.Errorf("cash purchase should have no mortgage payment, got %.2f", mortgage)
	}
	if math.Abs(total-50) > 1e-9 {
		t.Errorf("total = %.2f, want only the outgoings", total)
	}
}
