package property

import (
	"math"
	"testing"
)

// baseAssumptions mirrors the defaults of the evaluation form.
func baseAssumptions() CostAssumptions {
	return CostAssumptions{
		MonthlyRent:          1500,
		ManagementFeePercent: 10,
		Maintenance:          PercentOfRent,
		VoidDays:             21,
		MortgageRatePercent:  4.5,
		MortgageTermYears:    25,
		LegalFees:            2000,
		SurveyCosts:          300,
		Insurance:            200,
		GasSafety:            80,
		ElectricalInspection: 225,
		EPCCertificate:       100,
	}
}

func TestEvaluateAcquisition(t *testing.T) {
	a := baseAssumptions()
	a.BrokerFeePercent = 1
	ev := Evaluate(300000, a)

	if ev.LoanAmount != 225000 {
		t.Errorf("loan = %.2f, want 225000 (75%% LTV)", ev.LoanAmount)
	}
	if ev.Deposit != 75000 {
		t.Errorf("deposit = %.2f, want 75000", ev.Deposit)
	}
	if ev.BrokerFee != 2250 {
		t.Errorf("broker fee = %.2f, want 2250 (1%% of loan)", ev.BrokerFee)
	}
	wantAcq := ev.Deposit + ev.StampDuty + a.LegalFees + a.MortgageProductFee + a.SurveyCosts + ev.BrokerFee
	if math.Abs(ev.TotalAcquisition-wantAcq) > 0.01 {
		t.Errorf("total acquisition = %.2f, want %.2f", ev.TotalAcquisition, wantAcq)
	}
}

func TestEvaluateMaintenanceMethods(t *testing.T) {
	a := baseAssumptions()
	byRent := Evaluate(300000, a)

	a.Maintenance = PercentOfValue
	byValue := Evaluate(300000, a)

	// 1% of a £300k property (3000) vs 10% of 18k rent (1800).
	if diff := byValue.AnnualOperatingCosts - byRent.AnnualOperatingCosts; math.Abs(diff-1200) > 0.01 {
		t.Errorf("operating cost difference = %.2f, want 1200", diff)
	}
}

func TestEvaluateUsesScheduleNotHalfSplit(t *testing.T) {
	// First-year interest comes from the amortization schedule; on a fresh
	// loan it is well above half the annual payment.
	ev := Evaluate(300000, baseAssumptions())
	if ev.AnnualInterest <= ev.AnnualMortgagePayment/2 {
		t.Errorf("year-1 interest %.2f should exceed half the payment %.2f",
			ev.AnnualInterest, ev.AnnualMortgagePayment/2)
	}
	if math.Abs(ev.AnnualInterest+ev.AnnualEquity-ev.AnnualMortgagePayment) > 0.01 {
		t.Errorf("interest %.2f + equity %.2f != payment %.2f",
			ev.AnnualInterest, ev.AnnualEquity, ev.AnnualMortgagePayment)
	}
}

func TestEvaluateEquityTreatment(t *testing.T) {
	ev := Evaluate(300000, baseAssumptions())

	// Equity counts towards yield and cash-on-cash but is excluded from the
	// distributable monthly cash flow, and never enters the taxable profit.
	wantYield := (ev.NetIncomeBeforeTax + ev.AnnualEquity) / ev.Price * 100
	if math.Abs(ev.NetYieldPercent-wantYield) > 1e-9 {
		t.Errorf("yield = %.6f, want %.6f", ev.NetYieldPercent, wantYield)
	}
	wantCoC := (ev.NetIncomeAfterTax + ev.AnnualEquity) / ev.TotalAcquisition * 100
	if math.Abs(ev.CashOnCashPercent-wantCoC) > 1e-9 {
		t.Errorf("cash-on-cash = %.6f, want %.6f", ev.CashOnCashPercent, wantCoC)
	}
	wantMonthly := (ev.NetIncomeAfterTax - ev.AnnualEquity) / 12
	if math.Abs(ev.MonthlyNetCashFlow-wantMonthly) > 1e-9 {
		t.Errorf("monthly cash flow = %.6f, want %.6f", ev.MonthlyNetCashFlow, wantMonthly)
	}

	wantTax, _ := CorporationTax(math.Max(0, ev.NetIncomeBeforeTax))
	if math.Abs(ev.CorporationTax-wantTax) > 1e-9 {
		t.Errorf("tax computed on %.2f: got %.2f, want %.2f (pre-equity income)",
			ev.NetIncomeBeforeTax, ev.CorporationTax, wantTax)
	}
}

func TestEvaluateBreakEvenOccupancy(t *testing.T) {
	ev := Evaluate(300000, baseAssumptions())
	want := (ev.AnnualOperatingCosts + ev.AnnualInterest) / baseAssumptions().AnnualRent() * 100
	if math.Abs(ev.BreakEvenOccupancyPercent-want) > 1e-9 {
		t.Errorf("break-even occupancy = %.4f, want %.4f", ev.BreakEvenOccupancyPercent, want)
	}
}

func TestEvaluateNoNaNOnDegenerateInputs(t *testing.T) {
	// Zero price, zero rent: every ratio must yield 0 instead of NaN/Inf.
	ev := Evaluate(0, CostAssumptions{MortgageTermYears: 25, MortgageRatePercent: 4.5})
	for name, v := range map[string]float64{
		"yield":      ev.NetYieldPercent,
		"cashOnCash": ev.CashOnCashPercent,
		"monthly":    ev.MonthlyNetCashFlow,
		"breakEven":  ev.BreakEvenOccupancyPercent,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s = %v for zero price and rent, want finite", name, v)
		}
	}
	if ev.NetYieldPercent != 0 || ev.CashOnCashPercent != 0 || ev.BreakEvenOccupancyPercent != 0 {
		t.Error("guarded ratios should be exactly 0 on zero divisors")
	}
}

func TestEvaluateYieldDecreasesWithPrice(t *testing.T) {
	// The bisection searches rely on both metrics being monotonically
	// decreasing in price.
	a := baseAssumptions()
	prevYield, prevCoC := math.Inf(1), math.Inf(1)
	for price := 60000.0; price <= 900000; price += 20000 {
		ev := Evaluate(price, a)
		if ev.NetYieldPercent >= prevYield {
			t.Fatalf("yield rose to %.4f at price %.0f", ev.NetYieldPercent, price)
		}
		if ev.CashOnCashPercent >= prevCoC {
			t.Fatalf("cash-on-cash rose to %.4f at price %.0f", ev.CashOnCashPercent, price)
		}
		prevYield, prevCoC = ev.NetYieldPercent, ev.CashOnCashPercent
	}
}
