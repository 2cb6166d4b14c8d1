package property

import "math"

// PriceEvaluation is the full annual cash-flow picture of one candidate
// purchase price. It is derived, never mutated: every call to Evaluate
// recomputes it from scratch.
type PriceEvaluation struct {
	Price float64

	LoanAmount       float64
	Deposit          float64
	StampDuty        float64
	BrokerFee        float64
	TotalAcquisition float64

	AnnualMortgagePayment float64
	AnnualInterest        float64
	AnnualEquity          float64 // principal repaid in year one

	AnnualOperatingCosts float64
	NetIncomeBeforeTax   float64
	CorporationTax       float64
	EffectiveTaxRate     float64 // percent
	NetIncomeAfterTax    float64

	NetYieldPercent           float64
	CashOnCashPercent         float64
	MonthlyNetCashFlow        float64
	BreakEvenOccupancyPercent float64
}

// ratio divides a by b, returning 0 on a zero divisor. The cash-flow model
// never propagates NaN or Inf for degenerate inputs.
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// Evaluate computes the cash-flow model for one candidate price.
//
// The mortgage interest and equity figures are the first-year actuals from
// the amortization schedule. Corporation tax is always charged on rent
// minus operating costs minus interest: principal repayments are never a
// deductible expense, but they do count towards yield and cash-on-cash
// return as value recovered through debt paydown. They are excluded from
// the monthly net cash flow because they are not distributable cash.
func Evaluate(price float64, a CostAssumptions) PriceEvaluation {
	ev := PriceEvaluation{Price: price}

	ev.LoanAmount = price * LTVPercent / 100
	ev.Deposit = price * DepositPercent / 100
	ev.StampDuty = StampDuty(price)
	ev.BrokerFee = ev.LoanAmount * a.BrokerFeePercent / 100
	ev.TotalAcquisition = ev.Deposit + ev.StampDuty + a.LegalFees + a.MortgageProductFee + a.SurveyCosts + ev.BrokerFee

	ev.AnnualMortgagePayment = MortgagePayment(ev.LoanAmount, a.MortgageRatePercent, a.MortgageTermYears)
	ev.AnnualInterest, ev.AnnualEquity = YearlyInterestAndPrincipal(ev.LoanAmount, a.MortgageRatePercent, a.MortgageTermYears, 1)

	annualRent := a.AnnualRent()

	var maintenance float64
	if a.Maintenance == PercentOfValue {
		maintenance = price * MaintenanceValuePercent / 100
	} else {
		maintenance = annualRent * MaintenanceRentPercent / 100
	}
	managementFees := annualRent * a.ManagementFeePercent / 100
	vacancyCost := a.VoidDays / 365 * annualRent

	ev.AnnualOperatingCosts = a.ServiceCharge + a.GroundRent + a.CouncilTax + a.Insurance +
		managementFees + maintenance + a.GasSafety +
		a.ElectricalInspection/electricalCycleYears + a.EPCCertificate/epcCycleYears +
		vacancyCost

	ev.NetIncomeBeforeTax = annualRent - (ev.AnnualOperatingCosts + ev.AnnualInterest)
	ev.CorporationTax, ev.EffectiveTaxRate = CorporationTax(math.Max(0, ev.NetIncomeBeforeTax))
	ev.NetIncomeAfterTax = ev.NetIncomeBeforeTax - ev.CorporationTax

	ev.NetYieldPercent = ratio(ev.NetIncomeBeforeTax+ev.AnnualEquity, price) * 100
	ev.CashOnCashPercent = ratio(ev.NetIncomeAfterTax+ev.AnnualEquity, ev.TotalAcquisition) * 100
	ev.MonthlyNetCashFlow = (ev.NetIncomeAfterTax - ev.AnnualEquity) / 12
	ev.BreakEvenOccupancyPercent = ratio(ev.AnnualOperatingCosts+ev.AnnualInterest, annualRent) * 100

	return ev
}
