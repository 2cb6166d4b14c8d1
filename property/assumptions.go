package property

import "fmt"

// Policy constants baked into the solver. They mirror common UK buy-to-let
// lending terms and bound the fair-price search.
const (
	// LTVPercent is the loan-to-value ratio applied to every candidate price.
	LTVPercent = 75.0
	// DepositPercent is the complement of LTVPercent.
	DepositPercent = 100.0 - LTVPercent

	// MinSearchPrice and MaxSearchPrice bound every bisection. A returned
	// price below MinSearchPrice signals that no viable investment exists.
	MinSearchPrice = 50_000.0
	MaxSearchPrice = 2_000_000.0

	// MaintenanceValuePercent is the yearly provision when maintenance is a
	// percentage of the property value.
	MaintenanceValuePercent = 1.0
	// MaintenanceRentPercent is the yearly provision when maintenance is a
	// percentage of the rental income.
	MaintenanceRentPercent = 10.0

	// Safety certificates renewed on multi-year cycles, annualized.
	electricalCycleYears = 5
	epcCycleYears        = 10
)

// MaintenanceMethod selects how the yearly maintenance provision is derived.
type MaintenanceMethod int

const (
	// PercentOfRent provisions MaintenanceRentPercent of the annual rent.
	PercentOfRent MaintenanceMethod = iota
	// PercentOfValue provisions MaintenanceValuePercent of the property value.
	PercentOfValue
)

func (m MaintenanceMethod) String() string {
	switch m {
	case PercentOfRent:
		return "rent"
	case PercentOfValue:
		return "value"
	default:
		return "unknown"
	}
}

// ParseMaintenanceMethod parses a string into a MaintenanceMethod.
func ParseMaintenanceMethod(s string) (MaintenanceMethod, error) {
	switch s {
	case "rent":
		return PercentOfRent, nil
	case "value":
		return PercentOfValue, nil
	default:
		return 0, fmt.Errorf("unknown maintenance method %q (want \"rent\" or \"value\")", s)
	}
}

// CostAssumptions is an immutable snapshot of every non-price input to the
// cash-flow model. It is constructed once per evaluation and read only.
//
// All monetary amounts are annual GBP unless stated otherwise.
type CostAssumptions struct {
	MonthlyRent          float64
	ManagementFeePercent float64 // percent of annual rent
	Maintenance          MaintenanceMethod
	VoidDays             float64 // vacant days per year

	MortgageRatePercent float64
	MortgageTermYears   int

	LegalFees          float64
	MortgageProductFee float64
	SurveyCosts        float64
	BrokerFeePercent   float64 // percent of the loan

	ServiceCharge float64
	GroundRent    float64
	CouncilTax    float64
	Insurance     float64

	GasSafety            float64 // yearly certificate
	ElectricalInspection float64 // 5-year cycle
	EPCCertificate       float64 // 10-year cycle

	// AppreciationRatePercent is only used by Project; zero means a flat
	// property value.
	AppreciationRatePercent float64
}

// AnnualRent returns the gross yearly rental income.
func (a CostAssumptions) AnnualRent() float64 { return a.MonthlyRent * 12 }

// Metric identifies which return measure the fair-price search targets.
type Metric int

const (
	// NetYield targets PriceEvaluation.NetYieldPercent.
	NetYield Metric = iota
	// CashOnCash targets PriceEvaluation.CashOnCashPercent.
	CashOnCash
)

func (m Metric) String() string {
	switch m {
	case NetYield:
		return "net rental yield"
	case CashOnCash:
		return "cash-on-cash return"
	default:
		return "unknown"
	}
}

// Target specifies the goal of a fair-price search: exactly one metric with
// its target value, plus an optional cap on monthly net cash flow.
type Target struct {
	Metric  Metric
	Percent float64

	// MaxMonthlyCashFlow is only honoured when CapCashFlow is true.
	CapCashFlow        bool
	MaxMonthlyCashFlow float64
}

// YieldTarget returns a Target for a net rental yield of p percent.
func YieldTarget(p float64) Target { return Target{Metric: NetYield, Percent: p} }

// CashOnCashTarget returns a Target for a cash-on-cash return of p percent.
func CashOnCashTarget(p float64) Target { return Target{Metric: CashOnCash, Percent: p} }

// WithMaxMonthlyCashFlow returns a copy of the target capped at the given
// monthly net cash flow.
func (t Target) WithMaxMonthlyCashFlow(amount float64) Target {
	t.CapCashFlow = true
	t.MaxMonthlyCashFlow = amount
	return t
}
