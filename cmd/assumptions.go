package cmd

import (
	"flag"

	"github.com/tessier/networth/property"
)

// assumptionFlags declares the cost assumption flags shared by the property
// commands, with realistic buy-to-let defaults.
type assumptionFlags struct {
	rent         float64
	management   float64
	maintenance  string
	voidDays     float64
	rate         float64
	term         int
	legalFees    float64
	productFee   float64
	survey       float64
	brokerFee    float64
	service      float64
	groundRent   float64
	councilTax   float64
	insurance    float64
	gasSafety    float64
	electrical   float64
	epc          float64
	appreciation float64
}

func (a *assumptionFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&a.rent, "rent", 0, "Expected monthly rent.")
	f.Float64Var(&a.management, "management", 10, "Management fee as a percent of rent.")
	f.StringVar(&a.maintenance, "maintenance", "rent", "Maintenance provision basis: 'rent' (10% of annual rent) or 'value' (1% of property value).")
	f.Float64Var(&a.voidDays, "void-days", 21, "Expected void days per year.")
	f.Float64Var(&a.rate, "rate", 4.5, "Annual mortgage rate in percent.")
	f.IntVar(&a.term, "term", 25, "Mortgage term in years.")
	f.Float64Var(&a.legalFees, "legal-fees", 2000, "One-off legal fees.")
	f.Float64Var(&a.productFee, "product-fee", 0, "One-off mortgage product fee.")
	f.Float64Var(&a.survey, "survey", 300, "One-off survey costs.")
	f.Float64Var(&a.brokerFee, "broker-fee", 0, "Broker fee as a percent of the loan.")
	f.Float64Var(&a.service, "service-charge", 0, "Annual service charge.")
	f.Float64Var(&a.groundRent, "ground-rent", 0, "Annual ground rent.")
	f.Float64Var(&a.councilTax, "council-tax", 0, "Annual council tax paid by the landlord.")
	f.Float64Var(&a.insurance, "insurance", 200, "Annual landlord insurance.")
	f.Float64Var(&a.gasSafety, "gas-safety", 80, "Annual gas safety certificate.")
	f.Float64Var(&a.electrical, "electrical", 225, "Electrical inspection cost, spread over its 5-year cycle.")
	f.Float64Var(&a.epc, "epc", 100, "EPC certificate cost, spread over its 10-year cycle.")
	f.Float64Var(&a.appreciation, "appreciation", 0, "Annual property appreciation rate in percent.")
}

func (a *assumptionFlags) Assumptions() (property.CostAssumptions, error) {
	method, err := property.ParseMaintenanceMethod(a.maintenance)
	if err != nil {
		return property.CostAssumptions{}, err
	}
	return property.CostAssumptions{
		MonthlyRent:             a.rent,
		ManagementFeePercent:    a.management,
		Maintenance:             method,
		VoidDays:                a.voidDays,
		MortgageRatePercent:     a.rate,
		MortgageTermYears:       a.term,
		LegalFees:               a.legalFees,
		MortgageProductFee:      a.productFee,
		SurveyCosts:             a.survey,
		BrokerFeePercent:        a.brokerFee,
		ServiceCharge:           a.service,
		GroundRent:              a.groundRent,
		CouncilTax:              a.councilTax,
		Insurance:               a.insurance,
		GasSafety:               a.gasSafety,
		ElectricalInspection:    a.electrical,
		EPCCertificate:          a.epc,
		AppreciationRatePercent: a.appreciation,
	}, nil
}
