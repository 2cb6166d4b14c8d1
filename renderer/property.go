package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/tessier/networth/property"
)

func FairPriceMarkdown(target property.Target, result property.FairPriceResult, eval property.PriceEvaluation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Fair Purchase Price")

	if !result.Viable() {
		doc.PlainText("No purchase price achieves the target under these assumptions.")
		doc.H2("Suggestions")
		doc.BulletList(
			"Negotiate a higher rent or reduce void periods.",
			"Shop for a lower mortgage rate or a longer term.",
			"Lower the target return.",
		)
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("A purchase at %.0f meets the %.2f%% %s target.", result.Price, target.Percent, metricLabel(target.Metric)))

	doc.H2("At This Price")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Value"},
		Rows: [][]string{
			{"Deposit", fmt.Sprintf("%.2f", eval.Deposit)},
			{"Loan", fmt.Sprintf("%.2f", eval.LoanAmount)},
			{"Stamp duty", fmt.Sprintf("%.2f", eval.StampDuty)},
			{"Total acquisition cost", fmt.Sprintf("%.2f", eval.TotalAcquisition)},
			{"Net income after tax", fmt.Sprintf("%.2f", eval.NetIncomeAfterTax)},
			{"Net yield", fmt.Sprintf("%.2f%%", eval.NetYieldPercent)},
			{"Cash-on-cash return", fmt.Sprintf("%.2f%%", eval.CashOnCashPercent)},
			{"Monthly cash flow", fmt.Sprintf("%.2f", eval.MonthlyNetCashFlow)},
			{"Break-even occupancy", fmt.Sprintf("%.2f%%", eval.BreakEvenOccupancyPercent)},
		},
	}
	doc.Table(table)

	if !result.RentCoversMortgage {
		doc.PlainText("Warning: the rent does not cover the mortgage payment at this price.")
	}

	return doc.String()
}

func metricLabel(m property.Metric) string {
	if m == property.CashOnCash {
		return "cash-on-cash"
	}
	return "net yield"
}

func EvaluationMarkdown(eval property.PriceEvaluation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Evaluation at %.0f", eval.Price))

	doc.H2("Acquisition")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Value"},
		Rows: [][]string{
			{"Deposit", fmt.Sprintf("%.2f", eval.Deposit)},
			{"Loan", fmt.Sprintf("%.2f", eval.LoanAmount)},
			{"Stamp duty", fmt.Sprintf("%.2f", eval.StampDuty)},
			{"Broker fee", fmt.Sprintf("%.2f", eval.BrokerFee)},
			{"Total acquisition cost", fmt.Sprintf("%.2f", eval.TotalAcquisition)},
		},
	})

	doc.H2("First Year")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Value"},
		Rows: [][]string{
			{"Mortgage payments", fmt.Sprintf("%.2f", eval.AnnualMortgagePayment)},
			{"of which interest", fmt.Sprintf("%.2f", eval.AnnualInterest)},
			{"of which equity", fmt.Sprintf("%.2f", eval.AnnualEquity)},
			{"Operating costs", fmt.Sprintf("%.2f", eval.AnnualOperatingCosts)},
			{"Net income before tax", fmt.Sprintf("%.2f", eval.NetIncomeBeforeTax)},
			{"Corporation tax", fmt.Sprintf("%.2f (%.2f%%)", eval.CorporationTax, eval.EffectiveTaxRate)},
			{"Net income after tax", fmt.Sprintf("%.2f", eval.NetIncomeAfterTax)},
		},
	})

	doc.H2("Returns")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Value"},
		Rows: [][]string{
			{"Net yield", fmt.Sprintf("%.2f%%", eval.NetYieldPercent)},
			{"Cash-on-cash return", fmt.Sprintf("%.2f%%", eval.CashOnCashPercent)},
			{"Monthly cash flow", fmt.Sprintf("%.2f", eval.MonthlyNetCashFlow)},
			{"Break-even occupancy", fmt.Sprintf("%.2f%%", eval.BreakEvenOccupancyPercent)},
		},
	})

	return doc.String()
}

func ProjectionMarkdown(price float64, schedule []property.AmortizationYear) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Projection for a purchase at %.0f", price))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
			md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Year", "Value", "Mortgage", "Equity", "Rent (cum.)", "Costs (cum.)", "Net Return"},
		Rows:   [][]string{},
	}
	for _, y := range schedule {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", y.Year),
			fmt.Sprintf("%.0f", y.PropertyValue),
			fmt.Sprintf("%.0f", y.MortgageBalance),
			fmt.Sprintf("%.0f", y.Equity),
			fmt.Sprintf("%.0f", y.CumulativeRent),
			fmt.Sprintf("%.0f", y.CumulativeCosts),
			fmt.Sprintf("%.2f%%", y.NetReturnPercent),
		})
	}
	doc.Table(table)

	return doc.String()
}

func MortgageMarkdown(propertyValue, depositPercent, ratePercent float64, years int, mortgageMonthly, totalMonthly float64) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Mortgage Repayments")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Value"},
		Rows: [][]string{
			{"Property value", fmt.Sprintf("%.2f", propertyValue)},
			{"Deposit", fmt.Sprintf("%.2f (%.0f%%)", propertyValue*depositPercent/100, depositPercent)},
			{"Rate", fmt.Sprintf("%.2f%% over %d years", ratePercent, years)},
			{"Monthly repayment", fmt.Sprintf("%.2f", mortgageMonthly)},
			{"Monthly cost incl. outgoings", fmt.Sprintf("%.2f", totalMonthly)},
		},
	})

	return doc.String()
}
