package networth

import "fmt"

// Cadence is how often a recurring contribution is paid into a pot.
type Cadence int

const (
	Monthly Cadence = iota
	Yearly
)

// ParseCadence parses "monthly" or "yearly".
func ParseCadence(s string) (Cadence, error) {
	switch s {
	case "monthly":
		return Monthly, nil
	case "yearly":
		return Yearly, nil
	}
	return 0, fmt.Errorf("unknown cadence %q (want monthly or yearly)", s)
}

func (c Cadence) String() string {
	if c == Yearly {
		return "yearly"
	}
	return "monthly"
}

// Pot describes a savings pot to project forward: an initial balance, a
// recurring contribution, and a flat annual growth rate.
type Pot struct {
	Name              string
	Initial           float64
	Contribution      float64
	Cadence           Cadence
	AnnualRatePercent float64
}

// PotYear is the state of a simulated pot at the end of one year.
type PotYear struct {
	Year        int
	Balance     float64
	Contributed float64 // cumulative contributions, initial balance excluded
	Growth      float64 // cumulative growth, Balance - Initial - Contributed
}

// Simulate projects the pot forward over the given number of years.
//
// Interest compounds monthly at rate/12. Monthly contributions are paid at
// the end of each month, yearly contributions at the end of each year. The
// returned slice has years+1 entries, year 0 being the initial state.
func (p Pot) Simulate(years int) []PotYear {
	if years < 0 {
		years = 0
	}
	schedule := make([]PotYear, 0, years+1)
	schedule = append(schedule, PotYear{Year: 0, Balance: p.Initial})

	monthlyRate := p.AnnualRatePercent / 100 / 12
	balance := p.Initial
	var contributed float64
	for year := 1; year <= years; year++ {
		for month := 0; month < 12; month++ {
			balance *= 1 + monthlyRate
			if p.Cadence == Monthly {
				balance += p.Contribution
				contributed += p.Contribution
			}
		}
		if p.Cadence == Yearly {
			balance += p.Contribution
			contributed += p.Contribution
		}
		schedule = append(schedule, PotYear{
			Year:        year,
			Balance:     balance,
			Contributed: contributed,
			Growth:      balance - p.Initial - contributed,
		})
	}
	return schedule
}

// FinalBalance is the balance at the end of the simulation horizon.
func (p Pot) FinalBalance(years int) float64 {
	schedule := p.Simulate(years)
	return schedule[len(schedule)-1].Balance
}

// SimulateAll projects several pots over the same horizon and sums them,
// year by year. The returned schedule has the same shape as Pot.Simulate.
func SimulateAll(pots []Pot, years int) []PotYear {
	if years < 0 {
		years = 0
	}
	total := make([]PotYear, years+1)
	for i := range total {
		total[i].Year = i
	}
	for _, p := range pots {
		for i, y := range p.Simulate(years) {
			total[i].Balance += y.Balance
			total[i].Contributed += y.Contributed
			total[i].Growth += y.Growth
		}
	}
	return total
}
