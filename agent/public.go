package agent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tessier/networth"
	"github.com/tessier/networth/date"
	"github.com/tessier/networth/docs"
	"github.com/tessier/networth/property"
	"github.com/tessier/networth/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// LedgerFile is where the experts read the user's ledger from. The command
// layer sets it to the file the user selected.
var LedgerFile = "networth.jsonl"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the experts' skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his net worth, his accounts, and
			whether a property purchase would be a sound investment.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.

			The user will assume you already know his accounts, check the ledger first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor is an expert grounded in Google Search, for rates and market
// context the ledger cannot answer.
func NewAdvisor() *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is a financial advisor,
		well aware of current mortgage rates, savings rates, tax rules and the
		housing market. Ask the Advisor whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert financial advisor. You can search and find anything related to
			mortgage rates, savings products, taxation and the housing market.
			You leverage Google Search to ground your assertions in solid truth,
			and you know how to relate the latest news to the user's request.
				`}}},
		},
	}
}

// NewBookkeeper is an expert over the user's ledger.
func NewBookkeeper() *Expert {
	lib := []Function{NetWorthSummary, ListAccounts}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's net worth ledger.
		He can list the accounts and compute the user's net worth on any date.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's net worth ledger.
				You know how to use the Tools to extract relevant information about the user's wealth.
				You are part of a team of experts, yours is everything recorded in the ledger. They might ask
				you questions in approximative language, figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewSurveyor is an expert over the buy-to-let solver.
func NewSurveyor() *Expert {
	lib := []Function{FairPrice}

	return &Expert{
		Name: "Surveyor",
		Description: `This is the Surveyor. He evaluates buy-to-let property investments:
		given a monthly rent and mortgage terms he computes the fair purchase price
		that meets a target return.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a property investment surveyor. Use the Tools to compute the fair
				purchase price for a buy-to-let given the user's assumptions, and explain
				the resulting figures plainly. Always state the assumptions you used.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

// NetWorthSummary values the ledger on a date and renders the summary.
var NetWorthSummary = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "NetWorthSummary",
		Description: `NetWorthSummary computes the user's net worth on a given date,
		with per-category and per-account breakdowns, in GBP.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"date": {
					Type:        genai.TypeString,
					Description: "The date on which to value the accounts, YYYY-MM-DD. Today is the default.",
				},
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted net worth summary.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		on, err := parseDate(args)
		if err != nil {
			return errResponse(id, "NetWorthSummary", err)
		}
		ledger, err := DecodeLedger()
		if err != nil {
			return errResponse(id, "NetWorthSummary", err)
		}
		s, err := ledger.Summarize(on, "GBP", networth.SameCurrency)
		if err != nil {
			return errResponse(id, "NetWorthSummary", err)
		}
		return &genai.FunctionResponse{
			ID:   id,
			Name: "NetWorthSummary",
			Response: map[string]any{
				"output": renderer.SummaryMarkdown(s),
			},
		}
	},
}

// ListAccounts lists the declared accounts and categories.
var ListAccounts = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "ListAccounts",
		Description: `ListAccounts lists all accounts in the user's ledger with their
		category and currency.`,
		Parameters: &genai.Schema{Type: genai.TypeObject},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted list of accounts.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		ledger, err := DecodeLedger()
		if err != nil {
			return errResponse(id, "ListAccounts", err)
		}
		out := ""
		for _, a := range ledger.Accounts() {
			out += fmt.Sprintf("- %s (%s, %s)\n", a.Name, a.Category, a.Currency)
		}
		if out == "" {
			out = "The ledger has no accounts yet."
		}
		return &genai.FunctionResponse{
			ID:       id,
			Name:     "ListAccounts",
			Response: map[string]any{"output": out},
		}
	},
}

// FairPrice runs the buy-to-let solver for the given assumptions.
var FairPrice = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "FairPrice",
		Description: `FairPrice computes the maximum purchase price for a buy-to-let
		property that achieves a target net yield, for a limited company
		purchase at 75% loan-to-value.

		` + must(docs.GetTopic("fairprice")),
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"monthly_rent": {
					Type:        genai.TypeNumber,
					Description: "The expected monthly rent in GBP.",
				},
				"target_yield": {
					Type:        genai.TypeNumber,
					Description: "The target net yield in percent. Default 3.0.",
				},
				"mortgage_rate": {
					Type:        genai.TypeNumber,
					Description: "The annual mortgage rate in percent. Default 4.5.",
				},
				"term_years": {
					Type:        genai.TypeNumber,
					Description: "The mortgage term in years. Default 25.",
				},
			},
			Required: []string{"monthly_rent"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted fair price report.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		rent, ok := args["monthly_rent"].(float64)
		if !ok {
			return errResponse(id, "FairPrice", fmt.Errorf("monthly_rent must be a number, got %T", args["monthly_rent"]))
		}
		num := func(key string, def float64) float64 {
			if v, ok := args[key].(float64); ok {
				return v
			}
			return def
		}
		a := property.CostAssumptions{
			MonthlyRent:          rent,
			ManagementFeePercent: 10,
			Maintenance:          property.PercentOfRent,
			VoidDays:             21,
			MortgageRatePercent:  num("mortgage_rate", 4.5),
			MortgageTermYears:    int(num("term_years", 25)),
		}
		target := property.YieldTarget(num("target_yield", 3.0))
		result := property.FindFairPrice(a, target)
		var eval property.PriceEvaluation
		if result.Viable() {
			eval = property.Evaluate(result.Price, a)
		}
		return &genai.FunctionResponse{
			ID:   id,
			Name: "FairPrice",
			Response: map[string]any{
				"output": renderer.FairPriceMarkdown(target, result, eval),
			},
		}
	},
}

// DecodeLedger decodes the ledger from LedgerFile. If the file does not
// exist, it returns a new empty ledger.
func DecodeLedger() (*networth.Ledger, error) {
	f, err := os.Open(LedgerFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return networth.NewLedger(), nil
		}
		return nil, fmt.Errorf("could not open ledger file %q: %w", LedgerFile, err)
	}
	defer f.Close()

	ledger, err := networth.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", LedgerFile, err)
	}
	return ledger, nil
}

func parseDate(args map[string]any) (date.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return date.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return date.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}

	on, err := date.Parse(sdate)
	if err != nil {
		return date.Today(), fmt.Errorf("argument 'date' must be a valid YYYY-MM-DD date, got %q", sdate)
	}
	return on, nil
}
