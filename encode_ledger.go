package networth

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/tessier/networth/date"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The ledger file is JSONL, one command per line, designed to be
// human-readable and git-friendly. Three commands exist:
//
//	{"command":"category","name":"Savings"}
//	{"command":"account","name":"Main ISA","category":"Savings","currency":"GBP"}
//	{"command":"value","on":"2026-01-31","account":"Main ISA","amount":12500.00,"currency":"GBP"}
//
// Declarations must precede use. EncodeLedger always emits declarations
// first and values in chronological order, so a decode/encode round trip
// canonicalises the file.

const (
	cmdCategory = "category"
	cmdAccount  = "account"
	cmdValue    = "value"
)

// DecodeLedger reads a JSONL stream of ledger commands and returns the
// resulting Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 {
			continue
		}

		var identifier struct {
			Command string `json:"command"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify command in %q: %w", line, string(lineBytes), err)
		}

		switch identifier.Command {
		case cmdCategory:
			var temp struct {
				Name string `json:"name"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if err := ledger.DeclareCategory(temp.Name); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		case cmdAccount:
			var temp struct {
				Name     string `json:"name"`
				Category string `json:"category"`
				Currency string `json:"currency"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if err := ledger.DeclareAccount(Account{Name: temp.Name, Category: temp.Category, Currency: temp.Currency}); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		case cmdValue:
			var temp struct {
				On       date.Date       `json:"on"`
				Account  string          `json:"account"`
				Amount   decimal.Decimal `json:"amount"`
				Currency string          `json:"currency"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			amount := moneyFromDecimal(temp.Amount, temp.Currency)
			if err := ledger.Append(ValueRecord{On: temp.On, Account: temp.Account, Amount: amount}); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		default:
			return nil, fmt.Errorf("line %d: unknown command %q", line, identifier.Command)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ledger, nil
}

// EncodeLedger persists a ledger to an io.Writer in canonical JSONL form:
// categories first, then accounts, then values in chronological order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	decimal.MarshalJSONWithoutQuotes = true

	for _, name := range ledger.Categories() {
		obj := &jsonObjectWriter{}
		obj.Append("command", cmdCategory).
			Append("name", name)
		if err := writeLine(w, obj); err != nil {
			return err
		}
	}
	for _, a := range ledger.Accounts() {
		obj := &jsonObjectWriter{}
		obj.Append("command", cmdAccount).
			Append("name", a.Name).
			Append("category", a.Category).
			Append("currency", a.Currency)
		if err := writeLine(w, obj); err != nil {
			return err
		}
	}
	for _, rec := range ledger.Records() {
		obj := &jsonObjectWriter{}
		obj.Append("command", cmdValue).
			Append("on", rec.On).
			Append("account", rec.Account).
			Append("amount", rec.Amount.Decimal()).
			Append("currency", rec.Amount.Currency())
		if err := writeLine(w, obj); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, obj *jsonObjectWriter) error {
	data, err := obj.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// Fmt rewrites a ledger stream in canonical form: a decode followed by an
// encode, dropping blank lines and normalising field order.
func Fmt(w io.Writer, r io.Reader) error {
	ledger, err := DecodeLedger(r)
	if err != nil {
		return err
	}
	return EncodeLedger(w, ledger)
}
