// Package fx converts amounts between currencies using daily spot rates
// from the exchangerate-api.com open endpoint. Responses are cached on disk
// for the day, so repeated CLI invocations do not hammer the feed.
package fx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

const defaultBaseURL = "https://api.exchangerate-api.com/v4/latest"

// Service fetches exchange rates over HTTP.
type Service struct {
	client  *http.Client
	baseURL string
}

// NewService returns a Service backed by the public rate feed, with daily
// disk caching.
func NewService() *Service {
	return &Service{client: newDailyCachingClient(), baseURL: defaultBaseURL}
}

// NewServiceWith returns a Service with an explicit client and base URL,
// for tests.
func NewServiceWith(client *http.Client, baseURL string) *Service {
	return &Service{client: client, baseURL: baseURL}
}

// Rate returns the spot rate from one currency to another: the amount of
// `to` one unit of `from` buys.
func (s *Service) Rate(from, to string) (float64, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	if from == to {
		return 1, nil
	}
	if _, ok := Currencies[from]; !ok {
		return 0, fmt.Errorf("unknown currency code %q", from)
	}
	if _, ok := Currencies[to]; !ok {
		return 0, fmt.Errorf("unknown currency code %q", to)
	}

	addr := fmt.Sprintf("%s/%s", s.baseURL, from)
	var jobj any
	if err := jwget(s.client, addr, &jobj); err != nil {
		return 0, fmt.Errorf("fetching rates for %s: %w", from, err)
	}
	path := fmt.Sprintf("$.rates.%s", to)
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("no rate for %s in the %s feed: %w", to, from, err)
	}
	// jsonpath sometimes wraps a single answer in a list.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	rate, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("rate for %s/%s is not a number: %v", from, to, jval)
	}
	return rate, nil
}

// Convert converts an amount between two currencies at today's spot rate.
// Its signature matches networth.Converter.
func (s *Service) Convert(amount float64, from, to string) (float64, error) {
	rate, err := s.Rate(from, to)
	if err != nil {
		return 0, err
	}
	return amount * rate, nil
}

// jwget performs an HTTP GET request to the given address and unmarshals the
// JSON response body into the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
