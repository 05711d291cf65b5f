package oanda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// PracticeURL is the URL for OANDA's practice/demo environment
	PracticeURL = "https://api-fxpractice.oanda.com"
	// LiveURL is the URL for OANDA's live trading environment
	LiveURL = "https://api-fxtrade.oanda.com"
)

// pageSize is the maximum number of transactions OANDA returns per
// idrange request.
const pageSize = 1000

// Client represents an OANDA API client
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new OANDA API client
func NewClient(token string, practice bool) *Client {
	baseURL := LiveURL
	if practice {
		baseURL = PracticeURL
	}

	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Transaction is a single raw record from the account's transaction
// ledger. OANDA encodes all decimals as strings; fields that do not
// apply to a transaction type are absent and decode to "".
type Transaction struct {
	ID             string `json:"id"`
	Time           string `json:"time"`
	Type           string `json:"type"`
	Instrument     string `json:"instrument"`
	Units          string `json:"units"`
	PL             string `json:"pl"`
	AccountBalance string `json:"accountBalance"`
}

// Summary holds the account-level figures the dashboard header shows,
// plus the ledger high-water mark that drives pagination.
type Summary struct {
	AccountID         string
	Balance           float64
	UnrealizedPL      float64
	MarginAvailable   float64
	LastTransactionID int
}

// apiAccount represents the account object in the summary response
type apiAccount struct {
	ID                string `json:"id"`
	Balance           string `json:"balance"`
	PL                string `json:"pl"`
	MarginAvailable   string `json:"marginAvailable"`
	LastTransactionID string `json:"lastTransactionID"`
}

// summaryResponse represents the API response for the account summary
type summaryResponse struct {
	Account apiAccount `json:"account"`
}

// transactionsResponse represents the API response for an idrange query
type transactionsResponse struct {
	Transactions      []Transaction `json:"transactions"`
	LastTransactionID string        `json:"lastTransactionID"`
}

// FetchError reports a failed pagination window. The whole fetch is
// abandoned when any window fails; partial results are never returned.
type FetchError struct {
	From int
	To   int
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch transactions %d-%d: %v", e.From, e.To, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AccountSummary fetches the current account summary from OANDA. The
// returned LastTransactionID is the high-water mark FetchLedger needs.
func (c *Client) AccountSummary(ctx context.Context, accountID string) (Summary, error) {
	if accountID == "" {
		return Summary{}, fmt.Errorf("account id is required")
	}

	apiURL := fmt.Sprintf("%s/v3/accounts/%s/summary", c.baseURL, accountID)

	var apiResp summaryResponse
	if err := c.getJSON(ctx, apiURL, &apiResp); err != nil {
		return Summary{}, fmt.Errorf("account summary: %w", err)
	}

	balance, err := strconv.ParseFloat(apiResp.Account.Balance, 64)
	if err != nil {
		return Summary{}, fmt.Errorf("parse balance %q: %w", apiResp.Account.Balance, err)
	}
	pl, err := strconv.ParseFloat(apiResp.Account.PL, 64)
	if err != nil {
		return Summary{}, fmt.Errorf("parse pl %q: %w", apiResp.Account.PL, err)
	}
	margin, err := strconv.ParseFloat(apiResp.Account.MarginAvailable, 64)
	if err != nil {
		return Summary{}, fmt.Errorf("parse marginAvailable %q: %w", apiResp.Account.MarginAvailable, err)
	}
	lastID, err := strconv.Atoi(apiResp.Account.LastTransactionID)
	if err != nil {
		return Summary{}, fmt.Errorf("parse lastTransactionID %q: %w", apiResp.Account.LastTransactionID, err)
	}

	return Summary{
		AccountID:         apiResp.Account.ID,
		Balance:           balance,
		UnrealizedPL:      pl,
		MarginAvailable:   margin,
		LastTransactionID: lastID,
	}, nil
}

// TransactionRange fetches one page of transactions with ids in
// [from, to]. OANDA rejects ranges wider than 1000 ids.
func (c *Client) TransactionRange(ctx context.Context, accountID string, from, to int) ([]Transaction, error) {
	if accountID == "" {
		return nil, fmt.Errorf("account id is required")
	}
	if from < 1 || to < from {
		return nil, fmt.Errorf("invalid id range %d-%d", from, to)
	}

	params := url.Values{}
	params.Set("from", strconv.Itoa(from))
	params.Set("to", strconv.Itoa(to))

	apiURL := fmt.Sprintf("%s/v3/accounts/%s/transactions/idrange?%s",
		c.baseURL, accountID, params.Encode())

	var apiResp transactionsResponse
	if err := c.getJSON(ctx, apiURL, &apiResp); err != nil {
		return nil, err
	}
	return apiResp.Transactions, nil
}

// FetchLedger retrieves every transaction with id in [1, lastKnownID]
// using sequential fixed-size windows. An empty page before the
// high-water mark stops the fetch early and returns what was
// accumulated; a transport or protocol error on any window aborts the
// whole fetch with a *FetchError so callers never see an undercounted
// ledger.
func (c *Client) FetchLedger(ctx context.Context, accountID string, lastKnownID int) ([]Transaction, error) {
	if lastKnownID < 1 {
		return nil, nil
	}

	var all []Transaction
	for from := 1; from <= lastKnownID; from += pageSize {
		to := from + pageSize - 1
		if to > lastKnownID {
			to = lastKnownID
		}

		page, err := c.TransactionRange(ctx, accountID, from, to)
		if err != nil {
			return nil, &FetchError{From: from, To: to, Err: err}
		}
		if len(page) == 0 {
			// Inconsistent ledger; keep what we have.
			break
		}
		all = append(all, page...)
	}
	return all, nil
}

// getJSON issues an authenticated GET and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, apiURL string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
