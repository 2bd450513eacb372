package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Verifier answers whether a payment transaction is confirmed. Settlement
// itself happens elsewhere; this package only asks for the verdict.
type Verifier interface {
	VerifyTransaction(ctx context.Context, transactionID string) (bool, error)
}

type httpVerifier struct {
	baseURL string
	client  *http.Client
}

func NewHTTPVerifier(baseURL string) Verifier {
	return &httpVerifier{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *httpVerifier) VerifyTransaction(ctx context.Context, transactionID string) (bool, error) {
	u := fmt.Sprintf("%s/transactions/%s", v.baseURL, url.PathEscape(transactionID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, fmt.Errorf("build payment request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("payment request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("payment service returned %d", resp.StatusCode)
	}

	body := &struct {
		Confirmed bool `json:"confirmed"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(body); err != nil {
		return false, fmt.Errorf("decode payment response: %w", err)
	}

	return body.Confirmed, nil
}
