package gate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"
)

// Validator answers whether an account satisfies a token-gate condition.
// The actual on-chain evaluation lives in an external service; this package
// only calls it and caches the verdict.
type Validator interface {
	IsConditionValid(ctx context.Context, gateID, address string) (bool, error)
}

type httpValidator struct {
	baseURL string
	client  *http.Client
}

func NewHTTPValidator(baseURL string) Validator {
	return &httpValidator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *httpValidator) IsConditionValid(ctx context.Context, gateID, address string) (bool, error) {
	u := fmt.Sprintf("%s/gates/%s/check?address=%s", v.baseURL, url.PathEscape(gateID), url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, fmt.Errorf("build gate request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("gate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("gate service returned %d", resp.StatusCode)
	}

	body := &struct {
		Valid bool `json:"valid"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(body); err != nil {
		return false, fmt.Errorf("decode gate response: %w", err)
	}

	return body.Valid, nil
}

type cachedValidator struct {
	inner Validator
	cache *cache.Cache
}

// NewCachedValidator memoizes gate verdicts for ttl. Only positive and
// negative verdicts are cached, errors are not.
func NewCachedValidator(inner Validator, ttl time.Duration) Validator {
	return &cachedValidator{
		inner: inner,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (v *cachedValidator) IsConditionValid(ctx context.Context, gateID, address string) (bool, error) {
	key := gateID + "|" + address
	if cached, ok := v.cache.Get(key); ok {
		return cached.(bool), nil
	}

	valid, err := v.inner.IsConditionValid(ctx, gateID, address)
	if err != nil {
		return false, err
	}

	v.cache.Set(key, valid, cache.DefaultExpiration)
	return valid, nil
}
