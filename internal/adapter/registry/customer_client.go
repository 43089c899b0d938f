package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/corebank/accounts-service/internal/domain"
	"github.com/corebank/accounts-service/internal/logger"
)

// CustomerRegistryClient validates customer IDs against the external customer
// registry over HTTP (GET {base}/customers/{id}/exists). Timeouts and retries
// are the caller-supplied http.Client's concern; no retrying happens here.
type CustomerRegistryClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCustomerRegistryClient(baseURL string, httpClient *http.Client) *CustomerRegistryClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &CustomerRegistryClient{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
	}
}

// Validate collapses every non-success shape — transport failure, non-2xx
// status, empty or malformed body, explicit false — into ErrCustomerNotFound.
// Account creation must not proceed on an ambiguous registry answer.
func (c *CustomerRegistryClient) Validate(ctx context.Context, customerID string) error {
	url := fmt.Sprintf("%s/customers/%s/exists", c.baseURL, customerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.Error("customer registry build request failed", err, logger.Fields{
			"customerId": customerID,
		})
		return fmt.Errorf("customer %s: %w", customerID, domain.ErrCustomerNotFound)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("customer registry call failed", err, logger.Fields{
			"customerId": customerID,
		})
		return fmt.Errorf("customer %s: %w", customerID, domain.ErrCustomerNotFound)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Info("customer registry non-success status", logger.Fields{
			"customerId": customerID,
			"status":     resp.StatusCode,
		})
		return fmt.Errorf("customer %s: %w", customerID, domain.ErrCustomerNotFound)
	}

	var exists bool
	if err := json.NewDecoder(resp.Body).Decode(&exists); err != nil {
		logger.Error("customer registry decode response failed", err, logger.Fields{
			"customerId": customerID,
		})
		return fmt.Errorf("customer %s: %w", customerID, domain.ErrCustomerNotFound)
	}

	if !exists {
		logger.Info("customer registry reported customer missing", logger.Fields{
			"customerId": customerID,
		})
		return fmt.Errorf("customer %s: %w", customerID, domain.ErrCustomerNotFound)
	}

	return nil
}
