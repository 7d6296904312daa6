package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// NodeClient пишет в удалённый узел реестра по HTTP.
// Узел принимает POST {base}/api/v1/ledger/blocks и отдаёт GET {base}/api/v1/ledger/blocks/{anchor_id}.
type NodeClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewNodeClient(baseURL string, timeout time.Duration) *NodeClient {
	return &NodeClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *NodeClient) blocksURL() string {
	return c.baseURL + "/api/v1/ledger/blocks"
}

// Submit отправляет запись и возвращает идентификатор якоря
func (c *NodeClient) Submit(ctx context.Context, tag string, payload []byte) (string, error) {
	body, err := json.Marshal(SubmitRequest{Tag: tag, Payload: payload})
	if err != nil {
		return "", fmt.Errorf("marshal submission: %v: %w", err, ErrLedgerRejected)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.blocksURL(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build submission: %v: %w", err, ErrLedgerUnavailable)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit to ledger node: %v: %w", err, ErrLedgerUnavailable)
	}
	defer resp.Body.Close()

	if err := statusError(resp); err != nil {
		return "", err
	}

	var result SubmitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || result.AnchorID == "" {
		return "", fmt.Errorf("ledger node returned no anchor id: %w", ErrLedgerUnavailable)
	}
	return result.AnchorID, nil
}

// Fetch читает блок по идентификатору якоря
func (c *NodeClient) Fetch(ctx context.Context, anchorID string) (*Block, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.blocksURL()+"/"+url.PathEscape(anchorID), nil)
	if err != nil {
		return nil, fmt.Errorf("build fetch: %v: %w", err, ErrLedgerUnavailable)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch from ledger node: %v: %w", err, ErrLedgerUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("anchor %s: %w", anchorID, ErrBlockNotFound)
	}
	if err := statusError(resp); err != nil {
		return nil, err
	}

	var b Block
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return nil, fmt.Errorf("decode block: %v: %w", err, ErrLedgerUnavailable)
	}
	return &b, nil
}

// retryableStatus - ответы 4xx, после которых запрос можно повторить: узел занят, а не отказал
func retryableStatus(code int) bool {
	switch code {
	case http.StatusRequestTimeout, http.StatusTooEarly, http.StatusTooManyRequests:
		return true
	}
	return false
}

// statusError: 4xx - отказ узла, 5xx и retryableStatus - узел недоступен
func statusError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	sentinel := ErrLedgerUnavailable
	if resp.StatusCode >= 400 && resp.StatusCode < 500 && !retryableStatus(resp.StatusCode) {
		sentinel = ErrLedgerRejected
	}
	return fmt.Errorf("ledger node status %d: %s: %w", resp.StatusCode, strings.TrimSpace(string(msg)), sentinel)
}
