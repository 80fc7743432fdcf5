// Package bakong является клиентом внешнего API проверки статуса KHQR оплаты.
package bakong

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/MengJong168/tdmmail/internal/domain"
)

const RouteCheckPayment = "/api/check_payment?md5=%s"

const requestTimeout = 10 * time.Second

// StatusResponse ответ API статуса. Message носит диагностический характер
// и пробрасывается клиенту как есть.
type StatusResponse struct {
	Status  domain.PaymentStatusType `json:"status"`
	Message string                   `json:"message"`
}

// HTTPClient реализация клиента API статуса оплаты поверх net/http.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) HTTPClient {
	return HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// CheckPayment опрашивает статус оплаты по отпечатку платежной строки.
// При статусе ответа отличном от http.StatusOK возвращает *StatusCodeError.
//
//nolint:nonamedreturns
func (c HTTPClient) CheckPayment(ctx context.Context, fingerprint string) (response *StatusResponse, err error) {
	reqURL := c.baseURL + fmt.Sprintf(RouteCheckPayment, url.QueryEscape(fingerprint))

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		var netErr net.Error
		if errors.Is(doErr, context.DeadlineExceeded) || (errors.As(doErr, &netErr) && netErr.Timeout()) {
			return nil, fmt.Errorf("check payment: %w", domain.ErrUpstreamTimeout)
		}
		return nil, fmt.Errorf("do request: %s", doErr.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, NewStatusCodeError(resp.StatusCode)
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("read response: %s", readErr.Error())
	}

	if jsonErr := json.Unmarshal(body, &response); jsonErr != nil {
		return nil, fmt.Errorf("parse response: %s", jsonErr.Error())
	}
	return response, nil
}
