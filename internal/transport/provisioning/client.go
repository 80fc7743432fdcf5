// Package provisioning является клиентом стороннего API выдачи одноразовых
// почтовых ящиков и получения присланных на них OTP кодов.
package provisioning

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
	"github.com/shopspring/decimal"
)

const (
	RouteCreateOrder = "/v1/api/create-order.php?key=%s&service=%s"
	RouteCheckOTP    = "/v1/api/check-otp.php?key=%s&id=%s"
)

// requestTimeout у провайдера заметно выше, чем у внутренних вызовов:
// выдача ящика на его стороне небыстрая.
const requestTimeout = 30 * time.Second

// OrderResponse ответ на создание заказа: адрес выданного ящика и внешний id.
type OrderResponse struct {
	Mail    string `json:"mail"`
	OrderID string `json:"order_id"`
}

// OTPResponse ответ на проверку OTP. Пустой OTP означает, что код еще
// не пришел - это штатное, а не ошибочное наблюдение.
type OTPResponse struct {
	OTP    string          `json:"otp"`
	Amount decimal.Decimal `json:"amount"`
}

// HTTPClient реализация клиента API провайдера поверх net/http.
// Все запросы подписываются общим секретным ключом.
type HTTPClient struct {
	baseURL    string
	key        string
	httpClient *http.Client
}

func New(baseURL, key string) HTTPClient {
	return HTTPClient{
		baseURL: baseURL,
		key:     key,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// CreateOrder заказывает одноразовый ящик для сервиса service.
// Ответ без полей mail/order_id трактуется как отказ провайдера.
func (c HTTPClient) CreateOrder(ctx context.Context, service string) (*OrderResponse, error) {
	path := fmt.Sprintf(RouteCreateOrder, url.QueryEscape(c.key), url.QueryEscape(service))

	var response struct {
		OrderResponse
		Error string `json:"error"`
	}
	if err := c.get(ctx, path, &response); err != nil {
		return nil, err
	}

	if response.Mail == "" || response.OrderID == "" {
		message := response.Error
		if message == "" {
			message = "failed to create order"
		}
		return nil, domain.NewUpstreamError(message)
	}
	return &response.OrderResponse, nil
}

// CheckOTP опрашивает провайдера на предмет пришедшего кода. Отсутствие кода
// не является ошибкой: возвращается ответ с пустым OTP.
func (c HTTPClient) CheckOTP(ctx context.Context, orderID string) (*OTPResponse, error) {
	path := fmt.Sprintf(RouteCheckOTP, url.QueryEscape(c.key), url.QueryEscape(orderID))

	var response OTPResponse
	if err := c.get(ctx, path, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

//nolint:nonamedreturns
func (c HTTPClient) get(ctx context.Context, path string, out any) (err error) {
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if reqErr != nil {
		return fmt.Errorf("create request: %s", reqErr.Error())
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		var netErr net.Error
		if errors.Is(doErr, context.DeadlineExceeded) || (errors.As(doErr, &netErr) && netErr.Timeout()) {
			return fmt.Errorf("provisioning: %w", domain.ErrUpstreamTimeout)
		}
		return fmt.Errorf("do request: %s", doErr.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return NewStatusCodeError(resp.StatusCode)
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return fmt.Errorf("read response: %s", readErr.Error())
	}

	if jsonErr := json.Unmarshal(body, out); jsonErr != nil {
		return fmt.Errorf("parse response: %s", jsonErr.Error())
	}
	return nil
}
