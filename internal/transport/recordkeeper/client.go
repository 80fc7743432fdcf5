// Package recordkeeper является HTTP клиентом внешнего сервиса учета:
// пользователи, балансы, заказы и транзакции живут там, а не в этом процессе.
package recordkeeper

import (
	"bytes"
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

// Роуты API сервиса учета.
const (
	RouteRegister            = "/api/users/register"
	RouteLogin               = "/api/users/login"
	RouteBalance             = "/api/users/%d/balance"
	RouteOrders              = "/api/users/%d/orders"
	RouteOrder               = "/api/users/%d/orders/%s"
	RouteOrderOTP            = "/api/users/%d/orders/%s/otp"
	RouteOrderComplete       = "/api/users/%d/orders/%s/complete"
	RouteOrderStatus         = "/api/users/%d/orders/%s/status"
	RouteTransactions        = "/api/users/%d/transactions"
	RouteTransaction         = "/api/users/%d/transactions/%s"
	RouteTransactionByHash   = "/api/transactions/%s"
	RouteTransactionMarkPaid = "/api/transactions/%s/paid"
)

// requestTimeout ограничивает каждый вызов сервиса учета.
const requestTimeout = 10 * time.Second

// HTTPClient реализация клиента сервиса учета поверх net/http.
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

// envelope общий конверт всех ответов сервиса учета.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// RegisterUser регистрирует пользователя, возвращает его внешний ID.
func (c HTTPClient) RegisterUser(ctx context.Context, username, password string) (int64, error) {
	var out struct {
		envelope
		UserID int64 `json:"user_id"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, RouteRegister, body, &out); err != nil {
		return 0, err
	}
	return out.UserID, nil
}

// LoginUser аутентифицирует пару логин/пароль. Проверка пароля выполняется
// сервисом учета, здесь пароль нигде не хранится.
func (c HTTPClient) LoginUser(ctx context.Context, username, password string) (*domain.User, error) {
	var out struct {
		envelope
		User userDTO `json:"user"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, RouteLogin, body, &out); err != nil {
		return nil, err
	}
	user := out.User.toDomain()
	return &user, nil
}

func (c HTTPClient) GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var out struct {
		envelope
		Balance decimal.Decimal `json:"balance"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf(RouteBalance, userID), nil, &out); err != nil {
		return decimal.Zero, err
	}
	return out.Balance, nil
}

func (c HTTPClient) GetOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	var out struct {
		envelope
		Orders []orderDTO `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf(RouteOrders, userID), nil, &out); err != nil {
		return nil, err
	}
	orders := make([]domain.Order, len(out.Orders))
	for i, o := range out.Orders {
		orders[i] = o.toDomain(userID)
	}
	return orders, nil
}

func (c HTTPClient) GetOrder(ctx context.Context, userID int64, orderID string) (*domain.Order, error) {
	var out struct {
		envelope
		Order orderDTO `json:"order"`
	}
	path := fmt.Sprintf(RouteOrder, userID, url.PathEscape(orderID))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	order := out.Order.toDomain(userID)
	return &order, nil
}

type CreateOrderArgs struct {
	OrderID string          `json:"order_id"`
	Mail    string          `json:"mail"`
	Service string          `json:"service"`
	Status  string          `json:"status"`
	Cost    decimal.Decimal `json:"cost"`
}

func (c HTTPClient) CreateOrder(ctx context.Context, userID int64, args CreateOrderArgs) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf(RouteOrders, userID), args, nil)
}

// SetOrderOTP записывает полученный одноразовый код и сумму в заказ.
func (c HTTPClient) SetOrderOTP(
	ctx context.Context,
	userID int64,
	orderID string,
	otp string,
	amount decimal.Decimal,
) error {
	body := map[string]any{"otp": otp, "amount": amount}
	path := fmt.Sprintf(RouteOrderOTP, userID, url.PathEscape(orderID))
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// CompleteOrder помечает заказ завершенным. Повторный вызов на завершенном
// заказе сервис учета принимает без ошибки.
func (c HTTPClient) CompleteOrder(ctx context.Context, userID int64, orderID string) error {
	path := fmt.Sprintf(RouteOrderComplete, userID, url.PathEscape(orderID))
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

func (c HTTPClient) SetOrderStatus(
	ctx context.Context,
	userID int64,
	orderID string,
	status domain.OrderStatusType,
) error {
	body := map[string]string{"status": string(status)}
	path := fmt.Sprintf(RouteOrderStatus, userID, url.PathEscape(orderID))
	return c.do(ctx, http.MethodPost, path, body, nil)
}

func (c HTTPClient) GetTransactions(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	var out struct {
		envelope
		Transactions []transactionDTO `json:"transactions"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf(RouteTransactions, userID), nil, &out); err != nil {
		return nil, err
	}
	transactions := make([]domain.Transaction, len(out.Transactions))
	for i, t := range out.Transactions {
		transactions[i] = t.toDomain(userID)
	}
	return transactions, nil
}

func (c HTTPClient) GetTransaction(
	ctx context.Context,
	userID int64,
	transactionID string,
) (*domain.Transaction, error) {
	var out struct {
		envelope
		Transaction transactionDTO `json:"transaction"`
	}
	path := fmt.Sprintf(RouteTransaction, userID, url.PathEscape(transactionID))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	transaction := out.Transaction.toDomain(userID)
	return &transaction, nil
}

type CreateTransactionArgs struct {
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Fingerprint   string          `json:"md5_hash"`
	Expiry        time.Time       `json:"expiry"`
}

func (c HTTPClient) CreateTransaction(ctx context.Context, userID int64, args CreateTransactionArgs) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf(RouteTransactions, userID), args, nil)
}

// FindTransactionByFingerprint ищет транзакцию по отпечатку платежной строки.
func (c HTTPClient) FindTransactionByFingerprint(
	ctx context.Context,
	hash string,
) (*domain.Transaction, error) {
	var out struct {
		envelope
		Transaction transactionDTO `json:"transaction"`
	}
	path := fmt.Sprintf(RouteTransactionByHash, url.PathEscape(hash))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	transaction := out.Transaction.toDomain(out.Transaction.UserID)
	return &transaction, nil
}

// MarkPaid помечает транзакцию оплаченной и начисляет сумму на баланс
// владельца. Обе операции выполняет сервис учета атомарно на своей стороне.
func (c HTTPClient) MarkPaid(ctx context.Context, hash string) error {
	path := fmt.Sprintf(RouteTransactionMarkPaid, url.PathEscape(hash))
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

// do выполняет запрос и разбирает конверт ответа.
//
// Классификация ошибок:
//   - таймаут или отмена контекста -> domain.ErrUpstreamTimeout;
//   - http 404 -> domain.ErrRecordNotFound;
//   - разобранный конверт с success=false -> *domain.UpstreamError с текстом из ответа;
//   - прочие не-2xx статусы -> *StatusCodeError.
//
//nolint:nonamedreturns
func (c HTTPClient) do(ctx context.Context, method, path string, body, out any) (err error) {
	var reqBody io.Reader
	if body != nil {
		raw, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return fmt.Errorf("marshal request: %s", marshalErr.Error())
		}
		reqBody = bytes.NewReader(raw)
	}

	req, reqErr := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if reqErr != nil {
		return fmt.Errorf("create request: %s", reqErr.Error())
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		if isTimeout(doErr) {
			return fmt.Errorf("record keeper %s %s: %w", method, path, domain.ErrUpstreamTimeout)
		}
		return fmt.Errorf("do request: %s", doErr.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrRecordNotFound
	}

	raw, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return fmt.Errorf("read response: %s", readErr.Error())
	}

	var env envelope
	if jsonErr := json.Unmarshal(raw, &env); jsonErr != nil {
		if resp.StatusCode != http.StatusOK {
			return NewStatusCodeError(resp.StatusCode)
		}
		return fmt.Errorf("parse response: %s", jsonErr.Error())
	}

	if !env.Success {
		return domain.NewUpstreamError(env.Error)
	}

	if out != nil {
		if jsonErr := json.Unmarshal(raw, out); jsonErr != nil {
			return fmt.Errorf("parse response: %s", jsonErr.Error())
		}
	}
	return nil
}

// isTimeout распознает сетевые таймауты и истекшие контексты.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
