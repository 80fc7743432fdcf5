package service

import (
	"context"
	"fmt"

	"github.com/MengJong168/tdmmail/internal/domain"
	"github.com/MengJong168/tdmmail/internal/transport/recordkeeper"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// serviceCost фиксированная стоимость одного заказа у провайдера.
var serviceCost = decimal.RequireFromString("0.045")

// ServiceCost возвращает стоимость одного заказа.
func ServiceCost() decimal.Decimal {
	return serviceCost
}

// OrderService ведет жизненный цикл заказа на одноразовый ящик:
//
//	running -> otp_received -> completed
type OrderService struct {
	recordKeeper RecordKeeper
	provisioner  Provisioner
	l            *logrus.Entry
}

func NewOrderService(recordKeeper RecordKeeper, provisioner Provisioner, l *logrus.Logger) *OrderService {
	return &OrderService{
		recordKeeper: recordKeeper,
		provisioner:  provisioner,
		l:            l.WithField("component", "order_service"),
	}
}

// ProvisionedOrder результат успешного создания заказа.
type ProvisionedOrder struct {
	Mail    string
	OrderID string
	Cost    decimal.Decimal
}

// Create заказывает у провайдера одноразовый ящик для сервиса service.
//
// Баланс проверяется до обращения к провайдеру: при нехватке средств вызов
// провайдера не выполняется вовсе и возвращается domain.ErrNotEnoughBalance.
// Проверка и само списание - два отдельных вызова сервиса учета, атомарность
// между ними не гарантируется.
func (s *OrderService) Create(ctx context.Context, userID int64, service string) (*ProvisionedOrder, error) {
	balance, balanceErr := s.recordKeeper.GetBalance(ctx, userID)
	if balanceErr != nil {
		return nil, fmt.Errorf("create order: %w", balanceErr)
	}
	if balance.LessThan(serviceCost) {
		return nil, domain.ErrNotEnoughBalance
	}

	provisioned, provErr := s.provisioner.CreateOrder(ctx, service)
	if provErr != nil {
		return nil, fmt.Errorf("create order: %w", provErr)
	}

	if saveErr := s.recordKeeper.CreateOrder(ctx, userID, recordkeeper.CreateOrderArgs{
		OrderID: provisioned.OrderID,
		Mail:    provisioned.Mail,
		Service: service,
		Status:  string(domain.OrderStatusRunning),
		Cost:    serviceCost,
	}); saveErr != nil {
		return nil, fmt.Errorf("create order: %w", saveErr)
	}

	s.l.WithFields(logrus.Fields{
		"userID":  userID,
		"orderID": provisioned.OrderID,
		"service": service,
	}).Info("order provisioned")

	return &ProvisionedOrder{
		Mail:    provisioned.Mail,
		OrderID: provisioned.OrderID,
		Cost:    serviceCost,
	}, nil
}

// OTPResult результат одного опроса OTP. Пустой OTP означает, что код еще
// не пришел.
type OTPResult struct {
	OTP    string
	Amount decimal.Decimal
}

// PollOTP опрашивает провайдера на предмет пришедшего кода. Отсутствие кода -
// штатное нетерминальное наблюдение, вызывающая сторона опрашивает повторно.
// Первый непустой код записывается в заказ со статусом otp_received.
func (s *OrderService) PollOTP(ctx context.Context, userID int64, orderID string) (*OTPResult, error) {
	response, checkErr := s.provisioner.CheckOTP(ctx, orderID)
	if checkErr != nil {
		return nil, fmt.Errorf("poll otp: %w", checkErr)
	}

	if response.OTP == "" {
		return &OTPResult{}, nil
	}

	amount := response.Amount
	if amount.IsZero() {
		amount = serviceCost
	}

	if saveErr := s.recordKeeper.SetOrderOTP(ctx, userID, orderID, response.OTP, amount); saveErr != nil {
		return nil, fmt.Errorf("poll otp: %w", saveErr)
	}

	return &OTPResult{OTP: response.OTP, Amount: amount}, nil
}

// Complete помечает заказ завершенным. Переход терминальный и идемпотентный.
func (s *OrderService) Complete(ctx context.Context, userID int64, orderID string) error {
	if err := s.recordKeeper.CompleteOrder(ctx, userID, orderID); err != nil {
		return fmt.Errorf("complete order: %w", err)
	}
	return nil
}

// UpdateStatus переводит заказ в статус status, сверяясь с таблицей переходов.
// Произвольная перезапись статуса не допускается. Повтор текущего статуса
// является no-op успехом.
func (s *OrderService) UpdateStatus(
	ctx context.Context,
	userID int64,
	orderID string,
	status domain.OrderStatusType,
) error {
	if !domain.ValidOrderStatus(status) {
		return domain.NewInvalidStatusTransitionError("", status)
	}

	order, orderErr := s.recordKeeper.GetOrder(ctx, userID, orderID)
	if orderErr != nil {
		return fmt.Errorf("update order status: %w", orderErr)
	}

	if order.Status == status {
		return nil
	}
	if !domain.CanTransitOrderStatus(order.Status, status) {
		return domain.NewInvalidStatusTransitionError(order.Status, status)
	}

	if err := s.recordKeeper.SetOrderStatus(ctx, userID, orderID, status); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// GetByUserID возвращает заказы юзера.
func (s *OrderService) GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, err := s.recordKeeper.GetOrders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return orders, nil
}
