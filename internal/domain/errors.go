package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrNotEnoughBalance = errors.New("not enough balance")
	ErrUpstreamTimeout  = errors.New("upstream timeout")
	ErrUnknown          = errors.New("unknown error")
)

// AmountRangeError сумма платежа вне допустимого диапазона (0, 10000].
type AmountRangeError struct {
	Amount string
}

func NewAmountRangeError(amount string) error {
	return &AmountRangeError{Amount: amount}
}

func (e *AmountRangeError) Error() string {
	return fmt.Sprintf("amount %s is out of range (0, 10000]", e.Amount)
}

// InvalidStatusTransitionError переход статуса заказа не разрешен таблицей переходов.
type InvalidStatusTransitionError struct {
	From OrderStatusType
	To   OrderStatusType
}

func NewInvalidStatusTransitionError(from, to OrderStatusType) error {
	return &InvalidStatusTransitionError{From: from, To: to}
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("order status transition %s -> %s is not allowed", e.From, e.To)
}

// UpstreamError внешний сервис доступен, но ответил success=false.
// Message пробрасывается клиенту как есть.
type UpstreamError struct {
	Message string
}

func NewUpstreamError(message string) error {
	if message == "" {
		message = "upstream failure"
	}
	return &UpstreamError{Message: message}
}

func (e *UpstreamError) Error() string {
	return e.Message
}
