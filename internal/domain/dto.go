package domain

type TransactionStatusType string

const (
	TransactionStatusPending TransactionStatusType = "PENDING"
	TransactionStatusPaid    TransactionStatusType = "PAID"
	TransactionStatusExpired TransactionStatusType = "EXPIRED"
)

// PaymentStatusType статус из внешнего API проверки оплаты.
type PaymentStatusType string

const (
	PaymentStatusPaid    PaymentStatusType = "PAID"
	PaymentStatusUnpaid  PaymentStatusType = "UNPAID"
	PaymentStatusExpired PaymentStatusType = "EXPIRED"
	PaymentStatusError   PaymentStatusType = "ERROR"
)

type OrderStatusType string

const (
	OrderStatusRunning     OrderStatusType = "running"
	OrderStatusOTPReceived OrderStatusType = "otp_received"
	OrderStatusCompleted   OrderStatusType = "completed"
)

// orderTransitions закрытая таблица переходов статусов заказа.
// Терминальный статус - OrderStatusCompleted.
var orderTransitions = map[OrderStatusType][]OrderStatusType{
	OrderStatusRunning:     {OrderStatusOTPReceived, OrderStatusCompleted},
	OrderStatusOTPReceived: {OrderStatusCompleted},
	OrderStatusCompleted:   {},
}

// ValidOrderStatus проверяет, что строка является известным статусом заказа.
func ValidOrderStatus(status OrderStatusType) bool {
	_, ok := orderTransitions[status]
	return ok
}

// CanTransitOrderStatus проверяет допустимость перехода from -> to.
// Повтор текущего статуса считается допустимым (идемпотентность).
func CanTransitOrderStatus(from, to OrderStatusType) bool {
	if from == to {
		return true
	}
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
