package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

// User хранится во внешнем Record Keeper'е, здесь только проекция нужных полей.
type User struct {
	ID       int64
	Username string
	Balance  decimal.Decimal
}

// Transaction платежная QR транзакция. Владелец записи - Record Keeper, данный
// сервис лишь создает её и читает при опросе статуса оплаты.
type Transaction struct {
	CreatedAt     time.Time
	Expiry        time.Time
	TransactionID string
	Fingerprint   string
	UserID        int64
	Amount        decimal.Decimal
	Status        TransactionStatusType
}

// Expired сообщает, истек ли срок действия транзакции на момент now.
func (t Transaction) Expired(now time.Time) bool {
	return now.After(t.Expiry)
}

// Order заказ на одноразовый почтовый ящик у внешнего провайдера.
type Order struct {
	CreatedAt time.Time
	OrderID   string
	UserID    int64
	Service   string
	Mail      string
	OTP       string
	Cost      decimal.Decimal
	Status    OrderStatusType
}
