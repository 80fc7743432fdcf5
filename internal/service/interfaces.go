package service

import (
	"context"

	"github.com/MengJong168/tdmmail/internal/domain"
	"github.com/MengJong168/tdmmail/internal/transport/bakong"
	"github.com/MengJong168/tdmmail/internal/transport/provisioning"
	"github.com/MengJong168/tdmmail/internal/transport/recordkeeper"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// RecordKeeper клиент внешнего сервиса учета. Все данные, которыми оперируют
// сервисы, живут на его стороне.
type RecordKeeper interface {
	RegisterUser(ctx context.Context, username, password string) (int64, error)
	LoginUser(ctx context.Context, username, password string) (*domain.User, error)
	GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error)
	GetOrders(ctx context.Context, userID int64) ([]domain.Order, error)
	GetOrder(ctx context.Context, userID int64, orderID string) (*domain.Order, error)
	CreateOrder(ctx context.Context, userID int64, args recordkeeper.CreateOrderArgs) error
	SetOrderOTP(ctx context.Context, userID int64, orderID, otp string, amount decimal.Decimal) error
	CompleteOrder(ctx context.Context, userID int64, orderID string) error
	SetOrderStatus(ctx context.Context, userID int64, orderID string, status domain.OrderStatusType) error
	GetTransactions(ctx context.Context, userID int64) ([]domain.Transaction, error)
	GetTransaction(ctx context.Context, userID int64, transactionID string) (*domain.Transaction, error)
	CreateTransaction(ctx context.Context, userID int64, args recordkeeper.CreateTransactionArgs) error
	FindTransactionByFingerprint(ctx context.Context, hash string) (*domain.Transaction, error)
	MarkPaid(ctx context.Context, hash string) error
}

// PaymentStatusClient клиент внешнего API проверки статуса KHQR оплаты.
type PaymentStatusClient interface {
	CheckPayment(ctx context.Context, fingerprint string) (*bakong.StatusResponse, error)
}

// Provisioner клиент API выдачи одноразовых почтовых ящиков.
type Provisioner interface {
	CreateOrder(ctx context.Context, service string) (*provisioning.OrderResponse, error)
	CheckOTP(ctx context.Context, orderID string) (*provisioning.OTPResponse, error)
}

// QRRenderer растеризатор платежной строки.
type QRRenderer interface {
	Render(payload string) ([]byte, error)
}
