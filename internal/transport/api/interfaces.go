package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/MengJong168/tdmmail/internal/domain"
	"github.com/MengJong168/tdmmail/internal/service"
	"github.com/shopspring/decimal"
)

type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type PaymentServicer interface {
	GenerateQR(ctx context.Context, userID int64, amount decimal.Decimal) (*service.QRCode, error)
	Poll(ctx context.Context, fingerprint string) (*service.PaymentStatus, error)
	FindTransaction(ctx context.Context, userID int64, transactionID string) (*domain.Transaction, error)
}

type OrderServicer interface {
	Create(ctx context.Context, userID int64, serviceName string) (*service.ProvisionedOrder, error)
	PollOTP(ctx context.Context, userID int64, orderID string) (*service.OTPResult, error)
	Complete(ctx context.Context, userID int64, orderID string) error
	UpdateStatus(ctx context.Context, userID int64, orderID string, status domain.OrderStatusType) error
	GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error)
}

type BalanceServicer interface {
	Get(ctx context.Context, userID int64) (*service.UserBalance, error)
}
