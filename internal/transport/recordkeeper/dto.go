package recordkeeper

import (
	"time"

	"github.com/MengJong168/tdmmail/internal/domain"
	"github.com/shopspring/decimal"
)

type userDTO struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	Balance  decimal.Decimal `json:"balance"`
}

func (d userDTO) toDomain() domain.User {
	return domain.User{
		ID:       d.ID,
		Username: d.Username,
		Balance:  d.Balance,
	}
}

type orderDTO struct {
	CreatedAt time.Time       `json:"created_at"`
	OrderID   string          `json:"order_id"`
	UserID    int64           `json:"user_id"`
	Service   string          `json:"service"`
	Mail      string          `json:"mail"`
	OTP       string          `json:"otp"`
	Cost      decimal.Decimal `json:"cost"`
	Status    string          `json:"status"`
}

func (d orderDTO) toDomain(userID int64) domain.Order {
	if d.UserID != 0 {
		userID = d.UserID
	}
	return domain.Order{
		CreatedAt: d.CreatedAt,
		OrderID:   d.OrderID,
		UserID:    userID,
		Service:   d.Service,
		Mail:      d.Mail,
		OTP:       d.OTP,
		Cost:      d.Cost,
		Status:    domain.OrderStatusType(d.Status),
	}
}

type transactionDTO struct {
	CreatedAt     time.Time       `json:"created_at"`
	Expiry        time.Time       `json:"expiry"`
	TransactionID string          `json:"transaction_id"`
	Fingerprint   string          `json:"md5_hash"`
	UserID        int64           `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
}

func (d transactionDTO) toDomain(userID int64) domain.Transaction {
	if d.UserID != 0 {
		userID = d.UserID
	}
	return domain.Transaction{
		CreatedAt:     d.CreatedAt,
		Expiry:        d.Expiry,
		TransactionID: d.TransactionID,
		Fingerprint:   d.Fingerprint,
		UserID:        userID,
		Amount:        d.Amount,
		Status:        domain.TransactionStatusType(d.Status),
	}
}
