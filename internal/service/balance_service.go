package service

import (
	"context"
	"fmt"

	"github.com/MengJong168/tdmmail/internal/domain"
	"github.com/shopspring/decimal"
)

// BalanceService читает баланс и историю транзакций из сервиса учета.
type BalanceService struct {
	recordKeeper RecordKeeper
}

func NewBalanceService(recordKeeper RecordKeeper) *BalanceService {
	return &BalanceService{recordKeeper: recordKeeper}
}

type UserBalance struct {
	Balance      decimal.Decimal
	Transactions []domain.Transaction
}

// Get возвращает текущий баланс юзера вместе с историей пополнений.
func (b *BalanceService) Get(ctx context.Context, userID int64) (*UserBalance, error) {
	balance, balanceErr := b.recordKeeper.GetBalance(ctx, userID)
	if balanceErr != nil {
		return nil, fmt.Errorf("get balance: %w", balanceErr)
	}

	transactions, transactionsErr := b.recordKeeper.GetTransactions(ctx, userID)
	if transactionsErr != nil {
		return nil, fmt.Errorf("get balance: %w", transactionsErr)
	}

	return &UserBalance{
		Balance:      balance,
		Transactions: transactions,
	}, nil
}
