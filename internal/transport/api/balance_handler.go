package api

import (
	"context"
	"net/http"
	"time"

	"github.com/MengJong168/tdmmail/internal/domain"
	"github.com/gin-gonic/gin"
)

type BalanceHandler struct {
	svs BalanceServicer
}

func NewBalanceHandler(svs BalanceServicer) *BalanceHandler {
	return &BalanceHandler{
		svs: svs,
	}
}

type TransactionResponseItem struct {
	TransactionID string                       `json:"transaction_id"`
	Amount        float64                      `json:"amount"`
	Status        domain.TransactionStatusType `json:"status"`
	CreatedAt     string                       `json:"created_at"`
}

type BalanceResponse struct {
	Balance      float64                   `json:"balance"`
	Transactions []TransactionResponseItem `json:"transactions"`
}

// Index GET RouteGroup + BalanceRoute. Текущий баланс юзера с историей
// пополнений.
func (b *BalanceHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := b.svs.Get(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	transactions := make([]TransactionResponseItem, len(balance.Transactions))
	for i, transaction := range balance.Transactions {
		transactions[i] = TransactionResponseItem{
			TransactionID: transaction.TransactionID,
			Amount:        transaction.Amount.InexactFloat64(),
			Status:        transaction.Status,
			CreatedAt:     transaction.CreatedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		Balance:      balance.Balance.InexactFloat64(),
		Transactions: transactions,
	})
}
