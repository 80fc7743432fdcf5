package api

import (
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MengJong168/tdmmail/internal/domain"
	"github.com/MengJong168/tdmmail/internal/logger"
	"github.com/MengJong168/tdmmail/internal/service"
	"github.com/MengJong168/tdmmail/internal/service/tokens"
	"github.com/MengJong168/tdmmail/internal/transport/api/mocks"
	"github.com/MengJong168/tdmmail/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type BalanceHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockBalanceService *mocks.MockBalanceServicer
	jwtSecret          []byte
}

func TestBalanceHandlerSuite(t *testing.T) {
	suite.Run(t, new(BalanceHandlerTestSuite))
}

func (s *BalanceHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockBalanceService = mocks.NewMockBalanceServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		BlService:    s.mockBalanceService,
		JWTSecretKey: s.jwtSecret,
	})
}

func (s *BalanceHandlerTestSuite) TestIndex() {
	var userID int64 = 1

	jwtToken, jwtErr := tokens.GenerateUserJWT(userID, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)

	s.mockBalanceService.EXPECT().Get(gomock.Any(), userID).Return(&service.UserBalance{
		Balance: decimal.RequireFromString("1.5"),
		Transactions: []domain.Transaction{
			{
				CreatedAt:     time.Now(),
				TransactionID: "TRX1700000000",
				Amount:        decimal.RequireFromString("1.5"),
				Status:        domain.TransactionStatusPaid,
			},
		},
	}, nil).Times(1)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + BalanceRoute,
	}, testutils.WithBearerToken(jwtToken))
	s.Require().NoError(err)

	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var response BalanceResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
	s.InDelta(1.5, response.Balance, 1e-9)
	s.Require().Len(response.Transactions, 1)
	s.Equal("TRX1700000000", response.Transactions[0].TransactionID)
	s.Equal(domain.TransactionStatusPaid, response.Transactions[0].Status)
}

func (s *BalanceHandlerTestSuite) TestIndex_NotAuthorized() {
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + BalanceRoute,
	})
	s.Require().NoError(err)

	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusUnauthorized, res.StatusCode)
}
