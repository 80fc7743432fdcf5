package recordkeeper

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MengJong168/tdmmail/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
	mux    *http.ServeMux
	client HTTPClient
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.client = New(s.server.URL)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) TestLoginUser() {
	s.mux.HandleFunc("POST /api/users/login", func(w http.ResponseWriter, r *http.Request) {
		var params map[string]string
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&params))

		if params["password"] != "correct horse" {
			s.writeJSON(w, http.StatusUnauthorized, `{"success":false,"error":"invalid credentials"}`)
			return
		}
		s.writeJSON(w, http.StatusOK,
			`{"success":true,"user":{"id":42,"username":"meng","balance":3.5}}`)
	})

	s.Run("success", func() {
		user, err := s.client.LoginUser(s.T().Context(), "meng", "correct horse")
		s.Require().NoError(err)
		s.Equal(int64(42), user.ID)
		s.Equal("meng", user.Username)
		s.True(user.Balance.Equal(decimal.RequireFromString("3.5")))
	})

	s.Run("invalid credentials", func() {
		_, err := s.client.LoginUser(s.T().Context(), "meng", "wrong")
		var upstreamErr *domain.UpstreamError
		s.Require().ErrorAs(err, &upstreamErr)
		s.Equal("invalid credentials", upstreamErr.Message)
	})
}

func (s *ClientTestSuite) TestGetBalance() {
	s.mux.HandleFunc("GET /api/users/42/balance", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, `{"success":true,"balance":0.044}`)
	})

	balance, err := s.client.GetBalance(s.T().Context(), 42)
	s.Require().NoError(err)
	s.True(balance.Equal(decimal.RequireFromString("0.044")))
}

func (s *ClientTestSuite) TestCreateTransaction() {
	var got CreateTransactionArgs
	s.mux.HandleFunc("POST /api/users/42/transactions", func(w http.ResponseWriter, r *http.Request) {
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&got))
		s.writeJSON(w, http.StatusOK, `{"success":true}`)
	})

	expiry := time.Now().Add(3 * time.Minute).UTC().Truncate(time.Second)
	err := s.client.CreateTransaction(s.T().Context(), 42, CreateTransactionArgs{
		TransactionID: "TRX1700000000",
		Amount:        decimal.RequireFromString("5"),
		Fingerprint:   "d41d8cd98f00b204e9800998ecf8427e",
		Expiry:        expiry,
	})
	s.Require().NoError(err)
	s.Equal("TRX1700000000", got.TransactionID)
	s.Equal("d41d8cd98f00b204e9800998ecf8427e", got.Fingerprint)
	s.True(got.Expiry.Equal(expiry))
}

func (s *ClientTestSuite) TestFindTransactionByFingerprint() {
	s.mux.HandleFunc("GET /api/transactions/{hash}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("hash") != "d41d8cd98f00b204e9800998ecf8427e" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		s.writeJSON(w, http.StatusOK, `{
			"success": true,
			"transaction": {
				"transaction_id": "TRX1700000000",
				"user_id": 42,
				"amount": 5,
				"md5_hash": "d41d8cd98f00b204e9800998ecf8427e",
				"status": "PENDING"
			}
		}`)
	})

	s.Run("found", func() {
		tx, err := s.client.FindTransactionByFingerprint(s.T().Context(), "d41d8cd98f00b204e9800998ecf8427e")
		s.Require().NoError(err)
		s.Equal("TRX1700000000", tx.TransactionID)
		s.Equal(int64(42), tx.UserID)
		s.Equal(domain.TransactionStatusPending, tx.Status)
	})

	s.Run("not found", func() {
		_, err := s.client.FindTransactionByFingerprint(s.T().Context(), "ffffffffffffffffffffffffffffffff")
		s.ErrorIs(err, domain.ErrRecordNotFound)
	})
}

func (s *ClientTestSuite) TestMarkPaid() {
	var calls int
	s.mux.HandleFunc("POST /api/transactions/{hash}/paid", func(w http.ResponseWriter, _ *http.Request) {
		calls++
		s.writeJSON(w, http.StatusOK, `{"success":true}`)
	})

	err := s.client.MarkPaid(s.T().Context(), "d41d8cd98f00b204e9800998ecf8427e")
	s.Require().NoError(err)
	s.Equal(1, calls)
}

func (s *ClientTestSuite) TestGetOrder() {
	s.mux.HandleFunc("GET /api/users/42/orders/98765", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, `{
			"success": true,
			"order": {
				"order_id": "98765",
				"service": "tg",
				"mail": "abc123@yshmail.shop",
				"status": "running",
				"cost": 0.045
			}
		}`)
	})

	order, err := s.client.GetOrder(s.T().Context(), 42, "98765")
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusRunning, order.Status)
	s.Equal("abc123@yshmail.shop", order.Mail)
	s.Equal(int64(42), order.UserID)
}

func (s *ClientTestSuite) TestSetOrderStatus_UpstreamFailure() {
	s.mux.HandleFunc("POST /api/users/42/orders/98765/status", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusBadRequest, `{"success":false,"error":"order already completed"}`)
	})

	err := s.client.SetOrderStatus(s.T().Context(), 42, "98765", domain.OrderStatusCompleted)
	var upstreamErr *domain.UpstreamError
	s.Require().ErrorAs(err, &upstreamErr)
	s.Equal("order already completed", upstreamErr.Message)
}

func (s *ClientTestSuite) TestDo_UnexpectedBody() {
	s.mux.HandleFunc("GET /api/users/42/balance", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, err := w.Write([]byte("<html>gateway error</html>"))
		s.NoError(err)
	})

	_, err := s.client.GetBalance(s.T().Context(), 42)
	var statusErr *StatusCodeError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusBadGateway, statusErr.Code)
}

func (s *ClientTestSuite) writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write([]byte(body))
	s.NoError(err)
}
