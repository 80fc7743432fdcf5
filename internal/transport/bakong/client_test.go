package bakong

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MengJong168/tdmmail/internal/domain"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ClientTestSuite) TestCheckPayment() {
	type tcase struct {
		name         string
		fingerprint  string
		httpStatus   int
		wantResponse *StatusResponse
		wantErrType  error
	}

	cases := []tcase{
		{
			name:        "paid",
			fingerprint: "d41d8cd98f00b204e9800998ecf8427e",
			httpStatus:  http.StatusOK,
			wantResponse: &StatusResponse{
				Status:  domain.PaymentStatusPaid,
				Message: "Transaction completed",
			},
		}, {
			name:        "unpaid",
			fingerprint: "a41d8cd98f00b204e9800998ecf8427e",
			httpStatus:  http.StatusOK,
			wantResponse: &StatusResponse{
				Status: domain.PaymentStatusUnpaid,
			},
		}, {
			name:        "internal error",
			fingerprint: "b41d8cd98f00b204e9800998ecf8427e",
			httpStatus:  http.StatusInternalServerError,
			wantErrType: new(StatusCodeError),
		}, {
			name:        "bad gateway",
			fingerprint: "c41d8cd98f00b204e9800998ecf8427e",
			httpStatus:  http.StatusBadGateway,
			wantErrType: new(StatusCodeError),
		},
	}

	// хендлер подбирает кейс по значению md5 в запросе.
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/api/check_payment", r.URL.Path)
		md5 := r.URL.Query().Get("md5")

		var rc *tcase
		for _, c := range cases {
			if c.fingerprint == md5 {
				rc = &c
				break
			}
		}
		s.Require().NotNilf(rc, "тест для отпечатка %s не найден", md5) //nolint:testifylint

		w.WriteHeader(rc.httpStatus)
		if rc.wantResponse != nil {
			s.NoError(json.NewEncoder(w).Encode(rc.wantResponse))
		}
	}))

	for _, t := range cases {
		s.Run(t.name, func() {
			client := New(s.server.URL)
			response, err := client.CheckPayment(s.T().Context(), t.fingerprint)

			if t.wantErrType != nil {
				s.Require().Error(err)
				s.Require().ErrorAs(err, &t.wantErrType) //nolint:testifylint
				return
			}
			s.Require().NoError(err)
			s.Equal(t.wantResponse, response)
		})
	}
}
