//go:build unit

package api_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"charterlink/internal/handler/api"
	resdto "charterlink/internal/handler/dto/response"
	"charterlink/internal/pkg/errs"
	"charterlink/internal/usecase/commands"
	"charterlink/tests/common/httptest"
	commandsmock "charterlink/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWebhookCommands
	handler      *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWebhookCommands(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockCommands)

	s.router.POST("/webhooks/payments", s.handler.IngestPayment)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func signedHeader(secret string, body []byte) string {
	ts := fmt.Sprintf("%d", time.Now().Unix())
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(body)
	return fmt.Sprintf("t=%s,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func (s *WebhookHandlerTestSuite) TestIngestPayment() {
	url := "/webhooks/payments"
	body := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"txn_1","amount":5000}}}`)

	s.Run("success: returns 200 with ack", func() {
		header := signedHeader("whsec_test", body)

		s.mockCommands.EXPECT().
			IngestPayment(gomock.Any(), body, header).
			Return(&commands.IngestResult{}, nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, map[string]string{
			"Signature": header,
		})

		var ack resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &ack)
		s.True(ack.Received)
		s.False(ack.Duplicate)
	})

	s.Run("success: duplicate delivery is still acknowledged", func() {
		s.mockCommands.EXPECT().
			IngestPayment(gomock.Any(), body, gomock.Any()).
			Return(&commands.IngestResult{Duplicate: true}, nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, map[string]string{
			"Signature": signedHeader("whsec_test", body),
		})

		var ack resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &ack)
		s.True(ack.Received)
		s.True(ack.Duplicate)
	})

	s.Run("error: 400 on signature failures", func() {
		for _, sentinel := range []error{
			errs.ErrInvalidSignature,
			errs.ErrStaleTimestamp,
			errs.ErrMalformedSignature,
		} {
			s.mockCommands.EXPECT().
				IngestPayment(gomock.Any(), body, gomock.Any()).
				Return(nil, errs.Mark(errs.New("rejected"), sentinel)).Times(1)

			rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, map[string]string{
				"Signature": "t=1,v1=dead",
			})
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Signature verification failed")
		}
	})

	s.Run("error: 400 on invalid payload", func() {
		s.mockCommands.EXPECT().
			IngestPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("missing event id"), errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, []byte(`{}`), map[string]string{
			"Signature": signedHeader("whsec_test", []byte(`{}`)),
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid payload")
	})

	s.Run("error: 500 on internal failure so the provider retries", func() {
		s.mockCommands.EXPECT().
			IngestPayment(gomock.Any(), body, gomock.Any()).
			Return(nil, errors.New("ledger unavailable")).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, map[string]string{
			"Signature": signedHeader("whsec_test", body),
		})
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
