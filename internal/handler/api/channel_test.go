//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"charterlink/internal/domain/user"
	"charterlink/internal/handler/api"
	"charterlink/internal/usecase/commands"
	"charterlink/tests/common/httptest"
	commandsmock "charterlink/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ChannelHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockPush  *commandsmock.MockPushSender
	mockEmail *commandsmock.MockEmailSender
	mockSMS   *commandsmock.MockSMSSender
	handler   *api.ChannelHandler
}

func (s *ChannelHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPush = commandsmock.NewMockPushSender(s.mockCtrl)
	s.mockEmail = commandsmock.NewMockEmailSender(s.mockCtrl)
	s.mockSMS = commandsmock.NewMockSMSSender(s.mockCtrl)
	s.handler = api.NewChannelHandler(s.mockPush, s.mockEmail, s.mockSMS)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleService)
		c.Next()
	}

	s.router.POST("/send-push", authMiddleware, s.handler.SendPush)
	s.router.POST("/send-email", authMiddleware, s.handler.SendEmail)
	s.router.POST("/send-sms", authMiddleware, s.handler.SendSMS)
}

func (s *ChannelHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestChannelHandlerSuite(t *testing.T) {
	suite.Run(t, new(ChannelHandlerTestSuite))
}

// ================================================================================
// TestSendPush
// ================================================================================

func (s *ChannelHandlerTestSuite) TestSendPush() {
	url := "/send-push"
	reqBody := map[string]any{
		"tokens": []string{"tok-1", "tok-2"},
		"title":  "Quote received",
		"body":   "A quote is ready.",
	}

	s.Run("success: returns 200 with sent count", func() {
		s.mockPush.EXPECT().
			Send(gomock.Any(), []string{"tok-1", "tok-2"}, "Quote received", "A quote is ready.", gomock.Nil()).
			Return(commands.PushResult{Sent: 2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body struct {
			Sent int `json:"sent"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Sent)
	})

	s.Run("error: 400 Bad Request on empty token list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"tokens": []string{}, "title": "t", "body": "b"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 502 on provider failure", func() {
		s.mockPush.EXPECT().
			Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(commands.PushResult{}, errors.New("provider unreachable")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Push delivery failed")
	})
}

// ================================================================================
// TestSendEmail
// ================================================================================

func (s *ChannelHandlerTestSuite) TestSendEmail() {
	url := "/send-email"

	s.Run("success: renders the named template and returns success/status", func() {
		s.mockEmail.EXPECT().
			Send(gomock.Any(), "ops@example.com", "Quote ready", "A quote of $42,500 is ready for your charter request.").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"to":       "ops@example.com",
			"subject":  "Quote ready",
			"template": "quote_received",
			"data":     map[string]any{"amount": "$42,500"},
		}, "bearer-token")

		var body struct {
			Success bool   `json:"success"`
			Status  string `json:"status"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal("sent", body.Status)
	})

	s.Run("success: template is optional", func() {
		s.mockEmail.EXPECT().
			Send(gomock.Any(), "ops@example.com", "Heads up", "").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"to":      "ops@example.com",
			"subject": "Heads up",
		}, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request on unknown template", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"to":       "ops@example.com",
			"subject":  "Quote ready",
			"template": "made_up",
		}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown template")
	})

	s.Run("error: 502 on smtp failure", func() {
		s.mockEmail.EXPECT().
			Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("smtp unavailable")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"to":      "ops@example.com",
			"subject": "Heads up",
		}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Email delivery failed")
	})
}

// ================================================================================
// TestSendSMS
// ================================================================================

func (s *ChannelHandlerTestSuite) TestSendSMS() {
	url := "/send-sms"
	reqBody := map[string]any{"to": "+15550100123", "message": "Your payment failed."}

	s.Run("success: returns success and provider sid", func() {
		s.mockSMS.EXPECT().
			Send(gomock.Any(), "+15550100123", "Your payment failed.").
			Return("SM123", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body struct {
			Success bool   `json:"success"`
			Sid     string `json:"sid"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal("SM123", body.Sid)
	})

	s.Run("error: 400 Bad Request on non-e164 number", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"to": "not-a-number", "message": "hi"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 502 on provider failure", func() {
		s.mockSMS.EXPECT().
			Send(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("provider unreachable")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "SMS delivery failed")
	})
}
