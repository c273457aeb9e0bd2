//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"charterlink/internal/domain/notification"
	"charterlink/internal/domain/user"
	"charterlink/internal/handler/api"
	resdto "charterlink/internal/handler/dto/response"
	"charterlink/internal/pkg/errs"
	"charterlink/internal/usecase/commands"
	"charterlink/internal/usecase/queries"
	"charterlink/tests/common/builder"
	"charterlink/tests/common/httptest"
	"charterlink/tests/common/testutil"
	commandsmock "charterlink/tests/mock/commands"
	queriesmock "charterlink/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotifyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockNotifyCommands
	mockQueries  *queriesmock.MockNotificationQueries
	handler      *api.NotifyHandler
	userID       uuid.UUID
}

func (s *NotifyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockNotifyCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNotificationQueries(s.mockCtrl)
	s.handler = api.NewNotifyHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.POST("/notify", authMiddleware, s.handler.Dispatch)
	s.router.GET("/notifications", authMiddleware, s.handler.List)
	s.router.PATCH("/notifications/:id/read", authMiddleware, s.handler.MarkRead)
}

func (s *NotifyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNotifyHandlerSuite(t *testing.T) {
	suite.Run(t, new(NotifyHandlerTestSuite))
}

// ================================================================================
// TestDispatch
// ================================================================================

func (s *NotifyHandlerTestSuite) TestDispatch() {
	url := "/notify"
	reqBody := builder.NewNotificationBuilder().BuildDispatchRequestDTO()

	s.Run("success: returns 200 with fan-out outcomes", func() {
		s.mockCommands.EXPECT().
			Dispatch(gomock.Any(), gomock.Any()).
			Return(&commands.DispatchResult{
				Notified: 2,
				Outcomes: []commands.ChannelOutcome{
					{UserID: uuid.New(), Channel: notification.ChannelPush, Err: nil},
					{UserID: uuid.New(), Channel: notification.ChannelEmail, Err: errors.New("smtp unavailable")},
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.DispatchResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal(2, body.Notified)
		s.Len(body.Failures, 1)
		s.Equal("email", body.Failures[0].Channel)
	})

	s.Run("error: 400 Bad Request on missing event", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("event", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request on unknown event type", func() {
		s.mockCommands.EXPECT().
			Dispatch(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("no template"), errs.ErrUnknownEventType)).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("event", "made_up"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown event type")
	})

	s.Run("error: 500 on dispatch failure", func() {
		s.mockCommands.EXPECT().
			Dispatch(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("resolver down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Dispatch failed")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *NotifyHandlerTestSuite) TestList() {
	url := "/notifications"

	s.Run("success: returns items with unread count", func() {
		views := []*queries.NotificationView{
			builder.NewNotificationBuilder().BuildView(),
			builder.NewNotificationBuilder().BuildView(),
		}
		next := &queries.Cursor{After: queries.EncodeAfterCursor(views[1].CreatedAt, views[1].ID)}

		s.mockQueries.EXPECT().
			ListForUser(gomock.Any(), s.userID, (*queries.Cursor)(nil), 0).
			Return(views, next, nil).Times(1)
		s.mockQueries.EXPECT().
			CountUnread(gomock.Any(), s.userID).
			Return(int64(5), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.NotificationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Equal(next.After, body.NextCursor)
		s.Equal(int64(5), body.Unread)
	})

	s.Run("success: forwards cursor and limit", func() {
		s.mockQueries.EXPECT().
			ListForUser(gomock.Any(), s.userID, &queries.Cursor{After: "abc"}, 10).
			Return(nil, nil, nil).Times(1)
		s.mockQueries.EXPECT().
			CountUnread(gomock.Any(), s.userID).
			Return(int64(0), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor=abc&limit=10", nil, "bearer-token")

		var body resdto.NotificationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
		s.Empty(body.NextCursor)
	})

	s.Run("error: 400 Bad Request on non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=ten", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("error: 400 Bad Request on undecodable cursor", func() {
		s.mockQueries.EXPECT().
			ListForUser(gomock.Any(), s.userID, &queries.Cursor{After: "!!not-base64"}, 0).
			Return(nil, nil, errs.Mark(errs.New("invalid pagination cursor"), errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor=!!not-base64", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestMarkRead
// ================================================================================

func (s *NotifyHandlerTestSuite) TestMarkRead() {
	notificationID := uuid.New()
	url := "/notifications/" + notificationID.String() + "/read"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().
			MarkRead(gomock.Any(), notificationID, s.userID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/notifications/not-a-uuid/read", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for someone else's notification", func() {
		s.mockCommands.EXPECT().
			MarkRead(gomock.Any(), notificationID, s.userID).
			Return(errs.Mark(errs.New("notification not found"), errs.ErrNotificationNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
