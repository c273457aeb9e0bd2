package api

import (
	"net/http"
	"strconv"

	reqdto "charterlink/internal/handler/dto/request"
	resdto "charterlink/internal/handler/dto/response"
	"charterlink/internal/handler/httperr"
	"charterlink/internal/handler/middleware"
	"charterlink/internal/pkg/errs"
	"charterlink/internal/usecase/commands"
	"charterlink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotifyHandler struct {
	cmds commands.NotifyCommands
	q    queries.NotificationQueries
}

func NewNotifyHandler(cmds commands.NotifyCommands, q queries.NotificationQueries) *NotifyHandler {
	return &NotifyHandler{cmds: cmds, q: q}
}

// @Summary Dispatch a notification
// @Description Fan out one domain event to its recipients across enabled channels
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DispatchNotificationRequest true "Dispatch request"
// @Success 200 {object} resdto.DispatchResultResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /notify [post]
func (h *NotifyHandler) Dispatch(c *gin.Context) {
	var req reqdto.DispatchNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Dispatch(c.Request.Context(), req.ToCommand())
	if err != nil {
		if errs.Is(err, errs.ErrUnknownEventType) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown event type", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Dispatch failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDispatchResult(result))
}

// @Summary List notifications
// @Description List the caller's in-app notifications, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.NotificationListResponse
// @Failure 401 {object} map[string]string
// @Router /notifications [get]
func (h *NotifyHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	var cursor *queries.Cursor
	if after := c.Query("cursor"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	items, next, err := h.q.ListForUser(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		if errs.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list notifications", nil)
		return
	}
	unread, err := h.q.CountUnread(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to count notifications", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNotificationList(items, next, unread))
}

// @Summary Mark notification read
// @Description Mark one of the caller's notifications as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/read [patch]
func (h *NotifyHandler) MarkRead(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.MarkRead(c.Request.Context(), id, userID); err != nil {
		if errs.Is(err, errs.ErrNotificationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to mark read", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
