package api

import (
	"net/http"

	"charterlink/internal/domain/notification"
	reqdto "charterlink/internal/handler/dto/request"
	"charterlink/internal/handler/httperr"
	"charterlink/internal/pkg/errs"
	"charterlink/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// ChannelHandler exposes the raw delivery channels to privileged callers,
// bypassing recipient resolution and preference gating.
type ChannelHandler struct {
	push  commands.PushSender
	email commands.EmailSender
	sms   commands.SMSSender
}

func NewChannelHandler(push commands.PushSender, email commands.EmailSender, sms commands.SMSSender) *ChannelHandler {
	return &ChannelHandler{push: push, email: email, sms: sms}
}

// @Summary Send push notification
// @Tags channels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SendPushRequest true "Push request"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /send-push [post]
func (h *ChannelHandler) SendPush(c *gin.Context) {
	var req reqdto.SendPushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.push.Send(c.Request.Context(), req.Tokens, req.Title, req.Body, req.Data)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Push delivery failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sent":           result.Sent,
		"invalid_tokens": result.InvalidTokens,
	})
}

// @Summary Send email
// @Tags channels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SendEmailRequest true "Email request"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /send-email [post]
func (h *ChannelHandler) SendEmail(c *gin.Context) {
	var req reqdto.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	body := ""
	if req.Template != "" {
		tpl, ok := notification.TemplateFor(notification.EventType(req.Template))
		if !ok {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.New("unknown template "+req.Template), "Unknown template", nil)
			return
		}
		_, body = tpl.Render(req.Data)
	}
	if err := h.email.Send(c.Request.Context(), req.To, req.Subject, body); err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Email delivery failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": "sent"})
}

// @Summary Send SMS
// @Tags channels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SendSMSRequest true "SMS request"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /send-sms [post]
func (h *ChannelHandler) SendSMS(c *gin.Context) {
	var req reqdto.SendSMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	sid, err := h.sms.Send(c.Request.Context(), req.To, req.Message)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "SMS delivery failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sid": sid})
}
