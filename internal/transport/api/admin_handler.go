package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/study-market/internal/domain"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	moderationSvs ModerationServicer
}

func NewAdminHandler(moderationSvs ModerationServicer) *AdminHandler {
	return &AdminHandler{
		moderationSvs: moderationSvs,
	}
}

type PendingGuideResponse struct {
	ID        int64     `json:"ID"`
	Subject   string    `json:"subject"`
	Topic     string    `json:"topic"`
	Price     int64     `json:"price"`
	Creator   string    `json:"creator"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"createdAt"`
}

// Index GET RouteGroup + PendingRoute. Очередь заявок на модерацию.
func (h *AdminHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	pendings, err := h.moderationSvs.Pending(reqCtx, currentUserID)
	if err != nil {
		h.abortWithModerationErr(c, err)
		return
	}

	response := make([]PendingGuideResponse, len(pendings))
	for i, pending := range pendings {
		response[i] = PendingGuideResponse{
			ID:        pending.ID,
			Subject:   pending.Subject,
			Topic:     pending.Topic,
			Price:     pending.Price,
			Creator:   pending.Creator,
			Link:      pending.Link,
			CreatedAt: pending.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, response)
}

// Approve POST RouteGroup + PendingApproveFmt. Переносит заявку в каталог.
func (h *AdminHandler) Approve(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	pendingID, ok := parseIDParam(c, "pendingID")
	if !ok {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	guide, err := h.moderationSvs.Approve(reqCtx, currentUserID, pendingID)
	if err != nil {
		h.abortWithModerationErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"guideID": guide.ID})
}

// Reject POST RouteGroup + PendingRejectFmt. Отклоняет заявку.
func (h *AdminHandler) Reject(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	pendingID, ok := parseIDParam(c, "pendingID")
	if !ok {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.moderationSvs.Reject(reqCtx, currentUserID, pendingID); err != nil {
		h.abortWithModerationErr(c, err)
		return
	}

	c.AbortWithStatus(http.StatusOK)
}

func (h *AdminHandler) abortWithModerationErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotAdmin):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin capability required"})
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
