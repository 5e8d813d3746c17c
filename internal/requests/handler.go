package requests

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/auditlog"
	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/models"
	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/roles"
	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/security"
)

type Handler struct {
	service  *Service
	AuditLog *auditlog.Auditlog
}

func NewHandler(service *Service, a *auditlog.Auditlog) *Handler {
	return &Handler{service: service, AuditLog: a}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/requests", security.Authorize(roles.Editor), h.Submit)
	protected.GET("/requests/mine", h.MyRequests)
	protected.GET("/requests/history", h.History)
	protected.GET("/requests/pending", security.Authorize(roles.Admin), h.Pending)
	protected.POST("/requests/:id/approve", security.Authorize(roles.Admin), h.Approve)
	protected.POST("/requests/:id/reject", security.Authorize(roles.Admin), h.Reject)
}

type submitRequest struct {
	IDs     []string            `json:"ids" binding:"required,min=1"`
	Updates models.UpdateFields `json:"updates"`
	Type    string              `json:"type"`
}

func (h *Handler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	userName, err := security.GetUserNameFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has no user name"})
		return
	}

	submitted, err := h.service.Submit(c.Request.Context(), models.UpdateRequest{
		AssetIDs:    req.IDs,
		Updates:     req.Updates.Values(),
		RequestedBy: userName,
		Type:        req.Type,
	})
	if err != nil {
		if errors.Is(err, ErrNoAssets) || errors.Is(err, ErrNoChanges) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to submit request", "details": err.Error()})
		return
	}

	go h.AuditLog.Log("submit_request", userName, submitted.AssetIDs, submitted.Updates)

	c.JSON(http.StatusCreated, submitted)
}

func (h *Handler) Pending(c *gin.Context) {
	pending, err := h.service.Pending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Unable to fetch pending requests", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pending)
}

func (h *Handler) Approve(c *gin.Context) {
	h.resolve(c, "approve", h.service.Approve)
}

func (h *Handler) Reject(c *gin.Context) {
	h.resolve(c, "reject", h.service.Reject)
}

func (h *Handler) resolve(c *gin.Context, action string, apply func(ctx context.Context, requestID, resolvedBy string) error) {
	requestID := c.Param("id")

	userName, err := security.GetUserNameFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has no user name"})
		return
	}

	if err := apply(c.Request.Context(), requestID, userName); err != nil {
		if errors.Is(err, ErrNoRequest) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to " + action + " request", "details": err.Error()})
		return
	}

	go h.AuditLog.Log(action+"_request", userName, nil, map[string]string{"requestId": requestID})

	c.JSON(http.StatusOK, gin.H{"message": "Request " + action + "d"})
}

func (h *Handler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	history, err := h.service.History(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Unable to fetch approval history", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}

func (h *Handler) MyRequests(c *gin.Context) {
	userName, err := security.GetUserNameFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has no user name"})
		return
	}

	mine, err := h.service.MyRequests(c.Request.Context(), userName)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Unable to fetch your requests", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, mine)
}
