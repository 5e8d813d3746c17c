package battery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/security"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/battery", h.Inventory)
	protected.GET("/battery/history", h.History)
	protected.POST("/battery/checkout", h.Checkout)
}

func (h *Handler) Inventory(c *gin.Context) {
	inventory, err := h.service.Inventory(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Unable to fetch battery inventory", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory": inventory})
}

type checkoutRequest struct {
	Type     string `json:"type" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

func (h *Handler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	userName, err := security.GetUserNameFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has no user name"})
		return
	}

	inventory, err := h.service.Checkout(c.Request.Context(), req.Type, req.Quantity, userName)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownType), errors.Is(err, ErrInvalidQuantity), errors.Is(err, ErrNotEnoughStock):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to checkout batteries", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"inventory": inventory})
}

func (h *Handler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	history, err := h.service.History(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Unable to fetch battery history", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}
