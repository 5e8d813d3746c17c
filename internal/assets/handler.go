package assets

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/export"
	"github.com/FerdynandHub/MyAssetTracker-sub000/internal/query"
	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/auditlog"
	custom_error "github.com/FerdynandHub/MyAssetTracker-sub000/pkg/errors"
	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/models"
	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/roles"
	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/security"
)

// RegisterClient is the slice of the register API the asset screens need.
type RegisterClient interface {
	GetAssets(ctx context.Context) ([]models.Asset, error)
	GetAsset(ctx context.Context, id string) (*models.Asset, error)
	GetAssetHistory(ctx context.Context, id string) ([]models.Asset, error)
	GetAssetsByIDs(ctx context.Context, ids []string) ([]models.Asset, error)
	UpdateAsset(ctx context.Context, id string, updates map[string]string) error
	BatchUpdateAssets(ctx context.Context, ids []string, updates map[string]string) error
}

type AssetHandler struct {
	client   RegisterClient
	AuditLog *auditlog.Auditlog
}

func NewAssetHandler(client RegisterClient, a *auditlog.Auditlog) *AssetHandler {
	return &AssetHandler{
		client:   client,
		AuditLog: a,
	}
}

func (h *AssetHandler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/assets", h.ListAssets)
	protected.GET("/assets/export", h.ExportAssets)
	protected.GET("/assets/:id", h.GetAsset)
	protected.GET("/assets/:id/history", h.GetAssetHistory)
	protected.PATCH("/assets/:id", security.Authorize(roles.Admin), h.UpdateAsset)
	protected.POST("/assets/batch", security.Authorize(roles.Admin), h.BatchUpdateAssets)
}

// specFromQuery builds a query spec from the overview's URL parameters.
// Anything missing or malformed falls back to the engine's defaults.
func specFromQuery(c *gin.Context) query.Spec {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))

	return query.Spec{
		CategoryFilter: c.Query("category"),
		StatusFilter:   c.Query("status"),
		LocationFilter: c.Query("location"),
		GradeFilter:    c.Query("grade"),
		SearchTerm:     c.Query("search"),
		SortKey:        c.Query("sortKey"),
		SortDirection:  c.Query("sortDir"),
		Page:           page,
		PageSize:       pageSize,
	}
}

func (h *AssetHandler) ListAssets(c *gin.Context) {
	assets, err := h.client.GetAssets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Unable to fetch assets", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, query.Run(assets, specFromQuery(c)))
}

func (h *AssetHandler) GetAsset(c *gin.Context) {
	id := c.Param("id")

	asset, err := h.client.GetAsset(c.Request.Context(), id)
	if err != nil {
		var notFound *custom_error.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unable to locate asset with given id"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Unable to fetch asset", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, asset)
}

func (h *AssetHandler) GetAssetHistory(c *gin.Context) {
	snapshots, err := h.client.GetAssetHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Unable to fetch asset history", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, snapshots)
}

// ExportAssets streams a CSV download. With an `ids` parameter it exports
// exactly the scanned list in that order; without one it exports the full
// filtered and sorted overview selection.
func (h *AssetHandler) ExportAssets(c *gin.Context) {
	var toExport []models.Asset

	if rawIDs := c.Query("ids"); rawIDs != "" {
		ids := strings.Split(rawIDs, ",")
		assets, err := h.client.GetAssetsByIDs(c.Request.Context(), ids)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Unable to fetch assets for export", "details": err.Error()})
			return
		}
		toExport = assets
	} else {
		assets, err := h.client.GetAssets(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Unable to fetch assets for export", "details": err.Error()})
			return
		}
		spec := specFromQuery(c)
		spec.Page = 1
		spec.PageSize = len(assets) + 1
		toExport = query.Run(assets, spec).Items
	}

	filename := export.Filename(time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(export.WriteCSV(toExport)))
}

func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	id := c.Param("id")

	var edits models.UpdateFields
	if err := c.ShouldBindJSON(&edits); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	if edits.IsEmpty() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	current, err := h.client.GetAsset(c.Request.Context(), id)
	if err != nil {
		var notFound *custom_error.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unable to locate asset with given id"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Unable to fetch asset", "details": err.Error()})
		return
	}

	changes := edits.Diff(*current)
	if len(changes) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Submitted values match the current record"})
		return
	}

	userName, err := security.GetUserNameFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has no user name"})
		return
	}
	changes["updatedBy"] = userName

	if err := h.client.UpdateAsset(c.Request.Context(), id, changes); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update asset", "details": err.Error()})
		return
	}

	go h.AuditLog.Log("update", userName, []string{id}, changes)

	c.JSON(http.StatusOK, gin.H{"message": "Asset updated successfully", "changes": changes})
}

type batchUpdateRequest struct {
	IDs     []string            `json:"ids" binding:"required,min=1"`
	Updates models.UpdateFields `json:"updates"`
}

func (h *AssetHandler) BatchUpdateAssets(c *gin.Context) {
	var req batchUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	changes := req.Updates.Values()
	if len(changes) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	userName, err := security.GetUserNameFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has no user name"})
		return
	}
	changes["updatedBy"] = userName

	if err := h.client.BatchUpdateAssets(c.Request.Context(), req.IDs, changes); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update assets", "details": err.Error()})
		return
	}

	go h.AuditLog.Log("batch_update", userName, req.IDs, changes)

	c.JSON(http.StatusOK, gin.H{"message": "Assets updated successfully", "count": len(req.IDs)})
}
