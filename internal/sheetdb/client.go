package sheetdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	custom_error "github.com/FerdynandHub/MyAssetTracker-sub000/pkg/errors"
	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/models"
)

// Client talks to the spreadsheet-backed register service. Reads are GET
// requests with an `action` query parameter, mutations are JSON POST bodies
// carrying the action name. Every call is a single attempt; the caller
// decides what a failure means for the screen, there is no retry here.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

func (c *Client) GetAssets(ctx context.Context) ([]models.Asset, error) {
	var assets []models.Asset
	if err := c.get(ctx, "getAssets", nil, &assets); err != nil {
		return nil, fmt.Errorf("fetch asset collection: %w", err)
	}
	return assets, nil
}

func (c *Client) GetAsset(ctx context.Context, id string) (*models.Asset, error) {
	var asset models.Asset
	if err := c.get(ctx, "getAsset", url.Values{"id": {id}}, &asset); err != nil {
		return nil, fmt.Errorf("fetch asset %s: %w", id, err)
	}
	if asset.ID == "" {
		return nil, custom_error.NewNotFoundError("asset", id)
	}
	return &asset, nil
}

func (c *Client) GetAssetHistory(ctx context.Context, id string) ([]models.Asset, error) {
	var snapshots []models.Asset
	if err := c.get(ctx, "getAssetHistory", url.Values{"id": {id}}, &snapshots); err != nil {
		return nil, fmt.Errorf("fetch history of asset %s: %w", id, err)
	}
	return snapshots, nil
}

func (c *Client) GetAssetsByIDs(ctx context.Context, ids []string) ([]models.Asset, error) {
	var assets []models.Asset
	params := url.Values{"ids": {strings.Join(ids, ",")}}
	if err := c.get(ctx, "getAssetsByIds", params, &assets); err != nil {
		return nil, fmt.Errorf("batch fetch %d assets: %w", len(ids), err)
	}
	return assets, nil
}

func (c *Client) UpdateAsset(ctx context.Context, id string, updates map[string]string) error {
	body := map[string]interface{}{
		"action":  "updateAsset",
		"id":      id,
		"updates": updates,
	}
	if err := c.post(ctx, body); err != nil {
		return fmt.Errorf("update asset %s: %w", id, err)
	}
	return nil
}

func (c *Client) BatchUpdateAssets(ctx context.Context, ids []string, updates map[string]string) error {
	body := map[string]interface{}{
		"action":  "batchUpdateAssets",
		"ids":     ids,
		"updates": updates,
	}
	if err := c.post(ctx, body); err != nil {
		return fmt.Errorf("batch update %d assets: %w", len(ids), err)
	}
	return nil
}

func (c *Client) SubmitUpdateRequest(ctx context.Context, req models.UpdateRequest) error {
	body := map[string]interface{}{
		"action":      "submitUpdateRequest",
		"id":          req.ID,
		"ids":         req.AssetIDs,
		"updates":     req.Updates,
		"requestedBy": req.RequestedBy,
		"isBatch":     req.IsBatch,
	}
	if req.Type != "" {
		body["type"] = req.Type
	}
	if err := c.post(ctx, body); err != nil {
		return fmt.Errorf("submit update request: %w", err)
	}
	return nil
}

func (c *Client) GetPendingRequests(ctx context.Context) ([]models.UpdateRequest, error) {
	var requests []models.UpdateRequest
	if err := c.get(ctx, "getPendingRequests", nil, &requests); err != nil {
		return nil, fmt.Errorf("fetch pending requests: %w", err)
	}
	return requests, nil
}

func (c *Client) ApproveRequest(ctx context.Context, requestID, resolvedBy string) error {
	return c.resolveRequest(ctx, "approveRequest", requestID, resolvedBy)
}

func (c *Client) RejectRequest(ctx context.Context, requestID, resolvedBy string) error {
	return c.resolveRequest(ctx, "rejectRequest", requestID, resolvedBy)
}

func (c *Client) resolveRequest(ctx context.Context, action, requestID, resolvedBy string) error {
	body := map[string]interface{}{
		"action":     action,
		"id":         requestID,
		"resolvedBy": resolvedBy,
	}
	if err := c.post(ctx, body); err != nil {
		return fmt.Errorf("%s %s: %w", action, requestID, err)
	}
	return nil
}

func (c *Client) GetApprovalHistory(ctx context.Context, limit int) ([]models.ApprovalRecord, error) {
	var payload struct {
		History []models.ApprovalRecord `json:"history"`
	}
	params := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.get(ctx, "getApprovalHistory", params, &payload); err != nil {
		return nil, fmt.Errorf("fetch approval history: %w", err)
	}
	return payload.History, nil
}

func (c *Client) GetMyRequests(ctx context.Context, userName string) ([]models.UpdateRequest, error) {
	var requests []models.UpdateRequest
	params := url.Values{"userName": {userName}}
	if err := c.get(ctx, "getMyRequests", params, &requests); err != nil {
		return nil, fmt.Errorf("fetch requests of %s: %w", userName, err)
	}
	return requests, nil
}

func (c *Client) GetBatteryInventory(ctx context.Context) (models.BatteryInventory, error) {
	var payload struct {
		Inventory models.BatteryInventory `json:"inventory"`
	}
	if err := c.get(ctx, "getBatteryInventory", nil, &payload); err != nil {
		return models.BatteryInventory{}, fmt.Errorf("fetch battery inventory: %w", err)
	}
	return payload.Inventory, nil
}

func (c *Client) CheckoutBattery(ctx context.Context, batteryType string, quantity int, person string) error {
	body := map[string]interface{}{
		"action":   "checkoutBattery",
		"type":     batteryType,
		"quantity": quantity,
		"person":   person,
	}
	if err := c.post(ctx, body); err != nil {
		return fmt.Errorf("checkout %d x %s: %w", quantity, batteryType, err)
	}
	return nil
}

func (c *Client) GetBatteryHistory(ctx context.Context, limit int) ([]models.BatteryEvent, error) {
	var payload struct {
		History []models.BatteryEvent `json:"history"`
	}
	params := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.get(ctx, "getBatteryHistory", params, &payload); err != nil {
		return nil, fmt.Errorf("fetch battery history: %w", err)
	}
	return payload.History, nil
}

// PhotoUpload is the uploadPhoto action payload.
type PhotoUpload struct {
	FileName   string `json:"fileName"`
	Base64Data string `json:"base64Data"`
	MimeType   string `json:"mimeType"`
	AssetID    string `json:"assetId"`
}

func (c *Client) UploadPhoto(ctx context.Context, upload PhotoUpload) (string, error) {
	body := map[string]interface{}{
		"action":     "uploadPhoto",
		"fileName":   upload.FileName,
		"base64Data": upload.Base64Data,
		"mimeType":   upload.MimeType,
		"assetId":    upload.AssetID,
	}

	resp, err := c.doPost(ctx, body)
	if err != nil {
		return "", fmt.Errorf("upload photo for %s: %w", upload.AssetID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", custom_error.WrapRemoteStatus("uploadPhoto", resp.StatusCode)
	}

	var payload struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode uploadPhoto response: %w", err)
	}
	return payload.URL, nil
}

func (c *Client) get(ctx context.Context, action string, params url.Values, into interface{}) error {
	target := c.baseURL + "?action=" + action
	if len(params) > 0 {
		target += "&" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("register call failed",
			zap.String("action", action),
			zap.Int("status", resp.StatusCode),
		)
		return custom_error.WrapRemoteStatus(action, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		// The register answers some misses with an empty body.
		return nil
	}
	return json.Unmarshal(raw, into)
}

func (c *Client) post(ctx context.Context, body map[string]interface{}) error {
	resp, err := c.doPost(ctx, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		action, _ := body["action"].(string)
		c.log.Warn("register call failed",
			zap.String("action", action),
			zap.Int("status", resp.StatusCode),
		)
		return custom_error.WrapRemoteStatus(action, resp.StatusCode)
	}
	return nil
}

func (c *Client) doPost(ctx context.Context, body map[string]interface{}) (*http.Response, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.http.Do(req)
}
