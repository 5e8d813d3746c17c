package sheetdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	custom_error "github.com/FerdynandHub/MyAssetTracker-sub000/pkg/errors"
	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/models"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := New(server.URL, 2*time.Second, zap.NewNop())
	return client, server
}

func TestGetAssets(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "getAssets", r.URL.Query().Get("action"))
		json.NewEncoder(w).Encode([]models.Asset{
			{ID: "AVM-001", Name: "Projector"},
			{ID: "AVM-002"},
		})
	})
	defer server.Close()

	assets, err := client.GetAssets(context.Background())

	assert.NoError(t, err)
	assert.Len(t, assets, 2)
	assert.Equal(t, "Projector", assets[0].Name)
}

func TestGetAssetNotFoundOnEmptyBody(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "AVM-404", r.URL.Query().Get("id"))
		w.WriteHeader(http.StatusOK)
	})
	defer server.Close()

	asset, err := client.GetAsset(context.Background(), "AVM-404")

	assert.Nil(t, asset)
	var notFound *custom_error.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestGetAssetsByIDsJoinsCSV(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "getAssetsByIds", r.URL.Query().Get("action"))
		assert.Equal(t, "AVM-001,AVM-003", r.URL.Query().Get("ids"))
		json.NewEncoder(w).Encode([]models.Asset{{ID: "AVM-001"}, {ID: "AVM-003"}})
	})
	defer server.Close()

	assets, err := client.GetAssetsByIDs(context.Background(), []string{"AVM-001", "AVM-003"})

	assert.NoError(t, err)
	assert.Len(t, assets, 2)
}

func TestUpdateAssetPostsActionBody(t *testing.T) {
	var received map[string]interface{}
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	})
	defer server.Close()

	err := client.UpdateAsset(context.Background(), "AVM-001", map[string]string{"status": "Loaned"})

	assert.NoError(t, err)
	assert.Equal(t, "updateAsset", received["action"])
	assert.Equal(t, "AVM-001", received["id"])
	assert.Equal(t, map[string]interface{}{"status": "Loaned"}, received["updates"])
}

func TestRemoteFailureIsTyped(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer server.Close()

	_, err := client.GetAssets(context.Background())

	var remote *custom_error.RemoteError
	assert.ErrorAs(t, err, &remote)
}

func TestGetBatteryInventoryShape(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"inventory":{"AA":24,"9V":6}}`))
	})
	defer server.Close()

	inventory, err := client.GetBatteryInventory(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 24, inventory.AA)
	assert.Equal(t, 6, inventory.NineV)
}

func TestGetApprovalHistoryUnwrapsEnvelope(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"history":[{"requestId":"r1","resolution":"approved"}]}`))
	})
	defer server.Close()

	history, err := client.GetApprovalHistory(context.Background(), 25)

	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, "approved", history[0].Resolution)
}

func TestUploadPhotoReturnsURL(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "uploadPhoto", body["action"])
		assert.Equal(t, "AVM-001", body["assetId"])
		w.Write([]byte(`{"url":"https://cdn.example/avm-001.jpg"}`))
	})
	defer server.Close()

	url, err := client.UploadPhoto(context.Background(), PhotoUpload{
		FileName:   "avm-001.jpg",
		Base64Data: "aGVsbG8=",
		MimeType:   "image/jpeg",
		AssetID:    "AVM-001",
	})

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example/avm-001.jpg", url)
}
