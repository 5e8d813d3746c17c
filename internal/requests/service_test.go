package requests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/models"
)

type MockWorkflowClient struct {
	mock.Mock
}

func (m *MockWorkflowClient) SubmitUpdateRequest(ctx context.Context, req models.UpdateRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockWorkflowClient) GetPendingRequests(ctx context.Context) ([]models.UpdateRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UpdateRequest), args.Error(1)
}

func (m *MockWorkflowClient) ApproveRequest(ctx context.Context, requestID, resolvedBy string) error {
	args := m.Called(ctx, requestID, resolvedBy)
	return args.Error(0)
}

func (m *MockWorkflowClient) RejectRequest(ctx context.Context, requestID, resolvedBy string) error {
	args := m.Called(ctx, requestID, resolvedBy)
	return args.Error(0)
}

func (m *MockWorkflowClient) GetApprovalHistory(ctx context.Context, limit int) ([]models.ApprovalRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApprovalRecord), args.Error(1)
}

func (m *MockWorkflowClient) GetMyRequests(ctx context.Context, userName string) ([]models.UpdateRequest, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UpdateRequest), args.Error(1)
}

func TestSubmitFillsWorkflowFields(t *testing.T) {
	client := new(MockWorkflowClient)
	service := NewService(client)
	service.now = func() time.Time {
		return time.Date(2025, time.March, 7, 12, 0, 0, 0, time.UTC)
	}

	var sent models.UpdateRequest
	client.On("SubmitUpdateRequest", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(models.UpdateRequest) }).
		Return(nil).Once()

	submitted, err := service.Submit(context.Background(), models.UpdateRequest{
		AssetIDs:    []string{"AVM-001", "AVM-002"},
		Updates:     map[string]string{"status": "Loaned"},
		RequestedBy: "Marek",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, submitted.ID)
	assert.True(t, submitted.IsBatch)
	assert.Equal(t, models.RequestStatusPending, submitted.Status)
	assert.Equal(t, "2025-03-07T12:00:00Z", submitted.SubmittedAt)
	assert.Equal(t, submitted, sent)
	client.AssertExpectations(t)
}

func TestSubmitSingleAssetIsNotBatch(t *testing.T) {
	client := new(MockWorkflowClient)
	client.On("SubmitUpdateRequest", mock.Anything, mock.Anything).Return(nil)
	service := NewService(client)

	submitted, err := service.Submit(context.Background(), models.UpdateRequest{
		AssetIDs:    []string{"AVM-001"},
		Updates:     map[string]string{"grade": "C+"},
		RequestedBy: "Marek",
	})

	assert.NoError(t, err)
	assert.False(t, submitted.IsBatch)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     models.UpdateRequest
		wantErr error
	}{
		{
			name:    "no assets",
			req:     models.UpdateRequest{Updates: map[string]string{"status": "Loaned"}, RequestedBy: "Marek"},
			wantErr: ErrNoAssets,
		},
		{
			name:    "no changes",
			req:     models.UpdateRequest{AssetIDs: []string{"AVM-001"}, RequestedBy: "Marek"},
			wantErr: ErrNoChanges,
		},
		{
			name:    "no user name",
			req:     models.UpdateRequest{AssetIDs: []string{"AVM-001"}, Updates: map[string]string{"status": "Loaned"}},
			wantErr: ErrNoUserName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockWorkflowClient)
			service := NewService(client)

			_, err := service.Submit(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			client.AssertNotCalled(t, "SubmitUpdateRequest", mock.Anything, mock.Anything)
		})
	}
}

func TestResolveRequiresRequestID(t *testing.T) {
	client := new(MockWorkflowClient)
	service := NewService(client)

	assert.ErrorIs(t, service.Approve(context.Background(), "", "Admin"), ErrNoRequest)
	assert.ErrorIs(t, service.Reject(context.Background(), "", "Admin"), ErrNoRequest)
}

func TestHistoryDefaultsLimit(t *testing.T) {
	client := new(MockWorkflowClient)
	client.On("GetApprovalHistory", mock.Anything, 50).Return([]models.ApprovalRecord{}, nil).Once()
	service := NewService(client)

	_, err := service.History(context.Background(), 0)

	assert.NoError(t, err)
	client.AssertExpectations(t)
}
