package requests

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/FerdynandHub/MyAssetTracker-sub000/pkg/models"
)

var (
	ErrNoAssets   = errors.New("update request targets no assets")
	ErrNoChanges  = errors.New("update request carries no changes")
	ErrNoRequest  = errors.New("request id is missing")
	ErrNoUserName = errors.New("user name is missing")
)

// WorkflowClient is the slice of the register API the approval flow needs.
type WorkflowClient interface {
	SubmitUpdateRequest(ctx context.Context, req models.UpdateRequest) error
	GetPendingRequests(ctx context.Context) ([]models.UpdateRequest, error)
	ApproveRequest(ctx context.Context, requestID, resolvedBy string) error
	RejectRequest(ctx context.Context, requestID, resolvedBy string) error
	GetApprovalHistory(ctx context.Context, limit int) ([]models.ApprovalRecord, error)
	GetMyRequests(ctx context.Context, userName string) ([]models.UpdateRequest, error)
}

type Service struct {
	client WorkflowClient
	now    func() time.Time
}

func NewService(client WorkflowClient) *Service {
	return &Service{
		client: client,
		now:    time.Now,
	}
}

// Submit files an editor's change request. The request id is generated here
// so a retried submit can be deduplicated upstream.
func (s *Service) Submit(ctx context.Context, req models.UpdateRequest) (models.UpdateRequest, error) {
	if len(req.AssetIDs) == 0 {
		return models.UpdateRequest{}, ErrNoAssets
	}
	if len(req.Updates) == 0 {
		return models.UpdateRequest{}, ErrNoChanges
	}
	if req.RequestedBy == "" {
		return models.UpdateRequest{}, ErrNoUserName
	}

	req.ID = uuid.NewString()
	req.IsBatch = len(req.AssetIDs) > 1
	req.Status = models.RequestStatusPending
	req.SubmittedAt = s.now().Format(time.RFC3339)

	if err := s.client.SubmitUpdateRequest(ctx, req); err != nil {
		return models.UpdateRequest{}, err
	}
	return req, nil
}

func (s *Service) Pending(ctx context.Context) ([]models.UpdateRequest, error) {
	return s.client.GetPendingRequests(ctx)
}

func (s *Service) Approve(ctx context.Context, requestID, resolvedBy string) error {
	if requestID == "" {
		return ErrNoRequest
	}
	return s.client.ApproveRequest(ctx, requestID, resolvedBy)
}

func (s *Service) Reject(ctx context.Context, requestID, resolvedBy string) error {
	if requestID == "" {
		return ErrNoRequest
	}
	return s.client.RejectRequest(ctx, requestID, resolvedBy)
}

func (s *Service) History(ctx context.Context, limit int) ([]models.ApprovalRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.client.GetApprovalHistory(ctx, limit)
}

func (s *Service) MyRequests(ctx context.Context, userName string) ([]models.UpdateRequest, error) {
	if userName == "" {
		return nil, ErrNoUserName
	}
	return s.client.GetMyRequests(ctx, userName)
}
