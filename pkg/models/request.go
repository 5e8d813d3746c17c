package models

// UpdateRequest is one pending (or resolved) change request in the approval
// workflow: an editor submits it, an admin approves or rejects it.
type UpdateRequest struct {
	ID          string            `json:"id,omitempty"`
	AssetIDs    []string          `json:"ids"`
	Updates     map[string]string `json:"updates"`
	RequestedBy string            `json:"requestedBy"`
	IsBatch     bool              `json:"isBatch"`
	Type        string            `json:"type,omitempty"`
	Status      string            `json:"status,omitempty"`
	SubmittedAt string            `json:"submittedAt,omitempty"`
}

// ApprovalRecord is one audit-trail entry returned by getApprovalHistory.
type ApprovalRecord struct {
	RequestID   string            `json:"requestId"`
	AssetIDs    []string          `json:"ids"`
	Updates     map[string]string `json:"updates"`
	RequestedBy string            `json:"requestedBy"`
	ResolvedBy  string            `json:"resolvedBy"`
	Resolution  string            `json:"resolution"`
	ResolvedAt  string            `json:"resolvedAt"`
}

const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)
