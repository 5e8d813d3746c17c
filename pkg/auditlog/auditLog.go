package auditlog

import (
	"go.uber.org/zap"
)

// Auditlog records every mutation the portal performs against the register:
// who did it, which assets it touched and what changed. Entries go to the
// structured log; the durable approval trail itself lives upstream.
type Auditlog struct {
	log *zap.Logger
}

func NewAuditLog(logger *zap.Logger) *Auditlog {
	return &Auditlog{log: logger.Named("audit")}
}

func (a *Auditlog) Log(action string, actor string, assetIDs []string, changes map[string]string) {
	a.log.Info("register mutation",
		zap.String("action", action),
		zap.String("actor", actor),
		zap.Strings("asset_ids", assetIDs),
		zap.Any("changes", changes),
	)
}
