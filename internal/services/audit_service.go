package services

import (
	"go.uber.org/zap"

	"github.com/k1ngsterr1/quick-notes/internal/logger"
)

// auditService writes journal mutations to the "audit" logger.
type auditService struct {
	log *zap.SugaredLogger
}

// NewAuditService creates a new AuditServicer.
func NewAuditService() AuditServicer {
	return &auditService{log: logger.Named("audit")}
}

// Log records an audit event. It never fails the calling operation.
func (s *auditService) Log(action, recordID string, changes map[string]any) {
	fields := make([]any, 0, 4+2*len(changes))
	fields = append(fields, "action", action, "record_id", recordID)
	for k, v := range changes {
		fields = append(fields, k, v)
	}
	s.log.Infow("journal mutation", fields...)
}
