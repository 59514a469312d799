package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eagleeyes/storefront/internal/models"
	"github.com/eagleeyes/storefront/internal/repository"
)

type auditLogsRepo struct {
	mu   sync.RWMutex
	logs []models.AuditLog
}

func NewAuditLogs() repository.AuditLogs { return &auditLogsRepo{} }

func (r *auditLogsRepo) Create(l models.AuditLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, l)
	return nil
}

func (r *auditLogsRepo) List() []models.AuditLog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.AuditLog(nil), r.logs...)
}
