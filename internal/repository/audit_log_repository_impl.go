package repository

import (
	"sync"
	"time"

	"medcore-clinic/internal/domain/entity"
	domainRepo "medcore-clinic/internal/domain/repository"
)

// auditLogRepository is the append-only in-memory audit trail
type auditLogRepository struct {
	mu     sync.RWMutex
	nextID int64
	logs   []entity.AuditLog
}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{nextID: 1}
}

func (r *auditLogRepository) Create(log *entity.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log.ID = r.nextID
	r.nextID++
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	r.logs = append(r.logs, *log)
	return nil
}

func (r *auditLogRepository) FindAll() ([]entity.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.AuditLog, len(r.logs))
	copy(out, r.logs)
	return out, nil
}

func (r *auditLogRepository) FindByAction(action string) ([]entity.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []entity.AuditLog{}
	for _, l := range r.logs {
		if l.Action == action {
			out = append(out, l)
		}
	}
	return out, nil
}
