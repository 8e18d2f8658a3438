package services

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/Dvesiz/Ship-Management-System/internal/logging"
	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/auditlogs"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/repomanager"
)

// AuditService persists operation log entries asynchronously. Record hands an
// entry to a buffered queue drained by a single background goroutine; when
// the queue is full the entry is dropped with a warning. Auditing never
// blocks or fails the operation being audited.
type AuditService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger

	queue chan *models.OperationLog
	wg    sync.WaitGroup
	once  sync.Once
}

func NewAuditService(db *sql.DB, m repomanager.RepositoryManager, bufferSize int, logger logging.Logger) *AuditService {
	if bufferSize <= 0 {
		bufferSize = 256
	}
	s := &AuditService{
		db:          db,
		repomanager: m,
		logger:      logger,
		queue:       make(chan *models.OperationLog, bufferSize),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

func (s *AuditService) run() {
	defer s.wg.Done()
	for entry := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := s.repomanager.AuditLogs(s.db).Insert(ctx, entry); err != nil {
			s.logger.Error(ctx, "audit entry persist failed", "module", entry.Module, "operation", entry.Operation, "error", err)
		}
		cancel()
	}
}

// Record enqueues an entry for persistence. Drops when the buffer is full.
func (s *AuditService) Record(entry *models.OperationLog) {
	select {
	case s.queue <- entry:
	default:
		s.logger.Warn(context.Background(), "audit buffer full, dropping entry", "module", entry.Module, "operation", entry.Operation)
	}
}

// Close drains the queue and stops the writer goroutine.
func (s *AuditService) Close() {
	s.once.Do(func() { close(s.queue) })
	s.wg.Wait()
}

func (s *AuditService) Page(ctx context.Context, offset, limit int, f auditlogs.PageFilter) (*models.Page[models.OperationLog], error) {
	return s.repomanager.AuditLogs(s.db).Page(ctx, offset, limit, f)
}

func (s *AuditService) GetByID(ctx context.Context, id int64) (*models.OperationLog, error) {
	return s.repomanager.AuditLogs(s.db).GetByID(ctx, id)
}

func (s *AuditService) DeleteBatch(ctx context.Context, ids []int64) (int64, error) {
	return s.repomanager.AuditLogs(s.db).DeleteBatch(ctx, ids)
}

// CleanOlderThan removes entries older than the given retention in days.
func (s *AuditService) CleanOlderThan(ctx context.Context, days int) (int64, error) {
	n, err := s.repomanager.AuditLogs(s.db).DeleteOlderThan(ctx, days)
	if err != nil {
		return 0, err
	}
	s.logger.Info(ctx, "operation logs cleaned", "days", days, "removed", n)
	return n, nil
}
