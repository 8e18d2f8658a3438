package services

import (
	"context"
	"database/sql"

	"github.com/Dvesiz/Ship-Management-System/internal/common"
	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/messages"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/repomanager"
)

type MessageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMessageService(db *sql.DB, m repomanager.RepositoryManager) *MessageService {
	return &MessageService{db: db, repomanager: m}
}

// Send delivers a message from senderID to the receiver. The receiver must
// exist.
func (s *MessageService) Send(ctx context.Context, senderID int64, msg *models.Message) (*models.Message, error) {
	if msg.ReceiverID == 0 || msg.Title == "" {
		return nil, common.ErrorValidation
	}
	if _, err := s.repomanager.Users(s.db).GetByID(ctx, msg.ReceiverID); err != nil {
		return nil, err
	}

	msg.SenderID = senderID
	msg.Status = models.MessageUnread
	return s.repomanager.Messages(s.db).Create(ctx, msg)
}

func (s *MessageService) GetByID(ctx context.Context, id, receiverID int64) (*models.Message, error) {
	return s.repomanager.Messages(s.db).GetByID(ctx, id, receiverID)
}

func (s *MessageService) Page(ctx context.Context, offset, limit int, f messages.PageFilter) (*models.Page[models.Message], error) {
	return s.repomanager.Messages(s.db).Page(ctx, offset, limit, f)
}

func (s *MessageService) MarkRead(ctx context.Context, id, receiverID int64) error {
	return s.repomanager.Messages(s.db).MarkRead(ctx, id, receiverID)
}

func (s *MessageService) MarkAllRead(ctx context.Context, receiverID int64) (int64, error) {
	return s.repomanager.Messages(s.db).MarkAllRead(ctx, receiverID)
}

func (s *MessageService) Delete(ctx context.Context, id, receiverID int64) error {
	return s.repomanager.Messages(s.db).Delete(ctx, id, receiverID)
}

func (s *MessageService) CountUnread(ctx context.Context, receiverID int64) (int64, error) {
	return s.repomanager.Messages(s.db).CountUnread(ctx, receiverID)
}
