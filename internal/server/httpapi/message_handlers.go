package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/Dvesiz/Ship-Management-System/internal/server/identity"
	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/messages"
)

func (s *Server) handleMessageSend(c *gin.Context) {
	ident, err := identity.FromContext(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	var msg models.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		s.failValidation(c, err)
		return
	}
	sent, err := s.messages.Send(c.Request.Context(), ident.UserID, &msg)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, sent)
}

func (s *Server) handleMessageList(c *gin.Context) {
	ident, err := identity.FromContext(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	offset, limit := pagination(c)
	page, err := s.messages.Page(c.Request.Context(), offset, limit, messages.PageFilter{
		ReceiverID: ident.UserID,
		Status:     c.Query("status"),
		Type:       c.Query("type"),
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, page)
}

func (s *Server) handleMessageUnreadCount(c *gin.Context) {
	ident, err := identity.FromContext(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	n, err := s.messages.CountUnread(c.Request.Context(), ident.UserID)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, gin.H{"count": n})
}

func (s *Server) handleMessageMarkRead(c *gin.Context) {
	ident, err := identity.FromContext(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.messages.MarkRead(c.Request.Context(), id, ident.UserID); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

func (s *Server) handleMessageMarkAllRead(c *gin.Context) {
	ident, err := identity.FromContext(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	n, err := s.messages.MarkAllRead(c.Request.Context(), ident.UserID)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, gin.H{"updated": n})
}

func (s *Server) handleMessageDelete(c *gin.Context) {
	ident, err := identity.FromContext(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.messages.Delete(c.Request.Context(), id, ident.UserID); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}
