package httpapi

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/auditlogs"
)

func (s *Server) handleLogPage(c *gin.Context) {
	offset, limit := pagination(c)
	page, err := s.auditQuery.Page(c.Request.Context(), offset, limit, auditlogs.PageFilter{
		UsernameLike: c.Query("username"),
		Module:       c.Query("module"),
		Operation:    c.Query("operation"),
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, page)
}

func (s *Server) handleLogDetail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	entry, err := s.auditQuery.GetByID(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, entry)
}

func (s *Server) handleLogDeleteBatch(c *gin.Context) {
	var req idsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.failValidation(c, err)
		return
	}
	n, err := s.auditQuery.DeleteBatch(c.Request.Context(), req.IDs)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, gin.H{"deleted": n})
}

func (s *Server) handleLogClean(c *gin.Context) {
	days, err := strconv.Atoi(c.Param("days"))
	if err != nil || days < 1 {
		s.failValidation(c, errInvalidDays)
		return
	}
	n, err := s.auditQuery.CleanOlderThan(c.Request.Context(), days)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, gin.H{"deleted": n})
}
