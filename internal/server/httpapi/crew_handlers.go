package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/crews"
)

func (s *Server) handleCrewAdd(c *gin.Context) {
	var crew models.Crew
	if err := c.ShouldBindJSON(&crew); err != nil {
		s.failValidation(c, err)
		return
	}
	created, err := s.crews.Create(c.Request.Context(), &crew)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, created)
}

func (s *Server) handleCrewList(c *gin.Context) {
	offset, limit := pagination(c)
	page, err := s.crews.Page(c.Request.Context(), offset, limit, crews.PageFilter{
		ShipID:   queryInt64(c, "shipId"),
		NameLike: c.Query("name"),
		Position: c.Query("position"),
		Status:   c.Query("status"),
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, page)
}

func (s *Server) handleCrewDetail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	crew, err := s.crews.GetByID(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, crew)
}

func (s *Server) handleCrewUpdate(c *gin.Context) {
	var crew models.Crew
	if err := c.ShouldBindJSON(&crew); err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.crews.Update(c.Request.Context(), &crew); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

func (s *Server) handleCrewDelete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.crews.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

func (s *Server) handleCrewDeleteBatch(c *gin.Context) {
	var req idsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.failValidation(c, err)
		return
	}
	n, err := s.crews.DeleteBatch(c.Request.Context(), req.IDs)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, gin.H{"deleted": n})
}
