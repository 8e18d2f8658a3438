package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/ships"
)

func (s *Server) handleShipAdd(c *gin.Context) {
	var ship models.Ship
	if err := c.ShouldBindJSON(&ship); err != nil {
		s.failValidation(c, err)
		return
	}
	created, err := s.ships.Create(c.Request.Context(), &ship)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, created)
}

func (s *Server) handleShipList(c *gin.Context) {
	offset, limit := pagination(c)
	page, err := s.ships.Page(c.Request.Context(), offset, limit, ships.PageFilter{
		CategoryID: queryInt64(c, "categoryId"),
		NameLike:   c.Query("name"),
		Status:     c.Query("status"),
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, page)
}

func (s *Server) handleShipDetail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	ship, err := s.ships.GetByID(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, ship)
}

func (s *Server) handleShipUpdate(c *gin.Context) {
	var ship models.Ship
	if err := c.ShouldBindJSON(&ship); err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.ships.Update(c.Request.Context(), &ship); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

func (s *Server) handleShipDelete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.ships.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

func (s *Server) handleShipDeleteBatch(c *gin.Context) {
	var req idsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.failValidation(c, err)
		return
	}
	n, err := s.ships.DeleteBatch(c.Request.Context(), req.IDs)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, gin.H{"deleted": n})
}

func (s *Server) handleCategoryAdd(c *gin.Context) {
	var category models.ShipCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		s.failValidation(c, err)
		return
	}
	created, err := s.categories.Create(c.Request.Context(), &category)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, created)
}

func (s *Server) handleCategoryList(c *gin.Context) {
	items, err := s.categories.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, items)
}

func (s *Server) handleCategoryUpdate(c *gin.Context) {
	var category models.ShipCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.categories.Update(c.Request.Context(), &category); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

func (s *Server) handleCategoryDelete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.categories.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}
