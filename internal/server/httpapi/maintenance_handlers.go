package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/maintenances"
)

func (s *Server) handleMaintenanceAdd(c *gin.Context) {
	var record models.MaintenanceRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		s.failValidation(c, err)
		return
	}
	created, err := s.maintenance.Create(c.Request.Context(), &record)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, created)
}

func (s *Server) handleMaintenanceList(c *gin.Context) {
	offset, limit := pagination(c)
	page, err := s.maintenance.Page(c.Request.Context(), offset, limit, maintenances.PageFilter{
		ShipID: queryInt64(c, "shipId"),
		Status: c.Query("status"),
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, page)
}

func (s *Server) handleMaintenanceDetail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	record, err := s.maintenance.GetByID(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, record)
}

func (s *Server) handleMaintenanceUpdate(c *gin.Context) {
	var record models.MaintenanceRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.maintenance.Update(c.Request.Context(), &record); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

func (s *Server) handleMaintenanceDelete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.maintenance.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

func (s *Server) handleMaintenanceDeleteBatch(c *gin.Context) {
	var req idsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.failValidation(c, err)
		return
	}
	n, err := s.maintenance.DeleteBatch(c.Request.Context(), req.IDs)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, gin.H{"deleted": n})
}
