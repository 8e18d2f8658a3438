package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/fuelrecords"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/voyages"
)

func (s *Server) handleVoyageAdd(c *gin.Context) {
	var voyage models.Voyage
	if err := c.ShouldBindJSON(&voyage); err != nil {
		s.failValidation(c, err)
		return
	}
	created, err := s.voyages.Create(c.Request.Context(), &voyage)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, created)
}

func (s *Server) handleVoyageList(c *gin.Context) {
	offset, limit := pagination(c)
	page, err := s.voyages.Page(c.Request.Context(), offset, limit, voyages.PageFilter{
		ShipID:       queryInt64(c, "shipId"),
		VoyageNoLike: c.Query("voyageNo"),
		Status:       c.Query("status"),
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, page)
}

func (s *Server) handleVoyageDetail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	voyage, err := s.voyages.GetByID(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, voyage)
}

func (s *Server) handleVoyageUpdate(c *gin.Context) {
	var voyage models.Voyage
	if err := c.ShouldBindJSON(&voyage); err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.voyages.Update(c.Request.Context(), &voyage); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

func (s *Server) handleVoyageFinish(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.voyages.Finish(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

func (s *Server) handleVoyageDelete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.voyages.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

func (s *Server) handleVoyageDeleteBatch(c *gin.Context) {
	var req idsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.failValidation(c, err)
		return
	}
	n, err := s.voyages.DeleteBatch(c.Request.Context(), req.IDs)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, gin.H{"deleted": n})
}

func (s *Server) handleFuelAdd(c *gin.Context) {
	var record models.FuelRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		s.failValidation(c, err)
		return
	}
	created, err := s.fuel.Create(c.Request.Context(), &record)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, created)
}

func (s *Server) handleFuelList(c *gin.Context) {
	offset, limit := pagination(c)
	page, err := s.fuel.Page(c.Request.Context(), offset, limit, fuelrecords.PageFilter{
		ShipID:   queryInt64(c, "shipId"),
		VoyageID: queryInt64(c, "voyageId"),
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, page)
}

func (s *Server) handleFuelSummary(c *gin.Context) {
	shipID := queryInt64(c, "shipId")
	if shipID == nil {
		s.fail(c, errMissingShipID)
		return
	}
	summary, err := s.fuel.Summary(c.Request.Context(), *shipID)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, summary)
}

func (s *Server) handleFuelDetail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	record, err := s.fuel.GetByID(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, record)
}

func (s *Server) handleFuelUpdate(c *gin.Context) {
	var record models.FuelRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.fuel.Update(c.Request.Context(), &record); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

func (s *Server) handleFuelDelete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.fuel.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

func (s *Server) handleFuelDeleteBatch(c *gin.Context) {
	var req idsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.failValidation(c, err)
		return
	}
	n, err := s.fuel.DeleteBatch(c.Request.Context(), req.IDs)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, gin.H{"deleted": n})
}
