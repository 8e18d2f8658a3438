package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/certificates"
)

func (s *Server) handleCertificateAdd(c *gin.Context) {
	var cert models.ShipCertificate
	if err := c.ShouldBindJSON(&cert); err != nil {
		s.failValidation(c, err)
		return
	}
	created, err := s.certificates.Create(c.Request.Context(), &cert)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, created)
}

func (s *Server) handleCertificateList(c *gin.Context) {
	offset, limit := pagination(c)
	page, err := s.certificates.Page(c.Request.Context(), offset, limit, certificates.PageFilter{
		ShipID:   queryInt64(c, "shipId"),
		NameLike: c.Query("name"),
		Status:   models.CertStatus(c.Query("status")),
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, page)
}

func (s *Server) handleCertificateStats(c *gin.Context) {
	counts, err := s.certificates.CountByStatus(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, counts)
}

func (s *Server) handleCertificatesByShip(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	items, err := s.certificates.ListByShip(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, items)
}

func (s *Server) handleCertificateDetail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	cert, err := s.certificates.GetByID(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, cert)
}

func (s *Server) handleCertificateUpdate(c *gin.Context) {
	var cert models.ShipCertificate
	if err := c.ShouldBindJSON(&cert); err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.certificates.Update(c.Request.Context(), &cert); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, cert)
}

func (s *Server) handleCertificateDelete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.certificates.Delete(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

func (s *Server) handleCertificateDeleteBatch(c *gin.Context) {
	var req idsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.failValidation(c, err)
		return
	}
	n, err := s.certificates.DeleteBatch(c.Request.Context(), req.IDs)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, gin.H{"deleted": n})
}
