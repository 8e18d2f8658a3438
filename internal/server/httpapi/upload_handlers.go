package httpapi

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Dvesiz/Ship-Management-System/internal/common"
)

const maxUploadBytes = 20 << 20

var errFileTooLarge = fmt.Errorf("%w: file exceeds 20MB", common.ErrorValidation)

func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		s.failValidation(c, err)
		return
	}
	if file.Size > maxUploadBytes {
		s.fail(c, errFileTooLarge)
		return
	}

	src, err := file.Open()
	if err != nil {
		s.fail(c, err)
		return
	}
	defer src.Close()

	url, err := s.files.Upload(c.Request.Context(), file.Filename, file.Header.Get("Content-Type"), src)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, gin.H{"url": url})
}
