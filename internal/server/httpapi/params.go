package httpapi

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Dvesiz/Ship-Management-System/internal/common"
)

var (
	errMissingShipID = fmt.Errorf("%w: shipId required", common.ErrorValidation)
	errInvalidDays   = fmt.Errorf("%w: days must be a positive integer", common.ErrorValidation)
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// pagination reads 1-based pageNum and pageSize query parameters and returns
// an offset/limit pair with sane bounds.
func pagination(c *gin.Context) (offset, limit int) {
	pageNum, _ := strconv.Atoi(c.DefaultQuery("pageNum", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))

	if pageNum < 1 {
		pageNum = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return (pageNum - 1) * pageSize, pageSize
}

func pathID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// queryInt64 returns a pointer to the parsed query parameter, or nil when
// the parameter is absent or malformed.
func queryInt64(c *gin.Context, name string) *int64 {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// idsRequest is the body of every batch delete endpoint.
type idsRequest struct {
	IDs []int64 `json:"ids" binding:"required"`
}
