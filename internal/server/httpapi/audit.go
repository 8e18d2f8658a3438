package httpapi

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dvesiz/Ship-Management-System/internal/server/identity"
	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
)

const (
	maxUserAgentLen = 500
	maxParamsLen    = 2000

	unreadableBody = "[unreadable request body]"
	multipartBody  = "[multipart form data]"
)

// AuditSink receives finished operation log entries. Satisfied by
// services.AuditService.
type AuditSink interface {
	Record(entry *models.OperationLog)
}

// audited wraps a handler with transparent operation logging. It never
// changes the handler's behavior: the entry is assembled around the call and
// handed to the sink after the response is written. Outcome is FAILED when
// the handler recorded an error or the response status is 4xx/5xx.
func (s *Server) audited(module, operation, desc string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		params := requestParams(c)
		ip := clientIP(c.Request)
		ua := truncate(c.Request.UserAgent(), maxUserAgentLen)
		method := c.Request.Method
		url := c.Request.URL.RequestURI()

		c.Next()

		entry := &models.OperationLog{
			Module:         module,
			Operation:      operation,
			OperationDesc:  desc,
			Method:         method,
			RequestURL:     url,
			RequestParams:  params,
			ResponseResult: models.OutcomeSuccess,
			IPAddress:      ip,
			UserAgent:      ua,
			ExecutionTime:  time.Since(start).Milliseconds(),
		}

		if ident, err := identity.FromContext(c.Request.Context()); err == nil {
			entry.UserID = ident.UserID
			entry.Username = ident.Username
		} else {
			entry.Username = identity.Anonymous.Username
		}

		if len(c.Errors) > 0 {
			entry.ResponseResult = models.OutcomeFailed
			entry.ErrorMsg = c.Errors.Last().Error()
		} else if status := c.Writer.Status(); status >= 400 {
			entry.ResponseResult = models.OutcomeFailed
			entry.ErrorMsg = http.StatusText(status)
		}

		s.audit.Record(entry)
	}
}

// requestParams serializes the request input for the audit trail: the raw
// JSON body for writes, the query string otherwise. The body is restored so
// the handler can bind it.
func requestParams(c *gin.Context) string {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return truncate(c.Request.URL.RawQuery, maxParamsLen)
	}
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		return multipartBody
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Request.Body = io.NopCloser(bytes.NewReader(nil))
		return unreadableBody
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	return truncate(string(body), maxParamsLen)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
