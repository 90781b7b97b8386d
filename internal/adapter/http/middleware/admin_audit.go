package middleware

import (
	"context"
	"net/http"
	"time"

	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AdminAudit appends a log entry for every mutating call on the admin
// surface. The request itself never fails on an audit write error.
func AdminAudit(audit interfaces.IAuditRepository, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		userID, _ := c.Get(ContextUserID)
		id, _ := userID.(int64)
		if _, err := audit.AppendAdminLog(ctx, entities.AdminLogEntry{
			UserID: id,
			Action: c.Request.Method + " " + c.FullPath(),
		}); err != nil {
			log.WithError(err).Warn("admin audit append failed")
		}
	}
}
