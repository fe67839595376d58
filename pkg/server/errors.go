package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xrsl/applykit/pkg/errs"
	clog "github.com/xrsl/applykit/pkg/log"
)

// writeError maps the error taxonomy onto HTTP statuses. Validation
// messages pass through verbatim; generation failures stay generic so
// raw model output never reaches the client.
func writeError(c *gin.Context, err error) {
	switch {
	case errs.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errs.IsGeneration(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errs.IsConfiguration(err), errs.IsAuthentication(err):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		clog.Error("request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
