package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/contactbook/backend/internal/model"
	"github.com/contactbook/backend/internal/service"
)

func boolPtr(v bool) *bool { return &v }

func writeData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, model.WebResponse{Data: data, Status: boolPtr(true)})
}

func writeDataPaged(c *gin.Context, data any, paging model.PagingResponse) {
	c.JSON(http.StatusOK, model.WebResponse{Data: data, Paging: &paging})
}

// writeServiceError renders a service failure into the errors field of the
// envelope. Anything that is not a *service.Error is a server fault and
// never leaks detail to the client.
func writeServiceError(c *gin.Context, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		c.JSON(svcErr.Code, model.WebResponse{Status: boolPtr(false), Errors: svcErr.Message})
		return
	}
	log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.JSON(http.StatusInternalServerError, model.WebResponse{Status: boolPtr(false), Errors: "internal server error"})
}

func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, model.WebResponse{Status: boolPtr(false), Errors: err.Error()})
}

// reject aborts with the gate's uniform unauthorized envelope; rejections
// use the message field, never errors.
func reject(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, model.WebResponse{Status: boolPtr(false), Message: msg})
}
