package util

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIErrorParams carries the user-facing message and the underlying error
// for an error response. The underlying error is logged, never returned to
// the caller.
type APIErrorParams struct {
	Msg string
	Err error
}

func errorBody(params APIErrorParams) gin.H {
	return gin.H{"message": params.Msg}
}

// CallUserError returns a 400 response for a malformed or incomplete request.
func CallUserError(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusBadRequest, errorBody(params))
}

// CallUserNotAuthorized returns a 401 response for missing or bad credentials.
func CallUserNotAuthorized(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusUnauthorized, errorBody(params))
}

// CallErrorNotFound returns a 404 response for an operation on a nonexistent id.
func CallErrorNotFound(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusNotFound, errorBody(params))
}

// CallConflict returns a 409 response when a write is rejected because
// dependent rows exist.
func CallConflict(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusConflict, errorBody(params))
}

// CallServerError returns a 500 response. The underlying error is logged
// server-side and not leaked to the caller.
func CallServerError(c *gin.Context, params APIErrorParams) {
	if params.Err != nil {
		log.Printf("server error: %s: %v", params.Msg, params.Err)
	}
	c.JSON(http.StatusInternalServerError, errorBody(params))
}
