package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/technoschool/technoschool-api/pkg/errors"
)

// Ack is the acknowledgement body returned by write operations.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ID      int64  `json:"id,omitempty"`
}

// JSON sends a success response with the given payload. List endpoints pass
// slices through unwrapped so the wire shape stays a bare array.
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// OK responds with HTTP 200.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

// Acknowledge sends a success acknowledgement with an assigned ID.
func Acknowledge(c *gin.Context, message string, id int64) {
	OK(c, Ack{Success: true, Message: message, ID: id})
}

// Error sends an error response as {"error": message} with the carried status.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}
