package restapi

import (
	"fmt"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
)

// Numbers are kept as json.Number so uint256 arguments survive decoding without float rounding.
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

func decodeBody(c *gin.Context, dst any) error {
	if c.Request.Body == nil {
		return fmt.Errorf("request body is required")
	}
	if err := json.NewDecoder(c.Request.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}
