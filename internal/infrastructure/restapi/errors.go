package restapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jurisdiction_gateway/internal/domain/entity"
)

// APIError is the body of every non-2xx response.
type APIError struct {
	Error           string `json:"error"`
	Code            string `json:"code"`
	ExpectedChainID string `json:"expectedChainId,omitempty"`
	CurrentChainID  string `json:"currentChainId,omitempty"`
	RequestID       string `json:"requestId,omitempty"`
}

// statusFor maps gateway errors onto HTTP status codes.
func statusFor(err error) (int, string) {
	var rpcErr *entity.RPCError
	switch {
	case errors.Is(err, entity.ErrWrongNetwork):
		return http.StatusConflict, "wrong_network"
	case errors.Is(err, entity.ErrUnknownContract):
		return http.StatusNotFound, "unknown_contract"
	case errors.Is(err, entity.ErrInvalidDescriptor):
		return http.StatusBadRequest, "invalid_descriptor"
	case errors.Is(err, entity.ErrUnknownOperation):
		return http.StatusBadRequest, "unknown_operation"
	case errors.Is(err, entity.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument"
	case errors.Is(err, entity.ErrBatchMutating):
		return http.StatusBadRequest, "batch_mutating"
	case errors.Is(err, entity.ErrSignerUnavailable):
		return http.StatusServiceUnavailable, "signer_unavailable"
	case errors.As(err, &rpcErr):
		return http.StatusBadGateway, "rpc_error"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeError(c *gin.Context, err error) {
	status, code := statusFor(err)
	body := APIError{Error: err.Error(), Code: code, RequestID: requestID(c)}

	var wrong *entity.WrongNetworkError
	if errors.As(err, &wrong) {
		body.ExpectedChainID = wrong.Expected
		body.CurrentChainID = wrong.Actual
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, body)
}

func writeBadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, APIError{Error: msg, Code: "bad_request", RequestID: requestID(c)})
}
