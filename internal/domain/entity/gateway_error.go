package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongNetwork is matched by every *WrongNetworkError.
	ErrWrongNetwork      = errors.New("wrong network")
	ErrInvalidDescriptor = errors.New("invalid contract descriptor")
	ErrUnknownOperation  = errors.New("unknown contract operation")
	ErrSignerUnavailable = errors.New("signing provider unavailable")
	ErrUnknownContract   = errors.New("unknown contract")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrBatchMutating     = errors.New("batch contains a mutating call")
)

// WrongNetworkError is returned when a mutating call is attempted while the
// connected network differs from the expected one. The user has to switch networks.
type WrongNetworkError struct {
	Expected string
	Actual   string
}

func (e *WrongNetworkError) Error() string {
	actual := e.Actual
	if actual == "" {
		actual = "unknown"
	}
	return fmt.Sprintf("wrong network: expected chain id %s, connected to %s", e.Expected, actual)
}

func (e *WrongNetworkError) Is(target error) bool {
	return target == ErrWrongNetwork
}

// RPCError wraps whatever the node or the contract runtime reported, unchanged.
type RPCError struct {
	Operation string
	Err       error
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc call %s failed: %v", e.Operation, e.Err)
}

func (e *RPCError) Unwrap() error {
	return e.Err
}

// ErrorOutcome classifies an invocation error into a short label for metrics and logs.
func ErrorOutcome(err error) string {
	var rpcErr *RPCError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrWrongNetwork):
		return "wrong_network"
	case errors.Is(err, ErrInvalidDescriptor):
		return "invalid_descriptor"
	case errors.Is(err, ErrUnknownOperation):
		return "unknown_operation"
	case errors.Is(err, ErrSignerUnavailable):
		return "signer_unavailable"
	case errors.As(err, &rpcErr):
		return "rpc_error"
	default:
		return "error"
	}
}
