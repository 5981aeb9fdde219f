package restapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jurisdiction_gateway/internal/app/port"
	"jurisdiction_gateway/internal/app/service"
	"jurisdiction_gateway/internal/domain/entity"
	"jurisdiction_gateway/internal/pkg/abiargs"
)

// CallBody is one generic contract call.
type CallBody struct {
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// BatchBody is a list of reads against one contract.
type BatchBody struct {
	Calls []CallBody `json:"calls"`
}

// TxResponse is returned by every mutating endpoint. The transaction is not yet mined.
type TxResponse struct {
	TxHash    string `json:"txHash"`
	Operation string `json:"operation"`
	Nonce     uint64 `json:"nonce"`
	To        string `json:"to,omitempty"`
}

// CallResponse carries rendered read values.
type CallResponse struct {
	Method string `json:"method"`
	Values []any  `json:"values"`
}

// BatchItemResponse is one entry of a batch read.
type BatchItemResponse struct {
	Method string `json:"method"`
	Values []any  `json:"values,omitempty"`
	Error  string `json:"error,omitempty"`
	Code   string `json:"code,omitempty"`
}

// ContractHandler exposes the gateway generically: any known contract, any method.
type ContractHandler struct {
	networks    port.NetworkContextProvider
	descriptors port.DescriptorProvider
	gateway     port.ContractGateway
	batch       *service.BatchReader
}

// NewContractHandler creates a ContractHandler.
func NewContractHandler(
	networks port.NetworkContextProvider,
	descriptors port.DescriptorProvider,
	gateway port.ContractGateway,
	batch *service.BatchReader,
) *ContractHandler {
	return &ContractHandler{networks: networks, descriptors: descriptors, gateway: gateway, batch: batch}
}

// ListContractsHandler lists the contracts an interface is known for.
func (h *ContractHandler) ListContractsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"contracts": h.descriptors.ContractNames()})
}

// CallHandler performs a read.
func (h *ContractHandler) CallHandler(c *gin.Context) {
	h.invoke(c, false)
}

// TransactHandler submits a transaction and answers without waiting for it to be mined.
func (h *ContractHandler) TransactHandler(c *gin.Context) {
	h.invoke(c, true)
}

func (h *ContractHandler) invoke(c *gin.Context, mutating bool) {
	var body CallBody
	if err := decodeBody(c, &body); err != nil {
		writeBadRequest(c, err.Error())
		return
	}
	descriptor, err := h.descriptors.Descriptor(c.Param("contract"), c.Param("address"))
	if err != nil {
		writeError(c, err)
		return
	}
	args, err := coerceArgs(descriptor, body)
	if err != nil {
		writeError(c, err)
		return
	}
	netCtx, err := h.networks.Current(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	result, err := h.gateway.Invoke(c.Request.Context(), descriptor,
		entity.CallRequest{Operation: body.Method, Args: args, Mutating: mutating}, netCtx)
	if err != nil {
		writeError(c, err)
		return
	}
	if mutating {
		writeTx(c, body.Method, result)
		return
	}
	c.JSON(http.StatusOK, CallResponse{Method: body.Method, Values: abiargs.RenderAll(result.Values)})
}

// BatchHandler runs several reads concurrently and reports each outcome.
func (h *ContractHandler) BatchHandler(c *gin.Context) {
	var body BatchBody
	if err := decodeBody(c, &body); err != nil {
		writeBadRequest(c, err.Error())
		return
	}
	if len(body.Calls) == 0 {
		writeBadRequest(c, "calls must not be empty")
		return
	}
	descriptor, err := h.descriptors.Descriptor(c.Param("contract"), c.Param("address"))
	if err != nil {
		writeError(c, err)
		return
	}

	calls := make([]entity.CallRequest, len(body.Calls))
	for i, call := range body.Calls {
		args, err := coerceArgs(descriptor, call)
		if err != nil {
			writeError(c, fmt.Errorf("call %d: %w", i, err))
			return
		}
		calls[i] = entity.CallRequest{Operation: call.Method, Args: args}
	}

	netCtx, err := h.networks.Current(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	items, err := h.batch.ReadAll(c.Request.Context(), descriptor, calls, netCtx)
	if err != nil {
		writeError(c, err)
		return
	}

	results := make([]BatchItemResponse, len(items))
	for i, item := range items {
		results[i] = BatchItemResponse{Method: item.Operation}
		if item.Err != nil {
			_, results[i].Code = statusFor(item.Err)
			results[i].Error = item.Err.Error()
			continue
		}
		results[i].Values = abiargs.RenderAll(item.Values)
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// coerceArgs converts JSON arguments to the method's input types. Unknown methods keep their
// raw arguments so the gateway reports them as unknown operations.
func coerceArgs(descriptor entity.ContractDescriptor, body CallBody) ([]any, error) {
	if body.Method == "" {
		return nil, fmt.Errorf("%w: method is required", entity.ErrInvalidArgument)
	}
	if descriptor.ABI == nil {
		return body.Args, nil
	}
	method, ok := descriptor.ABI.Methods[body.Method]
	if !ok {
		return body.Args, nil
	}
	return abiargs.Coerce(method, body.Args)
}

func writeTx(c *gin.Context, operation string, result entity.CallResult) {
	resp := TxResponse{
		TxHash:    result.Tx.Hash().Hex(),
		Operation: operation,
		Nonce:     result.Tx.Nonce(),
	}
	if to := result.Tx.To(); to != nil {
		resp.To = to.Hex()
	}
	c.JSON(http.StatusAccepted, resp)
}
