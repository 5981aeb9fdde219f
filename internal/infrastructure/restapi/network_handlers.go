package restapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jurisdiction_gateway/internal/app/port"
	"jurisdiction_gateway/internal/domain/entity"
)

// NetworkHandler reports which network the gateway is attached to.
type NetworkHandler struct {
	networks    port.NetworkContextProvider
	definitions port.NetworkDefinitionProvider
}

// NewNetworkHandler creates a NetworkHandler.
func NewNetworkHandler(networks port.NetworkContextProvider, definitions port.NetworkDefinitionProvider) *NetworkHandler {
	return &NetworkHandler{networks: networks, definitions: definitions}
}

// GetNetworkHandler compares the live chain id with the expected one.
func (h *NetworkHandler) GetNetworkHandler(c *gin.Context) {
	netCtx, err := h.networks.Current(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	status := entity.NetworkStatus{
		ExpectedChainID: h.networks.ExpectedChainID(),
		CurrentChainID:  netCtx.ChainID,
		Match:           netCtx.ChainID != "" && netCtx.ChainID == h.networks.ExpectedChainID(),
	}
	if def, ok := h.definitions.GetNetworkDefinitionByChainID(netCtx.ChainID); ok {
		status.NetworkName = def.Name
	}
	if netCtx.Signer != nil {
		status.SignerAddress = netCtx.Signer.Address().Hex()
	}
	c.JSON(http.StatusOK, status)
}

// ListNetworksHandler lists every known network definition.
func (h *NetworkHandler) ListNetworksHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"networks": h.definitions.GetAllNetworkDefinitions()})
}
