package restapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jurisdiction_gateway/internal/app/port"
	"jurisdiction_gateway/internal/app/service"
	"jurisdiction_gateway/internal/domain/entity"
)

// PostBody is the payload of a new case post.
type PostBody struct {
	EntityRole string `json:"entityRole"`
	URI        string `json:"uri"`
}

// VerdictBody closes a case.
type VerdictBody struct {
	VerdictURI string `json:"verdictUri"`
}

// CaseHandler handles case posts and stage transitions.
type CaseHandler struct {
	networks port.NetworkContextProvider
	cases    *service.CaseContract
}

// NewCaseHandler creates a CaseHandler.
func NewCaseHandler(networks port.NetworkContextProvider, cases *service.CaseContract) *CaseHandler {
	return &CaseHandler{networks: networks, cases: cases}
}

// AddPostHandler publishes a post to the case.
func (h *CaseHandler) AddPostHandler(c *gin.Context) {
	var body PostBody
	if err := decodeBody(c, &body); err != nil {
		writeBadRequest(c, err.Error())
		return
	}
	netCtx, err := h.networks.Current(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	result, err := h.cases.AddPost(c.Request.Context(), netCtx, c.Param("address"), body.EntityRole, body.URI)
	if err != nil {
		writeError(c, err)
		return
	}
	writeTx(c, "post", result)
}

// SetStageHandler moves the case to open, verdict or closed.
func (h *CaseHandler) SetStageHandler(c *gin.Context) {
	address := c.Param("address")
	stage := c.Param("stage")

	var verdict VerdictBody
	if stage == entity.CaseStageClosed.String() {
		if err := decodeBody(c, &verdict); err != nil {
			writeBadRequest(c, err.Error())
			return
		}
	}

	netCtx, err := h.networks.Current(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	var (
		result    entity.CallResult
		operation string
	)
	switch stage {
	case entity.CaseStageOpen.String():
		operation = "stageFile"
		result, err = h.cases.SetStageOpen(c.Request.Context(), netCtx, address)
	case entity.CaseStageVerdict.String():
		operation = "stageWaitForVerdict"
		result, err = h.cases.SetStageVerdict(c.Request.Context(), netCtx, address)
	case entity.CaseStageClosed.String():
		operation = "stageVerdict"
		result, err = h.cases.SetStageClosed(c.Request.Context(), netCtx, address, verdict.VerdictURI)
	default:
		err = fmt.Errorf("%w: unknown stage %q, expected open, verdict or closed", entity.ErrInvalidArgument, stage)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	writeTx(c, operation, result)
}

// GetStageHandler reads the current stage.
func (h *CaseHandler) GetStageHandler(c *gin.Context) {
	netCtx, err := h.networks.Current(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	stage, err := h.cases.Stage(c.Request.Context(), netCtx, c.Param("address"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stage": stage.String(), "value": uint8(stage)})
}
