package restapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jurisdiction_gateway/internal/app/port"
	"jurisdiction_gateway/internal/app/service"
	"jurisdiction_gateway/internal/domain/entity"
	"jurisdiction_gateway/internal/pkg/abiargs"
)

// RuleBody is a rule as sent over HTTP. About is 0x-hex of 32 bytes or a short plain string.
type RuleBody struct {
	About    string             `json:"about"`
	Affected string             `json:"affected"`
	Negation bool               `json:"negation"`
	URI      string             `json:"uri"`
	Effects  entity.RuleEffects `json:"effects"`
}

// AddRuleBody creates a rule; a missing confirmation gets the default one.
type AddRuleBody struct {
	Rule         RuleBody             `json:"rule"`
	Confirmation *entity.Confirmation `json:"confirmation,omitempty"`
}

// UpdateRuleBody replaces a rule.
type UpdateRuleBody struct {
	Rule RuleBody `json:"rule"`
}

func (b RuleBody) toRule() (entity.Rule, error) {
	about, err := abiargs.Bytes32(b.About)
	if err != nil {
		return entity.Rule{}, err
	}
	return entity.Rule{
		About:    about,
		Affected: b.Affected,
		Negation: b.Negation,
		Uri:      b.URI,
		Effects:  b.Effects,
	}, nil
}

// JurisdictionHandler manages jurisdiction rules.
type JurisdictionHandler struct {
	networks      port.NetworkContextProvider
	jurisdictions *service.JurisdictionContract
}

// NewJurisdictionHandler creates a JurisdictionHandler.
func NewJurisdictionHandler(networks port.NetworkContextProvider, jurisdictions *service.JurisdictionContract) *JurisdictionHandler {
	return &JurisdictionHandler{networks: networks, jurisdictions: jurisdictions}
}

// AddRuleHandler submits a new rule.
func (h *JurisdictionHandler) AddRuleHandler(c *gin.Context) {
	var body AddRuleBody
	if err := decodeBody(c, &body); err != nil {
		writeBadRequest(c, err.Error())
		return
	}
	rule, err := body.Rule.toRule()
	if err != nil {
		writeBadRequest(c, "rule.about: "+err.Error())
		return
	}
	confirmation := entity.DefaultConfirmation()
	if body.Confirmation != nil {
		confirmation = *body.Confirmation
	}

	netCtx, err := h.networks.Current(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	result, err := h.jurisdictions.AddRule(c.Request.Context(), netCtx, c.Param("address"), rule, confirmation)
	if err != nil {
		writeError(c, err)
		return
	}
	writeTx(c, "ruleAdd", result)
}

// UpdateRuleHandler replaces the rule under :id.
func (h *JurisdictionHandler) UpdateRuleHandler(c *gin.Context) {
	var body UpdateRuleBody
	if err := decodeBody(c, &body); err != nil {
		writeBadRequest(c, err.Error())
		return
	}
	rule, err := body.Rule.toRule()
	if err != nil {
		writeBadRequest(c, "rule.about: "+err.Error())
		return
	}

	netCtx, err := h.networks.Current(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	result, err := h.jurisdictions.UpdateRule(c.Request.Context(), netCtx, c.Param("address"), c.Param("id"), rule)
	if err != nil {
		writeError(c, err)
		return
	}
	writeTx(c, "ruleUpdate", result)
}

// GetRuleHandler reads the rule under :id.
func (h *JurisdictionHandler) GetRuleHandler(c *gin.Context) {
	netCtx, err := h.networks.Current(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	rule, err := h.jurisdictions.GetRule(c.Request.Context(), netCtx, c.Param("address"), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "rule": abiargs.Render(rule)})
}
