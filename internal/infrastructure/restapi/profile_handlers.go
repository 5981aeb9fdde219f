package restapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jurisdiction_gateway/internal/app/port"
	"jurisdiction_gateway/internal/app/service"
	"jurisdiction_gateway/internal/domain/entity"
)

// ReputationBody adds reputation to a profile. Rating is required since 0 is a negative vote;
// amount defaults to one.
type ReputationBody struct {
	Domain string `json:"domain"`
	Rating *uint8 `json:"rating"`
	Amount uint8  `json:"amount"`
}

// ProfileHandler reads and scores avatar reputation.
type ProfileHandler struct {
	networks port.NetworkContextProvider
	avatars  *service.AvatarNFTContract
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(networks port.NetworkContextProvider, avatars *service.AvatarNFTContract) *ProfileHandler {
	return &ProfileHandler{networks: networks, avatars: avatars}
}

// AddReputationHandler scores the profile under :tokenId.
func (h *ProfileHandler) AddReputationHandler(c *gin.Context) {
	var body ReputationBody
	if err := decodeBody(c, &body); err != nil {
		writeBadRequest(c, err.Error())
		return
	}
	if body.Rating == nil {
		writeError(c, fmt.Errorf("%w: rating is required (0 negative, 1 positive)", entity.ErrInvalidArgument))
		return
	}
	netCtx, err := h.networks.Current(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	result, err := h.avatars.AddReputation(c.Request.Context(), netCtx, c.Param("tokenId"), body.Domain,
		entity.ReputationRating(*body.Rating), body.Amount)
	if err != nil {
		writeError(c, err)
		return
	}
	writeTx(c, "repAdd", result)
}

// GetReputationHandler reads the score for ?domain=&rating=.
func (h *ProfileHandler) GetReputationHandler(c *gin.Context) {
	domain := c.Query("domain")
	rating, err := strconv.ParseUint(c.DefaultQuery("rating", "1"), 10, 8)
	if err != nil {
		writeError(c, fmt.Errorf("%w: rating must be 0 or 1", entity.ErrInvalidArgument))
		return
	}

	netCtx, err := h.networks.Current(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	score, err := h.avatars.Reputation(c.Request.Context(), netCtx, c.Param("tokenId"), domain, entity.ReputationRating(rating))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tokenId": c.Param("tokenId"),
		"domain":  domain,
		"rating":  rating,
		"score":   score.String(),
	})
}
