package handler

import (
	"net/http"
	"player-data-api/internal/model"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	msgMissingUIDOrRegion = "Missing 'uid' or 'region' parameter"
	msgMissingUID         = "Missing 'uid' parameter"
	msgInvalidUID         = "Invalid UID format"
)

// GetPlayerData
// @Summary Get player data
// @Description Returns the synthesized player record for a uid as JSON
// @Tags players
// @Produce json
// @Param uid query int true "Player UID"
// @Param region query string true "Requesting region, echoed upper-cased"
// @Success 200 {object} model.PlayerDataResponse
// @Failure 400 {object} model.ErrorResponse "Missing or invalid parameter"
// @Failure 500 {object} model.ErrorResponse "Internal error"
// @Router /player-data [get]
func (h *Handler) GetPlayerData(c *gin.Context) {
	uidStr := c.Query("uid")
	region := c.Query("region")
	if uidStr == "" || region == "" {
		h.handleError(c, &model.RequestError{Kind: model.ErrMissingParameter, Message: msgMissingUIDOrRegion})
		return
	}

	uid, err := parseUID(uidStr)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp, err := h.playerService.GetPlayerData(c.Request.Context(), uid, region)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetEncryptedData
// @Summary Get encrypted player data
// @Description Returns the protobuf-encoded player record encrypted with AES-128-CBC and PKCS7 padding, hex encoded
// @Tags players
// @Produce json
// @Param uid query int true "Player UID"
// @Success 200 {object} model.EncryptedDataResponse
// @Failure 400 {object} model.ErrorResponse "Missing or invalid parameter"
// @Failure 500 {object} model.ErrorResponse "Internal error"
// @Router /encrypted-data [get]
func (h *Handler) GetEncryptedData(c *gin.Context) {
	uidStr := c.Query("uid")
	if uidStr == "" {
		h.handleError(c, &model.RequestError{Kind: model.ErrMissingParameter, Message: msgMissingUID})
		return
	}

	uid, err := parseUID(uidStr)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp, err := h.playerService.GetEncryptedData(c.Request.Context(), uid)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// parseUID accepts an optionally signed base-10 integer surrounded by
// whitespace, up to model.MaxUID.
func parseUID(s string) (int64, error) {
	uid, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || uid > model.MaxUID {
		return 0, &model.RequestError{Kind: model.ErrInvalidUIDFormat, Message: msgInvalidUID}
	}
	return uid, nil
}
