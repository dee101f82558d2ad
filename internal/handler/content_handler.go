package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/icerikfikri/blog-backend/internal/common"
	"github.com/icerikfikri/blog-backend/internal/domain"
	"github.com/icerikfikri/blog-backend/internal/service"
	"github.com/icerikfikri/blog-backend/pkg/ginutil"
)

// ContentHandler handles block editing of a blog body
type ContentHandler struct {
	service service.ContentService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(service service.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// Blocks godoc
// @Summary      Blocks of a blog (editor)
// @Tags         admin
// @Produce      json
// @Security     CookieAuth
// @Param        id  path  string  true  "blog id"
// @Success      200  {object}  common.APIResponse{data=domain.BlocksResponse}
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/blogs/{id}/blocks [get]
func (h *ContentHandler) Blocks(c *gin.Context) {
	blogID, ok := ginutil.ParamUUID(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid blog id", nil)
		return
	}

	resp, err := h.service.Blocks(c.Request.Context(), blogID)
	if err != nil {
		respondError(c, err, "Failed to load blocks")
		return
	}
	common.SuccessResponse(c, resp, nil)
}

// UpsertBlock godoc
// @Summary      Append or replace a block
// @Description  Appends when content_id is missing or unknown, otherwise replaces that block
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id       path  string                     true  "blog id"
// @Param        request  body  domain.UpsertBlockRequest  true  "block"
// @Success      200  {object}  common.APIResponse{data=domain.BlockMutationResponse}
// @Failure      404  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /admin/blogs/{id}/blocks [post]
func (h *ContentHandler) UpsertBlock(c *gin.Context) {
	blogID, ok := ginutil.ParamUUID(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid blog id", nil)
		return
	}

	var req domain.UpsertBlockRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.UpsertBlock(c.Request.Context(), blogID, &req)
	if err != nil {
		respondError(c, err, "Failed to save block")
		return
	}
	common.SuccessResponse(c, resp, nil)
}

// ReorderBlocks godoc
// @Summary      Reorder all blocks
// @Description  Rebuilds the body in the given order (ids 1..N)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id       path  string                       true  "blog id"
// @Param        request  body  domain.ReorderBlocksRequest  true  "items in order"
// @Success      200  {object}  common.APIResponse{data=domain.BlockMutationResponse}
// @Failure      404  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /admin/blogs/{id}/blocks/order [put]
func (h *ContentHandler) ReorderBlocks(c *gin.Context) {
	blogID, ok := ginutil.ParamUUID(c, "id")
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid blog id", nil)
		return
	}

	var req domain.ReorderBlocksRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.ReorderBlocks(c.Request.Context(), blogID, req.Items)
	if err != nil {
		respondError(c, err, "Failed to reorder blocks")
		return
	}
	common.SuccessResponse(c, resp, nil)
}
