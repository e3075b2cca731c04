package http

import (
	"member-admin/internal/member"
	"member-admin/pkg/response"

	"github.com/gin-gonic/gin"
)

func (h *Handler) reply(c *gin.Context, o member.ViewOutput, err error) {
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.discord)
		return
	}
	response.OK(c, h.newViewResp(o))
}

// Mount mounts a new table view
// @Summary Mount view
// @Description Create a table view and populate it with one fetch from the member source. A failed fetch yields an empty view with fetch_failed set.
// @Tags Views
// @Produce json
// @Success 201 {object} response.Resp{data=viewResp}
// @Failure 503 {object} response.Resp "Too many open views"
// @Router /api/v1/views [POST]
func (h *Handler) Mount(c *gin.Context) {
	o, err := h.uc.Mount(c.Request.Context())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.discord)
		return
	}
	response.Created(c, h.newViewResp(o))
}

// Detail renders a view
// @Summary Get view
// @Tags Views
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} response.Resp{data=viewResp}
// @Failure 404 {object} response.Resp "View not found"
// @Router /api/v1/views/{id} [GET]
func (h *Handler) Detail(c *gin.Context) {
	viewID, err := h.processViewRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	o, err := h.uc.Detail(c.Request.Context(), viewID)
	h.reply(c, o, err)
}

// Unmount discards a view
// @Summary Unmount view
// @Tags Views
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp "View not found"
// @Router /api/v1/views/{id} [DELETE]
func (h *Handler) Unmount(c *gin.Context) {
	viewID, err := h.processViewRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	if err := h.uc.Unmount(c.Request.Context(), viewID); err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.discord)
		return
	}
	response.OK(c, nil)
}

// Search sets the search query
// @Summary Search
// @Description Case-insensitive substring match over id, name, email and role. Resets to page 1.
// @Tags Views
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param body body searchReq true "Query"
// @Success 200 {object} response.Resp{data=viewResp}
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp "View not found"
// @Router /api/v1/views/{id}/search [PUT]
func (h *Handler) Search(c *gin.Context) {
	ip, err := h.processSearchRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	o, err := h.uc.Search(c.Request.Context(), ip)
	h.reply(c, o, err)
}

// GoToPage moves to a page
// @Summary Go to page
// @Description Pages outside [1, total_pages] are ignored.
// @Tags Views
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param body body goToPageReq true "Page"
// @Success 200 {object} response.Resp{data=viewResp}
// @Failure 404 {object} response.Resp "View not found"
// @Router /api/v1/views/{id}/page [PUT]
func (h *Handler) GoToPage(c *gin.Context) {
	ip, err := h.processGoToPageRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	o, err := h.uc.GoToPage(c.Request.Context(), ip)
	h.reply(c, o, err)
}

// ToggleSelect flips the selection of one row
// @Summary Toggle row selection
// @Tags Selection
// @Produce json
// @Param id path string true "View ID"
// @Param member_id path string true "Member ID"
// @Success 200 {object} response.Resp{data=viewResp}
// @Failure 404 {object} response.Resp "View not found"
// @Router /api/v1/views/{id}/selection/{member_id} [POST]
func (h *Handler) ToggleSelect(c *gin.Context) {
	ip, err := h.processMemberRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	o, err := h.uc.ToggleSelect(c.Request.Context(), ip)
	h.reply(c, o, err)
}

// TogglePageSelection selects or deselects the current page
// @Summary Toggle page selection
// @Description Deselects the page when every row on it is selected, otherwise selects all of it.
// @Tags Selection
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} response.Resp{data=viewResp}
// @Failure 404 {object} response.Resp "View not found"
// @Router /api/v1/views/{id}/selection/page [POST]
func (h *Handler) TogglePageSelection(c *gin.Context) {
	viewID, err := h.processViewRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	o, err := h.uc.TogglePageSelection(c.Request.Context(), viewID)
	h.reply(c, o, err)
}

// ClearSelection empties the selection
// @Summary Clear selection
// @Tags Selection
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} response.Resp{data=viewResp}
// @Failure 404 {object} response.Resp "View not found"
// @Router /api/v1/views/{id}/selection [DELETE]
func (h *Handler) ClearSelection(c *gin.Context) {
	viewID, err := h.processViewRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	o, err := h.uc.ClearSelection(c.Request.Context(), viewID)
	h.reply(c, o, err)
}

// StartEdit puts a row into edit mode
// @Summary Start edit
// @Tags Edit
// @Produce json
// @Param id path string true "View ID"
// @Param member_id path string true "Member ID"
// @Success 200 {object} response.Resp{data=viewResp}
// @Failure 404 {object} response.Resp "View not found"
// @Router /api/v1/views/{id}/edit/{member_id} [POST]
func (h *Handler) StartEdit(c *gin.Context) {
	ip, err := h.processMemberRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	o, err := h.uc.StartEdit(c.Request.Context(), ip)
	h.reply(c, o, err)
}

// UpdateField writes one field of the row being edited
// @Summary Update field
// @Description Only applies to the row in edit mode. Field is one of name, email, role.
// @Tags Edit
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param member_id path string true "Member ID"
// @Param body body updateFieldReq true "Field and value"
// @Success 200 {object} response.Resp{data=viewResp}
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp "View not found"
// @Router /api/v1/views/{id}/members/{member_id} [PATCH]
func (h *Handler) UpdateField(c *gin.Context) {
	ip, err := h.processUpdateFieldRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	o, err := h.uc.UpdateField(c.Request.Context(), ip)
	h.reply(c, o, err)
}

// SaveEdit leaves edit mode
// @Summary Save edit
// @Tags Edit
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} response.Resp{data=viewResp}
// @Failure 404 {object} response.Resp "View not found"
// @Router /api/v1/views/{id}/edit/save [POST]
func (h *Handler) SaveEdit(c *gin.Context) {
	viewID, err := h.processViewRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	o, err := h.uc.SaveEdit(c.Request.Context(), viewID)
	h.reply(c, o, err)
}

// Delete removes one row
// @Summary Delete row
// @Tags Delete
// @Produce json
// @Param id path string true "View ID"
// @Param member_id path string true "Member ID"
// @Success 200 {object} response.Resp{data=viewResp}
// @Failure 404 {object} response.Resp "View not found"
// @Router /api/v1/views/{id}/members/{member_id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ip, err := h.processMemberRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	o, err := h.uc.Delete(c.Request.Context(), ip)
	h.reply(c, o, err)
}

// DeleteSelected removes every selected row
// @Summary Delete selected rows
// @Tags Delete
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} response.Resp{data=viewResp}
// @Failure 404 {object} response.Resp "View not found"
// @Router /api/v1/views/{id}/members [DELETE]
func (h *Handler) DeleteSelected(c *gin.Context) {
	viewID, err := h.processViewRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	o, err := h.uc.DeleteSelected(c.Request.Context(), viewID)
	h.reply(c, o, err)
}

// DeletePage removes every row of the current page
// @Summary Delete page
// @Tags Delete
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} response.Resp{data=viewResp}
// @Failure 404 {object} response.Resp "View not found"
// @Router /api/v1/views/{id}/page [DELETE]
func (h *Handler) DeletePage(c *gin.Context) {
	viewID, err := h.processViewRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	o, err := h.uc.DeletePage(c.Request.Context(), viewID)
	h.reply(c, o, err)
}
