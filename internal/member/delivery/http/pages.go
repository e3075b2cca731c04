package http

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"member-admin/internal/member"
	"member-admin/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

const tableTemplate = "table.html"

var editableFields = []string{model.FieldName, model.FieldEmail, model.FieldRole}

var templateFuncs = template.FuncMap{
	"viewURL": viewURL,
}

type pageData struct {
	View  member.ViewOutput
	Error string
}

func viewURL(viewID string) string {
	return "/views/" + url.PathEscape(viewID)
}

func (h *Handler) renderTable(c *gin.Context, o member.ViewOutput, errMsg string) {
	c.Render(http.StatusOK, render.HTML{
		Template: h.tmpl,
		Name:     tableTemplate,
		Data:     pageData{View: o, Error: errMsg},
	})
}

// back redirects to the view after a form post. Validation failures are carried in the error query parameter.
func (h *Handler) back(c *gin.Context, viewID string, err error) {
	if err == nil {
		c.Redirect(http.StatusSeeOther, viewURL(viewID))
		return
	}

	switch {
	case errors.Is(err, member.ErrViewNotFound):
		c.Redirect(http.StatusSeeOther, "/")
	case errors.Is(err, member.ErrInvalidValue), errors.Is(err, member.ErrInvalidField):
		c.Redirect(http.StatusSeeOther, viewURL(viewID)+"?"+url.Values{"error": {err.Error()}}.Encode())
	default:
		h.l.Errorf(c.Request.Context(), "internal.member.delivery.http.back: %v", err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func (h *Handler) pageMount(c *gin.Context) {
	o, err := h.uc.Mount(c.Request.Context())
	if err != nil {
		if errors.Is(err, member.ErrTooManyViews) {
			c.String(http.StatusServiceUnavailable, errTooManyViews.Message)
			return
		}
		h.back(c, "", err)
		return
	}
	c.Redirect(http.StatusSeeOther, viewURL(o.ViewID))
}

func (h *Handler) pageView(c *gin.Context) {
	o, err := h.uc.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.back(c, c.Param("id"), err)
		return
	}
	h.renderTable(c, o, c.Query("error"))
}

func (h *Handler) pageSearch(c *gin.Context) {
	viewID := c.Param("id")
	_, err := h.uc.Search(c.Request.Context(), member.SearchInput{ViewID: viewID, Query: c.PostForm("query")})
	h.back(c, viewID, err)
}

func (h *Handler) pageGoTo(c *gin.Context) {
	viewID := c.Param("id")
	page, err := strconv.Atoi(c.PostForm("page"))
	if err != nil {
		// Not a page number: same as an out-of-range target.
		h.back(c, viewID, nil)
		return
	}
	_, err = h.uc.GoToPage(c.Request.Context(), member.GoToPageInput{ViewID: viewID, Page: page})
	h.back(c, viewID, err)
}

func (h *Handler) pageToggleSelect(c *gin.Context) {
	viewID := c.Param("id")
	_, err := h.uc.ToggleSelect(c.Request.Context(), member.MemberInput{ViewID: viewID, MemberID: c.PostForm("member_id")})
	h.back(c, viewID, err)
}

func (h *Handler) pageTogglePageSelection(c *gin.Context) {
	viewID := c.Param("id")
	_, err := h.uc.TogglePageSelection(c.Request.Context(), viewID)
	h.back(c, viewID, err)
}

func (h *Handler) pageStartEdit(c *gin.Context) {
	viewID := c.Param("id")
	_, err := h.uc.StartEdit(c.Request.Context(), member.MemberInput{ViewID: viewID, MemberID: c.PostForm("member_id")})
	h.back(c, viewID, err)
}

// pageSaveEdit writes every submitted field of the edit row, then leaves edit mode.
// A rejected value keeps the row in edit mode.
func (h *Handler) pageSaveEdit(c *gin.Context) {
	ctx := c.Request.Context()
	viewID := c.Param("id")
	memberID := c.PostForm("member_id")

	for _, field := range editableFields {
		value, ok := c.GetPostForm(field)
		if !ok {
			continue
		}
		_, err := h.uc.UpdateField(ctx, member.UpdateFieldInput{
			ViewID:   viewID,
			MemberID: memberID,
			Field:    field,
			Value:    value,
		})
		if err != nil {
			h.back(c, viewID, err)
			return
		}
	}

	_, err := h.uc.SaveEdit(ctx, viewID)
	h.back(c, viewID, err)
}

func (h *Handler) pageDelete(c *gin.Context) {
	viewID := c.Param("id")
	_, err := h.uc.Delete(c.Request.Context(), member.MemberInput{ViewID: viewID, MemberID: c.PostForm("member_id")})
	h.back(c, viewID, err)
}

func (h *Handler) pageDeleteSelected(c *gin.Context) {
	viewID := c.Param("id")
	_, err := h.uc.DeleteSelected(c.Request.Context(), viewID)
	h.back(c, viewID, err)
}

func (h *Handler) pageDeletePage(c *gin.Context) {
	viewID := c.Param("id")
	_, err := h.uc.DeletePage(c.Request.Context(), viewID)
	h.back(c, viewID, err)
}
