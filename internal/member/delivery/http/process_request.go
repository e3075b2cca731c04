package http

import (
	"strings"

	"member-admin/internal/member"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processViewRequest(c *gin.Context) (string, error) {
	viewID := strings.TrimSpace(c.Param("id"))
	if viewID == "" {
		return "", errWrongParam
	}
	return viewID, nil
}

func (h *Handler) processMemberRequest(c *gin.Context) (member.MemberInput, error) {
	viewID, err := h.processViewRequest(c)
	if err != nil {
		return member.MemberInput{}, err
	}
	memberID := strings.TrimSpace(c.Param("member_id"))
	if memberID == "" {
		return member.MemberInput{}, errWrongParam
	}
	return member.MemberInput{ViewID: viewID, MemberID: memberID}, nil
}

func (h *Handler) processSearchRequest(c *gin.Context) (member.SearchInput, error) {
	viewID, err := h.processViewRequest(c)
	if err != nil {
		return member.SearchInput{}, err
	}
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.member.delivery.http.processSearchRequest.ShouldBindJSON: %v", err)
		return member.SearchInput{}, errWrongBody
	}
	return req.toInput(viewID), nil
}

func (h *Handler) processGoToPageRequest(c *gin.Context) (member.GoToPageInput, error) {
	viewID, err := h.processViewRequest(c)
	if err != nil {
		return member.GoToPageInput{}, err
	}
	var req goToPageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.member.delivery.http.processGoToPageRequest.ShouldBindJSON: %v", err)
		return member.GoToPageInput{}, errWrongBody
	}
	return req.toInput(viewID), nil
}

func (h *Handler) processUpdateFieldRequest(c *gin.Context) (member.UpdateFieldInput, error) {
	in, err := h.processMemberRequest(c)
	if err != nil {
		return member.UpdateFieldInput{}, err
	}
	var req updateFieldReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.member.delivery.http.processUpdateFieldRequest.ShouldBindJSON: %v", err)
		return member.UpdateFieldInput{}, errWrongBody
	}
	return req.toInput(in.ViewID, in.MemberID), nil
}
