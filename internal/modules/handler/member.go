package handler

import (
	"errors"
	"net/http"

	"github.com/annotext/annotext/internal/modules/model"
	"github.com/annotext/annotext/internal/modules/serializer"
	"github.com/annotext/annotext/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MemberHandler struct {
	svc service.MemberService
}

func NewMemberHandler(s service.MemberService) *MemberHandler {
	return &MemberHandler{svc: s}
}

// ListMembers godoc
//
//	@Summary		List members
//	@Description	List the project's role assignments
//	@Tags			member
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Member}
//	@Router			/projects/{project_id}/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	project, ok := c.MustGet("project").(*model.Project)
	if !ok {
		c.JSON(http.StatusForbidden, serializer.ForbiddenErr(""))
		return
	}

	items, err := h.svc.List(c.Request.Context(), project.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	if items == nil {
		items = []model.Member{}
	}

	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

type AddMemberReq struct {
	Username string `form:"username" json:"username" binding:"required"`
	Rolename string `form:"rolename" json:"rolename" binding:"required"`
}

// AddMember godoc
//
//	@Summary		Add member
//	@Description	Assign a role to a user in this project; admins only
//	@Tags			member
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string				true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.AddMemberReq	true	"AddMember payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Member}
//	@Router			/projects/{project_id}/members [post]
func (h *MemberHandler) AddMember(c *gin.Context) {
	req := AddMemberReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	project, ok := c.MustGet("project").(*model.Project)
	if !ok {
		c.JSON(http.StatusForbidden, serializer.ForbiddenErr(""))
		return
	}

	member, err := h.svc.Add(c.Request.Context(), project.ID, req.Username, req.Rolename)
	if err != nil {
		if errors.Is(err, service.ErrUnknownUser) || errors.Is(err, service.ErrUnknownRole) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: member})
}

// RemoveMember godoc
//
//	@Summary		Remove member
//	@Description	Remove a role assignment; admins only
//	@Tags			member
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			member_id	path	string	true	"Member ID"		Format(uuid)
//	@Security		BearerAuth
//	@Success		204	{object}	nil
//	@Router			/projects/{project_id}/members/{member_id} [delete]
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("member_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	project, ok := c.MustGet("project").(*model.Project)
	if !ok {
		c.JSON(http.StatusForbidden, serializer.ForbiddenErr(""))
		return
	}

	if err := h.svc.Remove(c.Request.Context(), project.ID, memberID); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.Status(http.StatusNoContent)
}
