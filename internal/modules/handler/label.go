package handler

import (
	"errors"
	"net/http"

	"github.com/annotext/annotext/internal/modules/model"
	"github.com/annotext/annotext/internal/modules/serializer"
	"github.com/annotext/annotext/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type LabelHandler struct {
	svc service.LabelService
}

func NewLabelHandler(s service.LabelService) *LabelHandler {
	return &LabelHandler{svc: s}
}

// ListLabels godoc
//
//	@Summary		List labels
//	@Description	List the project's labels
//	@Tags			label
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Label}
//	@Router			/projects/{project_id}/labels [get]
func (h *LabelHandler) ListLabels(c *gin.Context) {
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
		items = []model.Label{}
	}

	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

type CreateLabelReq struct {
	Text            string  `form:"text" json:"text" binding:"required,max=100"`
	PrefixKey       *string `form:"prefix_key" json:"prefix_key"`
	SuffixKey       *string `form:"suffix_key" json:"suffix_key"`
	BackgroundColor string  `form:"background_color" json:"background_color"`
	TextColor       string  `form:"text_color" json:"text_color"`
}

// CreateLabel godoc
//
//	@Summary		Create label
//	@Description	Create a label in this project; admins only
//	@Tags			label
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string					true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.CreateLabelReq	true	"CreateLabel payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Label}
//	@Router			/projects/{project_id}/labels [post]
func (h *LabelHandler) CreateLabel(c *gin.Context) {
	req := CreateLabelReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	project, ok := c.MustGet("project").(*model.Project)
	if !ok {
		c.JSON(http.StatusForbidden, serializer.ForbiddenErr(""))
		return
	}

	label, err := h.svc.Create(c.Request.Context(), project.ID, service.CreateLabelInput{
		Text:            req.Text,
		PrefixKey:       req.PrefixKey,
		SuffixKey:       req.SuffixKey,
		BackgroundColor: req.BackgroundColor,
		TextColor:       req.TextColor,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicateLabel) || errors.Is(err, service.ErrDuplicateShortcut) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: label})
}
