package handler

import (
	"net/http"

	"github.com/annotext/annotext/internal/modules/model"
	"github.com/annotext/annotext/internal/modules/serializer"
	"github.com/annotext/annotext/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	svc service.DocumentService
}

func NewDocumentHandler(s service.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: s}
}

type ListDocumentsReq struct {
	Limit  int `form:"limit,default=20" json:"limit" binding:"omitempty,min=1,max=200"`
	Offset int `form:"offset,default=0" json:"offset" binding:"omitempty,min=0"`
}

// ListDocuments godoc
//
//	@Summary		List documents
//	@Description	Page through the project's documents
//	@Tags			document
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			limit		query	integer	false	"Page size, default 20, max 200"
//	@Param			offset		query	integer	false	"Page offset"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.ListDocumentsOutput}
//	@Router			/projects/{project_id}/docs [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	req := ListDocumentsReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	project, ok := c.MustGet("project").(*model.Project)
	if !ok {
		c.JSON(http.StatusForbidden, serializer.ForbiddenErr(""))
		return
	}

	out, err := h.svc.List(c.Request.Context(), service.ListDocumentsInput{
		ProjectID: project.ID,
		Limit:     req.Limit,
		Offset:    req.Offset,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: out})
}
