package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/annotext/annotext/internal/modules/model"
	"github.com/annotext/annotext/internal/modules/serializer"
	"github.com/annotext/annotext/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type DownloadHandler struct {
	svc service.DownloadService
}

func NewDownloadHandler(s service.DownloadService) *DownloadHandler {
	return &DownloadHandler{svc: s}
}

type DownloadReq struct {
	Format string `form:"q" binding:"required"`
}

// DownloadDocuments godoc
//
//	@Summary		Download dataset
//	@Description	Serialize the project's documents and labels into the requested format
//	@Tags			document
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			q			query	string	true	"Download format: csv, json, jsonl or txt"
//	@Security		BearerAuth
//	@Success		200	{file}		file
//	@Router			/projects/{project_id}/docs/download [get]
func (h *DownloadHandler) DownloadDocuments(c *gin.Context) {
	req := DownloadReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	project, ok := c.MustGet("project").(*model.Project)
	if !ok {
		c.JSON(http.StatusForbidden, serializer.ForbiddenErr(""))
		return
	}

	payload, err := h.svc.Download(c.Request.Context(), project, req.Format)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedExport) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", payload.Filename))
	c.Data(http.StatusOK, payload.ContentType, payload.Data)
}
