package handler

import (
	"errors"
	"net/http"

	"github.com/annotext/annotext/internal/modules/model"
	"github.com/annotext/annotext/internal/modules/serializer"
	"github.com/annotext/annotext/internal/modules/service"
	"github.com/annotext/annotext/internal/pkg/textformat"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	svc service.UploadService
}

func NewUploadHandler(s service.UploadService) *UploadHandler {
	return &UploadHandler{svc: s}
}

type UploadResp struct {
	Count int `json:"count"`
}

// UploadDocuments godoc
//
//	@Summary		Upload dataset
//	@Description	Import a dataset file into the project; admins only
//	@Tags			document
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			project_id	path		string	true	"Project ID"	Format(uuid)
//	@Param			file		formData	file	true	"Dataset file"
//	@Param			format		formData	string	true	"File format: plain, csv, excel, json, conll or txt"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=handler.UploadResp}
//	@Router			/projects/{project_id}/docs/upload [post]
func (h *UploadHandler) UploadDocuments(c *gin.Context) {
	format := c.PostForm("format")
	if format == "" {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("format is required", nil))
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("file is required", err))
		return
	}

	project, ok := c.MustGet("project").(*model.Project)
	if !ok {
		c.JSON(http.StatusForbidden, serializer.ForbiddenErr(""))
		return
	}

	file, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	defer file.Close()

	count, err := h.svc.Upload(c.Request.Context(), project, format, file)
	if err != nil {
		if textformat.IsParseError(err) || errors.Is(err, textformat.ErrUnknownFormat) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: UploadResp{Count: count}})
}
