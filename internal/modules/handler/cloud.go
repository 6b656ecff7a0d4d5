package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/annotext/annotext/internal/infra/blob"
	"github.com/annotext/annotext/internal/modules/model"
	"github.com/annotext/annotext/internal/modules/serializer"
	"github.com/annotext/annotext/internal/modules/service"
	"github.com/annotext/annotext/internal/pkg/textformat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CloudUploadHandler struct {
	uploads  service.UploadService
	projects service.ProjectService
}

func NewCloudUploadHandler(uploads service.UploadService, projects service.ProjectService) *CloudUploadHandler {
	return &CloudUploadHandler{uploads: uploads, projects: projects}
}

type CloudUploadReq struct {
	ProjectID string `form:"project_id" binding:"required"`
	Format    string `form:"upload_format" binding:"required"`
	Container string `form:"container" binding:"required"`
	Object    string `form:"object" binding:"required"`
	Next      string `form:"next"`
}

// CloudUpload godoc
//
//	@Summary		Upload dataset from cloud storage
//	@Description	Import a dataset object from the configured storage container
//	@Tags			document
//	@Produce		json
//	@Param			project_id		query	string	true	"Project ID"	Format(uuid)
//	@Param			upload_format	query	string	true	"File format: plain, csv, excel, json, conll or txt"
//	@Param			container		query	string	true	"Storage container name"
//	@Param			object			query	string	true	"Object name within the container"
//	@Param			next			query	string	false	"Redirect target after import; $project_id is substituted"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=handler.UploadResp}
//	@Success		302	{object}	nil
//	@Router			/cloud-upload [get]
func (h *CloudUploadHandler) CloudUpload(c *gin.Context) {
	req := CloudUploadReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, ok := c.MustGet("user").(*model.User)
	if !ok {
		c.JSON(http.StatusForbidden, serializer.ForbiddenErr(""))
		return
	}

	project, err := h.projects.Get(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusForbidden, serializer.ForbiddenErr(""))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	role, err := h.projects.RoleFor(c.Request.Context(), user, projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	if role != model.RoleProjectAdmin {
		c.JSON(http.StatusForbidden, serializer.ForbiddenErr(""))
		return
	}

	count, err := h.uploads.UploadFromCloud(c.Request.Context(), project, req.Format, req.Container, req.Object)
	if err != nil {
		switch {
		case errors.Is(err, blob.ErrNotFound),
			errors.Is(err, service.ErrCloudDisabled),
			errors.Is(err, textformat.ErrUnknownFormat),
			textformat.IsParseError(err):
			c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
		default:
			c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		}
		return
	}

	// A next target redirects the browser back to the app after import;
	// about:blank means "stay here" and behaves like a direct upload.
	next := strings.ReplaceAll(req.Next, "$project_id", projectID.String())
	if next != "" && next != "about:blank" {
		c.Redirect(http.StatusFound, next)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: UploadResp{Count: count}})
}
