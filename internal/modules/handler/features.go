package handler

import (
	"net/http"

	"github.com/annotext/annotext/internal/config"
	"github.com/annotext/annotext/internal/modules/serializer"
	"github.com/gin-gonic/gin"
)

type FeaturesHandler struct {
	cfg *config.Config
}

func NewFeaturesHandler(cfg *config.Config) *FeaturesHandler {
	return &FeaturesHandler{cfg: cfg}
}

type FeaturesResp struct {
	CloudUpload bool `json:"cloud_upload"`
}

// Features godoc
//
//	@Summary		Feature flags
//	@Description	Report which optional features this deployment has enabled
//	@Tags			features
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	handler.FeaturesResp
//	@Router			/features [get]
func (h *FeaturesHandler) Features(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: FeaturesResp{
		CloudUpload: h.cfg.Cloud.Enabled,
	}})
}
