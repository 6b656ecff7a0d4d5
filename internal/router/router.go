package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/annotext/annotext/docs"
	"github.com/annotext/annotext/internal/config"
	"github.com/annotext/annotext/internal/middleware"
	"github.com/annotext/annotext/internal/modules/handler"
	"github.com/annotext/annotext/internal/modules/serializer"
	"github.com/annotext/annotext/internal/modules/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config          *config.Config
	Log             *zap.Logger
	AuthService     service.AuthService
	ProjectService  service.ProjectService
	AuthHandler     *handler.AuthHandler
	ProjectHandler  *handler.ProjectHandler
	MemberHandler   *handler.MemberHandler
	LabelHandler    *handler.LabelHandler
	DocumentHandler *handler.DocumentHandler
	UploadHandler   *handler.UploadHandler
	CloudHandler    *handler.CloudUploadHandler
	DownloadHandler *handler.DownloadHandler
	FeaturesHandler *handler.FeaturesHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.AuthHandler.Register)
			auth.POST("/login", d.AuthHandler.Login)
			auth.POST("/logout", middleware.UserAuth(d.AuthService), d.AuthHandler.Logout)
		}

		authed := v1.Group("")
		authed.Use(middleware.UserAuth(d.AuthService))
		{
			authed.GET("/features", d.FeaturesHandler.Features)
			authed.GET("/cloud-upload", d.CloudHandler.CloudUpload)

			authed.GET("/projects", d.ProjectHandler.ListProjects)
			authed.POST("/projects", d.ProjectHandler.CreateProject)

			project := authed.Group("/projects/:project_id")
			project.Use(middleware.ProjectMember(d.ProjectService))
			{
				project.GET("", d.ProjectHandler.GetProject)
				project.GET("/members", d.MemberHandler.ListMembers)
				project.GET("/labels", d.LabelHandler.ListLabels)
				project.GET("/docs", d.DocumentHandler.ListDocuments)
				project.GET("/docs/download", d.DownloadHandler.DownloadDocuments)

				admin := project.Group("")
				admin.Use(middleware.ProjectAdmin())
				{
					admin.PATCH("", d.ProjectHandler.UpdateProject)
					admin.DELETE("", d.ProjectHandler.DeleteProject)
					admin.POST("/members", d.MemberHandler.AddMember)
					admin.DELETE("/members/:member_id", d.MemberHandler.RemoveMember)
					admin.POST("/labels", d.LabelHandler.CreateLabel)
					admin.POST("/docs/upload", d.UploadHandler.UploadDocuments)
				}
			}
		}
	}
	return r
}
