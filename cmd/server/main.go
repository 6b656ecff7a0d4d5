package main

//	@title			Annotext API
//	@version		1.0
//	@description	Text annotation project management API.
//	@schemes		http https
//	@BasePath		/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				User access token (e.g., "Bearer eyJ...")

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annotext/annotext/internal/bootstrap"
	"github.com/annotext/annotext/internal/config"
	"github.com/annotext/annotext/internal/modules/handler"
	"github.com/annotext/annotext/internal/modules/service"
	"github.com/annotext/annotext/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"go.uber.org/zap"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)

	// init gin
	gin.SetMode(cfg.App.Env)

	engine := router.NewRouter(router.RouterDeps{
		Config:          cfg,
		Log:             log,
		AuthService:     do.MustInvoke[service.AuthService](inj),
		ProjectService:  do.MustInvoke[service.ProjectService](inj),
		AuthHandler:     do.MustInvoke[*handler.AuthHandler](inj),
		ProjectHandler:  do.MustInvoke[*handler.ProjectHandler](inj),
		MemberHandler:   do.MustInvoke[*handler.MemberHandler](inj),
		LabelHandler:    do.MustInvoke[*handler.LabelHandler](inj),
		DocumentHandler: do.MustInvoke[*handler.DocumentHandler](inj),
		UploadHandler:   do.MustInvoke[*handler.UploadHandler](inj),
		CloudHandler:    do.MustInvoke[*handler.CloudUploadHandler](inj),
		DownloadHandler: do.MustInvoke[*handler.DownloadHandler](inj),
		FeaturesHandler: do.MustInvoke[*handler.FeaturesHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
