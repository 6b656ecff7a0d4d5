package bootstrap

import (
	"context"

	"github.com/annotext/annotext/internal/config"
	"github.com/annotext/annotext/internal/infra/blob"
	"github.com/annotext/annotext/internal/infra/cache"
	"github.com/annotext/annotext/internal/infra/db"
	"github.com/annotext/annotext/internal/infra/logger"
	"github.com/annotext/annotext/internal/modules/handler"
	"github.com/annotext/annotext/internal/modules/model"
	"github.com/annotext/annotext/internal/modules/repo"
	"github.com/annotext/annotext/internal/modules/service"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.DB.AutoMigrate {
			if err := d.AutoMigrate(
				&model.User{},
				&model.Role{},
				&model.Project{},
				&model.Member{},
				&model.Label{},
				&model.Document{},
				&model.DocAnnotation{},
				&model.SpanAnnotation{},
				&model.TextAnnotation{},
			); err != nil {
				return nil, err
			}
			if err := repo.NewRoleRepo(d).EnsureDefaults(context.Background()); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// Redis (optional)
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})

	// Object storage (optional)
	do.Provide(inj, func(i *do.Injector) (blob.ObjectStore, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.Cloud.Enabled {
			return nil, nil
		}
		return blob.NewS3(context.Background(), cfg)
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.RoleRepo, error) {
		return repo.NewRoleRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.MemberRepo, error) {
		return repo.NewMemberRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.LabelRepo, error) {
		return repo.NewLabelRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.DocumentRepo, error) {
		return repo.NewDocumentRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		return service.NewAuthService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[*redis.Client](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.MemberRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.MemberService, error) {
		return service.NewMemberService(
			do.MustInvoke[repo.MemberRepo](i),
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[repo.RoleRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.LabelService, error) {
		return service.NewLabelService(do.MustInvoke[repo.LabelRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.DocumentService, error) {
		return service.NewDocumentService(do.MustInvoke[repo.DocumentRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UploadService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewUploadService(
			do.MustInvoke[repo.DocumentRepo](i),
			do.MustInvoke[blob.ObjectStore](i),
			cfg.Import.BatchSize,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.DownloadService, error) {
		return service.NewDownloadService(do.MustInvoke[repo.DocumentRepo](i)), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(do.MustInvoke[service.AuthService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.MemberHandler, error) {
		return handler.NewMemberHandler(do.MustInvoke[service.MemberService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.LabelHandler, error) {
		return handler.NewLabelHandler(do.MustInvoke[service.LabelService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.DocumentHandler, error) {
		return handler.NewDocumentHandler(do.MustInvoke[service.DocumentService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.UploadHandler, error) {
		return handler.NewUploadHandler(do.MustInvoke[service.UploadService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CloudUploadHandler, error) {
		return handler.NewCloudUploadHandler(
			do.MustInvoke[service.UploadService](i),
			do.MustInvoke[service.ProjectService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.DownloadHandler, error) {
		return handler.NewDownloadHandler(do.MustInvoke[service.DownloadService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.FeaturesHandler, error) {
		return handler.NewFeaturesHandler(do.MustInvoke[*config.Config](i)), nil
	})

	return inj
}
