package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/customerhub/internal/app"
	"github.com/polkiloo/customerhub/internal/config"
	"github.com/polkiloo/customerhub/internal/logger"
	"github.com/polkiloo/customerhub/internal/pkg/auth"
	"github.com/polkiloo/customerhub/internal/server/http/handlers"
	"github.com/polkiloo/customerhub/internal/server/http/router"
	"github.com/polkiloo/customerhub/internal/storage/postgres"
	"github.com/polkiloo/customerhub/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.Facade) handlers.Facade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
