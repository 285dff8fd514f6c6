//go:build wireinject

package dashboard

import (
	"github.com/ecodeclub/mastersolis/internal/application"
	"github.com/ecodeclub/mastersolis/internal/blog"
	"github.com/ecodeclub/mastersolis/internal/contact"
	"github.com/ecodeclub/mastersolis/internal/dashboard/internal/service"
	"github.com/ecodeclub/mastersolis/internal/dashboard/internal/web"
	"github.com/ecodeclub/mastersolis/internal/jobposting"
	"github.com/ecodeclub/mastersolis/internal/showcase"
	"github.com/google/wire"
)

func InitModule(jobModule *jobposting.Module,
	appModule *application.Module,
	blogModule *blog.Module,
	contactModule *contact.Module,
	showcaseModule *showcase.Module) *Module {
	wire.Build(
		wire.FieldsOf(new(*jobposting.Module), "Svc"),
		wire.FieldsOf(new(*application.Module), "Svc"),
		wire.FieldsOf(new(*blog.Module), "Svc"),
		wire.FieldsOf(new(*contact.Module), "Svc"),
		wire.FieldsOf(new(*showcase.Module), "Svc"),
		service.NewService,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
