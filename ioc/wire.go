//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/mastersolis/internal/ai"
	"github.com/ecodeclub/mastersolis/internal/application"
	"github.com/ecodeclub/mastersolis/internal/blog"
	"github.com/ecodeclub/mastersolis/internal/chat"
	"github.com/ecodeclub/mastersolis/internal/contact"
	"github.com/ecodeclub/mastersolis/internal/dashboard"
	"github.com/ecodeclub/mastersolis/internal/jobposting"
	"github.com/ecodeclub/mastersolis/internal/notification"
	"github.com/ecodeclub/mastersolis/internal/resume"
	"github.com/ecodeclub/mastersolis/internal/search"
	"github.com/ecodeclub/mastersolis/internal/showcase"
	"github.com/ecodeclub/mastersolis/internal/storage"
	"github.com/ecodeclub/mastersolis/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitES, InitSession)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitEmailService,
		InitSMSClient,
		InitCOSConfig,
		InitIDGenerator,
		ai.InitModule,
		storage.InitModule,
		user.InitModule,
		jobposting.InitModule,
		application.InitModule,
		blog.InitModule,
		contact.InitModule,
		showcase.InitModule,
		chat.InitModule,
		dashboard.InitModule,
		search.InitModule,
		notification.InitModule,
		resume.InitModule,
		wire.FieldsOf(new(*ai.Module), "AdminHdl"),
		wire.FieldsOf(new(*storage.Module), "AdminHdl"),
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*jobposting.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*application.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*blog.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*contact.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*showcase.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*chat.Module), "Hdl"),
		wire.FieldsOf(new(*dashboard.Module), "AdminHdl"),
		wire.FieldsOf(new(*search.Module), "Hdl"),
		wire.FieldsOf(new(*resume.Module), "Hdl"),
		initGinxServer,
		InitAdminServer,
		InitGovernor,
		initCronJobs,
	)
	return new(App), nil
}
