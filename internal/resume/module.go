package resume

import (
	"github.com/ecodeclub/mastersolis/internal/resume/internal/service"
	"github.com/ecodeclub/mastersolis/internal/resume/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type (
	Service = service.Service
	Handler = web.Handler
)
