//go:build wireinject

package notification

import (
	"context"
	"net/http"
	"time"

	"github.com/ecodeclub/mastersolis/internal/notification/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/notification/internal/event"
	"github.com/ecodeclub/mastersolis/internal/notification/internal/robot"
	"github.com/ecodeclub/mastersolis/internal/notification/internal/service"
	"github.com/ecodeclub/mastersolis/internal/sms/client"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(q mq.MQ, smsClient client.Client) (*Module, error) {
	wire.Build(
		initConfig,
		initRobot,
		service.NewService,
		initConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initConfig() domain.Config {
	cfg := domain.DefaultConfig()
	if econf.Get("notification") == nil {
		return cfg
	}
	err := econf.UnmarshalKey("notification", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

// initRobot 没有配置群机器人就不发
func initRobot(cfg domain.Config) robot.Robot {
	if cfg.WebhookURL == "" {
		return robot.NopRobot{}
	}
	return robot.NewWechatRobot(cfg.WebhookURL, &http.Client{Timeout: 10 * time.Second})
}

func initConsumer(svc service.Service, q mq.MQ) (*event.ApplicationConsumer, error) {
	c, err := event.NewApplicationConsumer(svc, q)
	if err != nil {
		return nil, err
	}
	c.Start(context.Background())
	return c, nil
}
