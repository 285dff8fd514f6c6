// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package user

import (
	"context"
	"time"

	"github.com/ecodeclub/mastersolis/internal/user/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/user/internal/repository"
	"github.com/ecodeclub/mastersolis/internal/user/internal/repository/dao"
	"github.com/ecodeclub/mastersolis/internal/user/internal/service"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

type AdminAccount struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Nickname string `yaml:"nickname"`
}

func initDAO(db *egorm.Component) dao.UserDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMUserDAO(db)
}

// initUserService 启动的时候把 user.admins 里面的账号写进去
func initUserService(repo repository.UserRepository) service.UserService {
	svc := service.NewUserService(repo)
	var admins []AdminAccount
	if err := econf.UnmarshalKey("user.admins", &admins); err != nil {
		elog.DefaultLogger.Warn("没有配置管理员账号", elog.FieldErr(err))
		return svc
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, a := range admins {
		err := svc.EnsureAdmin(ctx, domain.User{
			Email:    a.Email,
			Password: a.Password,
			Nickname: a.Nickname,
		})
		if err != nil {
			panic(err)
		}
	}
	return svc
}
