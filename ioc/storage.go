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

package ioc

import (
	"github.com/ecodeclub/mastersolis/internal/pkg/snowflake"
	"github.com/ecodeclub/mastersolis/internal/storage"
	"github.com/gotomicro/ego/core/econf"
)

func InitCOSConfig() storage.Config {
	var cfg storage.Config
	err := econf.UnmarshalKey("cos", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func InitIDGenerator() *snowflake.Generator {
	type Config struct {
		NodeID uint `yaml:"nodeID"`
	}
	var cfg Config
	err := econf.UnmarshalKey("snowflake", &cfg)
	if err != nil {
		panic(err)
	}
	g, err := snowflake.NewDefaultGenerator(cfg.NodeID)
	if err != nil {
		panic(err)
	}
	return g
}
