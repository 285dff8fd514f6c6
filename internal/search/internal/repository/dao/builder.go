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

package dao

import (
	"fmt"

	"github.com/olivere/elastic/v7"
)

// Col 参与匹配的列
type Col struct {
	// 列名
	Name string
	// 权重
	Boost int
}

func (c Col) field() string {
	if c.Boost > 1 {
		return fmt.Sprintf("%s^%d", c.Name, c.Boost)
	}
	return c.Name
}

func buildMultiMatch(keyword string, cols []Col) *elastic.MultiMatchQuery {
	fields := make([]string, 0, len(cols))
	for _, col := range cols {
		fields = append(fields, col.field())
	}
	return elastic.NewMultiMatchQuery(keyword, fields...)
}
