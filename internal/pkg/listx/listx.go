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

package listx

import "strings"

// Split 按照 sep 切分，去掉首尾空白和空元素，保持原本的顺序
func Split(s string, sep string) []string {
	parts := strings.Split(s, sep)
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

// Lines 按行切分，兼容 \r\n
func Lines(s string) []string {
	return Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

// Set 去掉空白元素并且去重，重复的元素保留第一次出现的位置
func Set(src []string) []string {
	res := make([]string, 0, len(src))
	seen := make(map[string]struct{}, len(src))
	for _, s := range src {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		res = append(res, s)
	}
	return res
}
