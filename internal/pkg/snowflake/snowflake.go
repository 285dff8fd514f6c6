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

package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

// Kind 文件的种类，不同种类的 ID 落在不同的 node 上，从 ID 里面能反推出种类
type Kind uint

const (
	KindResume Kind = iota
	KindImage
	KindAttachment

	kindCnt
)

const (
	maxNode uint = 31
	maxKind uint = 31
)

var (
	ErrExceedNode  = errors.New("node超出限制")
	ErrExceedKind  = errors.New("kind超出限制")
	ErrUnknownKind = errors.New("未知的kind")
)

// +---------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit Kind   | 5 Bit NodeID  |   12 Bit Sequence ID |
// +---------------------------------------------------------------------------------------+

type Generator struct {
	nodes syncx.Map[Kind, *snowflake.Node]
}

// NewGenerator nodeId 是当前实例的编号，kinds 表示支持多少种 Kind，从 0 开始
func NewGenerator(nodeId uint, kinds uint) (*Generator, error) {
	if nodeId > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeId)
	}
	if kinds > maxKind+1 {
		return nil, fmt.Errorf("%w: %d", ErrExceedKind, kinds)
	}
	g := &Generator{}
	for i := uint(0); i < kinds; i++ {
		n, err := snowflake.NewNode(int64(i<<5 | nodeId))
		if err != nil {
			return nil, err
		}
		g.nodes.Store(Kind(i), n)
	}
	return g, nil
}

// NewDefaultGenerator 覆盖所有已知的 Kind
func NewDefaultGenerator(nodeId uint) (*Generator, error) {
	return NewGenerator(nodeId, uint(kindCnt))
}

func (g *Generator) Generate(kind Kind) (ID, error) {
	n, ok := g.nodes.Load(kind)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	return ID(n.Generate()), nil
}

type ID int64

func (f ID) Kind() Kind {
	return Kind(snowflake.ID(f).Node() >> 5)
}

func (f ID) Int64() int64 {
	return int64(f)
}

// Base36 用于拼接对象存储的 key，比十进制短
func (f ID) Base36() string {
	return snowflake.ID(f).Base36()
}
