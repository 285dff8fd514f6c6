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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator(t *testing.T) {
	testcases := []struct {
		name        string
		nodeId      uint
		kinds       uint
		wantErrFunc require.ErrorAssertionFunc
	}{
		{
			name:   "nodeId超出限制",
			nodeId: 32,
			kinds:  3,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedNode)
			},
		},
		{
			name:   "kind超出限制",
			nodeId: 3,
			kinds:  33,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedKind)
			},
		},
		{
			name:        "生成正常",
			nodeId:      0,
			kinds:       3,
			wantErrFunc: require.NoError,
		},
	}
	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenerator(tt.nodeId, tt.kinds)
			tt.wantErrFunc(t, err)
		})
	}
}

func TestGenerator_Generate(t *testing.T) {
	g, err := NewDefaultGenerator(1)
	require.NoError(t, err)
	ids := make(map[int64]struct{}, 3*10000)
	for _, kind := range []Kind{KindResume, KindImage, KindAttachment} {
		for j := 0; j < 10000; j++ {
			id, err := g.Generate(kind)
			require.NoError(t, err)
			_, ok := ids[id.Int64()]
			require.False(t, ok)
			ids[id.Int64()] = struct{}{}
			assert.Equal(t, kind, id.Kind())
		}
	}
}

func TestGenerator_UnknownKind(t *testing.T) {
	g, err := NewGenerator(1, 2)
	require.NoError(t, err)
	_, err = g.Generate(KindAttachment)
	assert.ErrorIs(t, err, ErrUnknownKind)

	id, err := g.Generate(KindImage)
	require.NoError(t, err)
	assert.NotEmpty(t, id.Base36())
}
