package service

import (
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/mastersolis/internal/pkg/snowflake"
	"github.com/ecodeclub/mastersolis/internal/storage/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *cosService {
	gen, err := snowflake.NewDefaultGenerator(1)
	require.NoError(t, err)
	svc, err := NewCOSService(COSConfig{
		SecretID:  "id",
		SecretKey: "key",
		AppID:     "1250000000",
		Bucket:    "mastersolis",
		Region:    "ap-guangzhou",
	}, gen)
	require.NoError(t, err)
	s := svc.(*cosService)
	s.now = func() time.Time {
		return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	}
	return s
}

func TestCOSService_objectKey(t *testing.T) {
	s := newTestService(t)
	testCases := []struct {
		name   string
		file   domain.File
		prefix string
		suffix string
	}{
		{
			name:   "简历",
			file:   domain.File{Name: "张三的简历.PDF", Kind: domain.KindResume},
			prefix: "resumes/2024/05/01/",
			suffix: ".pdf",
		},
		{
			name:   "图片",
			file:   domain.File{Name: "cover.png", Kind: domain.KindImage},
			prefix: "images/2024/05/01/",
			suffix: ".png",
		},
		{
			name:   "没有扩展名",
			file:   domain.File{Name: "README", Kind: domain.KindAttachment},
			prefix: "attachments/2024/05/01/",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := s.objectKey(tc.file)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(key, tc.prefix), key)
			assert.True(t, strings.HasSuffix(key, tc.suffix), key)
		})
	}
}

func TestCOSService_objectKeyUnique(t *testing.T) {
	s := newTestService(t)
	f := domain.File{Name: "a.docx", Kind: domain.KindResume}
	k1, err := s.objectKey(f)
	require.NoError(t, err)
	k2, err := s.objectKey(f)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2)
}

func TestCOSService_keyOf(t *testing.T) {
	s := newTestService(t)
	testCases := []struct {
		name    string
		url     string
		wantKey string
		wantErr error
	}{
		{
			name:    "本桶地址",
			url:     "https://mastersolis-1250000000.cos.ap-guangzhou.myqcloud.com/resumes/2024/05/01/abc.pdf",
			wantKey: "resumes/2024/05/01/abc.pdf",
		},
		{
			name:    "别的域名",
			url:     "https://example.com/resumes/abc.pdf",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "没有路径",
			url:     "https://mastersolis-1250000000.cos.ap-guangzhou.myqcloud.com/",
			wantErr: ErrInvalidURL,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := s.keyOf(tc.url)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantKey, key)
		})
	}
}
