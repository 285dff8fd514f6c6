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

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ecodeclub/mastersolis/internal/pkg/snowflake"
	"github.com/ecodeclub/mastersolis/internal/storage/internal/domain"
	"github.com/tencentyun/cos-go-sdk-v5"
)

var ErrInvalidURL = errors.New("不是本存储桶的地址")

//go:generate mockgen -source=./storage.go -destination=../../mocks/storage.mock.go -package=storagemocks Service
type Service interface {
	// Upload 上传文件，返回可以长期访问的地址
	Upload(ctx context.Context, f domain.File) (string, error)
	// SignURL 生成一个有时效的访问地址，简历之类的私有文件用
	SignURL(ctx context.Context, fileURL string, ttl time.Duration) (string, error)
}

type COSConfig struct {
	SecretID  string `yaml:"secretID"`
	SecretKey string `yaml:"secretKey"`
	AppID     string `yaml:"appID"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
}

func (c COSConfig) BucketURL() string {
	return fmt.Sprintf("https://%s-%s.cos.%s.myqcloud.com", c.Bucket, c.AppID, c.Region)
}

type cosService struct {
	client    *cos.Client
	bucketURL *url.URL
	cfg       COSConfig
	idGen     *snowflake.Generator
	now       func() time.Time
}

func NewCOSService(cfg COSConfig, idGen *snowflake.Generator) (Service, error) {
	u, err := url.Parse(cfg.BucketURL())
	if err != nil {
		return nil, err
	}
	client := cos.NewClient(&cos.BaseURL{BucketURL: u}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
		},
	})
	return &cosService{
		client:    client,
		bucketURL: u,
		cfg:       cfg,
		idGen:     idGen,
		now:       time.Now,
	}, nil
}

func (s *cosService) Upload(ctx context.Context, f domain.File) (string, error) {
	key, err := s.objectKey(f)
	if err != nil {
		return "", err
	}
	_, err = s.client.Object.Put(ctx, key, bytes.NewReader(f.Data), &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType:   f.ContentType,
			ContentLength: int64(len(f.Data)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("上传文件到 COS 失败: %w", err)
	}
	return s.client.Object.GetObjectURL(key).String(), nil
}

func (s *cosService) SignURL(ctx context.Context, fileURL string, ttl time.Duration) (string, error) {
	key, err := s.keyOf(fileURL)
	if err != nil {
		return "", err
	}
	u, err := s.client.Object.GetPresignedURL(ctx, http.MethodGet, key, s.cfg.SecretID, s.cfg.SecretKey, ttl, nil)
	if err != nil {
		return "", fmt.Errorf("生成签名地址失败: %w", err)
	}
	return u.String(), nil
}

// objectKey 形如 resumes/2024/05/01/{id}.pdf
func (s *cosService) objectKey(f domain.File) (string, error) {
	id, err := s.idGen.Generate(snowflake.Kind(f.Kind))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s%s", f.Kind.Dir(), s.now().Format("2006/01/02"), id.Base36(), f.Ext()), nil
}

func (s *cosService) keyOf(fileURL string) (string, error) {
	u, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Host != s.bucketURL.Host {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, fileURL)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, fileURL)
	}
	return key, nil
}
