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

package web

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mastersolis/internal/storage/internal/service"
	"github.com/gin-gonic/gin"
	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
)

// AdminHandler 给后台直传图片用的临时密钥
type AdminHandler struct {
	client *sts.Client
	// 临时密钥的权限
	actions []string
	ttl     time.Duration
	cfg     service.COSConfig
}

func NewAdminHandler(cfg service.COSConfig) *AdminHandler {
	return &AdminHandler{
		client: sts.NewClient(cfg.SecretID, cfg.SecretKey, http.DefaultClient),
		cfg:    cfg,
		ttl:    30 * time.Minute,
		actions: []string{
			// 简单上传
			"name/cos:PostObject",
			"name/cos:PutObject",
			// 分片上传
			"name/cos:InitiateMultipartUpload",
			"name/cos:ListMultipartUploads",
			"name/cos:ListParts",
			"name/cos:UploadPart",
			"name/cos:CompleteMultipartUpload",
		},
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/cos")
	g.POST("/temp-key", ginx.B(h.TempKey))
}

func (h *AdminHandler) TempKey(ctx *ginx.Context, req TempKeyReq) (ginx.Result, error) {
	// 不允许通配符和跳目录
	if req.Key == "" || strings.ContainsAny(req.Key, "*") || strings.Contains(req.Key, "..") {
		return invalidKeyResult, nil
	}
	resource := fmt.Sprintf("qcs::cos:%s:uid/%s:%s-%s/%s",
		h.cfg.Region, h.cfg.AppID,
		h.cfg.Bucket, h.cfg.AppID, strings.TrimPrefix(req.Key, "/"))
	statement := sts.CredentialPolicyStatement{
		Action:   h.actions,
		Effect:   "allow",
		Resource: []string{resource},
	}
	if req.Type != "" {
		statement.Condition = map[string]map[string]interface{}{
			"string_equal": {
				"cos:content-type": req.Type,
			},
		}
	}
	res, err := h.client.GetCredential(&sts.CredentialOptions{
		DurationSeconds: int64(h.ttl.Seconds()),
		Region:          h.cfg.Region,
		Policy: &sts.CredentialPolicy{
			Statement: []sts.CredentialPolicyStatement{statement},
		},
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: TempKey{
			SecretId:     res.Credentials.TmpSecretID,
			SecretKey:    res.Credentials.TmpSecretKey,
			SessionToken: res.Credentials.SessionToken,
			StartTime:    int64(res.StartTime),
			ExpiredTime:  int64(res.ExpiredTime),
			Bucket:       h.cfg.Bucket + "-" + h.cfg.AppID,
			Region:       h.cfg.Region,
		},
	}, nil
}
