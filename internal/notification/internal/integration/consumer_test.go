//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/mastersolis/internal/application"
	"github.com/ecodeclub/mastersolis/internal/notification"
	"github.com/ecodeclub/mastersolis/internal/notification/internal/robot"
	"github.com/ecodeclub/mastersolis/internal/pkg/mqx"
	"github.com/ecodeclub/mastersolis/internal/sms/client"
	testioc "github.com/ecodeclub/mastersolis/internal/test/ioc"
	"github.com/gotomicro/ego/core/econf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type recordSMS struct {
	mu   sync.Mutex
	reqs []client.SendReq
}

func (r *recordSMS) Send(ctx context.Context, req client.SendReq) (client.SendResp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reqs = append(r.reqs, req)
	return client.SendResp{PhoneNumbers: map[string]client.SendRespStatus{}}, nil
}

func (r *recordSMS) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reqs)
}

type ConsumerTestSuite struct {
	suite.Suite
	mu       sync.Mutex
	messages []robot.WechatRobotMessage
	webhook  *httptest.Server
	sms      *recordSMS
	producer mqx.Producer[application.ApplicationEvent]
}

func (s *ConsumerTestSuite) SetupSuite() {
	s.webhook = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg robot.WechatRobotMessage
		_ = json.NewDecoder(r.Body).Decode(&msg)
		s.mu.Lock()
		s.messages = append(s.messages, msg)
		s.mu.Unlock()
		_, _ = w.Write([]byte(`{"errcode":0,"errmsg":"ok"}`))
	}))
	econf.Set("notification", map[string]any{
		"webhookURL":     s.webhook.URL,
		"scoreThreshold": 80,
		"phones":         []string{"13800000000"},
		"smsTemplateID":  "SMS_1",
	})
	s.sms = &recordSMS{}
	q := testioc.InitMQ()
	_, err := notification.InitModule(q, s.sms)
	require.NoError(s.T(), err)
	p, err := mqx.NewGeneralProducer[application.ApplicationEvent](q, application.ApplicationTopic)
	require.NoError(s.T(), err)
	s.producer = p
}

func (s *ConsumerTestSuite) TearDownSuite() {
	s.webhook.Close()
}

func (s *ConsumerTestSuite) received() []robot.WechatRobotMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]robot.WechatRobotMessage(nil), s.messages...)
}

func (s *ConsumerTestSuite) TestNotify() {
	score := 92
	err := s.producer.Produce(context.Background(), application.ApplicationEvent{
		Type:          application.TypeCreated,
		ApplicationId: 1,
		JobTitle:      "Go Engineer",
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		Score:         &score,
		Summary:       "Strong candidate",
		Ctime:         time.Now().UnixMilli(),
	})
	require.NoError(s.T(), err)

	assert.Eventually(s.T(), func() bool {
		return len(s.received()) == 1 && s.sms.count() == 1
	}, 5*time.Second, 100*time.Millisecond)
	msg := s.received()[0]
	assert.Equal(s.T(), "markdown", msg.MsgType)
	assert.Contains(s.T(), msg.Markdown.Content, "Jane Doe")
	assert.Contains(s.T(), msg.Markdown.Content, "92")
}

func TestConsumer(t *testing.T) {
	suite.Run(t, new(ConsumerTestSuite))
}
