// wechatwork/wechatwork.go
package wechatwork

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/natalierpayne/join-replicate-fqs/pkg/replicate"
)

const DefaultWebhookURL = "https://qyapi.weixin.qq.com/cgi-bin/webhook/send"

// WeChatWorkMessage 企业微信Webhook消息结构
type WeChatWorkMessage struct {
	MsgType  string          `json:"msgtype"`
	Markdown MarkdownContent `json:"markdown,omitempty"`
}

type MarkdownContent struct {
	Content string `json:"content"`
}

// NotificationSender 通知发送器
type NotificationSender struct {
	WebhookKey string
	WebhookURL string
	Enabled    bool

	Client *http.Client
}

// NewNotificationSender returns a sender that does nothing when webhookKey is empty.
func NewNotificationSender(webhookKey string) *NotificationSender {
	return &NotificationSender{
		WebhookKey: webhookKey,
		WebhookURL: DefaultWebhookURL,
		Enabled:    webhookKey != "",
		Client:     http.DefaultClient,
	}
}

// SendMarkdown 发送Markdown消息
func (ns *NotificationSender) SendMarkdown(content string) error {
	if !ns.Enabled {
		return nil
	}
	return ns.send(WeChatWorkMessage{
		MsgType:  "markdown",
		Markdown: MarkdownContent{Content: content},
	})
}

// SendRunSummary reports the joined pairs of one run.
func (ns *NotificationSender) SendRunSummary(results []replicate.Result) error {
	return ns.SendMarkdown(RunSummary(results))
}

// RunSummary renders results as WeChat Work markdown.
func RunSummary(results []replicate.Result) string {
	var (
		b        strings.Builder
		nConcat  int
		nExtract int
	)
	for _, r := range results {
		if r.Concatenated != "" {
			nConcat++
		}
		if len(r.Extracted) > 0 {
			nExtract++
		}
	}
	fmt.Fprintf(&b, "### join replicate fastqs\n")
	fmt.Fprintf(&b, "> pairs: <font color=\"info\">%d</font>, concatenated: %d, extracted: %d\n", len(results), nConcat, nExtract)
	for _, r := range results {
		fmt.Fprintf(
			&b,
			"- %s + %s (%d + %d reads)\n",
			filepath.Base(r.Original),
			filepath.Base(r.Replicate),
			r.OriginalReads,
			r.ReplicateReads,
		)
	}
	return b.String()
}

// send 发送消息
func (ns *NotificationSender) send(message WeChatWorkMessage) error {
	var webhookURL = fmt.Sprintf("%s?key=%s", ns.WebhookURL, ns.WebhookKey)

	jsonData, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("无法序列化通知消息: %w", err)
	}

	resp, err := ns.Client.Post(webhookURL, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("发送企业微信通知失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("企业微信通知返回非200状态码: %d", resp.StatusCode)
	}

	slog.Info("企业微信通知发送成功", "msgtype", message.MsgType)
	return nil
}
