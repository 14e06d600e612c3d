package runner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-ai-client/v2/pkg/ai/gemini"

	"github.com/shouni/go-carousel-kit/pkg/config"
	"github.com/shouni/go-carousel-kit/pkg/domain"
	"github.com/shouni/go-carousel-kit/pkg/prompts"
)

// SequenceRunner はテーマから3フェーズ（Hook / 価値 / CTA）の指針文を生成します。
type SequenceRunner struct {
	cfg           config.Config
	promptBuilder prompts.PromptBuilder
	aiClient      gemini.GenerativeModel
}

// NewSequenceRunner は依存関係を注入して初期化します。
func NewSequenceRunner(
	cfg config.Config,
	pb prompts.PromptBuilder,
	ai gemini.GenerativeModel,
) *SequenceRunner {
	return &SequenceRunner{
		cfg:           cfg,
		promptBuilder: pb,
		aiClient:      ai,
	}
}

// sequenceResponse は指針文応答の構造です。
type sequenceResponse struct {
	Messages []string `json:"messages"`
}

// Run は常に要素数3の KeySequence を返します。
// 応答が3件に満たなければ空文字で埋め、4件以上なら先頭3件だけを使うのだ。
// 応答のJSONが読めなかった場合もエラーにはせず、全フェーズ空の列を返します。
func (sr *SequenceRunner) Run(ctx context.Context, topic string) (domain.KeySequence, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return domain.KeySequence{}, domain.ErrTopicRequired
	}

	finalPrompt, err := sr.promptBuilder.Build(prompts.ModeSequence, prompts.TemplateData{Topic: topic})
	if err != nil {
		return domain.KeySequence{}, fmt.Errorf("プロンプト生成に失敗: %w", err)
	}

	slog.InfoContext(ctx, "SequenceRunner: Calling Gemini API", "model", sr.cfg.GeminiModel, "topic", topic)
	resp, err := sr.aiClient.GenerateContent(ctx, finalPrompt, sr.cfg.GeminiModel)
	if err != nil {
		return domain.KeySequence{}, classifyAIError(err)
	}

	return parseKeySequence(ctx, resp.Text), nil
}

// parseKeySequence は応答テキストを3フェーズの指針文に変換します。
func parseKeySequence(ctx context.Context, raw string) domain.KeySequence {
	var seq sequenceResponse
	if err := decodeResponse(raw, &seq); err != nil {
		slog.WarnContext(ctx, "指針文の応答を解釈できなかったので空の列で続行するのだ",
			"error", err, "response", truncateString(raw, 120))
		return domain.KeySequence{}
	}
	return PadKeySequence(seq.Messages)
}

// PadKeySequence は可変長のメッセージ列を要素数3に正規化します。
func PadKeySequence(messages []string) domain.KeySequence {
	var k domain.KeySequence
	for i := 0; i < len(k) && i < len(messages); i++ {
		k[i] = strings.TrimSpace(messages[i])
	}
	return k
}
