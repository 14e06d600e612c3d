package runner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-ai-client/v2/pkg/ai/gemini"

	"github.com/shouni/go-carousel-kit/pkg/config"
	"github.com/shouni/go-carousel-kit/pkg/domain"
	"github.com/shouni/go-carousel-kit/pkg/prompts"
)

// 構成プレビューのキャッシュ保持時間。同じテーマの叩き直しを吸収する程度で十分なのだ。
const structureCacheTTL = 10 * time.Minute

// StructureRunner はテーマから構成プレビュー（タイトル列）を生成します。
type StructureRunner struct {
	cfg           config.Config
	promptBuilder prompts.PromptBuilder
	aiClient      gemini.GenerativeModel
	previews      *cache.Cache
}

// NewStructureRunner は依存関係を注入して初期化します。
func NewStructureRunner(
	cfg config.Config,
	pb prompts.PromptBuilder,
	ai gemini.GenerativeModel,
) *StructureRunner {
	return &StructureRunner{
		cfg:           cfg,
		promptBuilder: pb,
		aiClient:      ai,
		previews:      cache.New(structureCacheTTL, structureCacheTTL),
	}
}

// structureResponse は構成プレビュー応答の構造です。
type structureResponse struct {
	Titles []string `json:"titles"`
}

// Run はテーマに対するスライドタイトル列を生成します。
// 同一テーマ・同一枚数の直近の結果はキャッシュから返します。
func (sr *StructureRunner) Run(ctx context.Context, topic string, slideCount int) ([]string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, domain.ErrTopicRequired
	}
	count := domain.ClampSlideCount(slideCount)

	key := fmt.Sprintf("structure|%s|%d", topic, count)
	if cached, ok := sr.previews.Get(key); ok {
		slog.DebugContext(ctx, "構成プレビューをキャッシュから返します", "topic", topic)
		return cached.([]string), nil
	}

	finalPrompt, err := sr.promptBuilder.Build(prompts.ModeStructure, prompts.TemplateData{
		Topic:      topic,
		SlideCount: count,
	})
	if err != nil {
		return nil, fmt.Errorf("プロンプト生成に失敗: %w", err)
	}

	slog.InfoContext(ctx, "StructureRunner: Calling Gemini API", "model", sr.cfg.GeminiModel, "topic", topic)
	resp, err := sr.aiClient.GenerateContent(ctx, finalPrompt, sr.cfg.GeminiModel)
	if err != nil {
		return nil, classifyAIError(err)
	}

	var structure structureResponse
	if err := decodeResponse(resp.Text, &structure); err != nil {
		return nil, err
	}
	if len(structure.Titles) == 0 {
		return nil, fmt.Errorf("AI応答にタイトルが1件も含まれていません")
	}

	sr.previews.Set(key, structure.Titles, cache.DefaultExpiration)
	return structure.Titles, nil
}
