package runner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-ai-client/v2/pkg/ai/gemini"
	"golang.org/x/sync/singleflight"

	"github.com/shouni/go-carousel-kit/pkg/config"
	"github.com/shouni/go-carousel-kit/pkg/domain"
	"github.com/shouni/go-carousel-kit/pkg/prompts"
)

// CarouselRunner はテーマからカルーセル本文一式を生成します。
type CarouselRunner struct {
	cfg           config.Config
	promptBuilder prompts.PromptBuilder
	aiClient      gemini.GenerativeModel
	group         singleflight.Group
}

// NewCarouselRunner は依存関係（ビルダーを含む）を注入して初期化します。
func NewCarouselRunner(
	cfg config.Config,
	pb prompts.PromptBuilder,
	ai gemini.GenerativeModel,
) *CarouselRunner {
	return &CarouselRunner{
		cfg:           cfg,
		promptBuilder: pb,
		aiClient:      ai,
	}
}

// Run は生成要求からカルーセル全体を生成します。
// 同一要求の多重実行は singleflight で1リクエストに畳まれるので、
// ボタン連打のたびに API を叩くことはないのだ。
func (cr *CarouselRunner) Run(ctx context.Context, settings domain.GenerationSettings) (domain.CarouselResponse, error) {
	topic := strings.TrimSpace(settings.Topic)
	if topic == "" {
		return domain.CarouselResponse{}, domain.ErrTopicRequired
	}

	count := domain.ClampSlideCount(settings.SlideCount)
	tone := settings.Tone
	if tone == "" {
		tone = domain.ToneEducational
	}

	key := fmt.Sprintf("carousel|%s|%s|%d|%s", topic, tone, count, settings.SourceURL)
	result, err, shared := cr.group.Do(key, func() (any, error) {
		return cr.generate(ctx, topic, tone, count, settings)
	})
	if err != nil {
		return domain.CarouselResponse{}, err
	}
	if shared {
		slog.InfoContext(ctx, "同一の生成要求が進行中だったため結果を共有しました", "topic", topic)
	}
	return result.(domain.CarouselResponse), nil
}

func (cr *CarouselRunner) generate(ctx context.Context, topic string, tone domain.Tone, count int, settings domain.GenerationSettings) (domain.CarouselResponse, error) {
	data := prompts.TemplateData{
		Topic:           topic,
		Tone:            string(tone),
		SlideCount:      count,
		Hook:            strings.TrimSpace(settings.KeyMessages[0]),
		Value:           strings.TrimSpace(settings.KeyMessages[1]),
		CallToAction:    strings.TrimSpace(settings.KeyMessages[2]),
		SourceURL:       settings.SourceURL,
		ReferenceImages: settings.ReferenceImageURLs,
	}
	finalPrompt, err := cr.promptBuilder.Build(prompts.ModeCarousel, data)
	if err != nil {
		return domain.CarouselResponse{}, fmt.Errorf("プロンプト生成に失敗: %w", err)
	}

	slog.InfoContext(ctx, "CarouselRunner: Calling Gemini API", "model", cr.cfg.GeminiModel, "topic", topic, "slides", count)
	resp, err := cr.aiClient.GenerateContent(ctx, finalPrompt, cr.cfg.GeminiModel)
	if err != nil {
		return domain.CarouselResponse{}, classifyAIError(err)
	}

	var carousel domain.CarouselResponse
	if err := decodeResponse(resp.Text, &carousel); err != nil {
		return domain.CarouselResponse{}, err
	}
	if len(carousel.Slides) == 0 {
		return domain.CarouselResponse{}, fmt.Errorf("AI応答にスライドが1枚も含まれていません")
	}

	// 要求枚数と一致しなくても応答はそのまま受け入れる。
	if len(carousel.Slides) != count {
		slog.WarnContext(ctx, "生成枚数が要求と一致しませんでした", "requested", count, "got", len(carousel.Slides))
	}
	return carousel, nil
}
