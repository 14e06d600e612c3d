package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shouni/go-ai-client/v2/pkg/ai/gemini"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/shouni/go-web-exact/v2/pkg/extract"

	"github.com/shouni/go-carousel-kit/pkg/config"
	"github.com/shouni/go-carousel-kit/pkg/domain"
	"github.com/shouni/go-carousel-kit/pkg/prompts"
)

// ConvertRunner は既存のテキスト・Webページ・ローカルファイルを
// カルーセルに変換します。事実の追加はせず、元の内容を忠実に再構成させるのだ。
type ConvertRunner struct {
	cfg           config.Config
	extractor     *extract.Extractor
	promptBuilder prompts.PromptBuilder
	aiClient      gemini.GenerativeModel
	reader        remoteio.InputReader
}

// NewConvertRunner は依存関係（ビルダーを含む）を注入して初期化します。
func NewConvertRunner(
	cfg config.Config,
	ext *extract.Extractor,
	pb prompts.PromptBuilder,
	ai gemini.GenerativeModel,
	r remoteio.InputReader,
) *ConvertRunner {
	return &ConvertRunner{
		cfg:           cfg,
		extractor:     ext,
		promptBuilder: pb,
		aiClient:      ai,
		reader:        r,
	}
}

// RunText は生テキストをカルーセルに変換します。
func (cr *ConvertRunner) RunText(ctx context.Context, rawText string, slideCount int) (domain.CarouselResponse, error) {
	rawText = strings.TrimSpace(rawText)
	if rawText == "" {
		return domain.CarouselResponse{}, fmt.Errorf("変換元のテキストが空です")
	}
	return cr.convert(ctx, rawText, slideCount)
}

// RunURL は Web ページ本文を抽出してからカルーセルに変換します。
func (cr *ConvertRunner) RunURL(ctx context.Context, sourceURL string, slideCount int) (domain.CarouselResponse, error) {
	slog.InfoContext(ctx, "ConvertRunner: Extracting text", "url", sourceURL)
	text, _, err := cr.extractor.FetchAndExtractText(ctx, sourceURL)
	if err != nil {
		return domain.CarouselResponse{}, fmt.Errorf("failed to extract text from URL: %w", err)
	}
	return cr.convert(ctx, text, slideCount)
}

// RunFile はローカルパスや GCS URI のテキストファイルを読み込んで変換します。
func (cr *ConvertRunner) RunFile(ctx context.Context, path string, slideCount int) (domain.CarouselResponse, error) {
	rc, err := cr.reader.Open(ctx, path)
	if err != nil {
		return domain.CarouselResponse{}, fmt.Errorf("変換元ファイルのオープンに失敗しました (%s): %w", path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return domain.CarouselResponse{}, fmt.Errorf("変換元ファイルの読み込みに失敗しました (%s): %w", path, err)
	}
	return cr.convert(ctx, string(data), slideCount)
}

func (cr *ConvertRunner) convert(ctx context.Context, sourceText string, slideCount int) (domain.CarouselResponse, error) {
	count := domain.ClampSlideCount(slideCount)
	finalPrompt, err := cr.promptBuilder.Build(prompts.ModeConvert, prompts.TemplateData{
		SourceText: sourceText,
		SlideCount: count,
	})
	if err != nil {
		return domain.CarouselResponse{}, fmt.Errorf("プロンプト生成に失敗: %w", err)
	}

	slog.InfoContext(ctx, "ConvertRunner: Calling Gemini API", "model", cr.cfg.GeminiModel, "slides", count)
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
	return carousel, nil
}
