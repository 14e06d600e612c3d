package builder

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shouni/go-ai-client/v2/pkg/ai/gemini"
	"github.com/shouni/go-web-exact/v2/pkg/extract"
	"google.golang.org/genai"

	"github.com/shouni/go-carousel-kit/pkg/asset"
	kitconfig "github.com/shouni/go-carousel-kit/pkg/config"
	"github.com/shouni/go-carousel-kit/pkg/export"
	"github.com/shouni/go-carousel-kit/pkg/project"
	"github.com/shouni/go-carousel-kit/pkg/prompts"
	"github.com/shouni/go-carousel-kit/pkg/render"
	"github.com/shouni/go-carousel-kit/pkg/runner"
)

// InitializeAIClient は gemini クライアントを初期化します。
func InitializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	const defaultGeminiTemperature = float32(0.2)
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}

// runnerConfig は環境設定とCLIオプションを Runner 用の設定に写します。
func runnerConfig(appCtx *AppContext) kitconfig.Config {
	cfg := kitconfig.DefaultConfig()
	cfg.GeminiModel = appCtx.Config.GeminiModel
	cfg.GeminiAPIKey = appCtx.Config.GeminiAPIKey
	cfg.ProjectsFile = appCtx.Config.ProjectsFile
	if appCtx.Options.AIModel != "" {
		cfg.GeminiModel = appCtx.Options.AIModel
	}
	if appCtx.Options.OutputDir != "" {
		cfg.OutputDir = appCtx.Options.OutputDir
	}
	if appCtx.Options.HTTPTimeout > 0 {
		cfg.RequestTimeout = appCtx.Options.HTTPTimeout
	}
	return cfg
}

// BuildCarouselRunner はカルーセル本文生成を担当する Runner を構築します。
func BuildCarouselRunner(appCtx *AppContext) (*runner.CarouselRunner, error) {
	pb, err := prompts.NewTextPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("プロンプトビルダーの初期化に失敗したのだ: %w", err)
	}
	return runner.NewCarouselRunner(runnerConfig(appCtx), pb, appCtx.aiClient), nil
}

// BuildStructureRunner は構成プレビュー生成を担当する Runner を構築します。
func BuildStructureRunner(appCtx *AppContext) (*runner.StructureRunner, error) {
	pb, err := prompts.NewTextPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("プロンプトビルダーの初期化に失敗したのだ: %w", err)
	}
	return runner.NewStructureRunner(runnerConfig(appCtx), pb, appCtx.aiClient), nil
}

// BuildSequenceRunner は3フェーズ指針文の生成を担当する Runner を構築します。
func BuildSequenceRunner(appCtx *AppContext) (*runner.SequenceRunner, error) {
	pb, err := prompts.NewTextPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("プロンプトビルダーの初期化に失敗したのだ: %w", err)
	}
	return runner.NewSequenceRunner(runnerConfig(appCtx), pb, appCtx.aiClient), nil
}

// BuildConvertRunner は既存コンテンツの変換を担当する Runner を構築します。
func BuildConvertRunner(appCtx *AppContext) (*runner.ConvertRunner, error) {
	extractor, err := extract.NewExtractor(appCtx.httpClient)
	if err != nil {
		return nil, fmt.Errorf("抽出器の初期化に失敗したのだ: %w", err)
	}
	pb, err := prompts.NewTextPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("プロンプトビルダーの初期化に失敗したのだ: %w", err)
	}
	return runner.NewConvertRunner(runnerConfig(appCtx), extractor, pb, appCtx.aiClient, appCtx.Reader), nil
}

// BuildExporter は画像・PDFの書き出しを担当する Exporter を構築します。
func BuildExporter(appCtx *AppContext) *export.Exporter {
	cfg := runnerConfig(appCtx)
	loader := asset.NewLoader(&http.Client{Timeout: cfg.RequestTimeout}, appCtx.Reader)
	capturer := export.NewRasterCapturer(loader)
	return export.NewExporter(cfg, render.NewComposer(), capturer, appCtx.Writer)
}

// BuildProjectRepository はプロジェクトスナップショットの永続化層を構築します。
func BuildProjectRepository(appCtx *AppContext) *project.Repository {
	return project.NewRepository(appCtx.Reader, appCtx.Writer, runnerConfig(appCtx).ProjectsFile)
}
