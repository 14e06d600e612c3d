package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-carousel-kit/internal/config"
	"github.com/shouni/go-carousel-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// generateCmd は、AIによるカルーセル一式の生成と画像書き出しを実行するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "AIにカルーセルのスライド文章を生成させ、画像を書き出しますなのだ。",
	Long: `テーマをもとにポーランド語のスライド文章を生成し、スタイルを適用して
スライド画像（slajd_N.png / jpg）を書き出すのだ。--pdf を付ければPDFもまとめて出るのだよ。`,
	RunE: generateCommand,
}

func init() {
}

func generateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 必須チェック
	if opts.Topic == "" {
		return fmt.Errorf("テーマ（--topic）を指定してほしいのだ")
	}

	// 2. 環境変数等から基本設定をロードするのだ
	cfg := config.LoadConfig()
	cfg.GeminiModel = opts.AIModel
	cfg.Options = opts

	slog.Info("カルーセル生成パイプラインを起動するのだ！",
		"topic", opts.Topic,
		"slides", opts.SlideCount,
		"model", cfg.GeminiModel,
		"output_dir", opts.OutputDir)

	// 3. 更新した config を考慮しつつパイプラインを実行するのだ
	if err := pipeline.ExecuteGenerate(ctx, cfg); err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての生成工程が完了したのだ！")
	return nil
}
