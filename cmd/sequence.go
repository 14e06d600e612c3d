package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-carousel-kit/internal/config"
	"github.com/shouni/go-carousel-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// sequenceCmd は、Hook・価値・CTA の3要素メッセージ案を生成するのだ。
var sequenceCmd = &cobra.Command{
	Use:   "sequence",
	Short: "Hook・価値・CTAの3要素メッセージ案を生成しますなのだ。",
	Long: `テーマからカルーセルの骨子となる3つのキーメッセージ
（Hook / 提供価値 / Call To Action）を生成するのだ。
気に入った案は --key-message で generate に渡せるのだよ。`,
	RunE: sequenceCommand,
}

func init() {
}

func sequenceCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.Topic == "" {
		return fmt.Errorf("テーマ（--topic）を指定してほしいのだ")
	}

	cfg := config.LoadConfig()
	cfg.GeminiModel = opts.AIModel
	cfg.Options = opts

	slog.Info("キーメッセージ案を生成するのだ！", "topic", opts.Topic)

	if err := pipeline.ExecuteSequence(ctx, cfg); err != nil {
		return fmt.Errorf("キーメッセージの生成中にエラーが発生したのだ: %w", err)
	}

	return nil
}
