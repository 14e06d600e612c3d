package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-carousel-kit/internal/config"
	"github.com/shouni/go-carousel-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// previewCmd は、本編を生成する前にスライドタイトル案だけをプレビューするのだ。
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "スライドタイトル案だけを先に生成してプレビューしますなのだ。",
	Long: `テーマから各スライドのタイトル案だけを生成して一覧表示するのだ。
本文の生成前に構成の方向性を確認するためのコマンドなのだよ。`,
	RunE: previewCommand,
}

func init() {
}

func previewCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.Topic == "" {
		return fmt.Errorf("テーマ（--topic）を指定してほしいのだ")
	}

	cfg := config.LoadConfig()
	cfg.GeminiModel = opts.AIModel
	cfg.Options = opts

	slog.Info("タイトル案のプレビューを生成するのだ！", "topic", opts.Topic, "slides", opts.SlideCount)

	if err := pipeline.ExecuteStructure(ctx, cfg); err != nil {
		return fmt.Errorf("タイトル案の生成中にエラーが発生したのだ: %w", err)
	}

	return nil
}
