package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-carousel-kit/internal/config"
	"github.com/shouni/go-carousel-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// exportCmd は、保存済みプロジェクトを読み込んで画像・PDFを書き出すのだ。
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "保存済みプロジェクトから画像・PDFを書き出しますなのだ。",
	Long: `--project で指定したスナップショット（省略時は最新の保存分）を復元し、
スタイル上書きを適用してスライド画像とPDFを書き出すのだ。`,
	RunE: exportCommand,
}

func init() {
}

func exportCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := config.LoadConfig()
	cfg.Options = opts

	slog.Info("エクスポートパイプラインを起動するのだ！",
		"project", opts.ProjectID,
		"format", opts.Format,
		"output_dir", opts.OutputDir)

	if err := pipeline.ExecuteExport(ctx, cfg); err != nil {
		return fmt.Errorf("エクスポート実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての書き出し工程が完了したのだ！")
	return nil
}
