package cmd

import (
	"fmt"

	"github.com/shouni/go-carousel-kit/internal/config"
	"github.com/shouni/go-carousel-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// projectCmd は、保存済みプロジェクトの管理コマンド群をまとめるのだ。
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "保存済みプロジェクトを一覧・削除しますなのだ。",
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "保存済みプロジェクトの一覧を表示しますなのだ。",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()
		cfg.Options = opts

		if err := pipeline.ExecuteProjectList(cmd.Context(), cfg); err != nil {
			return fmt.Errorf("プロジェクト一覧の取得に失敗したのだ: %w", err)
		}
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "保存済みプロジェクトを削除しますなのだ。",
	Long: `--project で指定したIDのスナップショットを削除するのだ。
IDを省略した場合は保存済みプロジェクトをすべて消すのだよ。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()
		cfg.Options = opts

		if err := pipeline.ExecuteProjectDelete(cmd.Context(), cfg); err != nil {
			return fmt.Errorf("プロジェクトの削除に失敗したのだ: %w", err)
		}
		return nil
	},
}

func init() {
	projectCmd.AddCommand(projectListCmd, projectDeleteCmd)
}
