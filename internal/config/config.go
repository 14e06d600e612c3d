package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultModel        = "gemini-3-flash-preview"
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultSlideCount   = 6
	DefaultSettleDelay  = 500 * time.Millisecond
	DefaultOutputDir    = "output/slides"   // エクスポート画像のデフォルト保存先なのだ
	DefaultProjectsFile = "output/projects.json" // プロジェクトスナップショットの保存先なのだ
	DefaultPDFName      = "karuzela_synapse.pdf"
)

// Config はアプリケーション全体の環境設定（APIキーやモデル設定）を保持する構造体なのだ。
type Config struct {
	GeminiAPIKey string
	GeminiModel  string
	ProjectsFile string

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	cfg := &Config{
		GeminiAPIKey: envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:  envutil.GetEnv("GEMINI_MODEL", DefaultModel),
		ProjectsFile: envutil.GetEnv("CAROUSEL_PROJECTS_FILE", DefaultProjectsFile),
	}
	return cfg
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// 生成ソース関連
	Topic       string   // --topic
	Tone        string   // --tone
	SlideCount  int      // --slides
	SourceURL   string   // --source-url
	SourceFile  string   // --source-file
	KeyMessages []string // --key-message (最大3回)

	// スタイル関連
	ThemeID     string // --theme
	FontID      string // --font
	AspectRatio string // --ratio
	Layout      string // --layout
	TextEffect  string // --effect
	Background  string // --background: 背景写真のID
	PatternID   string // --pattern
	TitleColor  string // --title-color

	// ブランディング関連
	Profile string   // --profile: personal | company
	Handle  string   // --handle
	Logo    string   // --logo: URL・data URI・ローカルパス
	Photo   string   // --photo
	Links   []string // --link (最大3回)

	// 出力関連
	Format      string // --format: png | jpg
	OutputDir   string // --output-dir
	PDFFile     string // --pdf-file
	WithPDF     bool   // --pdf
	ProjectName string // --name
	SaveProject bool   // --save
	ProjectID   string // --project: 保存済みスナップショットのID

	// AI挙動・実行制御
	AIModel     string        // --model
	HTTPTimeout time.Duration // --http-timeout
}
