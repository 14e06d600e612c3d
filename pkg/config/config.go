package config

import (
	"time"
)

// デフォルト値の定義
const (
	DefaultGeminiModel    = "gemini-3-flash-preview"
	DefaultRequestTimeout = 30 * time.Second

	// エクスポート関連の既定値。キャプチャ前の整定待ちは原則固定なのだ。
	DefaultSettleDelay  = 500 * time.Millisecond
	DefaultOutputDir    = "output/slides"
	DefaultPDFName      = "karuzela_synapse.pdf"
	DefaultProjectsFile = "output/projects.json"
)

// Config は Go Carousel Kit の各 Runner を動作させるための基本設定です。
type Config struct {
	// --- AI Model Settings ---
	GeminiModel  string
	GeminiAPIKey string

	// --- Export Settings ---
	SettleDelay time.Duration
	OutputDir   string
	PDFName     string

	// --- Persistence Settings ---
	ProjectsFile string

	// --- Timeout & Retries ---
	RequestTimeout time.Duration
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数です。
func DefaultConfig() Config {
	return Config{
		GeminiModel:    DefaultGeminiModel,
		SettleDelay:    DefaultSettleDelay,
		OutputDir:      DefaultOutputDir,
		PDFName:        DefaultPDFName,
		ProjectsFile:   DefaultProjectsFile,
		RequestTimeout: DefaultRequestTimeout,
	}
}
