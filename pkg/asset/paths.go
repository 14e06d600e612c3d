package asset

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/shouni/go-utils/urlpath"
)

const (
	// DefaultSlidePNG は PNG エクスポート時の共通のベースファイル名です。
	DefaultSlidePNG = "slajd.png"
	// DefaultSlideJPEG は JPEG エクスポート時の共通のベースファイル名です。
	DefaultSlideJPEG = "slajd.jpg"
)

var (
	// SlidePNGRegex はスライド画像 (slajd_1.png 等) に一致します
	SlidePNGRegex = createIndexedRegex(DefaultSlidePNG)
	// SlideJPEGRegex はスライド画像 (slajd_1.jpg 等) に一致します
	SlideJPEGRegex = createIndexedRegex(DefaultSlideJPEG)
)

// ResolveOutputPath は、ベースとなるディレクトリパスとファイル名から、
// GCS/ローカルを考慮した最終的な出力パスを生成します。
func ResolveOutputPath(baseDir, fileName string) (string, error) {
	return urlpath.ResolvePath(baseDir, fileName)
}

// GenerateIndexedPath は、指定されたベースパスの拡張子の前に連番を挿入し、
// 新しいパス文字列を生成します。index は1以上の整数である必要があります。
// 例: "path/to/slajd.png", 1 -> "path/to/slajd_1.png"
func GenerateIndexedPath(basePath string, index int) (string, error) {
	return urlpath.GenerateIndexedPath(basePath, index)
}

// createIndexedRegex は、ファイル名に基づきインデックス付きファイル用の正規表現を生成します。
func createIndexedRegex(fileName string) *regexp.Regexp {
	ext := filepath.Ext(fileName)
	baseName := strings.TrimSuffix(fileName, ext)

	pattern := fmt.Sprintf(`^%s_\d+%s$`, regexp.QuoteMeta(baseName), regexp.QuoteMeta(ext))
	return regexp.MustCompile(pattern)
}
