package runner

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/shouni/go-carousel-kit/pkg/domain"
)

var jsonBlockRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(.*\\S)\\s*```")

// extractJSON は AI 応答からJSON本体を取り出します。
// コードフェンス → 最外の波括弧 → 応答全体、の順でフォールバックするのだ。
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)

	matches := jsonBlockRegex.FindStringSubmatch(raw)
	if len(matches) > 1 {
		return matches[1]
	}

	firstBracket := strings.Index(raw, "{")
	lastBracket := strings.LastIndex(raw, "}")
	if firstBracket != -1 && lastBracket != -1 && lastBracket > firstBracket {
		return raw[firstBracket : lastBracket+1]
	}

	return raw
}

// decodeResponse は応答テキストから JSON を抽出して v にデコードします。
func decodeResponse(raw string, v any) error {
	if err := json.Unmarshal([]byte(extractJSON(raw)), v); err != nil {
		return fmt.Errorf("AIからの応答に含まれるJSONの解析に失敗しました (応答抜粋: %q): %w", truncateString(raw, 200), err)
	}
	return nil
}

// classifyAIError は API エラーを区別可能な失敗種別に写像します。
// クォータ超過とモデル不在は呼び出し側で分岐できるようにセンチネルで包むのだ。
func classifyAIError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "resource_exhausted"), strings.Contains(msg, "quota"), strings.Contains(msg, "429"):
		return fmt.Errorf("%w: %v", domain.ErrQuotaExceeded, err)
	case strings.Contains(msg, "not_found"), strings.Contains(msg, "not found"), strings.Contains(msg, "404"):
		return fmt.Errorf("%w: %v", domain.ErrModelNotFound, err)
	default:
		return err
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
