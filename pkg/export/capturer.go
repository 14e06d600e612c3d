package export

import (
	"context"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/shouni/go-carousel-kit/pkg/render"
)

// Capturer はレイアウト済みの Canvas を1枚のラスタ画像に描き起こします。
// エクスポートはこの境界の向こう側を知らないのだ。
type Capturer interface {
	Capture(ctx context.Context, canvas render.Canvas) (image.Image, error)
}

// parseHex は #rrggbb / #rgb を 0..1 の RGB 成分に分解します。
func parseHex(s string) (r, g, b float64, err error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("不正なカラーコードです: %q", s)
	}
	val, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("不正なカラーコードです: %q: %w", s, err)
	}
	r = float64(val>>16&0xff) / 255
	g = float64(val>>8&0xff) / 255
	b = float64(val&0xff) / 255
	return r, g, b, nil
}
