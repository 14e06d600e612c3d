package export

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/shouni/go-carousel-kit/pkg/registry"
)

// hexColor は #rrggbb をアルファ付きの色に変換します。
// 不正なコードは黒として扱い、描画自体は止めないのだ。
func hexColor(s string, alpha float64) color.Color {
	r, g, b, err := parseHex(s)
	if err != nil {
		r, g, b = 0, 0, 0
	}
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: uint8(alpha * 255),
	}
}

// drawPatternTile はタイル1枚ぶんの図形を (x, y) を左上として描きます。
// 色は呼び出し側で設定済みであること。
func drawPatternTile(dc *gg.Context, shape registry.PatternShape, x, y, tile float64) {
	cx := x + tile/2
	cy := y + tile/2

	switch shape {
	case registry.ShapeDots, registry.ShapeBubbles:
		dc.DrawCircle(cx, cy, tile/8)
		dc.Fill()
	case registry.ShapeCircles:
		dc.DrawCircle(cx, cy, tile/3)
		dc.SetLineWidth(2)
		dc.Stroke()
	case registry.ShapeGrid:
		dc.SetLineWidth(1.5)
		dc.DrawLine(x, y, x+tile, y)
		dc.DrawLine(x, y, x, y+tile)
		dc.Stroke()
	case registry.ShapeSquares:
		side := tile / 3
		dc.DrawRectangle(cx-side/2, cy-side/2, side, side)
		dc.Fill()
	case registry.ShapeCross:
		arm := tile / 5
		dc.SetLineWidth(2.5)
		dc.DrawLine(cx-arm, cy, cx+arm, cy)
		dc.DrawLine(cx, cy-arm, cx, cy+arm)
		dc.Stroke()
	case registry.ShapeDiagonal:
		dc.SetLineWidth(2)
		dc.DrawLine(x, y+tile, x+tile, y)
		dc.Stroke()
	case registry.ShapeZigzag, registry.ShapeChevrons:
		dc.SetLineWidth(2.5)
		dc.MoveTo(x, cy)
		dc.LineTo(cx, cy-tile/4)
		dc.LineTo(x+tile, cy)
		dc.Stroke()
	case registry.ShapeWaves:
		dc.SetLineWidth(2)
		dc.DrawArc(x+tile/4, cy, tile/4, math.Pi, 2*math.Pi)
		dc.DrawArc(x+tile*3/4, cy, tile/4, 0, math.Pi)
		dc.Stroke()
	case registry.ShapeTriangles:
		side := tile / 2
		dc.MoveTo(cx, cy-side/2)
		dc.LineTo(cx+side/2, cy+side/2)
		dc.LineTo(cx-side/2, cy+side/2)
		dc.ClosePath()
		dc.Fill()
	case registry.ShapeHexagons:
		r := tile / 3
		for i := 0; i <= 6; i++ {
			a := math.Pi/6 + float64(i)*math.Pi/3
			px := cx + r*math.Cos(a)
			py := cy + r*math.Sin(a)
			if i == 0 {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		dc.SetLineWidth(2)
		dc.Stroke()
	case registry.ShapeCircuit:
		dc.SetLineWidth(2)
		dc.DrawLine(x, cy, cx, cy)
		dc.DrawLine(cx, cy, cx, y)
		dc.Stroke()
		dc.DrawCircle(cx, cy, 3)
		dc.Fill()
	case registry.ShapePuzzle:
		dc.SetLineWidth(2)
		dc.DrawLine(x, y, x+tile, y)
		dc.Stroke()
		dc.DrawCircle(cx, y, tile/8)
		dc.Fill()
	}
}
