package registry

import "github.com/shouni/go-carousel-kit/pkg/domain"

// Format は出力フォーマットと対応する固定ピクセル寸法です。
// プレビューの縮小表示もエクスポートもこの寸法を唯一の基準にするのだ。
type Format struct {
	Ratio  domain.AspectRatio
	Label  string
	Desc   string
	Width  int
	Height int
}

// Formats は選択可能な全フォーマットのカタログです。先頭（4:5）がデフォルトなのだ。
var Formats = []Format{
	{Ratio: domain.RatioPortrait, Label: "Instagram / Threads (Portret)", Desc: "1080 x 1350", Width: 1080, Height: 1350},
	{Ratio: domain.RatioSquare, Label: "Insta / FB (Kwadrat)", Desc: "1080 x 1080", Width: 1080, Height: 1080},
	{Ratio: domain.RatioVertical, Label: "TikTok / Reels / Shorts", Desc: "1080 x 1920", Width: 1080, Height: 1920},
	{Ratio: domain.RatioLandscape, Label: "FB / LinkedIn (Poziom)", Desc: "1920 x 1080", Width: 1920, Height: 1080},
}

// FormatByRatio は縦横比に対応するフォーマットを返し、未知の値は先頭へフォールバックします。
func FormatByRatio(r domain.AspectRatio) Format {
	for _, f := range Formats {
		if f.Ratio == r {
			return f
		}
	}
	return Formats[0]
}

// Dimensions は縦横比に対応するピクセル寸法を返します。
func Dimensions(r domain.AspectRatio) (width, height int) {
	f := FormatByRatio(r)
	return f.Width, f.Height
}
