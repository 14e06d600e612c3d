package domain

import "strings"

// Slide はカルーセルの1枚分のコンテンツを保持します。
// Content には改行を含められるので、レンダラー側で行ごとに分割して描画するのだ。
type Slide struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	IconURL string `json:"icon_url,omitempty"`
}

// NewBlankSlide は手動追加時の既定文言を持つ新規スライドを返します。
func NewBlankSlide() Slide {
	return Slide{
		Title:   "Nowy Slajd",
		Content: "Kliknij, aby edytować treść tego slajdu.",
	}
}

// GroundingSource は AI が回答の根拠として参照した Web ソースの情報です。
type GroundingSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// CarouselResponse は AI モデルから返されるカルーセル全体の構造です。
type CarouselResponse struct {
	Slides  []Slide           `json:"slides"`
	Sources []GroundingSource `json:"sources,omitempty"`
}

// KeySequence はカルーセルの3フェーズ（Hook / 価値 / CTA）の指針文です。
// 要素数は常に3で、生成に失敗したフェーズは空文字で埋められるのだ。
type KeySequence [3]string

// HasContent はいずれかのフェーズに空白以外の文字があるかを返します。
func (k KeySequence) HasContent() bool {
	for _, m := range k {
		if strings.TrimSpace(m) != "" {
			return true
		}
	}
	return false
}

// GenerationSettings はカルーセル本文の生成要求をまとめた構造体です。
type GenerationSettings struct {
	Topic              string
	Tone               Tone
	SlideCount         int
	SourceURL          string
	ReferenceImageURLs []string
	KeyMessages        KeySequence
	Profile            ProfileKind
	Layout             SlideLayout
	TextEffect         TextEffect
	TitleColor         string
}

// 生成スライド数の許容範囲なのだ。エディタ上の手動追加・削除には適用しないのだよ。
const (
	MinSlideCount = 4
	MaxSlideCount = 10
)

// ClampSlideCount は生成要求のスライド数を許容範囲 [4,10] に丸めます。
func ClampSlideCount(n int) int {
	if n < MinSlideCount {
		return MinSlideCount
	}
	if n > MaxSlideCount {
		return MaxSlideCount
	}
	return n
}
