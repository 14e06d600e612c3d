package prompts

import (
	_ "embed"
)

const (
	ModeCarousel  = "carousel"
	ModeStructure = "structure"
	ModeSequence  = "sequence"
	ModeConvert   = "convert"
)

// TemplateData はプロンプトテンプレートに渡すデータ構造です。
// モードによって使われるフィールドは異なり、空のフィールドは描画されません。
type TemplateData struct {
	Topic      string
	Tone       string
	SlideCount int

	// 3フェーズの指針文。すべて空ならセクションごと省略される。
	Hook         string
	Value        string
	CallToAction string

	SourceURL       string
	SourceText      string
	ReferenceImages []string
}

// HasKeyMessages はいずれかのフェーズ指針が設定されているかを返します。
func (d TemplateData) HasKeyMessages() bool {
	return d.Hook != "" || d.Value != "" || d.CallToAction != ""
}

var (
	//go:embed carousel.md
	CarouselPrompt string
	//go:embed structure.md
	StructurePrompt string
	//go:embed sequence.md
	SequencePrompt string
	//go:embed convert.md
	ConvertPrompt string
)

// allTemplates はモードとテンプレート文字列を紐づけるマップなのだ。
var allTemplates = map[string]string{
	ModeCarousel:  CarouselPrompt,
	ModeStructure: StructurePrompt,
	ModeSequence:  SequencePrompt,
	ModeConvert:   ConvertPrompt,
}
