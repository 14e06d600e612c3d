package prompts

import (
	"strings"
	"testing"
)

func TestTextPromptBuilder_全モードのテンプレートが構築できる(t *testing.T) {
	b, err := NewTextPromptBuilder()
	if err != nil {
		t.Fatal(err)
	}

	data := TemplateData{Topic: "Minimalizm cyfrowy", Tone: "Edukacyjny", SlideCount: 6, SourceText: "tekst"}
	for _, mode := range []string{ModeCarousel, ModeStructure, ModeSequence, ModeConvert} {
		out, err := b.Build(mode, data)
		if err != nil {
			t.Fatalf("モード %s: %v", mode, err)
		}
		if !strings.Contains(out, "JSON") {
			t.Errorf("モード %s: JSON 指示が含まれていない", mode)
		}
	}

	if _, err := b.Build("nieznany", data); err == nil {
		t.Error("未知のモードがエラーにならない")
	}
}

func TestTextPromptBuilder_指針文セクションは空なら省略される(t *testing.T) {
	b, err := NewTextPromptBuilder()
	if err != nil {
		t.Fatal(err)
	}

	without, err := b.Build(ModeCarousel, TemplateData{Topic: "AI", Tone: "Bezpośredni", SlideCount: 5})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(without, "trzy filary") {
		t.Error("指針文なしなのにセクションが描画されている")
	}

	with, err := b.Build(ModeCarousel, TemplateData{
		Topic: "AI", Tone: "Bezpośredni", SlideCount: 5,
		Hook: "Zaczep", Value: "Konkret", CallToAction: "Zaobserwuj",
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Zaczep", "Konkret", "Zaobserwuj"} {
		if !strings.Contains(with, want) {
			t.Errorf("指針文 %q がプロンプトに含まれていない", want)
		}
	}
}
