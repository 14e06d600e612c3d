package runner

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shouni/go-carousel-kit/pkg/domain"
)

func TestDecodeResponse_フェンス付きJSONを解析できる(t *testing.T) {
	raw := "Oto karuzela:\n```json\n{\"slides\": [{\"title\": \"Hook\", \"content\": \"Treść\"}]}\n```\nPowodzenia!"

	var got domain.CarouselResponse
	if err := decodeResponse(raw, &got); err != nil {
		t.Fatal(err)
	}
	want := domain.CarouselResponse{Slides: []domain.Slide{{Title: "Hook", Content: "Treść"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("解析結果の不一致 (-want +got):\n%s", diff)
	}
}

func TestDecodeResponse_フェンスが無ければ波括弧で切り出す(t *testing.T) {
	raw := "Proszę bardzo: {\"slides\": [{\"title\": \"A\", \"content\": \"a\"}]} -- koniec"

	var got domain.CarouselResponse
	if err := decodeResponse(raw, &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Slides) != 1 || got.Slides[0].Title != "A" {
		t.Errorf("解析結果 = %+v", got)
	}
}

func TestDecodeResponse_素のJSONはそのまま解析する(t *testing.T) {
	var got sequenceResponse
	if err := decodeResponse(`{"messages": ["a", "b", "c"]}`, &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Messages) != 3 {
		t.Errorf("メッセージ数 = %d", len(got.Messages))
	}
}

func TestDecodeResponse_壊れた応答はエラーになる(t *testing.T) {
	var got domain.CarouselResponse
	if err := decodeResponse("przepraszam, nie mogę", &got); err == nil {
		t.Error("JSONを含まない応答がエラーにならない")
	}
}

func TestClassifyAIError_失敗種別が区別できる(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"クォータ超過", fmt.Errorf("googleapi: Error 429: RESOURCE_EXHAUSTED"), domain.ErrQuotaExceeded},
		{"quota文言", fmt.Errorf("quota exceeded for project"), domain.ErrQuotaExceeded},
		{"モデル不在", fmt.Errorf("googleapi: Error 404: model not found"), domain.ErrModelNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyAIError(tt.err); !errors.Is(got, tt.want) {
				t.Errorf("classifyAIError(%v) = %v, 期待 %v", tt.err, got, tt.want)
			}
		})
	}

	t.Run("未分類のエラーはそのまま返る", func(t *testing.T) {
		base := fmt.Errorf("connection refused")
		if got := classifyAIError(base); !errors.Is(got, base) {
			t.Errorf("未分類エラーが別物になっている: %v", got)
		}
	})

	t.Run("nilはnilのまま", func(t *testing.T) {
		if got := classifyAIError(nil); got != nil {
			t.Errorf("classifyAIError(nil) = %v", got)
		}
	})
}

func TestPadKeySequence_常に要素数3に正規化される(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want domain.KeySequence
	}{
		{"不足分は空文字で埋める", []string{"hook"}, domain.KeySequence{"hook", "", ""}},
		{"過剰分は切り捨てる", []string{"a", "b", "c", "d"}, domain.KeySequence{"a", "b", "c"}},
		{"空入力は全要素空", nil, domain.KeySequence{}},
		{"前後の空白は落とす", []string{" a ", "b", " c"}, domain.KeySequence{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PadKeySequence(tt.in); got != tt.want {
				t.Errorf("PadKeySequence(%v) = %v, 期待 %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseKeySequence_壊れた応答でも空の列で続行する(t *testing.T) {
	ctx := context.Background()

	t.Run("正常な応答は3フェーズに展開される", func(t *testing.T) {
		raw := "```json\n{\"messages\": [\"hook\", \"wartość\", \"cta\"]}\n```"
		want := domain.KeySequence{"hook", "wartość", "cta"}
		if got := parseKeySequence(ctx, raw); got != want {
			t.Errorf("parseKeySequence = %v, 期待 %v", got, want)
		}
	})

	t.Run("JSONとして読めない応答は全フェーズ空", func(t *testing.T) {
		if got := parseKeySequence(ctx, "przepraszam, nie mogę tego zrobić"); got != (domain.KeySequence{}) {
			t.Errorf("parseKeySequence = %v, 期待 全要素空", got)
		}
	})
}
