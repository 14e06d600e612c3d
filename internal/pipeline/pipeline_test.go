package pipeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shouni/go-carousel-kit/internal/config"
	"github.com/shouni/go-carousel-kit/pkg/domain"
)

func TestGenerationSettings_参照リンクは正規化されて参照画像コンテキストに渡る(t *testing.T) {
	cfg := config.LoadConfig()
	cfg.Options = config.GenerateOptions{
		Topic:       "Inwestowanie dla początkujących",
		Tone:        string(domain.ToneProfessional),
		SlideCount:  7,
		KeyMessages: []string{"hook", "wartość"},
		Links:       []string{"example.com/poradnik", " ", "https://synapse.dev"},
	}

	got := generationSettings(cfg)

	if got.Topic != "Inwestowanie dla początkujących" || got.SlideCount != 7 {
		t.Errorf("基本項目の写しが不正: %+v", got)
	}
	if got.KeyMessages != (domain.KeySequence{"hook", "wartość", ""}) {
		t.Errorf("指針文 = %v, 期待 3要素への正規化", got.KeyMessages)
	}
	wantRefs := []string{"https://example.com/poradnik", "https://synapse.dev"}
	if diff := cmp.Diff(wantRefs, got.ReferenceImageURLs); diff != "" {
		t.Errorf("参照画像コンテキストの不一致 (-want +got):\n%s", diff)
	}
}
