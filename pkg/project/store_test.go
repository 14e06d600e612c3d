package project

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shouni/go-carousel-kit/pkg/domain"
)

func TestStore_最後の1枚は削除できない(t *testing.T) {
	s := NewStore()
	if got := len(s.Slides()); got != 3 {
		t.Fatalf("初期スライド数 = %d, 期待 3", got)
	}

	s.SetSlides([]domain.Slide{{Title: "jedyny"}})
	err := s.RemoveSlide(0)
	if !errors.Is(err, domain.ErrLastSlide) {
		t.Fatalf("RemoveSlide の戻り = %v, 期待 ErrLastSlide", err)
	}
	if got := len(s.Slides()); got != 1 {
		t.Errorf("削除後のスライド数 = %d, 状態が変わってはいけない", got)
	}
}

func TestStore_削除で選択位置が末尾に丸められる(t *testing.T) {
	s := NewStore()
	s.SetSlides([]domain.Slide{{Title: "1"}, {Title: "2"}, {Title: "3"}})
	s.SetActiveIndex(2)

	if err := s.RemoveSlide(2); err != nil {
		t.Fatal(err)
	}
	if got := s.ActiveIndex(); got != 1 {
		t.Errorf("選択位置 = %d, 期待 1", got)
	}
}

func TestStore_挿入は指定位置の直後に入りそのスライドが選択される(t *testing.T) {
	s := NewStore()
	s.SetSlides([]domain.Slide{{Title: "A"}, {Title: "C"}})

	s.AddSlide(0, domain.Slide{Title: "B"})

	want := []domain.Slide{{Title: "A"}, {Title: "B"}, {Title: "C"}}
	if diff := cmp.Diff(want, s.Slides()); diff != "" {
		t.Errorf("スライド列の不一致 (-want +got):\n%s", diff)
	}
	if got := s.ActiveIndex(); got != 1 {
		t.Errorf("選択位置 = %d, 期待 1", got)
	}
}

func TestStore_範囲外のafterは末尾追加として扱う(t *testing.T) {
	s := NewStore()
	s.SetSlides([]domain.Slide{{Title: "A"}})
	s.AddSlide(99, domain.Slide{Title: "B"})
	slides := s.Slides()
	if slides[len(slides)-1].Title != "B" {
		t.Errorf("末尾のスライド = %q, 期待 B", slides[len(slides)-1].Title)
	}
}

func TestStore_手動追加は既定文言のスライドを挿入する(t *testing.T) {
	s := NewStore()
	s.SetSlides([]domain.Slide{{Title: "A"}})

	s.AddBlankSlide(0)

	slides := s.Slides()
	if got := slides[1].Title; got != "Nowy Slajd" {
		t.Errorf("挿入されたタイトル = %q, 期待 Nowy Slajd", got)
	}
	if slides[1].Content == "" {
		t.Error("挿入されたスライドに既定の本文がない")
	}
}

func TestStore_スライド置換で選択位置は先頭に戻る(t *testing.T) {
	s := NewStore()
	s.SetSlides([]domain.Slide{{Title: "1"}, {Title: "2"}, {Title: "3"}})
	s.SetActiveIndex(2)

	s.SetSlides([]domain.Slide{{Title: "X"}, {Title: "Y"}})
	if got := s.ActiveIndex(); got != 0 {
		t.Errorf("置換後の選択位置 = %d, 期待 0", got)
	}

	// 空列への置換は無視される。
	s.SetSlides(nil)
	if got := len(s.Slides()); got != 2 {
		t.Errorf("空列置換後のスライド数 = %d, 期待 2", got)
	}
}

func TestStore_不透明度はストア経由で必ず丸められる(t *testing.T) {
	s := NewStore()
	sc := s.Style()
	sc.Background.OverlayOpacity = 180
	s.SetStyle(sc)
	if got := s.Style().Background.OverlayOpacity; got != 100 {
		t.Errorf("不透明度 = %d, 期待 100", got)
	}

	sc.Background.OverlayOpacity = -5
	s.SetStyle(sc)
	if got := s.Style().Background.OverlayOpacity; got != 0 {
		t.Errorf("不透明度 = %d, 期待 0", got)
	}
}

func TestStore_スナップショットと復元で内容が往復する(t *testing.T) {
	s := NewStore()
	s.SetSlides([]domain.Slide{{Title: "A", Content: "a"}, {Title: "B", Content: "b"}})
	s.SetTopic("Inwestowanie dla początkujących")
	s.SetReferenceLinks([]string{"example.com"})
	s.SetKeyMessages(domain.KeySequence{"hook", "wartość", "cta"})
	s.SetActiveProfile(domain.ProfileCompany)
	s.SetActiveIndex(1)

	snap := s.Snapshot("Mój projekt")

	restored := NewStore()
	restored.Restore(snap)

	if got := restored.ActiveIndex(); got != 0 {
		t.Errorf("復元後の選択位置 = %d, 期待 0", got)
	}
	if diff := cmp.Diff(s.Slides(), restored.Slides()); diff != "" {
		t.Errorf("スライド列の不一致 (-want +got):\n%s", diff)
	}
	if got := restored.Topic(); got != "Inwestowanie dla początkujących" {
		t.Errorf("テーマ = %q", got)
	}
	if got := restored.ActiveProfile().Kind; got != domain.ProfileCompany {
		t.Errorf("復元後のプロファイル種別 = %q, 期待 company", got)
	}
}

func TestStore_スナップショットは深いコピーになっている(t *testing.T) {
	s := NewStore()
	s.SetSlides([]domain.Slide{{Title: "A"}})
	snap := s.Snapshot("")

	// ストア側を変えてもスナップショットに波及しない。
	if err := s.UpdateSlide(0, domain.Slide{Title: "Z"}); err != nil {
		t.Fatal(err)
	}
	if snap.Slides[0].Title != "A" {
		t.Errorf("スナップショットが後続の編集に追随している: %q", snap.Slides[0].Title)
	}
}
