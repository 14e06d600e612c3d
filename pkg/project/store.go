package project

import (
	"fmt"
	"sync"

	"github.com/shouni/go-carousel-kit/pkg/domain"
)

// Store は編集セッションの状態を保持するスレッドセーフなストアです。
// スライド列は常に1枚以上を保つ、が全操作に共通の不変条件なのだ。
type Store struct {
	mu sync.Mutex

	slides      []domain.Slide
	activeIndex int
	style       domain.StyleConfig
	topic       string
	links       []string
	keyMessages domain.KeySequence

	activeProfile domain.ProfileKind
	personal      domain.BrandingProfile
	company       domain.BrandingProfile
}

// NewStore は既定状態のストアを返します。
// ウェルカム用の初期スライド3枚・既定スタイル・個人プロファイル選択で開始します。
func NewStore() *Store {
	return &Store{
		slides: []domain.Slide{
			{
				Title:   "Twoja karuzela zaczyna się tutaj",
				Content: "Wpisz temat, a AI przygotuje treść wszystkich slajdów.",
			},
			{
				Title:   "Dostosuj styl",
				Content: "Wybierz motyw, układ i proporcje dopasowane do Twojej marki.",
			},
			{
				Title:   "Eksportuj i publikuj",
				Content: "Zapisz slajdy jako PNG, JPG lub gotowy PDF.",
			},
		},
		style:         domain.DefaultStyleConfig(),
		activeProfile: domain.ProfilePersonal,
		personal:      domain.BrandingProfile{Handle: "@SynapseCreative", Kind: domain.ProfilePersonal},
		company:       domain.BrandingProfile{Handle: "@Synapse_Creative", Kind: domain.ProfileCompany},
	}
}

// Slides は現在のスライド列のコピーを返します。
func (s *Store) Slides() []domain.Slide {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Slide(nil), s.slides...)
}

// ActiveIndex は現在選択中のスライド位置を返します。
func (s *Store) ActiveIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeIndex
}

// SetSlides は生成結果などでスライド列を丸ごと置き換えます。
// 空列への置き換えは不変条件に反するので無視し、選択位置は先頭に戻すのだ。
func (s *Store) SetSlides(slides []domain.Slide) {
	if len(slides) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slides = append([]domain.Slide(nil), slides...)
	s.activeIndex = 0
}

// AddSlide は after の直後に新しいスライドを挿入し、それを選択状態にします。
// after が範囲外なら末尾への追加として扱います。
func (s *Store) AddSlide(after int, slide domain.Slide) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if after < 0 || after >= len(s.slides) {
		after = len(s.slides) - 1
	}
	pos := after + 1
	s.slides = append(s.slides, domain.Slide{})
	copy(s.slides[pos+1:], s.slides[pos:])
	s.slides[pos] = slide
	s.activeIndex = pos
}

// AddBlankSlide は after の直後に既定文言の新規スライドを挿入します。
func (s *Store) AddBlankSlide(after int) {
	s.AddSlide(after, domain.NewBlankSlide())
}

// RemoveSlide は指定位置のスライドを削除します。
// 最後の1枚は削除できず、状態を変えずに domain.ErrLastSlide を返します。
func (s *Store) RemoveSlide(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.slides) <= 1 {
		return domain.ErrLastSlide
	}
	if index < 0 || index >= len(s.slides) {
		return fmt.Errorf("スライド位置が範囲外です: %d", index)
	}
	s.slides = append(s.slides[:index], s.slides[index+1:]...)
	if s.activeIndex >= len(s.slides) {
		s.activeIndex = len(s.slides) - 1
	}
	return nil
}

// UpdateSlide は指定位置のスライド内容を置き換えます。
func (s *Store) UpdateSlide(index int, slide domain.Slide) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.slides) {
		return fmt.Errorf("スライド位置が範囲外です: %d", index)
	}
	s.slides[index] = slide
	return nil
}

// SetActiveIndex は選択位置を [0, len-1] に丸めて設定します。
func (s *Store) SetActiveIndex(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 {
		index = 0
	}
	if index >= len(s.slides) {
		index = len(s.slides) - 1
	}
	s.activeIndex = index
}

// Style は現在のスタイル設定を返します。
func (s *Store) Style() domain.StyleConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.style
}

// SetStyle はスタイル設定を置き換えます。不透明度はここで必ず丸められるので、
// ストア経由で範囲外の値が観測されることはないのだ。
func (s *Store) SetStyle(sc domain.StyleConfig) {
	sc.Background.OverlayOpacity = domain.ClampOpacity(sc.Background.OverlayOpacity)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.style = sc
}

// Topic は現在の生成テーマを返します。
func (s *Store) Topic() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topic
}

// SetTopic は生成テーマを設定します。
func (s *Store) SetTopic(topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topic = topic
}

// SetKeyMessages は3フェーズの指針文を設定します。
func (s *Store) SetKeyMessages(k domain.KeySequence) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyMessages = k
}

// KeyMessages は現在の指針文を返します。
func (s *Store) KeyMessages() domain.KeySequence {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keyMessages
}

// SetReferenceLinks は最終スライドの参照リンク列を設定します。
func (s *Store) SetReferenceLinks(links []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links = append([]string(nil), links...)
}

// ReferenceLinks は参照リンク列のコピーを返します。
func (s *Store) ReferenceLinks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.links...)
}

// SetActiveProfile は使用するブランディングプロファイルを切り替えます。
func (s *Store) SetActiveProfile(kind domain.ProfileKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeProfile = kind
}

// UpdateProfile は種別に対応するプロファイルを更新します。
func (s *Store) UpdateProfile(kind domain.ProfileKind, p domain.BrandingProfile) {
	p.Kind = kind
	s.mu.Lock()
	defer s.mu.Unlock()
	if kind == domain.ProfileCompany {
		s.company = p
		return
	}
	s.personal = p
}

// ActiveProfile は現在選択中のプロファイルを返します。
func (s *Store) ActiveProfile() domain.BrandingProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeProfile == domain.ProfileCompany {
		return s.company
	}
	return s.personal
}

// Snapshot はセッション全体の深いコピーを Project として切り出します。
// ID とタイムスタンプはここでは付与せず、保存側の責務とします。
func (s *Store) Snapshot(name string) domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Project{
		Name:          name,
		Slides:        append([]domain.Slide(nil), s.slides...),
		Style:         s.style,
		Topic:         s.topic,
		Links:         append([]string(nil), s.links...),
		KeyMessages:   s.keyMessages,
		ActiveProfile: s.activeProfile,
		Personal:      s.personal,
		Company:       s.company,
	}
}

// Restore は保存済みスナップショットをセッションに読み戻します。
// 選択位置は必ず先頭に戻るのだ。
func (s *Store) Restore(p domain.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(p.Slides) > 0 {
		s.slides = append([]domain.Slide(nil), p.Slides...)
	}
	s.activeIndex = 0
	s.style = p.Style
	s.style.Background.OverlayOpacity = domain.ClampOpacity(s.style.Background.OverlayOpacity)
	s.topic = p.Topic
	s.links = append([]string(nil), p.Links...)
	s.keyMessages = p.KeyMessages
	if p.ActiveProfile != "" {
		s.activeProfile = p.ActiveProfile
	}
	if p.Personal.Handle != "" || p.Personal.LogoRef != "" || p.Personal.PhotoRef != "" {
		s.personal = p.Personal
	}
	if p.Company.Handle != "" || p.Company.LogoRef != "" || p.Company.PhotoRef != "" {
		s.company = p.Company
	}
}
