package project

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"testing"

	"github.com/shouni/go-carousel-kit/pkg/domain"
)

// memIO はテスト用のインメモリ入出力です。remoteio の両インターフェースを満たします。
type memIO struct {
	files map[string][]byte
}

func newMemIO() *memIO {
	return &memIO{files: map[string][]byte{}}
}

func (m *memIO) Open(_ context.Context, path string) (io.ReadCloser, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("ファイルが存在しません: %s", path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memIO) Write(_ context.Context, path string, r io.Reader, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.files[path] = data
	return nil
}

func TestRepository_保存と読み込みが往復する(t *testing.T) {
	ctx := context.Background()
	mem := newMemIO()
	repo := NewRepository(mem, mem, "projects.json")

	saved, err := repo.Save(ctx, domain.Project{
		Topic:  "Minimalizm cyfrowy",
		Slides: []domain.Slide{{Title: "A", Content: "a"}},
		Style:  domain.DefaultStyleConfig(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if saved.ID == "" {
		t.Error("保存時に ID が付与されていない")
	}
	if saved.Name != "Minimalizm cyfrowy" {
		t.Errorf("名前がテーマから補われていない: %q", saved.Name)
	}
	if saved.Timestamp == 0 {
		t.Error("保存時刻が付与されていない")
	}

	loaded, err := repo.Load(ctx, saved.ID)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Topic != saved.Topic || len(loaded.Slides) != 1 {
		t.Errorf("読み戻した内容が一致しない: %+v", loaded)
	}
}

func TestRepository_名前もテーマも無ければ既定名になる(t *testing.T) {
	mem := newMemIO()
	repo := NewRepository(mem, mem, "projects.json")
	saved, err := repo.Save(context.Background(), domain.Project{})
	if err != nil {
		t.Fatal(err)
	}
	if saved.Name != defaultProjectName {
		t.Errorf("名前 = %q, 期待 %q", saved.Name, defaultProjectName)
	}
}

func TestRepository_上限を超えると最古のものが追い出される(t *testing.T) {
	ctx := context.Background()
	mem := newMemIO()
	repo := NewRepository(mem, mem, "projects.json")

	for i := 0; i <= domain.MaxStoredProjects; i++ {
		if _, err := repo.Save(ctx, domain.Project{Name: "p" + strconv.Itoa(i)}); err != nil {
			t.Fatal(err)
		}
	}

	projects := repo.List(ctx)
	if got := len(projects); got != domain.MaxStoredProjects {
		t.Fatalf("保存数 = %d, 上限 %d", got, domain.MaxStoredProjects)
	}
	// 新しい順: 最新が先頭、最古 (p0) は追い出されている。
	if projects[0].Name != "p"+strconv.Itoa(domain.MaxStoredProjects) {
		t.Errorf("先頭 = %q, 期待 最新", projects[0].Name)
	}
	for _, p := range projects {
		if p.Name == "p0" {
			t.Error("最古のスナップショットが残っている")
		}
	}
}

func TestRepository_壊れたファイルは空として扱う(t *testing.T) {
	ctx := context.Background()
	mem := newMemIO()
	mem.files["projects.json"] = []byte("{nie-json")
	repo := NewRepository(mem, mem, "projects.json")

	if got := repo.List(ctx); len(got) != 0 {
		t.Errorf("壊れたファイルからの読み込み = %d 件, 期待 0", len(got))
	}
	// 壊れた状態からでも保存はやり直せる。
	if _, err := repo.Save(ctx, domain.Project{Name: "nowy"}); err != nil {
		t.Fatal(err)
	}
	if got := len(repo.List(ctx)); got != 1 {
		t.Errorf("復旧後の保存数 = %d, 期待 1", got)
	}
}

func TestRepository_削除と全消去(t *testing.T) {
	ctx := context.Background()
	mem := newMemIO()
	repo := NewRepository(mem, mem, "projects.json")

	a, _ := repo.Save(ctx, domain.Project{Name: "a"})
	b, _ := repo.Save(ctx, domain.Project{Name: "b"})

	if err := repo.Delete(ctx, a.ID); err != nil {
		t.Fatal(err)
	}
	if got := repo.List(ctx); len(got) != 1 || got[0].ID != b.ID {
		t.Errorf("削除後のリスト = %+v", got)
	}
	if err := repo.Delete(ctx, "nie-ma"); err == nil {
		t.Error("存在しない ID の削除がエラーにならない")
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if got := len(repo.List(ctx)); got != 0 {
		t.Errorf("全消去後の保存数 = %d", got)
	}
}
