package project

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/go-carousel-kit/pkg/domain"
)

// defaultProjectName は名前もテーマも無い場合のスナップショット名です。
const defaultProjectName = "Projekt bez tytułu"

const projectsContentType = "application/json; charset=utf-8"

// Repository はプロジェクトスナップショットを単一の JSON ファイルとして
// 永続化します。保存先はローカルパスでも GCS URI でもよいのだ。
type Repository struct {
	reader remoteio.InputReader
	writer remoteio.OutputWriter
	path   string
}

// NewRepository は新しい Repository を生成します。
func NewRepository(r remoteio.InputReader, w remoteio.OutputWriter, path string) *Repository {
	return &Repository{reader: r, writer: w, path: path}
}

// List は保存済みスナップショットを新しい順で返します。
// ファイルが無い・壊れている場合は空リストとして扱います。
func (r *Repository) List(ctx context.Context) []domain.Project {
	rc, err := r.reader.Open(ctx, r.path)
	if err != nil {
		slog.DebugContext(ctx, "プロジェクトファイルが開けないため空として扱います", "path", r.path, "error", err)
		return nil
	}
	defer rc.Close()

	var projects []domain.Project
	if err := json.NewDecoder(rc).Decode(&projects); err != nil {
		slog.WarnContext(ctx, "プロジェクトファイルのパースに失敗したため空として扱います", "path", r.path, "error", err)
		return nil
	}
	return projects
}

// Save はスナップショットを先頭に追加して書き戻します。
// ID と保存時刻はここで付与され、上限を超えた最古のものは追い出されます。
func (r *Repository) Save(ctx context.Context, p domain.Project) (domain.Project, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Timestamp = time.Now().UnixMilli()
	if strings.TrimSpace(p.Name) == "" {
		if t := strings.TrimSpace(p.Topic); t != "" {
			p.Name = t
		} else {
			p.Name = defaultProjectName
		}
	}

	projects := append([]domain.Project{p}, r.List(ctx)...)
	if len(projects) > domain.MaxStoredProjects {
		projects = projects[:domain.MaxStoredProjects]
	}

	if err := r.write(ctx, projects); err != nil {
		return domain.Project{}, err
	}
	slog.InfoContext(ctx, "プロジェクトを保存しました", "id", p.ID, "name", p.Name, "total", len(projects))
	return p, nil
}

// Load は ID で指定したスナップショットを返します。
func (r *Repository) Load(ctx context.Context, id string) (domain.Project, error) {
	for _, p := range r.List(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Project{}, fmt.Errorf("プロジェクトが見つかりません: %s", id)
}

// Delete は ID で指定したスナップショットを取り除きます。
func (r *Repository) Delete(ctx context.Context, id string) error {
	projects := r.List(ctx)
	kept := projects[:0]
	for _, p := range projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(projects) {
		return fmt.Errorf("プロジェクトが見つかりません: %s", id)
	}
	return r.write(ctx, kept)
}

// Clear は保存済みスナップショットをすべて消去します。
func (r *Repository) Clear(ctx context.Context) error {
	return r.write(ctx, []domain.Project{})
}

func (r *Repository) write(ctx context.Context, projects []domain.Project) error {
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("プロジェクトのシリアライズに失敗しました: %w", err)
	}
	if err := r.writer.Write(ctx, r.path, strings.NewReader(string(data)), projectsContentType); err != nil {
		return fmt.Errorf("プロジェクトファイルの書き込みに失敗しました (%s): %w", r.path, err)
	}
	return nil
}
