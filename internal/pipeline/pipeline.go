package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"

	"github.com/shouni/go-carousel-kit/internal/builder"
	"github.com/shouni/go-carousel-kit/internal/config"
	"github.com/shouni/go-carousel-kit/pkg/domain"
	"github.com/shouni/go-carousel-kit/pkg/export"
	"github.com/shouni/go-carousel-kit/pkg/project"
	"github.com/shouni/go-carousel-kit/pkg/registry"
	"github.com/shouni/go-carousel-kit/pkg/render"
	"github.com/shouni/go-carousel-kit/pkg/runner"
)

// ExecuteGenerate は、テーマからカルーセル一式を生成して書き出す王道パイプラインなのだ。
// 生成 → ストア反映 →（任意で）スナップショット保存 → 画像/PDFエクスポート、の順で進む。
func ExecuteGenerate(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	carouselRunner, err := builder.BuildCarouselRunner(appCtx)
	if err != nil {
		return err
	}

	settings := generationSettings(cfg)

	slog.Info("カルーセル生成を開始するのだ！", "topic", settings.Topic, "slides", settings.SlideCount)
	carousel, err := carouselRunner.Run(ctx, settings)
	if err != nil {
		return fmt.Errorf("カルーセル生成に失敗したのだ: %w", err)
	}
	for _, src := range carousel.Sources {
		slog.Info("根拠として参照されたソースなのだ", "title", src.Title, "uri", src.URI)
	}

	store := setupStore(cfg, carousel.Slides, settings)
	return finishSession(ctx, appCtx, store)
}

// ExecuteConvert は、既存コンテンツ（URL・ファイル・生テキスト）をカルーセルに変換するのだ。
func ExecuteConvert(ctx context.Context, cfg *config.Config, rawText string) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	convertRunner, err := builder.BuildConvertRunner(appCtx)
	if err != nil {
		return err
	}

	var carousel domain.CarouselResponse
	switch {
	case cfg.Options.SourceURL != "":
		carousel, err = convertRunner.RunURL(ctx, cfg.Options.SourceURL, cfg.Options.SlideCount)
	case cfg.Options.SourceFile != "":
		carousel, err = convertRunner.RunFile(ctx, cfg.Options.SourceFile, cfg.Options.SlideCount)
	default:
		carousel, err = convertRunner.RunText(ctx, rawText, cfg.Options.SlideCount)
	}
	if err != nil {
		return fmt.Errorf("変換に失敗したのだ: %w", err)
	}

	store := setupStore(cfg, carousel.Slides, domain.GenerationSettings{Topic: cfg.Options.Topic})
	return finishSession(ctx, appCtx, store)
}

// ExecuteStructure は構成プレビュー（タイトル列）だけを生成して表示するのだ。
func ExecuteStructure(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	structureRunner, err := builder.BuildStructureRunner(appCtx)
	if err != nil {
		return err
	}
	titles, err := structureRunner.Run(ctx, cfg.Options.Topic, cfg.Options.SlideCount)
	if err != nil {
		return fmt.Errorf("構成プレビューの生成に失敗したのだ: %w", err)
	}

	for i, title := range titles {
		fmt.Printf("%2d. %s\n", i+1, title)
	}
	return nil
}

// ExecuteSequence は3フェーズ（Hook / 価値 / CTA）の指針文を生成して表示するのだ。
func ExecuteSequence(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	sequenceRunner, err := builder.BuildSequenceRunner(appCtx)
	if err != nil {
		return err
	}
	seq, err := sequenceRunner.Run(ctx, cfg.Options.Topic)
	if err != nil {
		return fmt.Errorf("指針文の生成に失敗したのだ: %w", err)
	}

	labels := [3]string{"Hook", "Wartość", "CTA"}
	for i, msg := range seq {
		fmt.Printf("%s: %s\n", labels[i], msg)
	}
	return nil
}

// ExecuteExport は、保存済みスナップショットを読み戻してエクスポートだけを行うのだ。
func ExecuteExport(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	repo := builder.BuildProjectRepository(appCtx)
	var snapshot domain.Project
	if cfg.Options.ProjectID != "" {
		snapshot, err = repo.Load(ctx, cfg.Options.ProjectID)
		if err != nil {
			return err
		}
	} else {
		projects := repo.List(ctx)
		if len(projects) == 0 {
			return fmt.Errorf("保存済みプロジェクトがありません。先に generate --save を実行してほしいのだ")
		}
		snapshot = projects[0]
	}

	store := project.NewStore()
	store.Restore(snapshot)
	applyStyleOptions(store, cfg.Options)
	return runExport(ctx, appCtx, store)
}

// ExecuteProjectList は保存済みスナップショットの一覧を表示するのだ。
func ExecuteProjectList(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	projects := builder.BuildProjectRepository(appCtx).List(ctx)
	if len(projects) == 0 {
		fmt.Println("(brak zapisanych projektów)")
		return nil
	}
	for _, p := range projects {
		fmt.Printf("%s  %3d slajdów  %s  %s\n", p.ID, len(p.Slides), p.Style.AspectRatio, p.Name)
	}
	return nil
}

// ExecuteProjectDelete は ID 指定の削除、ID 省略時は全消去を行うのだ。
func ExecuteProjectDelete(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	repo := builder.BuildProjectRepository(appCtx)
	if cfg.Options.ProjectID == "" {
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		slog.Info("保存済みプロジェクトをすべて消去したのだ")
		return nil
	}
	if err := repo.Delete(ctx, cfg.Options.ProjectID); err != nil {
		return err
	}
	slog.Info("プロジェクトを削除したのだ", "id", cfg.Options.ProjectID)
	return nil
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、アプリケーションコンテキストを初期化して返すのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	timeout := cfg.Options.HTTPTimeout
	if timeout <= 0 {
		timeout = config.DefaultHTTPTimeout
	}
	httpClient := httpkit.New(timeout)

	aiClient, err := builder.InitializeAIClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create ai client: %w", err)
	}

	gcsFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}
	reader, err := gcsFactory.NewInputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.NewOutputWriter()
	if err != nil {
		return nil, err
	}

	appCtx := builder.NewAppContext(cfg, httpClient, aiClient, reader, writer)
	return &appCtx, nil
}

// generationSettings はCLIオプションを生成要求に写すのだ。
// 参照リンクは正規化してから参照画像コンテキストとしてプロンプトに渡される。
func generationSettings(cfg *config.Config) domain.GenerationSettings {
	return domain.GenerationSettings{
		Topic:              cfg.Options.Topic,
		Tone:               domain.Tone(cfg.Options.Tone),
		SlideCount:         cfg.Options.SlideCount,
		SourceURL:          cfg.Options.SourceURL,
		KeyMessages:        runner.PadKeySequence(cfg.Options.KeyMessages),
		ReferenceImageURLs: render.ClosingLinks(cfg.Options.Links),
	}
}

// setupStore は生成結果とCLIオプションからセッションストアを組み立てるのだ。
func setupStore(cfg *config.Config, slides []domain.Slide, settings domain.GenerationSettings) *project.Store {
	store := project.NewStore()
	store.SetSlides(slides)
	store.SetTopic(cfg.Options.Topic)
	store.SetKeyMessages(settings.KeyMessages)
	store.SetReferenceLinks(cfg.Options.Links)
	applyStyleOptions(store, cfg.Options)
	applyProfileOptions(store, cfg.Options)
	return store
}

// applyStyleOptions は指定のあったスタイル項目だけを上書きするのだ。
func applyStyleOptions(store *project.Store, opts config.GenerateOptions) {
	sc := store.Style()
	if opts.ThemeID != "" {
		sc.ThemeID = opts.ThemeID
	}
	if opts.FontID != "" {
		sc.FontID = opts.FontID
	}
	if opts.AspectRatio != "" {
		sc.AspectRatio = domain.AspectRatio(opts.AspectRatio)
	}
	if opts.Layout != "" {
		sc.Layout = domain.SlideLayout(opts.Layout)
	}
	if opts.TextEffect != "" {
		sc.TextEffect = domain.TextEffect(opts.TextEffect)
	}
	if opts.TitleColor != "" {
		sc.TitleColor = opts.TitleColor
	}
	if opts.Background != "" {
		sc.BackgroundURL = registry.BackgroundByID(opts.Background).URL
	}
	if opts.PatternID != "" {
		sc.Background.PatternID = opts.PatternID
	}
	store.SetStyle(sc)
}

// applyProfileOptions はブランディングプロファイルの選択と上書きを反映するのだ。
func applyProfileOptions(store *project.Store, opts config.GenerateOptions) {
	kind := domain.ProfilePersonal
	if strings.EqualFold(opts.Profile, string(domain.ProfileCompany)) {
		kind = domain.ProfileCompany
	}
	store.SetActiveProfile(kind)

	if opts.Handle == "" && opts.Logo == "" && opts.Photo == "" {
		return
	}
	p := store.ActiveProfile()
	if opts.Handle != "" {
		p.Handle = opts.Handle
	}
	if opts.Logo != "" {
		p.LogoRef = opts.Logo
	}
	if opts.Photo != "" {
		p.PhotoRef = opts.Photo
	}
	store.UpdateProfile(kind, p)
}

// finishSession は保存とエクスポートのパイプライン後段なのだ。
func finishSession(ctx context.Context, appCtx *builder.AppContext, store *project.Store) error {
	if appCtx.Options.SaveProject {
		repo := builder.BuildProjectRepository(appCtx)
		saved, err := repo.Save(ctx, store.Snapshot(appCtx.Options.ProjectName))
		if err != nil {
			return fmt.Errorf("プロジェクトの保存に失敗したのだ: %w", err)
		}
		slog.Info("プロジェクトを保存したのだ！", "id", saved.ID, "name", saved.Name)
	}
	return runExport(ctx, appCtx, store)
}

// runExport はストアの現在状態を画像（と任意でPDF）として書き出すのだ。
func runExport(ctx context.Context, appCtx *builder.AppContext, store *project.Store) error {
	exporter := builder.BuildExporter(appCtx)

	format := export.FormatPNG
	if strings.EqualFold(appCtx.Options.Format, string(export.FormatJPEG)) || strings.EqualFold(appCtx.Options.Format, "jpeg") {
		format = export.FormatJPEG
	}

	job := export.Job{
		Slides:    store.Slides(),
		Style:     store.Style(),
		Profile:   store.ActiveProfile(),
		Links:     store.ReferenceLinks(),
		Format:    format,
		OutputDir: appCtx.Options.OutputDir,
		PDFPath:   appCtx.Options.PDFFile,
	}

	written, err := exporter.ExportImages(ctx, job)
	if err != nil {
		return fmt.Errorf("画像エクスポートに失敗したのだ: %w", err)
	}
	slog.Info("画像エクスポートが完了したのだ！", "files", len(written))

	if appCtx.Options.WithPDF {
		pdfPath, err := exporter.ExportPDF(ctx, job)
		if err != nil {
			return fmt.Errorf("PDFエクスポートに失敗したのだ: %w", err)
		}
		slog.Info("PDFエクスポートが完了したのだ！", "path", pdfPath)
	}
	return nil
}
