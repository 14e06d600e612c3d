package asset

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// fetchCacheTTL はリモート画像のキャッシュ保持時間です。
// 同一のロゴ・アバターをスライドごとに取り直さないためのものなのだ。
const fetchCacheTTL = 15 * time.Minute

// Doer は HTTP リクエストを実行できる最小の契約です。
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Loader は画像参照（data URI / http(s) URL / ローカルパス・GCS URI）を
// バイト列に解決します。リモート取得はキャッシュされます。
type Loader struct {
	client Doer
	reader remoteio.InputReader
	cache  *cache.Cache
}

// NewLoader は依存関係を注入して Loader を初期化します。
func NewLoader(client Doer, reader remoteio.InputReader) *Loader {
	return &Loader{
		client: client,
		reader: reader,
		cache:  cache.New(fetchCacheTTL, fetchCacheTTL),
	}
}

// Load は参照の種類を判別して画像データと MIME タイプを返します。
func (l *Loader) Load(ctx context.Context, ref string) ([]byte, string, error) {
	switch {
	case strings.HasPrefix(ref, "data:"):
		return decodeDataURI(ref)
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return l.fetch(ctx, ref)
	default:
		return l.open(ctx, ref)
	}
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, string, error) {
	if cached, ok := l.cache.Get(url); ok {
		entry := cached.(cacheEntry)
		return entry.data, entry.mime, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("画像リクエストの生成に失敗しました (%s): %w", url, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("画像の取得に失敗しました (%s): %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("画像の取得に失敗しました (%s): status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("画像の読み込みに失敗しました (%s): %w", url, err)
	}

	mime := resp.Header.Get("Content-Type")
	if mime == "" {
		mime = http.DetectContentType(data)
	}
	l.cache.Set(url, cacheEntry{data: data, mime: mime}, cache.DefaultExpiration)
	return data, mime, nil
}

func (l *Loader) open(ctx context.Context, path string) ([]byte, string, error) {
	rc, err := l.reader.Open(ctx, path)
	if err != nil {
		return nil, "", fmt.Errorf("画像ファイルのオープンに失敗しました (%s): %w", path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, "", fmt.Errorf("画像ファイルの読み込みに失敗しました (%s): %w", path, err)
	}
	return data, http.DetectContentType(data), nil
}

type cacheEntry struct {
	data []byte
	mime string
}

// decodeDataURI は data:<mime>;base64,<payload> 形式をデコードします。
func decodeDataURI(uri string) ([]byte, string, error) {
	rest := strings.TrimPrefix(uri, "data:")
	sep := strings.Index(rest, ",")
	if sep == -1 {
		return nil, "", fmt.Errorf("不正な data URI です: カンマ区切りがありません")
	}
	meta, payload := rest[:sep], rest[sep+1:]

	mime := meta
	base64Encoded := false
	if strings.HasSuffix(meta, ";base64") {
		mime = strings.TrimSuffix(meta, ";base64")
		base64Encoded = true
	}
	if mime == "" {
		mime = "text/plain"
	}

	if !base64Encoded {
		return []byte(payload), mime, nil
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("data URI のデコードに失敗しました: %w", err)
	}
	return data, mime, nil
}

// EncodeDataURI は画像データを data URI に変換します。
// ローカル画像のインポートはこの形式でプロジェクトに保持されるのだ。
func EncodeDataURI(data []byte, mime string) string {
	if mime == "" {
		mime = http.DetectContentType(data)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
