package asset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
)

type fakeDoer struct {
	calls int
	body  []byte
	mime  string
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	f.calls++
	header := http.Header{}
	if f.mime != "" {
		header.Set("Content-Type", f.mime)
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(f.body)),
	}, nil
}

type fakeReader struct {
	files map[string][]byte
}

func (f *fakeReader) Open(_ context.Context, path string) (io.ReadCloser, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, fmt.Errorf("ファイルが存在しません: %s", path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func TestLoader_dataURIが往復する(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	uri := EncodeDataURI(raw, "image/png")

	loader := NewLoader(&fakeDoer{}, &fakeReader{})
	data, mime, err := loader.Load(context.Background(), uri)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, raw) {
		t.Errorf("デコード結果 = %v, 期待 %v", data, raw)
	}
	if mime != "image/png" {
		t.Errorf("MIME = %q, 期待 image/png", mime)
	}
}

func TestLoader_不正なdataURIはエラーになる(t *testing.T) {
	loader := NewLoader(&fakeDoer{}, &fakeReader{})
	if _, _, err := loader.Load(context.Background(), "data:image/png;base64"); err == nil {
		t.Error("カンマの無い data URI がエラーにならない")
	}
}

func TestLoader_リモート取得はキャッシュされる(t *testing.T) {
	doer := &fakeDoer{body: []byte("obrazek"), mime: "image/jpeg"}
	loader := NewLoader(doer, &fakeReader{})

	for i := 0; i < 3; i++ {
		data, mime, err := loader.Load(context.Background(), "https://example.com/logo.jpg")
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "obrazek" || mime != "image/jpeg" {
			t.Fatalf("取得結果 = %q / %q", data, mime)
		}
	}
	if doer.calls != 1 {
		t.Errorf("HTTP 呼び出し回数 = %d, 期待 1", doer.calls)
	}
}

func TestLoader_ローカルパスはリーダー経由で読む(t *testing.T) {
	reader := &fakeReader{files: map[string][]byte{"logo.png": []byte("plik")}}
	loader := NewLoader(&fakeDoer{}, reader)

	data, _, err := loader.Load(context.Background(), "logo.png")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "plik" {
		t.Errorf("読み込み結果 = %q", data)
	}

	if _, _, err := loader.Load(context.Background(), "nie-ma.png"); err == nil {
		t.Error("存在しないパスがエラーにならない")
	}
}

func TestGenerateIndexedPath_連番が拡張子の前に入る(t *testing.T) {
	got, err := GenerateIndexedPath("output/slajd.png", 3)
	if err != nil {
		t.Fatal(err)
	}
	if got != "output/slajd_3.png" {
		t.Errorf("パス = %q, 期待 output/slajd_3.png", got)
	}
	if !SlidePNGRegex.MatchString("slajd_3.png") {
		t.Error("生成されたファイル名が正規表現に一致しない")
	}
}
