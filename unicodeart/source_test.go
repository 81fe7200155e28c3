package unicodeart

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func whitePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	var buf bytes.Buffer
	img := solidImage(w, h, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func testConverter() *Converter {
	return New(
		WithWidth(4),
		WithSymbolAspectRatio(1.0),
		WithCharset(" #"),
	)
}

func TestConvertSourceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "white.png")
	if err := os.WriteFile(path, whitePNG(t, 4, 4), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := testConverter().ConvertSource(path)
	if err != nil {
		t.Fatalf("ConvertSource() error: %v", err)
	}
	if got != strings.Repeat("####\n", 4) {
		t.Errorf("ConvertSource() = %q, want 4 rows of ####", got)
	}
}

func TestConvertSourceFileMissing(t *testing.T) {
	_, err := testConverter().ConvertSource(filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, &Error{Kind: InvalidInputPath}) {
		t.Fatalf("got %v, want InvalidInputPath", err)
	}
}

func TestConvertSourceFileNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := testConverter().ConvertSource(path)
	if !errors.Is(err, &Error{Kind: FailedToDecodeInput}) {
		t.Fatalf("got %v, want FailedToDecodeInput", err)
	}
}

func TestConvertSourceURL(t *testing.T) {
	data := whitePNG(t, 4, 4)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/declared.png":
			w.Header().Set("Content-Type", "image/png")
			w.Write(data)
		case "/no-header.png":
			// Suppress the automatic Content-Type so the sniffing path runs.
			w.Header()["Content-Type"] = nil
			w.Write(data)
		case "/malformed-header.png":
			// Not parseable as a media type at all, so sniffing runs.
			w.Header().Set("Content-Type", "not a media type")
			w.Write(data)
		case "/bare-token.png":
			// A bare token parses as a media type but names no known image
			// format, so it is rejected rather than sniffed.
			w.Header().Set("Content-Type", "bogus")
			w.Write(data)
		case "/wrong-type":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte("{}"))
		case "/corrupt.png":
			w.Header().Set("Content-Type", "image/png")
			w.Write([]byte("not a png"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	want := strings.Repeat("####\n", 4)

	t.Run("declared content type", func(t *testing.T) {
		got, err := testConverter().ConvertSource(srv.URL + "/declared.png")
		if err != nil {
			t.Fatalf("ConvertSource() error: %v", err)
		}
		if got != want {
			t.Errorf("ConvertSource() = %q, want %q", got, want)
		}
	})

	t.Run("absent content type sniffs the bytes", func(t *testing.T) {
		got, err := testConverter().ConvertSource(srv.URL + "/no-header.png")
		if err != nil {
			t.Fatalf("ConvertSource() error: %v", err)
		}
		if got != want {
			t.Errorf("ConvertSource() = %q, want %q", got, want)
		}
	})

	t.Run("malformed content type sniffs the bytes", func(t *testing.T) {
		got, err := testConverter().ConvertSource(srv.URL + "/malformed-header.png")
		if err != nil {
			t.Fatalf("ConvertSource() error: %v", err)
		}
		if got != want {
			t.Errorf("ConvertSource() = %q, want %q", got, want)
		}
	})

	t.Run("unrecognized bare-token content type is rejected", func(t *testing.T) {
		_, err := testConverter().ConvertSource(srv.URL + "/bare-token.png")
		if !errors.Is(err, &Error{Kind: DownloadInvalid}) {
			t.Fatalf("got %v, want DownloadInvalid", err)
		}
	})

	t.Run("unrecognized content type is rejected", func(t *testing.T) {
		_, err := testConverter().ConvertSource(srv.URL + "/wrong-type")
		if !errors.Is(err, &Error{Kind: DownloadInvalid}) {
			t.Fatalf("got %v, want DownloadInvalid", err)
		}
	})

	t.Run("undecodable body", func(t *testing.T) {
		_, err := testConverter().ConvertSource(srv.URL + "/corrupt.png")
		if !errors.Is(err, &Error{Kind: DownloadInvalid}) {
			t.Fatalf("got %v, want DownloadInvalid", err)
		}
	})

	t.Run("status 404", func(t *testing.T) {
		_, err := testConverter().ConvertSource(srv.URL + "/missing.png")
		if !errors.Is(err, &Error{Kind: FailedToDownload}) {
			t.Fatalf("got %v, want FailedToDownload", err)
		}
	})
}

func TestConvertSourceURLUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := testConverter().ConvertSource(url + "/white.png")
	if !errors.Is(err, &Error{Kind: FailedToDownload}) {
		t.Fatalf("got %v, want FailedToDownload", err)
	}
}

func TestDecoderForContentType(t *testing.T) {
	tests := []struct {
		contentType string
		wantOK      bool
	}{
		{"", true},
		{"image/png", true},
		{"image/png; charset=utf-8", true},
		{"image/jpeg", true},
		{"image/gif", true},
		{"image/webp", true},
		{"image/bmp", true},
		{"image/tiff", true},
		{"not a media type", true}, // unparseable falls back to sniffing
		{"bogus", false},           // a bare token parses, but is no image mime
		{"application/pdf", false},
		{"text/html", false},
	}

	for _, tt := range tests {
		decode, ok := decoderForContentType(tt.contentType)
		if ok != tt.wantOK {
			t.Errorf("decoderForContentType(%q) ok = %v, want %v", tt.contentType, ok, tt.wantOK)
		}
		if ok && decode == nil {
			t.Errorf("decoderForContentType(%q) returned a nil decoder", tt.contentType)
		}
	}
}
