package api

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	"github.com/youruser/assetkit/internal/config"
	imagepkg "github.com/youruser/assetkit/internal/image"
	"github.com/youruser/assetkit/internal/logging"
	"github.com/youruser/assetkit/internal/pipeline"
)

func newTestRouter(t *testing.T, withSource bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.SourcePath = filepath.Join(t.TempDir(), "source.png")
	if withSource {
		if err := imagepkg.SavePNG(imaging.New(512, 512, color.NRGBA{R: 200, G: 60, B: 60, A: 255}), cfg.SourcePath); err != nil {
			t.Fatal(err)
		}
	}
	return NewRouter(NewServer(pipeline.New(cfg, logging.Nop()), logging.Nop()))
}

func get(r *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)
	return w
}

func decodePNG(t *testing.T, w *httptest.ResponseRecorder) image.Image {
	t.Helper()
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type %q", ct)
	}
	img, err := imagepkg.Decode(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return img
}

func TestHealth(t *testing.T) {
	w := get(newTestRouter(t, false), "/api/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["status"] != "ok" {
		t.Fatalf("body %s", w.Body.String())
	}
}

func TestQR(t *testing.T) {
	r := newTestRouter(t, true)

	img := decodePNG(t, get(r, "/api/qr?text=hello&size=256"))
	if img.Bounds().Size() != image.Pt(256, 256) {
		t.Fatalf("size %v", img.Bounds().Size())
	}

	img = decodePNG(t, get(r, "/api/qr?logo=true"))
	if img.Bounds().Size() != image.Pt(defaultQRSize, defaultQRSize) {
		t.Fatalf("default size %v", img.Bounds().Size())
	}
}

func TestQRRejectsBadSize(t *testing.T) {
	r := newTestRouter(t, false)
	for _, q := range []string{"size=abc", "size=0", "size=99999"} {
		if w := get(r, "/api/qr?"+q); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d", q, w.Code)
		}
	}
}

func TestQRLogoTooBigIsUnprocessable(t *testing.T) {
	r := newTestRouter(t, true)
	w := get(r, "/api/qr?size=24&logo=1")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
}

func TestIcon(t *testing.T) {
	r := newTestRouter(t, true)

	img := imaging.Clone(decodePNG(t, get(r, "/api/icon?size=96&round=true")))
	if img.Bounds().Size() != image.Pt(96, 96) {
		t.Fatalf("size %v", img.Bounds().Size())
	}
	if a := img.NRGBAAt(0, 0).A; a != 0 {
		t.Fatalf("round icon corner alpha %d", a)
	}

	sq := imaging.Clone(decodePNG(t, get(r, "/api/icon")))
	if sq.Bounds().Dx() != defaultIconSize || sq.NRGBAAt(0, 0).A != 255 {
		t.Fatalf("square icon %v corner %v", sq.Bounds(), sq.NRGBAAt(0, 0))
	}
}

func TestMissingSourceIsNotFound(t *testing.T) {
	r := newTestRouter(t, false)
	w := get(r, "/api/icon")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["kind"] != "source_missing" {
		t.Fatalf("body %s", w.Body.String())
	}
}

func TestPosterAndPreview(t *testing.T) {
	r := newTestRouter(t, true)
	if img := decodePNG(t, get(r, "/api/poster")); img.Bounds().Size() != image.Pt(1080, 1920) {
		t.Fatalf("poster size %v", img.Bounds().Size())
	}
	if img := decodePNG(t, get(r, "/api/preview")); img.Bounds().Size() != image.Pt(500, 800) {
		t.Fatalf("preview size %v", img.Bounds().Size())
	}
}
