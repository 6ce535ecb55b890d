package api

import (
	"errors"
	"image"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/youruser/assetkit/internal/domain"
	"github.com/youruser/assetkit/internal/icons"
	imagepkg "github.com/youruser/assetkit/internal/image"
	"github.com/youruser/assetkit/internal/pipeline"
)

const (
	defaultQRSize   = 400
	defaultIconSize = 192
	maxSize         = 2048
)

// Server renders assets on demand. Font faces and the pipeline's input cache
// are not safe for concurrent use, so every render holds mu.
type Server struct {
	mu  sync.Mutex
	p   *pipeline.Pipeline
	log zerolog.Logger
}

func NewServer(p *pipeline.Pipeline, log zerolog.Logger) *Server {
	return &Server{p: p, log: log}
}

// health
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// qr returns a PNG for the "text" query param, defaulting to the configured URL.
// logo=true puts the configured logo in the centre badge.
func (s *Server) qr(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		text = s.p.Cfg.QRURL
	}
	size, ok := sizeParam(c, defaultQRSize)
	if !ok {
		return
	}
	withLogo, _ := strconv.ParseBool(c.Query("logo"))

	s.render(c, "qr", func() (image.Image, error) {
		var logo image.Image
		if withLogo {
			l, err := s.p.Logo()
			if err != nil {
				return nil, err
			}
			logo = l
		}
		return imagepkg.ComposeQR(text, logo, size, imagepkg.DefaultQRStyle())
	})
}

// icon returns one launcher icon resized from the source.
func (s *Server) icon(c *gin.Context) {
	size, ok := sizeParam(c, defaultIconSize)
	if !ok {
		return
	}
	round, _ := strconv.ParseBool(c.Query("round"))

	s.render(c, "icon", func() (image.Image, error) {
		src, err := s.p.Source()
		if err != nil {
			return nil, err
		}
		sq := icons.Square(src, domain.Square(size))
		if round {
			return icons.Round(sq), nil
		}
		return sq, nil
	})
}

func (s *Server) poster(c *gin.Context) {
	s.render(c, "poster", func() (image.Image, error) {
		return s.p.RenderPoster()
	})
}

func (s *Server) preview(c *gin.Context) {
	s.render(c, "preview", func() (image.Image, error) {
		return s.p.RenderPreview()
	})
}

func (s *Server) render(c *gin.Context, asset string, fn func() (image.Image, error)) {
	s.mu.Lock()
	img, err := fn()
	s.mu.Unlock()
	if err != nil {
		s.fail(c, asset, err)
		return
	}
	b, err := imagepkg.EncodePNG(img)
	if err != nil {
		s.fail(c, asset, err)
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func (s *Server) fail(c *gin.Context, asset string, err error) {
	status := http.StatusInternalServerError
	body := gin.H{"error": err.Error()}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		body["kind"] = oe.Kind
		switch oe.Kind {
		case domain.KindSourceMissing:
			status = http.StatusNotFound
		case domain.KindCompositeFailure, domain.KindInvalidConfig:
			status = http.StatusUnprocessableEntity
		}
	}
	s.log.Error().Err(err).Str("asset", asset).Int("status", status).Msg("api.render_failed")
	c.JSON(status, body)
}

func sizeParam(c *gin.Context, def int) (int, bool) {
	raw := c.Query("size")
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 || v > maxSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "size must be an integer in 1.." + strconv.Itoa(maxSize)})
		return 0, false
	}
	return v, true
}
