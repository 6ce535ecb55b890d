package fonts

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/youruser/assetkit/internal/domain"
)

// faceKey identifies a rendered face by size and weight.
type faceKey struct {
	size float64
	bold bool
}

// Set resolves the poster's bold and regular typefaces once and caches the
// faces built from them. Faces are not safe for concurrent drawing.
type Set struct {
	mu      sync.Mutex
	bold    *opentype.Font
	regular *opentype.Font
	faces   map[faceKey]font.Face
}

// Load parses the requested font files. A path that is empty, unreadable or
// unparsable falls back to the built-in Go fonts; the failure is logged as
// font_unavailable and never returned.
func Load(boldPath, regularPath string, log zerolog.Logger) *Set {
	s := &Set{faces: make(map[faceKey]font.Face)}
	s.bold = resolve(boldPath, gobold.TTF, log)
	s.regular = resolve(regularPath, goregular.TTF, log)
	return s
}

// Builtin returns a Set backed only by the Go fonts.
func Builtin() *Set {
	return Load("", "", zerolog.Nop())
}

func resolve(path string, fallback []byte, log zerolog.Logger) *opentype.Font {
	if path != "" {
		f, err := ParseFile(path)
		if err == nil {
			log.Debug().Str("path", path).Msg("fonts.loaded")
			return f
		}
		log.Warn().Err(err).Str("path", path).Msg("fonts.fallback")
	}
	f, err := opentype.Parse(fallback)
	if err != nil {
		// The embedded fonts are part of x/image; failing to parse them is a
		// broken build, not a runtime condition.
		panic(fmt.Sprintf("fonts: builtin font: %v", err))
	}
	return f
}

// ParseFile reads a TTF/OTF file, or the first face of a TTC collection.
func ParseFile(path string) (*opentype.Font, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{Op: "fonts.parse", Kind: domain.KindFontUnavailable, Path: path, Err: err}
	}
	f, err := opentype.Parse(b)
	if err == nil {
		return f, nil
	}
	coll, cerr := opentype.ParseCollection(b)
	if cerr != nil {
		return nil, &domain.OpError{Op: "fonts.parse", Kind: domain.KindFontUnavailable, Path: path, Err: errors.Join(err, cerr)}
	}
	if coll.NumFonts() == 0 {
		return nil, &domain.OpError{Op: "fonts.parse", Kind: domain.KindFontUnavailable, Path: path, Err: errors.New("empty collection")}
	}
	f, err = coll.Font(0)
	if err != nil {
		return nil, &domain.OpError{Op: "fonts.parse", Kind: domain.KindFontUnavailable, Path: path, Err: err}
	}
	return f, nil
}

// Face returns a face of size pixels (72 DPI, so points equal pixels).
func (s *Set) Face(size float64, bold bool) font.Face {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := faceKey{size: size, bold: bold}
	if f, ok := s.faces[key]; ok {
		return f
	}
	src := s.regular
	if bold {
		src = s.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(fmt.Sprintf("fonts: face %.0fpx: %v", size, err))
	}
	s.faces[key] = face
	return face
}

func (s *Set) Bold(size float64) font.Face    { return s.Face(size, true) }
func (s *Set) Regular(size float64) font.Face { return s.Face(size, false) }
