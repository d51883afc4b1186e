package figure

import (
	"fmt"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Font selects a typeface variant for panel text. The Go fonts embedded
// in golang.org/x/image back all variants, so rendering needs no font
// files on disk.
type Font int

// Typeface variants.
const (
	Regular Font = iota
	Bold
	Italic
	Mono
	MonoBold
)

var fontData = map[Font][]byte{
	Regular:  goregular.TTF,
	Bold:     gobold.TTF,
	Italic:   goitalic.TTF,
	Mono:     gomono.TTF,
	MonoBold: gomonobold.TTF,
}

var (
	fontMu     sync.Mutex
	fontParsed = map[Font]*sfnt.Font{}
	faceCache  = map[faceKey]xfont.Face{}
)

// faceKey quantizes the pixel size to a tenth of a point so repeated
// lookups at the same size share one face.
type faceKey struct {
	font   Font
	size10 int
}

// face returns a cached font face at the given pixel size.
func face(f Font, sizePx float64) (xfont.Face, error) {
	fontMu.Lock()
	defer fontMu.Unlock()

	key := faceKey{font: f, size10: int(sizePx*10 + 0.5)}
	if fc, ok := faceCache[key]; ok {
		return fc, nil
	}

	parsed, ok := fontParsed[f]
	if !ok {
		data, ok := fontData[f]
		if !ok {
			return nil, fmt.Errorf("unknown font variant %d", f)
		}
		var err error
		parsed, err = opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse embedded font: %w", err)
		}
		fontParsed[f] = parsed
	}

	fc, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72, // size is already in pixels
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build font face: %w", err)
	}
	faceCache[key] = fc
	return fc, nil
}
