package assets

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	LabelFont   *text.GoTextFace
	PatternFont *text.GoTextFace
)

func init() {
	LabelFont = loadFace(goregular.TTF, 18)
	// the diamond report needs fixed-width cells
	PatternFont = loadFace(gomono.TTF, 14)
}

func loadFace(ttf []byte, size float64) *text.GoTextFace {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		panic(err)
	}
	return &text.GoTextFace{
		Source: fontSource,
		Size:   size,
	}
}
