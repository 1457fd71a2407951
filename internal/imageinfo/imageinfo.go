// Package imageinfo extracts pixel dimensions from uploaded photos. Phone
// cameras record rotation in EXIF rather than rotating pixels, so the decode
// applies the orientation tag before measuring; otherwise every portrait
// photo would come back with width and height swapped.
package imageinfo

import (
	"errors"
	"fmt"
	"io"

	"github.com/disintegration/imaging"

	// Register decoders beyond imaging's defaults.
	_ "golang.org/x/image/webp"

	"github.com/okian/heft/internal/domain/geom"
)

// ErrUndecodable means the payload is not a supported image format.
var ErrUndecodable = errors.New("undecodable image")

// Dimensions decodes the photo in r and returns its oriented pixel size.
func Dimensions(r io.Reader) (geom.Size, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return geom.Size{}, fmt.Errorf("%w: %w", ErrUndecodable, err)
	}
	bounds := img.Bounds()
	return geom.Size{
		W: float64(bounds.Dx()),
		H: float64(bounds.Dy()),
	}, nil
}
