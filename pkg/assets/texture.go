package assets

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Texture2D is a mipmapped, repeating 2D texture
type Texture2D struct {
	ID     uint32
	Width  int32
	Height int32
	Path   string
}

// LoadTexture decodes an image file and uploads it. With alpha unset the
// texture is stored without an alpha channel.
func LoadTexture(path string, alpha bool) (*Texture2D, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open texture")
	}
	defer f.Close()

	rgba, err := decodeImage(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode texture %s", path)
	}

	tex := &Texture2D{
		Width:  int32(rgba.Rect.Dx()),
		Height: int32(rgba.Rect.Dy()),
		Path:   path,
	}

	internalFormat := int32(gl.RGB)
	if alpha {
		internalFormat = gl.RGBA
	}

	gl.GenTextures(1, &tex.ID)
	gl.BindTexture(gl.TEXTURE_2D, tex.ID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, tex.Width, tex.Height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex, nil
}

// decodeImage decodes any registered format into tightly packed RGBA rows,
// flipped so the first row is the bottom of the image as GL expects.
func decodeImage(r io.Reader) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	flipRows(rgba)
	return rgba, nil
}

func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

// Bind binds the texture to a texture unit
func (t *Texture2D) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// UnbindTexture clears the 2D texture binding on the active unit
func UnbindTexture() {
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Destroy deletes the texture
func (t *Texture2D) Destroy() {
	gl.DeleteTextures(1, &t.ID)
	t.ID = 0
}
