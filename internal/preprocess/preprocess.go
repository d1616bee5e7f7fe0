package preprocess

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/nfnt/resize"

	"github.com/neuroscan/mri-api/internal/domain"
)

// Normalize decodes an uploaded JPEG or PNG image and converts it into the
// tensor the classifier expects: 300x300, 3 channels, channels-last, float32
// pixel values in the 0-255 range. Grayscale sources replicate their single
// channel into RGB; alpha is dropped.
func Normalize(r io.Reader) ([]float32, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}
	return fromImage(img), nil
}

func fromImage(img image.Image) []float32 {
	resized := resize.Resize(domain.ImageSize, domain.ImageSize, img, resize.Lanczos3)

	data := make([]float32, domain.TensorLen)
	i := 0
	for y := 0; y < domain.ImageSize; y++ {
		for x := 0; x < domain.ImageSize; x++ {
			// RGBA returns 16-bit channels; shift down to the 8-bit
			// 0-255 range the EfficientNet export was trained on.
			r, g, b, _ := resized.At(x, y).RGBA()
			data[i] = float32(r >> 8)
			data[i+1] = float32(g >> 8)
			data[i+2] = float32(b >> 8)
			i += 3
		}
	}
	return data
}
