package storage

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const maxAvatarWidth = 512

// AvatarProcessor chuẩn hóa ảnh avatar trước khi upload
type AvatarProcessor struct{}

func NewAvatarProcessor() *AvatarProcessor {
	return &AvatarProcessor{}
}

// Process decode ảnh, resize về tối đa 512px width, re-encode JPEG
// Trả về: (processed bytes, content type, error)
func (p *AvatarProcessor) Process(data []byte) ([]byte, string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("invalid image data: %w", err)
	}

	if img.Bounds().Dx() > maxAvatarWidth {
		img = imaging.Resize(img, maxAvatarWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, "", fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), "image/jpeg", nil
}
