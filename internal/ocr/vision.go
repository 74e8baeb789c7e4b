package ocr

import (
	"context"
	"errors"
	"fmt"
	"os"

	vision "cloud.google.com/go/vision/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"
)

// VisionSource runs image OCR through the Google Vision API.
type VisionSource struct {
	client *vision.ImageAnnotatorClient
}

// NewVisionSource creates the Vision client, honoring
// GOOGLE_APPLICATION_CREDENTIALS when set.
func NewVisionSource(ctx context.Context) (*VisionSource, error) {
	var (
		client *vision.ImageAnnotatorClient
		err    error
	)
	if credPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credPath != "" {
		client, err = vision.NewImageAnnotatorClient(ctx, option.WithCredentialsFile(credPath))
	} else {
		client, err = vision.NewImageAnnotatorClient(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to init OCR client: %w", err)
	}
	return &VisionSource{client: client}, nil
}

func (s *VisionSource) ExtractRawText(ctx context.Context, _ string, data []byte) (string, error) {
	img := &visionpb.Image{Content: data}
	anns, err := s.client.DetectTexts(ctx, img, nil, 1)
	if err != nil {
		return "", fmt.Errorf("could not extract text from image: %w", err)
	}
	if len(anns) == 0 || anns[0].Description == "" {
		return "", errors.New("no text detected in image")
	}
	return anns[0].Description, nil
}

func (s *VisionSource) Close() error {
	return s.client.Close()
}
