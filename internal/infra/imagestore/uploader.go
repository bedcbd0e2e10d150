package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/vortexia/barbershop-manager/internal/config"
)

// Lado máximo antes do reescalonamento
const maxDimension = 1024

const encodeQuality = 80

// Uploader converte imagens de produtos para WebP e publica num bucket
// S3. Sem bucket configurado o uploader fica desativado e o handler
// responde com erro de negócio.
type Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func New(cfg *config.Config) *Uploader {
	if cfg.S3Bucket == "" {
		return &Uploader{}
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	publicURL := strings.TrimSuffix(cfg.S3PublicURL, "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &Uploader{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		publicURL: publicURL,
	}
}

func (u *Uploader) Enabled() bool {
	return u.client != nil
}

// UploadImage decodifica JPEG/PNG, reduz quando maior que maxDimension,
// re-encoda em WebP e grava sob a key dada. Devolve a URL pública.
func (u *Uploader) UploadImage(ctx context.Context, r io.Reader, key string) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	src = downscale(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: encodeQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return u.publicURL + "/" + key, nil
}

func downscale(src image.Image) image.Image {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width <= maxDimension && height <= maxDimension {
		return src
	}

	scale := float64(maxDimension) / float64(width)
	if height > width {
		scale = float64(maxDimension) / float64(height)
	}

	dst := image.NewRGBA(image.Rect(
		0, 0,
		int(float64(width)*scale),
		int(float64(height)*scale),
	))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	return dst
}
