package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/flavorshare/backend/config"
)

// MaxImageBytes is the ceiling on a decoded image payload.
const MaxImageBytes = 5 << 20

// imageExtensions maps accepted sniffed content types to object key
// extensions. Anything not listed is rejected before the relay call.
var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// ImageRef is the stored reference to an externally hosted image.
type ImageRef struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// s3API is the subset of the S3 client the relay needs.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// ImageService relays uploaded images to the object store. Single attempt,
// no retry; failures propagate as ErrUpstream.
type ImageService struct {
	client s3API
	bucket string
}

// NewImageService creates an ImageService backed by the configured bucket
func NewImageService(s3cfg *config.S3Config) *ImageService {
	return &ImageService{
		client: s3cfg.Client,
		bucket: s3cfg.BucketName,
	}
}

// NewImageServiceWithClient wires an explicit client, used by tests
func NewImageServiceWithClient(client s3API, bucket string) *ImageService {
	return &ImageService{client: client, bucket: bucket}
}

// Upload decodes a base64 payload (with an optional data-URI prefix),
// validates it and stores it under folder. Returns the public URL and the
// object key the caller must keep for later deletion.
func (s *ImageService) Upload(ctx context.Context, payload, folder string) (*ImageRef, error) {
	data, err := decodeImagePayload(payload)
	if err != nil {
		return nil, err
	}

	if len(data) > MaxImageBytes {
		return nil, Validationf(fmt.Sprintf("image exceeds the %d byte limit", MaxImageBytes))
	}

	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, Validationf(fmt.Sprintf("unsupported image type %s", contentType))
	}

	key := fmt.Sprintf("%s/%s.%s", folder, uuid.New().String(), ext)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	url := config.ObjectURL(s.bucket, key)
	logrus.WithFields(logrus.Fields{"key": key, "bytes": len(data)}).Info("uploaded image")

	return &ImageRef{URL: url, PublicID: key}, nil
}

// Delete removes an object by its key.
func (s *ImageService) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return Validationf("image id is required")
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return nil
}

// decodeImagePayload strips an optional "data:<type>;base64," prefix and
// decodes the remainder.
func decodeImagePayload(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, Validationf("image payload is required")
	}

	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, ",")
		if idx < 0 {
			return nil, Validationf("malformed data URI")
		}
		payload = payload[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, Validationf("image payload is not valid base64")
	}
	return data, nil
}
