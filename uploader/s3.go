// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package uploader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/nft-bridge/chains"
	"github.com/ChainSafe/nft-bridge/config/core"
)

type ObjectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// S3Uploader stores metadata documents in an S3 compatible bucket.
type S3Uploader struct {
	client    ObjectPutter
	bucket    string
	publicURL string
}

func NewS3Uploader(config core.S3Config) (*S3Uploader, error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.Secure,
		Region: config.Region,
	})
	if err != nil {
		return nil, err
	}

	publicURL := config.PublicURL
	if publicURL == "" {
		scheme := "https"
		if !config.Secure {
			scheme = "http"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, config.Endpoint, config.Bucket)
	}
	return NewS3UploaderWithClient(client, config.Bucket, publicURL), nil
}

func NewS3UploaderWithClient(client ObjectPutter, bucket, publicURL string) *S3Uploader {
	return &S3Uploader{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (s *S3Uploader) Upload(ctx context.Context, name string, data []byte) (string, error) {
	info, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		log.Err(err).Msgf("Unable to store %s", name)
		return "", &chains.NetworkError{Op: "upload metadata", Err: err}
	}

	log.Info().Str("bucket", s.bucket).Str("etag", info.ETag).Msgf("Stored %s", name)
	return fmt.Sprintf("%s/%s", s.publicURL, name), nil
}
