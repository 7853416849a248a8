package util

import (
	"fmt"

	"github.com/kitfest-dev/event-pass-api/common"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// InitMinIO connects the shared MinIO client. Storage is optional for this
// service: when credentials are absent the publisher falls back to inline
// data URIs, so the caller only logs the returned error.
func InitMinIO() error {
	if common.Config.MinIoEndpoint == nil || common.Config.MinIoAccessKey == nil || common.Config.MinIoSecretKey == nil {
		return fmt.Errorf("MinIO configuration is incomplete")
	}

	client, err := minio.New(*common.Config.MinIoEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(*common.Config.MinIoAccessKey, *common.Config.MinIoSecretKey, ""),
		Secure: true,
	})

	if err != nil {
		return fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	common.MinIOClient = client
	return nil
}
