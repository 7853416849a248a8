package pass

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
)

// InlineURIPrefix marks a publish result that is not a durable link. Callers
// must never persist such a value as a member's pass URL.
const InlineURIPrefix = "data:image/jpeg;base64,"

const maxKeySegment = 64

// ArtifactPublisher persists a rendered pass and returns a retrieval URL.
type ArtifactPublisher interface {
	Publish(ctx context.Context, data []byte, participantName string, teamCode string) (string, error)
}

// ObjectPublisher stores passes in MinIO under deterministic keys so a re-run
// for the same member overwrites instead of duplicating. With a nil client
// (storage unconfigured) it degrades to inline data URIs.
type ObjectPublisher struct {
	client   *minio.Client
	endpoint string
	bucket   string
}

func NewObjectPublisher(client *minio.Client, endpoint string, bucket string) *ObjectPublisher {
	return &ObjectPublisher{
		client:   client,
		endpoint: endpoint,
		bucket:   bucket,
	}
}

func (p *ObjectPublisher) Publish(ctx context.Context, data []byte, participantName string, teamCode string) (string, error) {
	if p.client == nil {
		return InlineDataURI(data), nil
	}

	objectName := ObjectKey(participantName, teamCode)

	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	_, err = p.client.PutObject(ctx, p.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "image/jpeg",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload pass: %w", err)
	}

	return fmt.Sprintf("https://%s/%s/%s", p.endpoint, p.bucket, objectName), nil
}

// ObjectKey derives the storage key from participant name + team code alone:
// same member, same key, every run.
func ObjectKey(participantName string, teamCode string) string {
	return fmt.Sprintf("passes/%s_%s.jpg", sanitizeKeySegment(teamCode), sanitizeKeySegment(participantName))
}

func sanitizeKeySegment(segment string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(segment) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}

	cleaned := strings.Trim(b.String(), "-")
	if len(cleaned) > maxKeySegment {
		cleaned = strings.Trim(cleaned[:maxKeySegment], "-")
	}
	if cleaned == "" {
		cleaned = "unnamed"
	}
	return cleaned
}

func InlineDataURI(data []byte) string {
	return InlineURIPrefix + base64.StdEncoding.EncodeToString(data)
}

// IsInlineURI reports whether url is the self-contained fallback rather than
// a durable storage link.
func IsInlineURI(url string) bool {
	return strings.HasPrefix(url, "data:")
}
