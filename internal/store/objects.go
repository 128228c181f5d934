package store

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	awssession "github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"atrack-svr/internal/observability"
)

// S3Store uploads completed pictures to an object bucket under
// "<deviceID>/<deviceID>_<rtc>.jpg".
type S3Store struct {
	bucket string
	svc    *s3.S3
}

func NewS3Store(bucket, region, endpoint, accessKey, secretKey string) (*S3Store, error) {
	cfg := &aws.Config{Region: aws.String(region)}
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
	}
	if accessKey != "" {
		cfg.Credentials = credentials.NewStaticCredentials(accessKey, secretKey, "")
	}
	s, err := awssession.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("s3 session: %w", err)
	}
	return &S3Store{bucket: bucket, svc: s3.New(s)}, nil
}

func (s *S3Store) StorePicture(deviceID uint64, rtc uint32, data []byte) error {
	key := fmt.Sprintf("%d/%d_%d.jpg", deviceID, deviceID, rtc)
	_, err := s.svc.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		ACL:           aws.String("private"),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(http.DetectContentType(data)),
	})
	if err != nil {
		observability.SinkErrors.WithLabelValues("s3").Inc()
		return fmt.Errorf("s3 put %s: %w", key, err)
	}
	return nil
}

// FileStore writes completed pictures under a local directory, creating it
// on first use.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (f *FileStore) StorePicture(deviceID uint64, rtc uint32, data []byte) error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		observability.SinkErrors.WithLabelValues("fs").Inc()
		return err
	}
	path := filepath.Join(f.dir, fmt.Sprintf("%d_%d.jpg", deviceID, rtc))
	if err := os.WriteFile(path, data, 0644); err != nil {
		observability.SinkErrors.WithLabelValues("fs").Inc()
		return err
	}
	return nil
}
