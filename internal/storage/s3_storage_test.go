package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"flightops360/hangar/internal/logging"
)

type mockS3 struct {
	putFunc    func(ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error)
	deleteFunc func(ctx context.Context, in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error)
}

func (m *mockS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	return m.putFunc(ctx, in)
}

func (m *mockS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	return m.deleteFunc(ctx, in)
}

func TestAircraftDocumentKey(t *testing.T) {
	assert.Equal(t, "aircraft_documents/ac1/doc1/airworthiness.pdf",
		AircraftDocumentKey("ac1", "doc1", "airworthiness.pdf"))
	assert.Equal(t, "aircraft_documents/ac1/doc1/reg.pdf",
		AircraftDocumentKey("ac1", "doc1", "../../etc/reg.pdf"))
	assert.Equal(t, "aircraft_documents/ac1/doc1/reg.pdf",
		AircraftDocumentKey("ac1", "doc1", `C:\scans\reg.pdf`))
}

func TestS3Storage_Upload(t *testing.T) {
	logging.SetLogger(zap.NewNop())

	var gotKey, gotBucket, gotBody string
	client := &mockS3{
		putFunc: func(_ context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
			gotKey = aws.ToString(in.Key)
			gotBucket = aws.ToString(in.Bucket)
			b, _ := io.ReadAll(in.Body)
			gotBody = string(b)
			return &s3.PutObjectOutput{}, nil
		},
	}
	s := newS3Storage(client, "fleet-docs", "https://cdn.example.com/")

	url, err := s.Upload(context.Background(), "aircraft_documents/a/d/f.pdf", "application/pdf", []byte("pdf"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/aircraft_documents/a/d/f.pdf", url)
	assert.Equal(t, "aircraft_documents/a/d/f.pdf", gotKey)
	assert.Equal(t, "fleet-docs", gotBucket)
	assert.Equal(t, "pdf", gotBody)
}

func TestS3Storage_UploadError(t *testing.T) {
	client := &mockS3{
		putFunc: func(context.Context, *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
			return nil, errors.New("access denied")
		},
	}
	s := newS3Storage(client, "b", "https://cdn.example.com")

	_, err := s.Upload(context.Background(), "k", "text/plain", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}
