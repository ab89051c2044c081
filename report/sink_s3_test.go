package report

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// capturePutClient records PutObject calls and returns a canned error.
type capturePutClient struct {
	inputs []*s3.PutObjectInput
	err    error
}

func (c *capturePutClient) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	c.inputs = append(c.inputs, params)
	if c.err != nil {
		return nil, c.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Config_Validate(t *testing.T) {
	if err := (&S3Config{}).Validate(); err == nil {
		t.Error("Validate() error = nil for missing bucket")
	}
	if err := (&S3Config{Bucket: "qc-reports"}).Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestParseS3Path(t *testing.T) {
	tests := []struct {
		path       string
		wantBucket string
		wantPrefix string
	}{
		{path: "qc-reports", wantBucket: "qc-reports"},
		{path: "qc-reports/show/seq010", wantBucket: "qc-reports", wantPrefix: "show/seq010"},
	}

	for _, tt := range tests {
		bucket, prefix := ParseS3Path(tt.path)
		if bucket != tt.wantBucket || prefix != tt.wantPrefix {
			t.Errorf("ParseS3Path(%q) = %q, %q, want %q, %q",
				tt.path, bucket, prefix, tt.wantBucket, tt.wantPrefix)
		}
	}
}

func TestS3Sink_Write(t *testing.T) {
	client := &capturePutClient{}
	sink := NewS3SinkWithClient(client, S3Config{Bucket: "qc-reports", Prefix: "show/"})

	rep := sampleReport("scan-001")
	if err := sink.Write(context.Background(), rep); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if len(client.inputs) != 1 {
		t.Fatalf("PutObject called %d times, want 1", len(client.inputs))
	}

	in := client.inputs[0]
	if *in.Bucket != "qc-reports" {
		t.Errorf("Bucket = %q, want qc-reports", *in.Bucket)
	}
	// The trailing prefix slash must not double up in the key.
	wantKey := "show/" + ObjectKey(rep)
	if *in.Key != wantKey {
		t.Errorf("Key = %q, want %q", *in.Key, wantKey)
	}
	if *in.ContentType != "application/x-msgpack" {
		t.Errorf("ContentType = %q, want application/x-msgpack", *in.ContentType)
	}

	body, err := io.ReadAll(in.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	got, err := NewFrameDecoder(bytes.NewReader(body)).ReadReport()
	if err != nil {
		t.Fatalf("ReadReport() error = %v", err)
	}
	if got.ScanID != rep.ScanID {
		t.Errorf("uploaded ScanID = %q, want %q", got.ScanID, rep.ScanID)
	}
}

func TestS3Sink_WriteErrorClassified(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "access denied", err: errors.New("api error AccessDenied: forbidden"), want: ErrPermissionDenied},
		{name: "missing bucket", err: errors.New("api error NoSuchBucket: not found"), want: ErrNotFound},
		{name: "expired token", err: errors.New("api error ExpiredToken"), want: ErrAuth},
		{name: "connection refused", err: errors.New("dial tcp 10.0.0.1:443: connection refused"), want: ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &capturePutClient{err: tt.err}
			sink := NewS3SinkWithClient(client, S3Config{Bucket: "qc-reports"})

			err := sink.Write(context.Background(), sampleReport("scan-001"))
			if !errors.Is(err, tt.want) {
				t.Errorf("Write() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewS3Sink_RequiresBucket(t *testing.T) {
	if _, err := NewS3Sink(context.Background(), S3Config{}); err == nil {
		t.Error("NewS3Sink() error = nil for missing bucket")
	}
}
