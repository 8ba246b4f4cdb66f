package vault

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeObject struct {
	data    []byte
	version string
}

// fakeS3 serves the path-style subset of the S3 API the vault uses:
// PUT, HEAD and ranged GET on objects and HEAD on the bucket.
type fakeS3 struct {
	bucket string

	mu      sync.Mutex
	objects map[string]fakeObject
	puts    int
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rest, ok := strings.CutPrefix(r.URL.Path, "/"+f.bucket)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	key := strings.TrimPrefix(rest, "/")

	if key == "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	switch r.Method {
	case http.MethodPut:
		data, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.puts++
		f.objects[key] = fakeObject{data: data, version: r.Header.Get("X-Amz-Meta-Snapshot-Version")}
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)

	case http.MethodHead:
		obj, ok := f.objects[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("X-Amz-Meta-Snapshot-Version", obj.version)
		w.Header().Set("Content-Length", fmt.Sprint(len(obj.data)))
		w.WriteHeader(http.StatusOK)

	case http.MethodGet:
		obj, ok := f.objects[key]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`)
			return
		}
		start, end := 0, len(obj.data)-1
		if rng := r.Header.Get("Range"); rng != "" {
			fmt.Sscanf(rng, "bytes=%d-%d", &start, &end)
		}
		if end >= len(obj.data) {
			end = len(obj.data) - 1
		}
		part := obj.data[start : end+1]
		w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, len(obj.data)))
		w.Header().Set("Content-Length", fmt.Sprint(len(part)))
		w.WriteHeader(http.StatusPartialContent)
		w.Write(part)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestS3Vault(t *testing.T, bucket string) (*S3Vault, *fakeS3) {
	t.Helper()
	fake := &fakeS3{bucket: "snapshots", objects: map[string]fakeObject{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client := s3.New(s3.Options{
		Region:                     "us-east-1",
		BaseEndpoint:               aws.String(srv.URL),
		UsePathStyle:               true,
		Credentials:                credentials.NewStaticCredentialsProvider("key", "secret", ""),
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
		ResponseChecksumValidation: aws.ResponseChecksumValidationWhenRequired,
		RetryMaxAttempts:           1,
	})
	return newS3VaultFromClient("s3-vault", bucket, "hsync", client), fake
}

func TestS3Vault_PutAndGetSnapshot(t *testing.T) {
	v, fake := newTestS3Vault(t, "snapshots")
	snapshot := append([]byte("SQLite format 3\x00"), bytes.Repeat([]byte{0x0d}, 4096)...)

	if err := v.PutSnapshot("instance-1", "db", bytes.NewReader(snapshot), int64(len(snapshot)), 7); err != nil {
		t.Fatalf("PutSnapshot() error = %v", err)
	}
	if _, ok := fake.objects["hsync/snapshots/instance-1/db.snapshot"]; !ok {
		t.Fatalf("objects = %v, want key hsync/snapshots/instance-1/db.snapshot", fake.objects)
	}

	version, err := v.GetSnapshotVersion("instance-1", "db")
	if err != nil {
		t.Fatalf("GetSnapshotVersion() error = %v", err)
	}
	if version != 7 {
		t.Errorf("GetSnapshotVersion() = %d, want 7", version)
	}

	var buf bytes.Buffer
	if err := v.GetSnapshot("instance-1", "db", &buf); err != nil {
		t.Fatalf("GetSnapshot() error = %v", err)
	}
	if !bytes.Equal(buf.Bytes(), snapshot) {
		t.Errorf("GetSnapshot() returned %d bytes, want %d", buf.Len(), len(snapshot))
	}
}

func TestS3Vault_MissingSnapshot(t *testing.T) {
	v, _ := newTestS3Vault(t, "snapshots")

	version, err := v.GetSnapshotVersion("instance-1", "db")
	if err != nil {
		t.Fatalf("GetSnapshotVersion() error = %v", err)
	}
	if version != 0 {
		t.Errorf("GetSnapshotVersion() = %d, want 0", version)
	}

	var buf bytes.Buffer
	err = v.GetSnapshot("instance-1", "db", &buf)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("GetSnapshot() error = %v, want not found", err)
	}
}

func TestS3Vault_SizeMismatchUploadsNothing(t *testing.T) {
	v, fake := newTestS3Vault(t, "snapshots")

	tests := []struct {
		name string
		body string
		size int64
	}{
		{name: "short body", body: "snapshot", size: 100},
		{name: "long body", body: "snapshot", size: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.PutSnapshot("instance-1", "db", strings.NewReader(tt.body), tt.size, 1)
			if err == nil || !strings.Contains(err.Error(), "size mismatch") {
				t.Errorf("PutSnapshot() error = %v, want size mismatch", err)
			}
		})
	}

	if fake.puts != 0 {
		t.Errorf("puts = %d, want no object written", fake.puts)
	}
	if version, _ := v.GetSnapshotVersion("instance-1", "db"); version != 0 {
		t.Errorf("GetSnapshotVersion() = %d, want 0", version)
	}
}

func TestS3Vault_ValidateSetup(t *testing.T) {
	v, _ := newTestS3Vault(t, "snapshots")
	if err := v.ValidateSetup(); err != nil {
		t.Errorf("ValidateSetup() error = %v", err)
	}

	missing, _ := newTestS3Vault(t, "other-bucket")
	if err := missing.ValidateSetup(); err == nil {
		t.Error("ValidateSetup() expected error for a missing bucket")
	}
}
