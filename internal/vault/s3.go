package vault

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"harvest-sync/internal/hsync"
)

// versionMetadataKey is the object metadata entry holding the snapshot version.
// S3 returns metadata keys lower-cased.
const versionMetadataKey = "snapshot-version"

// S3Options configures an S3Vault.
type S3Options struct {
	Bucket string
	Prefix string
	Region string
	// Endpoint selects an S3-compatible service. Path-style addressing is
	// used when set.
	Endpoint string
	// AccessKeyID and SecretAccessKey override the default credential chain.
	AccessKeyID     string
	SecretAccessKey string
}

// S3Vault stores snapshots as S3 objects:
//
//	<prefix>/snapshots/<instanceID>/<name>.snapshot
//
// The version is stored as object metadata.
type S3Vault struct {
	name       string
	bucket     string
	prefix     string
	client     *s3.Client
	uploader   *manager.Uploader
	downloader *manager.Downloader
}

// NewS3Vault creates an S3 vault. Credentials come from the default AWS chain
// unless opts carries a static key pair.
func NewS3Vault(ctx context.Context, name string, opts S3Options) (*S3Vault, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3 vault requires s3_bucket to be set")
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3VaultFromClient(name, opts.Bucket, opts.Prefix, client), nil
}

func newS3VaultFromClient(name, bucket, prefix string, client *s3.Client) *S3Vault {
	downloader := manager.NewDownloader(client, func(d *manager.Downloader) {
		// GetSnapshot streams into a plain io.Writer, which needs in-order parts.
		d.Concurrency = 1
	})
	return &S3Vault{
		name:       name,
		bucket:     bucket,
		prefix:     prefix,
		client:     client,
		uploader:   manager.NewUploader(client),
		downloader: downloader,
	}
}

func (v *S3Vault) key(instanceID, name string) string {
	return path.Join(v.prefix, "snapshots", instanceID, name+".snapshot")
}

// PutSnapshot uploads a snapshot, tagging it with its version. A body that is
// not exactly size bytes fails the upload before the object is completed.
func (v *S3Vault) PutSnapshot(instanceID string, name string, r io.Reader, size int64, version int64) error {
	_, err := v.uploader.Upload(context.Background(), &s3.PutObjectInput{
		Bucket: aws.String(v.bucket),
		Key:    aws.String(v.key(instanceID, name)),
		Body:   &sizedReader{r: r, size: size},
		Metadata: map[string]string{
			versionMetadataKey: strconv.FormatInt(version, 10),
		},
	})
	if err != nil {
		return fmt.Errorf("uploading snapshot to s3://%s/%s: %w", v.bucket, v.key(instanceID, name), err)
	}
	return nil
}

// GetSnapshot downloads a snapshot and writes it to w.
func (v *S3Vault) GetSnapshot(instanceID string, name string, w io.Writer) error {
	_, err := v.downloader.Download(context.Background(), sequentialWriterAt{w: w}, &s3.GetObjectInput{
		Bucket: aws.String(v.bucket),
		Key:    aws.String(v.key(instanceID, name)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return fmt.Errorf("snapshot %q not found for instance: %s", name, instanceID)
		}
		return fmt.Errorf("downloading snapshot from s3://%s/%s: %w", v.bucket, v.key(instanceID, name), err)
	}
	return nil
}

// GetSnapshotVersion reads the version metadata of a snapshot.
// Returns 0 if the object does not exist.
func (v *S3Vault) GetSnapshotVersion(instanceID string, name string) (int64, error) {
	out, err := v.client.HeadObject(context.Background(), &s3.HeadObjectInput{
		Bucket: aws.String(v.bucket),
		Key:    aws.String(v.key(instanceID, name)),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading snapshot version: %w", err)
	}

	raw, ok := out.Metadata[versionMetadataKey]
	if !ok {
		return 0, nil
	}
	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing version: %w", err)
	}
	return version, nil
}

// ValidateSetup checks that the bucket exists and is reachable with the configured credentials.
func (v *S3Vault) ValidateSetup() error {
	if _, err := v.client.HeadBucket(context.Background(), &s3.HeadBucketInput{
		Bucket: aws.String(v.bucket),
	}); err != nil {
		return fmt.Errorf("s3 bucket %s not accessible: %w", v.bucket, err)
	}
	return nil
}

// sizedReader errors on the read that shows the stream is not size bytes
// long. The uploader aborts on a read error, so no object is left behind.
type sizedReader struct {
	r    io.Reader
	size int64
	n    int64
}

func (s *sizedReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	s.n += int64(n)
	if s.n > s.size {
		return n, fmt.Errorf("size mismatch: expected %d bytes, got more", s.size)
	}
	if err == io.EOF && s.n != s.size {
		return n, fmt.Errorf("size mismatch: expected %d bytes, got %d", s.size, s.n)
	}
	return n, err
}

// sequentialWriterAt adapts an io.Writer for a downloader with Concurrency 1,
// where parts arrive in order and offsets can be ignored.
type sequentialWriterAt struct {
	w io.Writer
}

func (s sequentialWriterAt) WriteAt(p []byte, _ int64) (int, error) {
	return s.w.Write(p)
}

// Compile-time check that S3Vault implements hsync.Vault interface
var _ hsync.Vault = (*S3Vault)(nil)
