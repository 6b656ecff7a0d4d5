package blob

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"

	"github.com/annotext/annotext/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// ErrNotFound covers both a missing container and a missing object.
var ErrNotFound = errors.New("blob: object not found")

// ObjectStore fetches dataset files from a cloud container.
type ObjectStore interface {
	Fetch(ctx context.Context, container, key string) (io.ReadCloser, error)
}

type S3Deps struct {
	Client   *s3.Client
	Uploader *manager.Uploader
}

func NewS3(ctx context.Context, cfg *config.Config) (*S3Deps, error) {
	loadOpts := []func(*awsCfg.LoadOptions) error{
		awsCfg.WithRegion(cfg.Cloud.Region),
	}
	if cfg.Cloud.AccessKey != "" && cfg.Cloud.SecretKey != "" {
		loadOpts = append(loadOpts, awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.Cloud.AccessKey, cfg.Cloud.SecretKey, ""),
		))
	}

	acfg, err := awsCfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	s3Opts := func(o *s3.Options) {
		if ep := strings.TrimSpace(cfg.Cloud.Endpoint); ep != "" {
			if !strings.HasPrefix(ep, "http://") && !strings.HasPrefix(ep, "https://") {
				ep = "https://" + ep
			}
			if u, uerr := url.Parse(ep); uerr == nil {
				o.BaseEndpoint = aws.String(u.String())
			}
		}
		o.UsePathStyle = cfg.Cloud.UsePathStyle
	}

	client := s3.NewFromConfig(acfg, s3Opts)
	return &S3Deps{
		Client:   client,
		Uploader: manager.NewUploader(client),
	}, nil
}

// Fetch streams an object out of the given container. Missing containers and
// missing objects both collapse into ErrNotFound so the caller can answer 400.
func (s *S3Deps) Fetch(ctx context.Context, container, key string) (io.ReadCloser, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(container),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *s3types.NoSuchKey
		var noBucket *s3types.NoSuchBucket
		if errors.As(err, &noKey) || errors.As(err, &noBucket) {
			return nil, ErrNotFound
		}
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.ErrorCode() {
			case "NoSuchKey", "NoSuchBucket", "NotFound":
				return nil, ErrNotFound
			}
		}
		return nil, err
	}
	return out.Body, nil
}
