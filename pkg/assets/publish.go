package assets

import (
	"context"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/viewy-dev/viewy/internal/errors"
	"github.com/viewy-dev/viewy/internal/logger"
)

// Cache policies of published objects.
const (
	RevalidateCacheControl = "public, max-age=0, must-revalidate"
	ImmutableCacheControl  = "public, max-age=31536000, immutable"
)

// PutObjectAPI is the part of the S3 client used by Publisher.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads compiled assets to an S3 bucket.
type Publisher struct {
	client PutObjectAPI
	bucket string
	prefix string
	log    *logger.Logger
}

// NewPublisher creates a publisher writing under prefix in bucket.
func NewPublisher(client PutObjectAPI, bucket, prefix string) *Publisher {
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		log:    logger.Default(),
	}
}

// WithLogger sets the logger receiving upload progress.
func (p *Publisher) WithLogger(l *logger.Logger) *Publisher {
	p.log = l
	return p
}

// Key returns the object key for an asset name.
func (p *Publisher) Key(name string) string {
	if p.prefix == "" {
		return name
	}
	return path.Join(p.prefix, name)
}

// Publish uploads every file of a and the manifest. Fingerprinted files are
// cached forever; app.css, app.js and the manifest must revalidate. It
// returns the uploaded keys.
func (p *Publisher) Publish(ctx context.Context, a Assets) ([]string, error) {
	if p.bucket == "" {
		return nil, errors.New("E304").WithDetail("No bucket configured.").
			WithSuggestion("Set [assets] bucket in viewy.toml or pass --bucket")
	}

	files := a.Files()
	manifest, err := a.Manifest().MarshalJSON()
	if err != nil {
		return nil, errors.New("E304").Wrap(err)
	}
	files = append(files, File{Name: ManifestName, Content: string(manifest), ContentType: "application/json"})

	keys := make([]string, 0, len(files))
	for _, f := range files {
		cache := RevalidateCacheControl
		if f.Name != StylesheetName && f.Name != ScriptName && f.Name != ManifestName {
			cache = ImmutableCacheControl
		}
		key := p.Key(f.Name)

		_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:       aws.String(p.bucket),
			Key:          aws.String(key),
			Body:         strings.NewReader(f.Content),
			ContentType:  aws.String(f.ContentType),
			CacheControl: aws.String(cache),
		})
		if err != nil {
			return keys, errors.New("E304").
				WithField("bucket", p.bucket).
				WithField("key", key).
				Wrap(err)
		}
		p.log.WithFields(map[string]any{"bucket": p.bucket, "key": key, "bytes": len(f.Content)}).Debug("uploaded asset")
		keys = append(keys, key)
	}
	return keys, nil
}

// NewS3Client creates a client for region using the AWS_ACCESS_KEY_ID,
// AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN environment variables. A
// non-empty endpoint targets an S3 compatible service with path-style
// addressing.
func NewS3Client(region, endpoint string) *s3.Client {
	creds := aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		return aws.Credentials{
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "environment",
		}, nil
	})

	return s3.New(s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(creds),
	}, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}
