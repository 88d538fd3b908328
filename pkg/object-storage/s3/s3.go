package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3 struct {
	Endpoint     string
	Region       string
	Bucket       string
	ak           string
	sk           string
	usePathStyle bool
	cli          *s3.Client
}

type Option func(*S3)

// WithPathStyle 强制使用路径样式 URL（endpoint/bucket 而不是 bucket.endpoint），MinIO 需要
func WithPathStyle(enable bool) Option {
	return func(s *S3) {
		s.usePathStyle = enable
	}
}

func NewS3Client(endpoint, region, bucket, ak, sk string, opts ...Option) *S3 {
	cli := &S3{
		Endpoint: endpoint,
		Region:   region,
		Bucket:   bucket,
		ak:       ak,
		sk:       sk,
	}

	for _, opt := range opts {
		opt(cli)
	}

	if _, err := cli.DefaultConfig(context.Background()); err != nil {
		panic(err)
	}

	return cli
}

func (s *S3) DefaultConfig(ctx context.Context) (aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID: s.ak, SecretAccessKey: s.sk,
			},
		}),
		config.WithRegion(s.Region),
		config.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:           s.Endpoint,
				SigningRegion: s.Region,
			}, nil
		})))
	if err != nil {
		return aws.Config{}, err
	}

	s.cli = s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = s.usePathStyle
	})
	return cfg, nil
}

// EnsureBucket creates the configured bucket with an anonymous-read
// policy when it does not exist yet.
func (s *S3) EnsureBucket(ctx context.Context) error {
	if _, err := s.cli.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.Bucket),
	}); err == nil {
		return nil
	}

	if _, err := s.cli.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(s.Bucket),
	}); err != nil {
		return fmt.Errorf("failed to create bucket %s, %w", s.Bucket, err)
	}

	policy := fmt.Sprintf(`{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Principal": "*",
      "Action": ["s3:GetObject"],
      "Resource": ["arn:aws:s3:::%s/*"]
    }
  ]
}`, s.Bucket)

	if _, err := s.cli.PutBucketPolicy(ctx, &s3.PutBucketPolicyInput{
		Bucket: aws.String(s.Bucket),
		Policy: aws.String(policy),
	}); err != nil {
		return fmt.Errorf("failed to set public-read policy on bucket %s, %w", s.Bucket, err)
	}

	return nil
}

type GetObjectResult struct {
	File     []byte
	FileType string
}

func (s *S3) GetObject(ctx context.Context, key string) (*GetObjectResult, error) {
	key = strings.TrimPrefix(key, "/")

	resp, err := s.cli.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}

	fileContent, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	fr := bytes.NewReader(fileContent)
	// 读取前 512 字节
	buffer := make([]byte, 512)
	_, err = fr.Read(buffer)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("Error reading file: %w", err)
	}

	// 检测 MIME 类型
	mimeType := http.DetectContentType(buffer)

	return &GetObjectResult{
		File:     fileContent,
		FileType: mimeType,
	}, nil
}

func (s *S3) Upload(ctx context.Context, fullPath string, body io.Reader) error {
	s3Manager := manager.NewUploader(s.cli)
	_, err := s3Manager.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(fullPath),
		Body:   body,
	})
	if err != nil {
		return err
	}
	return nil
}

func (s *S3) Delete(ctx context.Context, fullPath string) error {
	_, err := s.cli.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(fullPath),
	})
	if err != nil {
		return err
	}
	return nil
}
