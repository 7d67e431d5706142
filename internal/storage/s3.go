package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/barbershop-admin/internal/config"
	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
)

type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, opts ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type Object struct {
	Kind       Kind      `json:"kind"`
	Key        string    `json:"key"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type Store struct {
	api        objectAPI
	prefix     string
	publicBase string
	maxWidth   int
	now        func() time.Time
}

// New cria o cliente S3 (compatível com MinIO/R2 via endpoint e path-style)
func New(cfg *config.Config) *Store {
	opts := s3.Options{
		Region:       cfg.S3Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		UsePathStyle: true,
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
	}

	base := cfg.S3PublicBaseURL
	if base == "" {
		base = cfg.S3Endpoint
	}

	return newStore(s3.New(opts), cfg.S3BucketPrefix, base, cfg.ImageMaxWidth)
}

func newStore(api objectAPI, prefix, publicBase string, maxWidth int) *Store {
	return &Store{
		api:        api,
		prefix:     prefix,
		publicBase: strings.TrimRight(publicBase, "/"),
		maxWidth:   maxWidth,
		now:        time.Now,
	}
}

func (s *Store) Bucket(kind Kind) string {
	if s.prefix == "" {
		return string(kind)
	}
	return s.prefix + "-" + string(kind)
}

// URL pública com cache-busting novo a cada chamada
func (s *Store) URL(kind Kind, key string) string {
	raw := fmt.Sprintf("%s/%s/%s", s.publicBase, s.Bucket(kind), key)
	return CacheBusted(raw, s.now())
}

// ======================================================
// UPLOAD
// ======================================================

// Upload grava sob a chave fixa (bytes intactos) quando key é um nome
// conhecido; caso contrário gera <millis>-<filename> e converte para WebP.
func (s *Store) Upload(
	ctx context.Context,
	kind Kind,
	key string,
	filename string,
	contentType string,
	data []byte,
) (*Object, error) {

	if len(data) == 0 {
		return nil, httperr.ErrBusiness("empty_file")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, httperr.ErrBusiness("invalid_image_type")
	}

	switch {
	case key != "" && IsWellKnown(key):
		// mantém o arquivo original

	case key != "":
		return nil, httperr.ErrBusiness("invalid_object_key")

	default:
		key = GeneratedKey(s.now(), filename)
		if Transcodable(contentType) {
			converted, err := ToWebP(data, s.maxWidth)
			if err != nil {
				log.Printf("[storage] webp falhou para %s, enviando original: %v", key, err)
			} else {
				data = converted
				contentType = "image/webp"
				key = WithExt(key, ".webp")
			}
		}
	}

	if _, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.Bucket(kind)),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000"),
	}); err != nil {
		return nil, err
	}

	return &Object{
		Kind:       kind,
		Key:        key,
		URL:        s.URL(kind, key),
		Size:       int64(len(data)),
		UploadedAt: s.now(),
	}, nil
}

// ======================================================
// LIST / DELETE
// ======================================================

// List retorna os objetos do bucket, mais recentes primeiro
func (s *Store) List(ctx context.Context, kind Kind) ([]Object, error) {
	out := []Object{}

	p := s3.NewListObjectsV2Paginator(s.api, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.Bucket(kind)),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, o := range page.Contents {
			key := aws.ToString(o.Key)
			out = append(out, Object{
				Kind:       kind,
				Key:        key,
				URL:        s.URL(kind, key),
				Size:       aws.ToInt64(o.Size),
				UploadedAt: aws.ToTime(o.LastModified),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out, nil
}

func (s *Store) Delete(ctx context.Context, kind Kind, key string) error {
	if !IsWellKnown(key) && !IsGenerated(key) {
		return httperr.ErrBusiness("invalid_object_key")
	}
	_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket(kind)),
		Key:    aws.String(key),
	})
	return err
}

// DetectContentType usa o conteúdo quando o cabeçalho do upload não é confiável
func DetectContentType(header string, data []byte) string {
	if strings.HasPrefix(header, "image/") {
		return header
	}
	return http.DetectContentType(data)
}
