package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
)

type fakeS3 struct {
	puts    []s3.PutObjectInput
	bodies  [][]byte
	objects []types.Object
	deleted []string
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, _ := io.ReadAll(in.Body)
	f.puts = append(f.puts, *in)
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(_ context.Context, _ *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	return &s3.ListObjectsV2Output{Contents: f.objects, IsTruncated: aws.Bool(false)}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

var fixed = time.UnixMilli(1715000000123)

func testStore(api objectAPI) *Store {
	s := newStore(api, "barbershop", "https://cdn.example.com/", 64)
	s.now = func() time.Time { return fixed }
	return s
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"hero", "About", " services ", "barbers"} {
		if _, ok := ParseKind(s); !ok {
			t.Fatalf("%q should parse", s)
		}
	}
	if _, ok := ParseKind("avatars"); ok {
		t.Fatal("unknown kind accepted")
	}
}

func TestKeys(t *testing.T) {
	tests := []struct {
		key       string
		wellKnown bool
		generated bool
	}{
		{"about.jpg", true, false},
		{"barber1.jpg", true, false},
		{"barber12.png", true, false},
		{"hero.webp", true, false},
		{"1715000000123-corte.webp", false, true},
		{"../etc/passwd", false, false},
		{"barber.jpg", false, false},
	}
	for _, tt := range tests {
		if got := IsWellKnown(tt.key); got != tt.wellKnown {
			t.Errorf("IsWellKnown(%q)=%v", tt.key, got)
		}
		if got := IsGenerated(tt.key); got != tt.generated {
			t.Errorf("IsGenerated(%q)=%v", tt.key, got)
		}
	}

	if got := GeneratedKey(fixed, `C:\fotos\Corte Novo!.JPG`); got != "1715000000123-Corte-Novo-.JPG" {
		t.Fatalf("GeneratedKey=%q", got)
	}
	if got := GeneratedKey(fixed, "///"); got != "1715000000123-image" {
		t.Fatalf("GeneratedKey=%q", got)
	}
	if got := BarberKey(3); got != "barber3.jpg" {
		t.Fatalf("BarberKey=%q", got)
	}
}

func TestCacheBusted(t *testing.T) {
	if got := CacheBusted("https://x/about.jpg", fixed); got != "https://x/about.jpg?t=1715000000123" {
		t.Fatalf("got %q", got)
	}
	if got := CacheBusted("https://x/a.jpg?v=1", fixed); !strings.HasSuffix(got, "&t=1715000000123") {
		t.Fatalf("got %q", got)
	}
}

func TestURLUsesBucketPerKind(t *testing.T) {
	s := testStore(&fakeS3{})
	got := s.URL(KindAbout, "about.jpg")
	if got != "https://cdn.example.com/barbershop-about/about.jpg?t=1715000000123" {
		t.Fatalf("url=%q", got)
	}
}

func TestUploadWellKnownKeepsBytes(t *testing.T) {
	api := &fakeS3{}
	data := pngBytes(t, 200, 100)

	obj, err := testStore(api).Upload(context.Background(), KindAbout, "about.jpg", "whatever.png", "image/png", data)
	if err != nil {
		t.Fatal(err)
	}
	if obj.Key != "about.jpg" || !bytes.Equal(api.bodies[0], data) {
		t.Fatalf("well-known upload altered: key=%s", obj.Key)
	}
	if aws.ToString(api.puts[0].Bucket) != "barbershop-about" {
		t.Fatalf("bucket=%s", aws.ToString(api.puts[0].Bucket))
	}
}

func TestUploadGeneratedTranscodes(t *testing.T) {
	api := &fakeS3{}

	obj, err := testStore(api).Upload(context.Background(), KindServices, "", "corte.png", "image/png", pngBytes(t, 200, 100))
	if err != nil {
		t.Fatal(err)
	}
	if obj.Key != "1715000000123-corte.webp" {
		t.Fatalf("key=%q", obj.Key)
	}
	if aws.ToString(api.puts[0].ContentType) != "image/webp" {
		t.Fatalf("content type=%s", aws.ToString(api.puts[0].ContentType))
	}
}

func TestUploadRejects(t *testing.T) {
	s := testStore(&fakeS3{})
	ctx := context.Background()

	if _, err := s.Upload(ctx, KindHero, "", "a.txt", "text/plain", []byte("x")); !httperr.IsBusiness(err, "invalid_image_type") {
		t.Fatalf("got %v", err)
	}
	if _, err := s.Upload(ctx, KindHero, "", "a.png", "image/png", nil); !httperr.IsBusiness(err, "empty_file") {
		t.Fatalf("got %v", err)
	}
	if _, err := s.Upload(ctx, KindHero, "../x.jpg", "a.png", "image/png", []byte("x")); !httperr.IsBusiness(err, "invalid_object_key") {
		t.Fatalf("got %v", err)
	}
}

func TestToWebPDownscales(t *testing.T) {
	out, err := ToWebP(pngBytes(t, 200, 100), 50)
	if err != nil {
		t.Fatal(err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if format != "webp" || cfg.Width != 50 || cfg.Height != 25 {
		t.Fatalf("format=%s size=%dx%d", format, cfg.Width, cfg.Height)
	}
}

func TestListNewestFirstAndDelete(t *testing.T) {
	older := fixed.Add(-time.Hour)
	api := &fakeS3{objects: []types.Object{
		{Key: aws.String("1-old.webp"), Size: aws.Int64(10), LastModified: &older},
		{Key: aws.String("barber1.jpg"), Size: aws.Int64(20), LastModified: &fixed},
	}}
	s := testStore(api)

	objs, err := s.List(context.Background(), KindBarbers)
	if err != nil {
		t.Fatal(err)
	}
	if len(objs) != 2 || objs[0].Key != "barber1.jpg" {
		t.Fatalf("objs=%+v", objs)
	}

	if err := s.Delete(context.Background(), KindBarbers, "barber1.jpg"); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(context.Background(), KindBarbers, "../../x"); !httperr.IsBusiness(err, "invalid_object_key") {
		t.Fatalf("got %v", err)
	}
	if len(api.deleted) != 1 {
		t.Fatalf("deleted=%v", api.deleted)
	}
}
