package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kurin/blazer/b2"
)

// Uploader stores lesson attachments and returns the path or URL to
// serve them from. Local disk is the default backend; Backblaze B2 is
// used when credentials are configured.
type Uploader interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// uploadKey produces a collision-resistant object key for a filename
func uploadKey(filename string) string {
	base := filepath.Base(filename)
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("uploads/%d-%s", time.Now().UnixNano(), base)
}

// LocalStore writes uploads to a directory on disk
type LocalStore struct {
	dir string
}

// NewLocalStore creates a local upload store rooted at dir
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes the file to disk and returns its path relative to the
// static file root, e.g. "uploads/1712345-name.pdf".
func (s *LocalStore) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	key := uploadKey(filename)

	dst := filepath.Join(s.dir, filepath.Base(key))
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return key, nil
}

// B2Store writes uploads to a Backblaze B2 bucket
type B2Store struct {
	client *b2.Client
	bucket *b2.Bucket
}

// NewB2Store connects to Backblaze B2 and binds the named bucket
func NewB2Store(ctx context.Context, keyID, appKey, bucketName string) (*B2Store, error) {
	client, err := b2.NewClient(ctx, keyID, appKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create b2 client: %w", err)
	}

	bucket, err := client.Bucket(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket: %w", err)
	}

	return &B2Store{client: client, bucket: bucket}, nil
}

// Save streams the file to B2 and returns its absolute download URL
func (s *B2Store) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	key := uploadKey(filename)

	obj := s.bucket.Object(key)
	w := obj.NewWriter(ctx)

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return fmt.Sprintf("%s/file/%s/%s", s.bucket.BaseURL(), s.bucket.Name(), key), nil
}

// ResolveURL turns a stored file path into a browser-reachable URL.
// Absolute URLs (B2 uploads) pass through untouched; relative paths are
// served from the static file root.
func ResolveURL(baseURL, filePath string) string {
	if filePath == "" {
		return ""
	}
	if strings.HasPrefix(filePath, "http://") || strings.HasPrefix(filePath, "https://") {
		return filePath
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(filePath, "/")
}
