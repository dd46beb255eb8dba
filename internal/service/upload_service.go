package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/wahanakarya/cms_api/internal/config"
)

// UploadService stores admin-uploaded media files on S3 using AWS Signature
// V4 PUT requests. It is a peripheral collaborator of the content handlers:
// the rest of the system only ever sees the returned URL.
type UploadService struct {
	bucket          string
	region          string
	accessKeyID     string
	secretAccessKey string
	httpClient      *http.Client
}

// NewUploadService creates a new UploadService.
func NewUploadService(cfg *config.S3Config) (*UploadService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("S3 config is nil")
	}
	return &UploadService{
		bucket:          cfg.Bucket,
		region:          cfg.Region,
		accessKeyID:     cfg.AccessKeyID,
		secretAccessKey: cfg.SecretAccessKey,
		httpClient:      &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// UploadMedia stores a file under a random key derived from its original
// name and returns the public URL.
func (s *UploadService) UploadMedia(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("media/%s/%s%s", time.Now().UTC().Format("2006/01"), uuid.New().String(), ext)
	return s.putObject(ctx, key, data, contentType)
}

// putObject uploads one object with a SigV4-signed PUT.
func (s *UploadService) putObject(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	// Without credentials behave like a dry run so local development works
	// end to end; the URL just points at nothing.
	if s.accessKeyID == "" || s.secretAccessKey == "" {
		log.Warn().Str("key", key).Msg("S3 credentials not configured - skipping upload")
		return s.ObjectURL(key), nil
	}

	url := s.ObjectURL(key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	now := time.Now().UTC()
	amzDate := now.Format("20060102T150405Z")
	dateStamp := now.Format("20060102")
	payloadHash := sha256Hex(data)

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Content-Length", fmt.Sprintf("%d", len(data)))
	req.Header.Set("Host", s.host())
	req.Header.Set("X-Amz-Date", amzDate)
	req.Header.Set("X-Amz-Content-Sha256", payloadHash)
	req.Header.Set("Authorization", s.signRequest(req, payloadHash, amzDate, dateStamp))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("S3 upload failed")
		return "", fmt.Errorf("failed to upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		log.Error().Str("key", key).Int("status", resp.StatusCode).Str("response", string(body)).
			Msg("S3 upload rejected")
		return "", fmt.Errorf("S3 upload failed with status %d", resp.StatusCode)
	}

	log.Info().Str("key", key).Msg("uploaded media object")
	return url, nil
}

// signRequest builds the AWS Signature V4 authorization header.
func (s *UploadService) signRequest(req *http.Request, payloadHash, amzDate, dateStamp string) string {
	const service = "s3"

	canonicalURI := req.URL.Path
	if canonicalURI == "" {
		canonicalURI = "/"
	}

	signedHeaders := []string{"content-type", "host", "x-amz-content-sha256", "x-amz-date"}

	var canonicalHeaders strings.Builder
	for _, h := range signedHeaders {
		canonicalHeaders.WriteString(h)
		canonicalHeaders.WriteString(":")
		canonicalHeaders.WriteString(strings.TrimSpace(req.Header.Get(h)))
		canonicalHeaders.WriteString("\n")
	}
	signedHeadersStr := strings.Join(signedHeaders, ";")

	canonicalRequest := fmt.Sprintf("%s\n%s\n\n%s\n%s\n%s",
		req.Method, canonicalURI, canonicalHeaders.String(), signedHeadersStr, payloadHash)

	const algorithm = "AWS4-HMAC-SHA256"
	credentialScope := fmt.Sprintf("%s/%s/%s/aws4_request", dateStamp, s.region, service)
	stringToSign := fmt.Sprintf("%s\n%s\n%s\n%s",
		algorithm, amzDate, credentialScope, sha256Hex([]byte(canonicalRequest)))

	kDate := hmacSHA256([]byte("AWS4"+s.secretAccessKey), []byte(dateStamp))
	kRegion := hmacSHA256(kDate, []byte(s.region))
	kService := hmacSHA256(kRegion, []byte(service))
	kSigning := hmacSHA256(kService, []byte("aws4_request"))
	signature := hex.EncodeToString(hmacSHA256(kSigning, []byte(stringToSign)))

	return fmt.Sprintf("%s Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		algorithm, s.accessKeyID, credentialScope, signedHeadersStr, signature)
}

func (s *UploadService) host() string {
	return fmt.Sprintf("%s.s3.%s.amazonaws.com", s.bucket, s.region)
}

// ObjectURL returns the public URL for an object key.
func (s *UploadService) ObjectURL(key string) string {
	return fmt.Sprintf("https://%s/%s", s.host(), key)
}

func sha256Hex(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func hmacSHA256(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}
