package image

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"strings"
	"time"

	_ "image/gif" // 支援 GIF
	_ "image/png" // 支援 PNG

	_ "golang.org/x/image/webp" // 支援 WebP

	"pantry-scan/internal/pkg/common"
)

// Service 圖片處理服務
// 接受 data URI、裸 base64 或 http(s) URL，輸出視覺辨識用的 JPEG 位元組
type Service struct {
	maxSizeBytes int64
	httpClient   *http.Client
}

// NewService 創建圖片處理服務
func NewService(maxSizeBytes int64) *Service {
	return &Service{
		maxSizeBytes: maxSizeBytes,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Prepare 取得、驗證並統一轉為 JPEG
func (s *Service) Prepare(imageData string) ([]byte, error) {
	raw, err := s.fetch(imageData)
	if err != nil {
		return nil, err
	}

	// 檢查文件大小
	if int64(len(raw)) > s.maxSizeBytes {
		return nil, common.ErrInvalidImageSize
	}

	// 解碼並檢查格式
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, common.ErrInvalidImageFormat
	}
	if !isSupportedFormat(format) {
		return nil, common.ErrInvalidImageFormat
	}

	// 統一轉換為 JPEG 格式
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode image as JPEG: %w", err)
	}

	return buf.Bytes(), nil
}

// fetch 取得原始圖片位元組
func (s *Service) fetch(imageData string) ([]byte, error) {
	imageData = strings.TrimSpace(imageData)
	if imageData == "" {
		return nil, common.NewValidationError("image data must not be empty")
	}

	// URL 來源
	if strings.HasPrefix(imageData, "http://") || strings.HasPrefix(imageData, "https://") {
		resp, err := s.httpClient.Get(imageData)
		if err != nil {
			return nil, fmt.Errorf("failed to download image: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("failed to download image: status code %d", resp.StatusCode)
		}

		imageBytes, err := io.ReadAll(io.LimitReader(resp.Body, s.maxSizeBytes+1))
		if err != nil {
			return nil, fmt.Errorf("failed to read image data: %w", err)
		}
		return imageBytes, nil
	}

	// data URI 來源
	if strings.HasPrefix(imageData, "data:image/") {
		parts := strings.Split(imageData, ",")
		if len(parts) != 2 {
			return nil, common.ErrInvalidImageFormat
		}
		imageData = parts[1]
	}

	// 裸 base64 來源
	decoded, err := base64.StdEncoding.DecodeString(imageData)
	if err != nil {
		return nil, common.ErrInvalidImageFormat
	}
	return decoded, nil
}

// isSupportedFormat 檢查圖片格式是否支援
func isSupportedFormat(format string) bool {
	supportedFormats := map[string]bool{
		"jpeg": true,
		"jpg":  true,
		"png":  true,
		"gif":  true,
		"webp": true,
	}
	return supportedFormats[format]
}
