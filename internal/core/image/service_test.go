package image

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"pantry-scan/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPrepareBareBase64(t *testing.T) {
	s := NewService(1 << 20)

	encoded := base64.StdEncoding.EncodeToString(pngBytes(t))
	out, err := s.Prepare(encoded)
	require.NoError(t, err)

	// 輸出應為可解碼的 JPEG
	_, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestPrepareDataURI(t *testing.T) {
	s := NewService(1 << 20)

	encoded := fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(pngBytes(t)))
	out, err := s.Prepare(encoded)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestPrepareURL(t *testing.T) {
	data := pngBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	s := NewService(1 << 20)
	out, err := s.Prepare(srv.URL)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestPrepareRejectsOversizedImage(t *testing.T) {
	s := NewService(10)

	encoded := base64.StdEncoding.EncodeToString(pngBytes(t))
	_, err := s.Prepare(encoded)
	assert.ErrorIs(t, err, common.ErrInvalidImageSize)
}

func TestPrepareRejectsGarbage(t *testing.T) {
	s := NewService(1 << 20)

	_, err := s.Prepare("not an image at all!!")
	assert.ErrorIs(t, err, common.ErrInvalidImageFormat)

	_, err = s.Prepare(base64.StdEncoding.EncodeToString([]byte("plain text")))
	assert.ErrorIs(t, err, common.ErrInvalidImageFormat)
}

func TestPrepareEmptyInput(t *testing.T) {
	s := NewService(1 << 20)

	_, err := s.Prepare("   ")
	assert.True(t, common.IsValidationError(err))
}
