package showroom

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

const (
	defaultImageWidth = 800
	jpegQuality       = 80
	maxSourceSize     = 10 << 20 // 10MB
)

// imageWidths are the widths /img/ will resize to.
var imageWidths = []int{320, 640, defaultImageWidth, 1280}

// resizeImage decodes an image from src, shrinks it to maxWidth when wider,
// and encodes it as JPEG.
func resizeImage(src io.Reader, maxWidth int) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxWidth {
		newH := h * maxWidth / w
		if newH < 1 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

var errImageTooLarge = errors.New("image too large")

// handleImage serves /img/?src=/wp-content/...&w=640: a backend upload
// resized to one of the allowed widths.
func (a *App) handleImage(c echo.Context) error {
	src := c.QueryParam("src")
	if !strings.HasPrefix(src, "/wp-content/") || strings.Contains(src, "..") {
		return echo.NewHTTPError(http.StatusBadRequest, "src must be a /wp-content/ path")
	}
	width := defaultImageWidth
	if v := c.QueryParam("w"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || !slices.Contains(imageWidths, n) {
			return echo.NewHTTPError(http.StatusBadRequest, "unsupported width")
		}
		width = n
	}

	req, err := http.NewRequestWithContext(c.Request().Context(), http.MethodGet, a.Config.CMS.Origin+src, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bad src")
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.Logger.Warn("fetch image failed", zap.String("src", src), zap.Error(err))
		return echo.NewHTTPError(http.StatusBadGateway)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return echo.ErrNotFound
	}
	if resp.StatusCode/100 != 2 {
		return echo.NewHTTPError(http.StatusBadGateway)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceSize+1))
	if err == nil && len(body) > maxSourceSize {
		err = errImageTooLarge
	}
	if err != nil {
		a.Logger.Warn("read image failed", zap.String("src", src), zap.Error(err))
		return echo.NewHTTPError(http.StatusBadGateway)
	}

	out, err := resizeImage(bytes.NewReader(body), width)
	if err != nil {
		a.Logger.Warn("resize image failed", zap.String("src", src), zap.Error(err))
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "not an image")
	}
	return c.Blob(http.StatusOK, "image/jpeg", out)
}
