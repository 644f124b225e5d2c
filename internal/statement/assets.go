package statement

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Asset file names under the configured asset directory.
const (
	assetFontRegular = "fonts/NotoSans-Regular.ttf"
	assetFontBold    = "fonts/NotoSans-Bold.ttf"
	assetBrandLogo   = "brand_logo.png"
	assetStamp       = "stamp.png"
)

// Assets resolves optional statement resources (fonts, brand logo, stamp)
// from a local directory. Every accessor is best-effort: a missing or
// unreadable asset yields nil and a log line, never an error. Reads are
// idempotent and safe across concurrent requests.
type Assets struct {
	dir    string
	logger *zap.Logger
}

// NewAssets creates an asset locator rooted at dir.
func NewAssets(dir string, logger *zap.Logger) *Assets {
	return &Assets{dir: dir, logger: logger}
}

// FontRegular returns the regular TTF bytes, or nil when absent.
func (a *Assets) FontRegular() []byte {
	return a.read(assetFontRegular)
}

// FontBold returns the bold TTF bytes, or nil when absent.
func (a *Assets) FontBold() []byte {
	return a.read(assetFontBold)
}

// BrandLogo returns the brand logo PNG, or nil when absent or undecodable.
func (a *Assets) BrandLogo() []byte {
	return a.readPNG(assetBrandLogo)
}

// Stamp returns the stamp PNG, or nil when absent or undecodable.
func (a *Assets) Stamp() []byte {
	return a.readPNG(assetStamp)
}

func (a *Assets) read(name string) []byte {
	data, err := os.ReadFile(filepath.Join(a.dir, filepath.FromSlash(name)))
	if err != nil {
		a.logger.Warn("asset unavailable", zap.String("asset", name), zap.Error(err))
		return nil
	}
	return data
}

// readPNG decode-checks image assets up front: handing gofpdf a corrupt
// image would poison its whole document state, whereas skipping the image
// keeps the statement renderable.
func (a *Assets) readPNG(name string) []byte {
	data := a.read(name)
	if data == nil {
		return nil
	}
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		a.logger.Warn("asset not a valid PNG, skipping", zap.String("asset", name), zap.Error(err))
		return nil
	}
	return data
}
