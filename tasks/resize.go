package tasks

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"vhotelok-backend/repositories"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
)

// resizeWidths are the thumbnail widths rendered for every upload.
var resizeWidths = []int{1000, 500, 200}

// ResizeImage renders the configured widths next to the original as
// <name>_<width>px<ext>, keeping aspect ratio, and records the produced
// variants on the image row. Failures are logged, never fatal.
func ResizeImage(images *repositories.ImageRepository, path string) {
	src, err := imaging.Open(path)
	if err != nil {
		logrus.Errorf("❌ resize: open %s: %v", path, err)
		return
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	variants := make(map[string]string, len(resizeWidths))
	for _, width := range resizeWidths {
		resized := imaging.Resize(src, width, 0, imaging.Lanczos)
		outName := fmt.Sprintf("%s_%dpx%s", name, width, ext)

		if err := imaging.Save(resized, filepath.Join(dir, outName)); err != nil {
			logrus.Errorf("❌ resize: save %s: %v", outName, err)
			continue
		}
		variants[strconv.Itoa(width)] = outName
	}

	if images != nil && len(variants) > 0 {
		if err := images.SetVariants(base, variants); err != nil {
			logrus.Errorf("❌ resize: record variants for %s: %v", base, err)
		}
	}
	logrus.WithField("image", base).Info("✅ image resized")
}
