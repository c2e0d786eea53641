// Package export materializes decoded icon family elements as standalone
// files: PNGs for raster payloads, JSON for metadata, raw dumps for
// pass-through and unknown data.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"

	apperrors "github.com/deploymenttheory/go-icns/internal/common/errors"
	"github.com/deploymenttheory/go-icns/internal/common/fsutil"
	"github.com/deploymenttheory/go-icns/internal/common/jsonutil"
	"github.com/deploymenttheory/go-icns/internal/common/plistutil"
	"github.com/deploymenttheory/go-icns/internal/icns"
	"github.com/deploymenttheory/go-icns/internal/logger"
)

// tocEntryJSON is the serialized form of one table of contents entry.
type tocEntryJSON struct {
	Type          string `json:"type"`
	ElementLength uint32 `json:"element_length"`
}

// composerVersionJSON wraps the version value in an object, since JSON
// only allows arrays or objects at the top level.
type composerVersionJSON struct {
	Version float32 `json:"version"`
}

// Family writes every element of the family into outputDir. Nested
// families are written both as standalone .icns files and recursively
// extracted into a sibling directory. Unless overwrite is set, the
// output directory must not exist yet.
func Family(fam *icns.IconFamily, outputDir string, overwrite bool) error {
	if overwrite {
		if err := fsutil.CreateDirIfNotExists(outputDir); err != nil {
			return fmt.Errorf("%w: %s", apperrors.ErrPathNotAccessible, outputDir)
		}
	} else {
		if err := fsutil.CreateNewDir(outputDir, 0755); err != nil {
			return fmt.Errorf("%w: %s", apperrors.ErrDirExistsError, outputDir)
		}
	}
	logger.LogInfo("Extracting icon family", map[string]interface{}{
		"output_dir": outputDir,
		"elements":   fam.Len(),
	})

	for _, e := range fam.Elements() {
		name, data, nested, err := materialize(fam, e)
		if err != nil {
			return err
		}

		path := filepath.Join(outputDir, name)
		if err := writeFile(path, data, overwrite); err != nil {
			return fmt.Errorf("%w: %s", apperrors.ErrFileWriteError, path)
		}
		logger.LogInfo("Extracted element", map[string]interface{}{
			"type":       e.Code.String(),
			"file":       name,
			"raw_bytes":  len(e.Body),
			"file_bytes": len(data),
		})

		if nested != nil {
			if err := Family(nested, path+".extracted", overwrite); err != nil {
				return err
			}
		}
	}
	return nil
}

// materialize converts one element into a file name and contents. The
// returned family is non-nil for nested families, which the caller also
// extracts recursively.
func materialize(fam *icns.IconFamily, e *icns.Element) (string, []byte, *icns.IconFamily, error) {
	payload, err := e.Payload()
	if err != nil {
		// Corrupt payloads are dumped unmodified so nothing is lost.
		logger.LogWarn("Element data is invalid, dumping raw bytes", map[string]interface{}{
			"type":  e.Code.String(),
			"error": err.Error(),
		})
		return fmt.Sprintf("0x%s (invalid).dat", e.Code.Hex()), e.Body, nil, nil
	}

	switch p := payload.(type) {
	case *icns.UnknownData:
		return fmt.Sprintf("0x%s (unknown).dat", e.Code.Hex()), p.Raw, nil, nil

	case *icns.IconFamily:
		name := e.KnownType().Variant + ".icns"
		return name, icns.EncodeStandalone(e.Body), p, nil

	case *icns.TableOfContents:
		entries := make([]tocEntryJSON, 0, len(p.Entries))
		for _, entry := range p.Entries {
			entries = append(entries, tocEntryJSON{
				Type:          string(entry.Code.Bytes()),
				ElementLength: entry.Length,
			})
		}
		data, err := jsonutil.Marshal(entries)
		if err != nil {
			return "", nil, nil, err
		}
		return "table of contents.json", data, nil, nil

	case *icns.IconComposerVersion:
		data, err := jsonutil.Marshal(composerVersionJSON{Version: p.Version})
		if err != nil {
			return "", nil, nil, err
		}
		return "Icon Composer version.json", data, nil, nil

	case *icns.InfoDictionary:
		// The body already is a (binary) plist and can be written as-is.
		if keys, err := plistutil.TopLevelKeys(p.ArchivedData); err == nil {
			logger.LogDebug("Info dictionary keys", map[string]interface{}{"keys": keys})
		}
		return "info dictionary.plist", p.ArchivedData, nil, nil

	case *icns.IconPNGOrJPEG2000:
		switch {
		case p.IsPNG():
			return p.Resolution.String() + ".png", p.Data, nil, nil
		case p.IsJPEG2000():
			return p.Resolution.String() + ".jp2", p.Data, nil, nil
		default:
			return p.Resolution.String() + " (unrecognized image).dat", p.Data, nil, nil
		}

	case *icns.Icon1BitWithMask:
		data, err := encodePNG(p.Image())
		return pngName(p.Resolution, "1-bit with 1-bit mask"), data, nil, err

	case *icns.Icon4Bit:
		mask, err := lookupMask(fam, p.Resolution)
		if err != nil {
			return "", nil, nil, err
		}
		data, err := encodePNG(p.Image(mask))
		return pngName(p.Resolution, "4-bit"), data, nil, err

	case *icns.Icon8Bit:
		mask, err := lookupMask(fam, p.Resolution)
		if err != nil {
			return "", nil, nil, err
		}
		data, err := encodePNG(p.Image(mask))
		return pngName(p.Resolution, "8-bit"), data, nil, err

	case *icns.IconRGB:
		mask, err := lookupMask(fam, p.Resolution)
		if err != nil {
			return "", nil, nil, err
		}
		img, err := p.Image(mask)
		if err != nil {
			return "", nil, nil, err
		}
		data, err := encodePNG(img)
		return pngName(p.Resolution, "RGB"), data, nil, err

	case *icns.Mask8Bit:
		data, err := encodePNG(p.Gray())
		return pngName(p.Resolution, "8-bit mask"), data, nil, err

	case *icns.IconARGB:
		img, err := p.Image()
		if err != nil {
			return "", nil, nil, err
		}
		data, err := encodePNG(img)
		return pngName(p.Resolution, "ARGB"), data, nil, err

	default:
		return "", nil, nil, fmt.Errorf("unhandled payload type %T", payload)
	}
}

func pngName(r icns.Resolution, kind string) string {
	return fmt.Sprintf("%s %s.png", r, kind)
}

// lookupMask finds the best mask for the resolution; a family without
// one yields a nil mask and a fully opaque extraction.
func lookupMask(fam *icns.IconFamily, r icns.Resolution) (*image.Alpha, error) {
	mask, err := fam.MaskAlpha(r)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoMatchingElement) {
			return nil, nil
		}
		return nil, err
	}
	return mask, nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrFileWriteError, err.Error())
	}
	return buf.Bytes(), nil
}

func writeFile(path string, data []byte, overwrite bool) error {
	if overwrite {
		return fsutil.WriteFile(path, data, 0644)
	}
	return fsutil.WriteFileExclusive(path, data, 0644)
}
