package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Load opens and decodes an image file. The format is detected by content
// sniffing via the registered drivers, never by file extension.
//
// Returns:
//   - image.Image: the decoded image; the concrete type depends on the
//     format and color model.
//   - string: the detected format name ("png", "jpeg", "gif", "bmp",
//     "tiff", "webp").
//   - error: non-nil if the file cannot be opened or its bytes cannot be
//     interpreted as any supported format.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	return img, format, nil
}

// LoadGreyGrid loads an image file and converts it to a GreyGrid in one
// step. This is the entry point the analysis pipeline uses.
func LoadGreyGrid(path string) (*GreyGrid, error) {
	img, _, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewGreyGrid(img)
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected format name as reported by the decoder.
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image and returns its metadata. Used for debug
// logging before a run.
func LoadImageInfo(path string) (*ImageInfo, error) {
	img, format, err := Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
