package derive

import (
	"encoding/base64"
	"fmt"

	"github.com/meridiancon/companion-sync/models"
)

// ImageDetails is an image record plus its resolved content URL.
type ImageDetails struct {
	models.Image
	FullUrl string
}

// ImageDetails resolves one image by id.
func (d *Deriver) ImageDetails(id string) (ImageDetails, bool) {
	img, ok := d.store.Images.Get(id)
	if !ok {
		return ImageDetails{}, false
	}
	return d.imageDetails(img), true
}

func (d *Deriver) imageDetails(img models.Image) ImageDetails {
	return ImageDetails{Image: img, FullUrl: d.imageURL(img)}
}

// imageURL composes the content-addressed download URL. The hash segment
// uses the standard RFC 4648 base64 alphabet; the backend validates it for
// cache busting, so the encoding must not deviate.
func (d *Deriver) imageURL(img models.Image) string {
	hash := base64.StdEncoding.EncodeToString([]byte(img.ContentHashSha1))
	return fmt.Sprintf("%s/Images/%s/Content/with-hash:%s", d.baseURL, img.Id, hash)
}

// resolveImage is the nil-tolerant lookup used by the other derivations:
// an empty or dangling image id yields nil, never an error.
func (d *Deriver) resolveImage(id string) *ImageDetails {
	if id == "" {
		return nil
	}
	img, ok := d.store.Images.Get(id)
	if !ok {
		return nil
	}
	details := d.imageDetails(img)
	return &details
}
