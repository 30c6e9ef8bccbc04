package helpers

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const (
	AvatarFolder = "avatars"
	VenueFolder  = "venues"
	EventsFolder = "events"
)

var (
	lowerRe   = regexp.MustCompile(`[a-z]`)
	upperRe   = regexp.MustCompile(`[A-Z]`)
	numberRe  = regexp.MustCompile(`\d`)
	specialRe = regexp.MustCompile(`[@$!%*?&]`)
)

func IsPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	return lowerRe.MatchString(password) &&
		upperRe.MatchString(password) &&
		numberRe.MatchString(password) &&
		specialRe.MatchString(password)
}

// ImageUploader abstracts image storage so services can be tested without
// a Cloudinary account.
type ImageUploader interface {
	UploadImages(ctx context.Context, images []string, folder string) (urls []string, publicIDs []string, err error)
	DeleteImages(ctx context.Context, folder string, publicIDs []string)
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cld *cloudinary.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cld}
}

func (cu *CloudinaryUploader) UploadImages(ctx context.Context, images []string, folder string) ([]string, []string, error) {
	var urls, publicIDs []string
	for _, img := range images {
		if strings.TrimSpace(img) == "" {
			continue
		}
		result, err := cu.cld.Upload.Upload(ctx, img, uploader.UploadParams{
			Folder: folder,
			Tags:   []string{"festa-app"},
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to upload image: %v", err)
		}
		urls = append(urls, result.SecureURL)
		publicIDs = append(publicIDs, result.PublicID)
	}
	return urls, publicIDs, nil
}

// DeleteImages is best-effort cleanup after a failed create.
func (cu *CloudinaryUploader) DeleteImages(ctx context.Context, folder string, publicIDs []string) {
	for _, id := range publicIDs {
		_, _ = cu.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: id})
	}
}
