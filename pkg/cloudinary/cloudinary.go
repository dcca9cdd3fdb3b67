package cloudinary

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"covershop/internal/models"
)

// uploadFolder keeps all cover images under one Cloudinary folder.
const uploadFolder = "mobile_covers"

// Client wraps the Cloudinary SDK as the asset upload adapter: binary in,
// publicly reachable URL out.
type Client struct {
	cld *cloudinary.Cloudinary
}

// New creates a Client from a CLOUDINARY_URL-style connection string.
func New(url string) (*Client, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to configure cloudinary: %w", err)
	}
	return &Client{cld: cld}, nil
}

// Upload pushes one image stream and returns its secure URL. A response
// without a URL signals ErrUploadFailed.
func (c *Client) Upload(ctx context.Context, file io.Reader) (string, error) {
	result, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       uploadFolder,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if result.SecureURL == "" {
		return "", models.ErrUploadFailed
	}
	return result.SecureURL, nil
}
