package assets

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Client uploads images to Cloudinary and returns their public URLs.
// Every upload creates a new stored object; nothing here is idempotent.
type Client struct {
	cld *cloudinary.Cloudinary
}

// NewFromEnv builds a Client from CLOUDINARY_URL.
func NewFromEnv() (*Client, error) {
	if os.Getenv("CLOUDINARY_URL") == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL environment variable is not set")
	}
	cld, err := cloudinary.NewFromURL(os.Getenv("CLOUDINARY_URL"))
	if err != nil {
		return nil, err
	}
	return &Client{cld: cld}, nil
}

// UploadBytes uploads raw image bytes (sent as a base64 data URI) into a
// folder and returns the public URL.
func (c *Client) UploadBytes(ctx context.Context, data []byte, folder string) (string, error) {
	dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
	return c.upload(ctx, dataURI, folder)
}

// UploadURL uploads a remote image by URL into a folder and returns the
// public URL.
func (c *Client) UploadURL(ctx context.Context, url, folder string) (string, error) {
	return c.upload(ctx, url, folder)
}

func (c *Client) upload(ctx context.Context, source string, folder string) (string, error) {
	res, err := c.cld.Upload.Upload(ctx, source, uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		return "", err
	}
	if res.SecureURL == "" {
		return "", fmt.Errorf("assets: upload returned no URL (%s)", res.Error.Message)
	}
	return res.SecureURL, nil
}
