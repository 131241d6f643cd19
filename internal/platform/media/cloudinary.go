package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/pkg/errors"
)

// Cloudinary posts files straight to an unsigned upload preset. These
// requests bypass the backend client, so they carry no bearer token.
type Cloudinary struct {
	uploadURL string
	preset    string
	http      *http.Client
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	PublicID  string `json:"public_id"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func NewCloudinary(uploadURL, preset string, hc *http.Client) *Cloudinary {
	if hc == nil {
		hc = &http.Client{}
	}
	return &Cloudinary{uploadURL: uploadURL, preset: preset, http: hc}
}

func (c *Cloudinary) Upload(ctx context.Context, f File, folder string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, f.Name))
	header.Set("Content-Type", f.ContentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", errors.Wrap(err, "create file part")
	}
	if _, err := part.Write(f.Data); err != nil {
		return "", errors.Wrap(err, "write file part")
	}
	if err := writer.WriteField("upload_preset", c.preset); err != nil {
		return "", errors.Wrap(err, "write upload_preset")
	}
	if err := writer.WriteField("folder", folder); err != nil {
		return "", errors.Wrap(err, "write folder")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "close multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return "", errors.Wrap(err, "build upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(ErrUploadFailed, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(ErrUploadFailed, err.Error())
	}
	var out cloudinaryResponse
	_ = json.Unmarshal(raw, &out)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reason := http.StatusText(resp.StatusCode)
		if out.Error != nil && out.Error.Message != "" {
			reason = out.Error.Message
		}
		return "", errors.Wrap(ErrUploadFailed, reason)
	}
	if out.SecureURL == "" {
		return "", errors.Wrap(ErrUploadFailed, "response has no secure_url")
	}
	return out.SecureURL, nil
}
