package handler

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"greenhall/internal/assets"
)

// openUpload extracts the named file from a multipart request. A missing
// file is not an error here; endpoints with a mandatory image enforce that
// in their service's validation. The returned closer, when non-nil, must be
// closed after the service call finishes with the reader.
func openUpload(c *fiber.Ctx, field string) (*assets.FileUpload, io.Closer, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}

	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}

	return &assets.FileUpload{
		Reader:      f,
		Filename:    fh.Filename,
		ContentType: ct,
		Size:        fh.Size,
	}, f, nil
}

// formPtr reports a form field with presence semantics: nil when the field
// was not sent at all, a pointer (possibly to "") when it was. Partial
// updates rely on this distinction.
func formPtr(form *multipart.Form, key string) *string {
	if form == nil {
		return nil
	}
	if vs, ok := form.Value[key]; ok && len(vs) > 0 {
		v := vs[0]
		return &v
	}
	return nil
}

// multipartForm returns the parsed form, or nil when the request carries
// none. Callers treat nil as "no fields sent".
func multipartForm(c *fiber.Ctx) *multipart.Form {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	return form
}
