package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// PostMultipart uploads r as a multipart/form-data file under the given form
// field, streaming the body instead of buffering the whole file in memory.
// out, when non-nil, receives the decoded JSON response.
func (c *Client) PostMultipart(ctx context.Context, path string, field string, fileName string, mimeType string, r io.Reader, out any) error {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
				quoteEscaper.Replace(field), quoteEscaper.Replace(fileName)))
		if mimeType != "" {
			h.Set("Content-Type", mimeType)
		}

		part, err := mw.CreatePart(h)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, r); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := c.newRequest(ctx, http.MethodPost, path, pr, mw.FormDataContentType())
	if err != nil {
		return err
	}

	body, err := c.do(req)
	if err != nil {
		return err
	}
	return decode(body, out)
}
