package unicodeart

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"mime"
	"net/http"
	"os"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// ConvertSource resolves a locator (a filesystem path or an http/https URL)
// to a decoded image and converts it. All failures come back as *Error.
func (c *Converter) ConvertSource(locator string) (string, error) {
	img, err := c.LoadImage(locator)
	if err != nil {
		return "", err
	}

	return c.Convert(img), nil
}

// LoadImage resolves a locator to a decoded image. Locators starting with
// http:// or https:// are fetched over HTTP, anything else is a file path.
func (c *Converter) LoadImage(locator string) (image.Image, error) {
	if strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://") {
		return c.loadImageURL(locator)
	}
	return loadImageFile(locator)
}

func loadImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newError(InvalidInputPath, path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, newError(FailedToDecodeInput, path)
	}

	return img, nil
}

func (c *Converter) loadImageURL(url string) (image.Image, error) {
	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: downloadTimeout}
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, newError(FailedToDownload, url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newError(FailedToDownload, url)
	}

	decode, ok := decoderForContentType(resp.Header.Get("Content-Type"))
	if !ok {
		return nil, newError(DownloadInvalid, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, newError(DownloadInvalid, url)
	}

	img, err := decode(bytes.NewReader(body))
	if err != nil {
		return nil, newError(DownloadInvalid, url)
	}

	return img, nil
}

/*
decoderForContentType picks a decoder from a Content-Type header value.

An absent or syntactically unparseable header falls back to sniffing the
format from the bytes. A well-formed header naming anything other than a
known image mime type is rejected (ok == false), distinct from the absent
case.
*/
func decoderForContentType(contentType string) (decode func(io.Reader) (image.Image, error), ok bool) {
	if contentType == "" {
		return sniffDecode, true
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return sniffDecode, true
	}

	switch mediaType {
	case "image/png":
		return png.Decode, true
	case "image/jpeg", "image/jpg":
		return jpeg.Decode, true
	case "image/gif":
		return gif.Decode, true
	case "image/webp":
		return webp.Decode, true
	case "image/bmp", "image/x-bmp":
		return bmp.Decode, true
	case "image/tiff":
		return tiff.Decode, true
	}

	return nil, false
}

func sniffDecode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}
