package controllers

import (
	"io"

	"github.com/gin-gonic/gin"
)

// readUpload reads one multipart file field into memory and returns its
// bytes, content type and original filename.
func readUpload(c *gin.Context, field string) ([]byte, string, string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, "", "", err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", "", err
	}
	return data, fh.Header.Get("Content-Type"), fh.Filename, nil
}
