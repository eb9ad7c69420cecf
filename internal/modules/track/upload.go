package track

import (
	"fmt"
	"math/rand"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// saveUpload writes a multipart file into the uploads dir under a unique name
// and returns the public "/uploads/..." path. Only that path string is ever
// persisted.
func saveUpload(c *gin.Context, file *multipart.FileHeader, field, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.Intn(1e9), filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return path.Join("/uploads", name), nil
}

// formFile returns the named multipart file, or nil when absent.
func formFile(c *gin.Context, field string) *multipart.FileHeader {
	file, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return file
}
