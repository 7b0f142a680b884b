package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SaveUploadedFile stores an uploaded file under destDir with a
// timestamped, sanitized filename and returns the stored path.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	// Timestamp prefix keeps names unique; original name kept for operators
	base := unsafeFileChars.ReplaceAllString(filepath.Base(file.Filename), "_")
	newFilename := time.Now().Format("20060102150405") + "_" + base
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filePath, nil
}

// GetFileURL maps a stored path to its public URL. Files under ./public
// are served from the site root.
func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	return "/" + strings.TrimPrefix(filepath.ToSlash(filePath), "public/")
}
