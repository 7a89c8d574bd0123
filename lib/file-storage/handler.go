package filestorage

import (
	"fmt"
	"mime"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

const defaultContentType = "application/octet-stream"

var unsafeFileNameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// IsDocument документы хранятся как есть и отдаются на скачивание
func IsDocument(contentType string) bool {
	contentType = strings.ToLower(contentType)
	return contentType == "application/pdf" ||
		strings.Contains(contentType, "word") ||
		strings.Contains(contentType, "document")
}

func getPutOptions(fileName, contentType string) minio.PutObjectOptions {
	if contentType == "" {
		contentType = defaultContentType
	}
	opts := minio.PutObjectOptions{ContentType: contentType}
	if IsDocument(contentType) {
		opts.ContentDisposition = mime.FormatMediaType("attachment", map[string]string{"filename": filepath.Base(fileName)})
	}
	return opts
}

// getObjectFileName имя без спецсимволов + уникальный суффикс, расширение сохраняется
func getObjectFileName(fileName string) string {
	base := filepath.Base(fileName)
	ext := strings.ToLower(filepath.Ext(base))
	name := strings.TrimSuffix(base, filepath.Ext(base))
	name = unsafeFileNameChars.ReplaceAllString(name, "_")
	if name == "" || name == "_" {
		name = "file"
	}
	ext = unsafeFileNameChars.ReplaceAllString(strings.TrimPrefix(ext, "."), "")
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	if ext == "" {
		return fmt.Sprintf("%s_%s", name, suffix)
	}
	return fmt.Sprintf("%s_%s.%s", name, suffix, ext)
}
