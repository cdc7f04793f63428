package contracts

import (
	"context"
	"io"
)

type Storage interface {
	UploadObject(ctx context.Context, objectName string, reader io.Reader, objectSize int64, contentType string) (string, error)
}
