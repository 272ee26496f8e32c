package helpers

import (
	"context"
	"fmt"
	"strings"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// DecodeUploadText читает загруженный файл как UTF-8, некорректные байты отбрасываются.
// Для pdf текст извлекается так же наивно, разбор структуры документа не выполняется.
func DecodeUploadText(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}

func AttachmentDisposition(fileName string) string {
	return fmt.Sprintf("attachment; filename=%s", fileName)
}
