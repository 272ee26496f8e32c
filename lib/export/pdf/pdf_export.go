package pdfexport

import (
	"bytes"
	"regexp"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	FileName    = "career_plan.pdf"
	ContentType = "application/pdf"

	pageMargin = 15.0
	fontSize   = 12.0
	lineHeight = 10.0
)

var nonASCII = regexp.MustCompile(`[^\x00-\x7F]+`)

// StripNonASCII удаляет все символы вне 7-bit ASCII (включая ₹ и любой
// не латинский текст). Преобразование с потерями, нужно для встроенного
// шрифта Arial без UTF-8.
func StripNonASCII(text string) string {
	return nonASCII.ReplaceAllString(text, "")
}

// GenerateReport раскладывает текст по страницам A4. Даты документа
// фиксируются значением createdAt, поэтому одинаковый вход даёт одинаковые байты.
func GenerateReport(content string, createdAt time.Time) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(createdAt)
	pdf.SetModificationDate(createdAt)
	pdf.SetCatalogSort(true)
	pdf.AddPage()
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetFont("Arial", "", fontSize)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	safeContent := StripNonASCII(content)
	for _, line := range strings.Split(safeContent, "\n") {
		pdf.MultiCell(0, lineHeight, line, "", "", false)
	}
	if pdf.Error() != nil {
		return nil, errors.Wrap(pdf.Error(), "ошибка формирования pdf")
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
