package xlsexport

import (
	"bytes"

	careermodels "career-tools-backend/models/api/career"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	FileName    = "career_plan.xlsx"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Provider interface {
	ExportReport(report careermodels.Report) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var sectionHeaders = []string{"Section", "Content"}

func (i impl) ExportReport(report careermodels.Report) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, sectionHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(report.Sections) != 0 {
		_, err = writeSectionData(f, sheet, report.Sections, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	if err = f.SetSheetName(sheet, "Career Plan"); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа в xlsx")
	}
	return f.WriteToBuffer()
}

func writeSectionData(f *excelize.File, sheet string, list []careermodels.Section, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(sectionHeaders), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Section"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Title); err != nil {
			return row, err
		}

		// "Content"
		col++
		if err := writeColumn(f, sheet, col, row, item.Text); err != nil {
			return row, err
		}
	}
	return row, nil
}
