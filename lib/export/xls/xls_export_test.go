package xlsexport

import (
	"testing"

	careermodels "career-tools-backend/models/api/career"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportReport(t *testing.T) {
	t.Run(`sections in order with unicode kept`, func(t *testing.T) {
		report := careermodels.Report{
			Sections: []careermodels.Section{
				{Title: "Recommended Roles", Text: "1. Data Analyst - entry fit"},
				{Title: "Data Analyst Salary Projection", Text: "**Starting Salary**: ₹4,00,000"},
			},
		}
		buf, err := impl{}.ExportReport(report)
		require.Nil(t, err)

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()

		rows, err := f.GetRows("Career Plan")
		require.Nil(t, err)
		require.Equal(t, [][]string{
			{"Section", "Content"},
			{"Recommended Roles", "1. Data Analyst - entry fit"},
			{"Data Analyst Salary Projection", "**Starting Salary**: ₹4,00,000"},
		}, rows)
	})

	t.Run(`empty report has only the header`, func(t *testing.T) {
		buf, err := impl{}.ExportReport(careermodels.Report{})
		require.Nil(t, err)

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()

		rows, err := f.GetRows("Career Plan")
		require.Nil(t, err)
		require.Equal(t, [][]string{{"Section", "Content"}}, rows)
	})
}
