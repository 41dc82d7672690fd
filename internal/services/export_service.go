package services

import (
	"strconv"
	"time"

	"github.com/moodmates/moodmates/internal/models"
)

const exportDateLayout = "2006-01-02"

// ExportCSVHeaders is the fixed column order of a CSV export.
var ExportCSVHeaders = []string{
	"Date",
	"Mood",
	"Color",
	"Streak",
	"Note",
}

type ExportEntryReader interface {
	ListByUserInRange(userID uint, from *time.Time, to *time.Time) ([]models.MoodEntry, error)
}

// ExportService renders a user's own mood history for download. Exports are
// always scoped to the requesting user; friend entries never appear.
type ExportService struct {
	moods ExportEntryReader
}

func NewExportService(moods ExportEntryReader) *ExportService {
	return &ExportService{moods: moods}
}

type ExportJSONEntry struct {
	Date   string `json:"date"`
	Mood   string `json:"mood"`
	Color  string `json:"color"`
	Streak int    `json:"streak"`
	Note   string `json:"note"`
}

// BuildJSONEntries returns the export rows for the given range, oldest
// first.
func (service *ExportService) BuildJSONEntries(userID uint, from *time.Time, to *time.Time) ([]ExportJSONEntry, error) {
	entries, err := service.moods.ListByUserInRange(userID, from, to)
	if err != nil {
		return nil, err
	}

	rows := make([]ExportJSONEntry, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, ExportJSONEntry{
			Date:   entry.Day.UTC().Format(exportDateLayout),
			Mood:   entry.Mood,
			Color:  entry.Color,
			Streak: entry.Streak,
			Note:   entry.Note,
		})
	}
	return rows, nil
}

// BuildCSVRecords returns the export as CSV records without the header row.
func (service *ExportService) BuildCSVRecords(userID uint, from *time.Time, to *time.Time) ([][]string, error) {
	entries, err := service.moods.ListByUserInRange(userID, from, to)
	if err != nil {
		return nil, err
	}

	records := make([][]string, 0, len(entries))
	for _, entry := range entries {
		records = append(records, []string{
			entry.Day.UTC().Format(exportDateLayout),
			entry.Mood,
			entry.Color,
			strconv.Itoa(entry.Streak),
			entry.Note,
		})
	}
	return records, nil
}
