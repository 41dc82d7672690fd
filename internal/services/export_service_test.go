package services

import (
	"errors"
	"testing"
	"time"

	"github.com/moodmates/moodmates/internal/models"
)

type exportEntryReaderStub struct {
	entries []models.MoodEntry
}

func (stub *exportEntryReaderStub) ListByUserInRange(userID uint, from *time.Time, to *time.Time) ([]models.MoodEntry, error) {
	selected := make([]models.MoodEntry, 0)
	for _, entry := range stub.entries {
		if entry.UserID != userID {
			continue
		}
		if from != nil && entry.Day.Before(*from) {
			continue
		}
		if to != nil && entry.Day.After(*to) {
			continue
		}
		selected = append(selected, entry)
	}
	return selected, nil
}

func exportDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestParseExportRange(t *testing.T) {
	t.Parallel()

	from, to, err := ParseExportRange("2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}
	if from == nil || !from.Equal(exportDay(2024, time.March, 1)) {
		t.Fatalf("from = %v, want 2024-03-01", from)
	}
	if to == nil || !to.Equal(exportDay(2024, time.March, 31)) {
		t.Fatalf("to = %v, want 2024-03-31", to)
	}

	from, to, err = ParseExportRange("", "")
	if err != nil || from != nil || to != nil {
		t.Fatalf("open range = (%v, %v, %v), want both nil", from, to, err)
	}

	if _, _, err := ParseExportRange("not-a-date", ""); !errors.Is(err, ErrExportFromDateInvalid) {
		t.Fatalf("bad from err = %v, want ErrExportFromDateInvalid", err)
	}
	if _, _, err := ParseExportRange("", "2024-13-40"); !errors.Is(err, ErrExportToDateInvalid) {
		t.Fatalf("bad to err = %v, want ErrExportToDateInvalid", err)
	}
	if _, _, err := ParseExportRange("2024-03-31", "2024-03-01"); !errors.Is(err, ErrExportRangeInvalid) {
		t.Fatalf("inverted range err = %v, want ErrExportRangeInvalid", err)
	}
}

func TestExportBuildersScopeAndOrder(t *testing.T) {
	t.Parallel()

	reader := &exportEntryReaderStub{entries: []models.MoodEntry{
		{UserID: 1, Mood: "😊", Color: "#4ECDC4", Streak: 1, Note: "one", Day: exportDay(2024, time.March, 1)},
		{UserID: 1, Mood: "😢", Color: "#A8A8A8", Streak: 2, Note: "two", Day: exportDay(2024, time.March, 2)},
		{UserID: 2, Mood: "🤩", Color: "#FF6B6B", Streak: 5, Note: "other user", Day: exportDay(2024, time.March, 2)},
	}}
	service := NewExportService(reader)

	rows, err := service.BuildJSONEntries(1, nil, nil)
	if err != nil {
		t.Fatalf("BuildJSONEntries: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("json rows = %d, want only user 1's entries", len(rows))
	}
	if rows[0].Date != "2024-03-01" || rows[1].Date != "2024-03-02" {
		t.Fatalf("json rows out of order: %+v", rows)
	}
	if rows[1].Streak != 2 || rows[1].Mood != "😢" {
		t.Fatalf("json row content = %+v", rows[1])
	}

	records, err := service.BuildCSVRecords(1, nil, nil)
	if err != nil {
		t.Fatalf("BuildCSVRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("csv records = %d, want 2", len(records))
	}
	if len(records[0]) != len(ExportCSVHeaders) {
		t.Fatalf("csv record width = %d, want %d columns", len(records[0]), len(ExportCSVHeaders))
	}
	if records[0][0] != "2024-03-01" || records[0][3] != "1" {
		t.Fatalf("csv record content = %v", records[0])
	}
}

func TestExportBuildersHonorRange(t *testing.T) {
	t.Parallel()

	reader := &exportEntryReaderStub{entries: []models.MoodEntry{
		{UserID: 1, Mood: "😊", Color: "#4ECDC4", Streak: 1, Day: exportDay(2024, time.March, 1)},
		{UserID: 1, Mood: "😌", Color: "#95E1D3", Streak: 2, Day: exportDay(2024, time.March, 15)},
		{UserID: 1, Mood: "😐", Color: "#FFA07A", Streak: 1, Day: exportDay(2024, time.April, 2)},
	}}
	service := NewExportService(reader)

	from := exportDay(2024, time.March, 10)
	to := exportDay(2024, time.March, 31)
	rows, err := service.BuildJSONEntries(1, &from, &to)
	if err != nil {
		t.Fatalf("BuildJSONEntries: %v", err)
	}
	if len(rows) != 1 || rows[0].Date != "2024-03-15" {
		t.Fatalf("ranged rows = %+v, want only the mid-March entry", rows)
	}
}
