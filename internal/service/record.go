package service

import (
	"strconv"
	"strings"

	"github.com/FumiZwerg/ClimateLens-Backend/internal/model"
)

// GHCN-Daily .dly line layout.
const (
	minRecordLength = 269
	dayBlockOffset  = 21
	dayBlockSize    = 8
	dayValueSize    = 5
	missingValue    = "-9999"
)

// parseDailyRecord parses one archive line. Lines that are too short, carry an
// element other than TMIN/TMAX or have a broken date are skipped with ok == false.
func parseDailyRecord(line string) (rec *model.DailyRecord, ok bool) {
	if len(line) < minRecordLength {
		return nil, false
	}

	element := model.Element(line[17:21])
	if element != model.ElementTMIN && element != model.ElementTMAX {
		return nil, false
	}

	year, err := strconv.Atoi(strings.TrimSpace(line[11:15]))
	if err != nil {
		return nil, false
	}

	month, err := strconv.Atoi(strings.TrimSpace(line[15:17]))
	if err != nil || month < 1 || month > 12 {
		return nil, false
	}

	rec = &model.DailyRecord{
		StationID: strings.TrimSpace(line[0:11]),
		Year:      year,
		Month:     month,
		Element:   element,
	}

	for day := 0; day < model.DaysPerRecord; day++ {
		offset := dayBlockOffset + day*dayBlockSize
		rec.Values[day] = parseDayValue(line[offset : offset+dayValueSize])
	}

	return rec, true
}

// parseDayValue returns nil for the missing sentinel, blanks and non-integer text.
func parseDayValue(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" || s == missingValue {
		return nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}

	return &v
}
