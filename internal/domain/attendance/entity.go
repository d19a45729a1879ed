package attendance

import (
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/clock"
)

// ColumnBlock describes where one employee's daily record lives inside an
// attendance sheet. Values are spreadsheet column letters.
type ColumnBlock struct {
	Index       int    `yaml:"-" json:"index"`
	Name        string `yaml:"name" json:"name_col"`
	Day         string `yaml:"day" json:"day_col"`
	Entry       string `yaml:"entry" json:"entry_col"`
	LunchOut    string `yaml:"lunch_out" json:"lunch_out_col"`
	LunchReturn string `yaml:"lunch_return" json:"lunch_return_col"`
	Exit        string `yaml:"exit" json:"exit_col"`
	Absence     string `yaml:"absence" json:"absence_col"`
}

// Layout holds the positional conventions of the time-clock workbook. Rows
// are 1-based as they appear in the spreadsheet.
type Layout struct {
	AttendanceStartSheet string
	SummarySheet         string
	NameRow              int
	FirstDayRow          int
	LastDayRow           int
	Blocks               []ColumnBlock
	SummaryFirstRow      int
	SummaryLastRow       int
	SummaryNameCol       string
	SummaryDepartmentCol string
	WeekendTokens        []string
	AbsenceToken         string
}

func DefaultLayout() Layout {
	return Layout{
		AttendanceStartSheet: "Exceptional",
		SummarySheet:         "Summary",
		NameRow:              3,
		FirstDayRow:          12,
		LastDayRow:           42,
		Blocks: []ColumnBlock{
			{Index: 0, Name: "J", Day: "A", Entry: "B", LunchOut: "D", LunchReturn: "G", Exit: "I", Absence: "K"},
			{Index: 1, Name: "Y", Day: "P", Entry: "Q", LunchOut: "S", LunchReturn: "V", Exit: "X", Absence: "Z"},
			{Index: 2, Name: "AN", Day: "AE", Entry: "AF", LunchOut: "AH", LunchReturn: "AK", Exit: "AM", Absence: "AO"},
		},
		SummaryFirstRow:      4,
		SummaryLastRow:       203,
		SummaryNameCol:       "B",
		SummaryDepartmentCol: "C",
		WeekendTokens:        []string{"sa", "sat", "su", "sun", "sá", "sab", "sáb", "do", "dom"},
		AbsenceToken:         "absence",
	}
}

// DailyRecord is one day row inside one block. It only lives for the
// duration of a sheet scan.
type DailyRecord struct {
	Sheet     string `json:"sheet"`
	Block     int    `json:"block"`
	Row       int    `json:"row"`
	DayLabel  string `json:"day_label"`
	DayNumber int    `json:"day_number"`
	Weekday   string `json:"weekday,omitempty"`
	IsWeekend bool   `json:"is_weekend"`
	// IsAbsence comes from the day label itself and suppresses the whole day.
	IsAbsence bool `json:"is_absence"`
	// AbsenceMarked comes from the block's absence-marker column and only
	// clears missing-punch flags. The two signals can disagree.
	AbsenceMarked bool         `json:"absence_marked"`
	Entry         *clock.Clock `json:"entry_time,omitempty"`
	LunchOut      *clock.Clock `json:"lunch_out_time,omitempty"`
	LunchReturn   *clock.Clock `json:"lunch_return_time,omitempty"`
	Exit          *clock.Clock `json:"exit_time,omitempty"`
}

type EventKind string

const (
	EventLateArrival        EventKind = "late_arrival"
	EventLateAfterThreshold EventKind = "late_after_threshold"
	EventEarlyDeparture     EventKind = "early_departure"
	EventLunchOvertime      EventKind = "lunch_overtime"
	EventMissingEntry       EventKind = "missing_entry"
	EventMissingExit        EventKind = "missing_exit"
	EventMissingLunch       EventKind = "missing_lunch"
	EventMidDayDeparture    EventKind = "mid_day_departure"
	EventOvertime           EventKind = "overtime"
	EventAbsence            EventKind = "absence"
	// EventWorked carries exit minus entry for a qualifying day.
	EventWorked EventKind = "worked"
)

// Event is immutable once produced by the classifier.
type Event struct {
	Kind     EventKind `json:"kind"`
	Sheet    string    `json:"sheet"`
	Day      int       `json:"day"`
	DayLabel string    `json:"day_label"`
	Minutes  int       `json:"minutes,omitempty"`
}
