// Package temporal implements the canonical string encoding used for event
// date and time fields. A field stores either a single value or a
// start/end pair joined by RangeSeparator; dates are calendar days in
// YYYY-MM-DD form, times are 24-hour HH:MM as stored and 12-hour
// "hh:mm AM/PM" as edited.
package temporal

import (
	"strings"
	"time"
)

// RangeSeparator joins the two components of a stored range. Splitting also
// uses the full three-character separator, so the hyphens inside a
// YYYY-MM-DD date can never be mistaken for a range boundary.
const RangeSeparator = " - "

const (
	DateLayout   = "2006-01-02"
	Time24Layout = "15:04"
	Time12Layout = "03:04 PM"
)

// Range is the decoded form of a stored date or time field. End is empty
// for a single value.
type Range struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// IsRange reports whether the value is a start/end pair.
func (r Range) IsRange() bool {
	return r.End != ""
}

// splitStored splits a stored string on RangeSeparator. ok is false when
// the string holds a single value or does not split cleanly into two
// components; callers then treat the whole string as one value.
func splitStored(stored string) (start, end string, ok bool) {
	if !strings.Contains(stored, RangeSeparator) {
		return "", "", false
	}
	parts := strings.Split(stored, RangeSeparator)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// DecodeDate converts a stored date string into its edit form. Components
// that do not parse as YYYY-MM-DD are passed through unchanged so that bad
// stored data still renders.
func DecodeDate(stored string) Range {
	stored = strings.TrimSpace(stored)
	if start, end, ok := splitStored(stored); ok {
		return Range{Start: canonicalDate(start), End: canonicalDate(end)}
	}
	return Range{Start: canonicalDate(stored)}
}

// EncodeDate converts an edit-form date pair back into the stored string.
// The end date is dropped when it is absent or equal to the start, so a
// one-day event encodes as a single date.
func EncodeDate(r Range) string {
	start := strings.TrimSpace(r.Start)
	end := strings.TrimSpace(r.End)
	if end != "" && end != start {
		return start + RangeSeparator + end
	}
	return start
}

// DecodeTime converts a stored 24-hour time string into the 12-hour edit
// form.
func DecodeTime(stored string) Range {
	stored = strings.TrimSpace(stored)
	if start, end, ok := splitStored(stored); ok {
		return Range{Start: To12Hour(start), End: To12Hour(end)}
	}
	return Range{Start: To12Hour(stored)}
}

// EncodeTime converts a 12-hour edit-form time pair into the stored
// 24-hour string, joining only when the end differs from the start.
func EncodeTime(r Range) string {
	start := To24Hour(strings.TrimSpace(r.Start))
	end := ""
	if r.End != "" {
		end = To24Hour(strings.TrimSpace(r.End))
	}
	if end != "" && end != start {
		return start + RangeSeparator + end
	}
	return start
}

// To12Hour converts an HH:MM value to hh:mm AM/PM for editing. Unparsable
// input is returned unchanged.
func To12Hour(t24 string) string {
	t, err := time.Parse(Time24Layout, t24)
	if err != nil {
		return t24
	}
	return t.Format(Time12Layout)
}

// To24Hour converts an hh:mm AM/PM value back to HH:MM for storage.
// Unparsable input is returned unchanged.
func To24Hour(t12 string) string {
	t, err := time.Parse(Time12Layout, t12)
	if err != nil {
		return t12
	}
	return t.Format(Time24Layout)
}

// canonicalDate reparses a date component so decode output is always in
// strict YYYY-MM-DD form. Anything else is passed through as-is.
func canonicalDate(s string) string {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format(DateLayout)
}

// AdjustOnStartChange applies the form-editing constraint for a changed
// start value: an end that would now precede the start is advanced to
// match. Both canonical date strings and 24-hour time strings order
// lexicographically, so plain string comparison is correct for either.
func AdjustOnStartChange(newStart, end string) (string, string) {
	if end != "" && newStart > end {
		return newStart, newStart
	}
	return newStart, end
}

// AdjustOnEndChange is the symmetric constraint for a changed end value:
// a start that would now follow the end is pulled back to match.
func AdjustOnEndChange(start, newEnd string) (string, string) {
	if start != "" && newEnd != "" && newEnd < start {
		return newEnd, newEnd
	}
	return start, newEnd
}
