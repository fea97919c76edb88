// File: pharmabook/services/timeparse/parser.go
package timeparse

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Parser turns free-form datetime text into an instant. Implementations are
// best-effort and fuzzy; false means the text carried no usable datetime.
type Parser interface {
	Parse(text string, base time.Time) (time.Time, bool)
}

// FuzzyParser accepts both formatted strings ("2026-01-12 10:00") and
// natural-language phrases ("next Monday 10am", "tomorrow afternoon").
// Results are localized to the service timezone when the text names no
// zone.
type FuzzyParser struct {
	w   *when.Parser
	loc *time.Location
}

func NewFuzzyParser(loc *time.Location) *FuzzyParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &FuzzyParser{w: w, loc: loc}
}

func (p *FuzzyParser) Parse(text string, base time.Time) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	// Formatted datetime strings first: the NL rules below can latch onto
	// the time portion of "2026-01-14 14:00" and lose the date.
	if t, err := dateparse.ParseIn(text, p.loc); err == nil {
		return t, true
	}

	// Natural-language phrases. Parsing relative to the localized base
	// keeps "tomorrow" anchored to the pharmacy's day, not UTC's.
	if r, err := p.w.Parse(text, base.In(p.loc)); err == nil && r != nil {
		return r.Time, true
	}

	return time.Time{}, false
}
