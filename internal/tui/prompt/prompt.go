// Package prompt collects a validated birth record from the user.
//
// The core only ever receives records that passed validation here; it does
// not revalidate.
package prompt

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"

	errUtils "github.com/agetick/agetick/errors"
	"github.com/agetick/agetick/pkg/dob"
)

const (
	datePrompt = "Date of birth"
	dateMask   = "dd/mm/yyyy"
	timePrompt = "Time of birth"
	timeMask   = "hh:mm:ss"
)

// Run shows the birth date/time form. A stored record, when present, pre-fills
// the inputs so pressing enter accepts the previous values. A blank time
// defaults to noon. ESC aborts with ErrAborted.
func Run(stored *dob.Record) (dob.Record, error) {
	var dateText, timeText string
	if stored != nil {
		dateText = stored.DateString()
		timeText = stored.TimeString()
	}

	// Add ESC to the quit keys so aborting matches the ticker.
	keyMap := huh.NewDefaultKeyMap()
	keyMap.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("ctrl+c/esc", "quit"),
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(datePrompt).
				Description(dateMask).
				Placeholder(dateMask).
				Validate(validateDate).
				Value(&dateText),
			huh.NewInput().
				Title(timePrompt).
				Description(timeMask+" (blank for noon)").
				Placeholder(timeMask).
				Validate(validateTime).
				Value(&timeText),
		),
	).WithKeyMap(keyMap)

	if err := form.Run(); err != nil {
		if errUtils.Is(err, huh.ErrUserAborted) {
			return dob.Record{}, errUtils.ErrAborted
		}
		return dob.Record{}, errUtils.Wrap(err, "birth prompt")
	}

	return FromStrings(dateText, timeText)
}

// FromStrings builds a validated record from a dd/mm/yyyy date and an
// optional hh:mm:ss time. An empty time defaults to 12:00:00.000.
func FromStrings(dateText, timeText string) (dob.Record, error) {
	day, month, year, err := dob.ParseDate(dateText)
	if err != nil {
		return dob.Record{}, err
	}

	r := dob.Record{
		Day:    day,
		Month:  month,
		Year:   year,
		Hour:   dob.DefaultHour,
		Minute: dob.DefaultMinute,
		Second: dob.DefaultSecond,
	}
	if timeText != "" {
		r.Hour, r.Minute, r.Second, err = dob.ParseTime(timeText)
		if err != nil {
			return dob.Record{}, err
		}
	}

	if err := r.Validate(); err != nil {
		return dob.Record{}, err
	}
	return r, nil
}

func validateDate(s string) error {
	if _, err := FromStrings(s, ""); err != nil {
		return errUtils.Wrap(err, "use dd/mm/yyyy")
	}
	return nil
}

func validateTime(s string) error {
	if s == "" {
		return nil // blank defaults to noon
	}
	if _, _, _, err := dob.ParseTime(s); err != nil {
		return errUtils.Wrap(err, "use hh:mm:ss")
	}
	return nil
}
