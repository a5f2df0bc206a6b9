package output

import "context"

// HolidayProvider supplies the holiday calendar as ISO date -> holiday name.
type HolidayProvider interface {
	Holidays(ctx context.Context) (map[string]string, error)
}
