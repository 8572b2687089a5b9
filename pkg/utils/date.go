package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// TruncateToDay normaliza um timestamp para a meia-noite do mesmo dia
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WithinLastDays verifica se t está na janela semiaberta
// [meia-noite de hoje - (days-1), meia-noite de amanhã). Com days=1 a janela
// cobre exatamente o dia de hoje.
func WithinLastDays(t, now time.Time, days int) bool {
	start := TruncateToDay(now).AddDate(0, 0, -(days - 1))
	end := TruncateToDay(now).AddDate(0, 0, 1)
	return !t.Before(start) && t.Before(end)
}
