package models

import "time"

type DaySchedule struct {
	Start  string `json:"start"` // 15:04
	End    string `json:"end"`
	Closed bool   `json:"closed"`
}

type WorkingHours struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// ForWeekday devolve o horário configurado para o dia da semana
func (w WorkingHours) ForWeekday(day time.Weekday) DaySchedule {
	switch day {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	default:
		return w.Sunday
	}
}

// Registro único, sobrescrito por inteiro ao salvar
type BusinessSettings struct {
	BusinessName string `json:"business_name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`

	WorkingHours WorkingHours `json:"working_hours"`
}

func DefaultSettings() BusinessSettings {
	weekday := DaySchedule{Start: "09:00", End: "18:00"}

	return BusinessSettings{
		BusinessName: "Benjamin Castro Barbershop",
		WorkingHours: WorkingHours{
			Monday:    weekday,
			Tuesday:   weekday,
			Wednesday: weekday,
			Thursday:  weekday,
			Friday:    weekday,
			Saturday:  DaySchedule{Start: "09:00", End: "16:00"},
			Sunday:    DaySchedule{Start: "10:00", End: "15:00", Closed: true},
		},
	}
}
