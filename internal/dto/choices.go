package dto

import "github.com/ikedoebber/organizer-api/internal/models"

// ChoiceDTO is a selectable enum value paired with its display label.
// List responses carry the choice sets so frontends can build filter
// and form controls without hardcoding the enums.
type ChoiceDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TaskStatusChoices returns the task status options.
func TaskStatusChoices() []ChoiceDTO {
	choices := make([]ChoiceDTO, len(models.TaskStatuses))
	for i, s := range models.TaskStatuses {
		choices[i] = ChoiceDTO{Value: string(s), Label: s.Label()}
	}
	return choices
}

// PriorityChoices returns the task/goal priority options.
func PriorityChoices() []ChoiceDTO {
	choices := make([]ChoiceDTO, len(models.Priorities))
	for i, p := range models.Priorities {
		choices[i] = ChoiceDTO{Value: string(p), Label: p.Label()}
	}
	return choices
}

// GoalStatusChoices returns the goal status options.
func GoalStatusChoices() []ChoiceDTO {
	choices := make([]ChoiceDTO, len(models.GoalStatuses))
	for i, s := range models.GoalStatuses {
		choices[i] = ChoiceDTO{Value: string(s), Label: s.Label()}
	}
	return choices
}

// GoalPeriodChoices returns the goal period options.
func GoalPeriodChoices() []ChoiceDTO {
	choices := make([]ChoiceDTO, len(models.GoalPeriods))
	for i, p := range models.GoalPeriods {
		choices[i] = ChoiceDTO{Value: string(p), Label: p.Label()}
	}
	return choices
}

// AppointmentTypeChoices returns the appointment type options.
func AppointmentTypeChoices() []ChoiceDTO {
	choices := make([]ChoiceDTO, len(models.AppointmentTypes))
	for i, t := range models.AppointmentTypes {
		choices[i] = ChoiceDTO{Value: string(t), Label: t.Label()}
	}
	return choices
}

// AppointmentPriorityChoices returns the appointment priority options.
func AppointmentPriorityChoices() []ChoiceDTO {
	choices := make([]ChoiceDTO, len(models.AppointmentPriorities))
	for i, p := range models.AppointmentPriorities {
		choices[i] = ChoiceDTO{Value: string(p), Label: p.Label()}
	}
	return choices
}

// AppointmentStatusChoices returns the appointment status options.
func AppointmentStatusChoices() []ChoiceDTO {
	choices := make([]ChoiceDTO, len(models.AppointmentStatuses))
	for i, s := range models.AppointmentStatuses {
		choices[i] = ChoiceDTO{Value: string(s), Label: s.Label()}
	}
	return choices
}
