package render

import "strings"

type taskEntry = entry[*Task]

var taskTemplate = []taskEntry{
	field(LabelTaskSubject, func(t *Task, _ scope) string { return t.Subject }),
	field(LabelTaskStartDate, func(t *Task, s scope) string { return s.dateTime(t.Start) }),
	field(LabelTaskDueDate, func(t *Task, s scope) string { return s.dateTime(t.Due) }),
	field(LabelImportance, func(t *Task, _ scope) string { return t.Importance }).Spacer(),
	blankLine[*Task](),
	field(LabelTaskStatus, func(t *Task, _ scope) string { return t.Status }),
	field(LabelTaskPercentageComplete, func(t *Task, _ scope) string { return percent(t.PercentComplete) }),
	blankLine[*Task](),
	group(
		func(t *Task) bool { return t.EstimatedEffort != "" },
		[]taskEntry{
			field(LabelTaskEstimatedEffort, func(t *Task, _ scope) string { return t.EstimatedEffort }).Always(),
			field(LabelTaskActualEffort, func(t *Task, _ scope) string { return t.ActualEffort }).Always(),
			blankLine[*Task](),
		},
		nil,
	),
	field(LabelTaskOwner, func(t *Task, _ scope) string { return t.Owner }).Spacer(),
	field(LabelTaskContacts, func(t *Task, _ scope) string { return strings.Join(t.Contacts, "; ") }),
	field(LabelTaskCategories, func(t *Task, _ scope) string { return strings.Join(t.Categories, "; ") }),
	field(LabelTaskCompanies, func(t *Task, _ scope) string { return strings.Join(t.Companies, "; ") }),
	field(LabelTaskBillingInformation, func(t *Task, _ scope) string { return t.BillingInformation }),
	field(LabelTaskMileage, func(t *Task, _ scope) string { return t.Mileage }),
	blankLine[*Task](),
}
