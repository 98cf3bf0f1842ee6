package render

import "time"

var testLabels = LabelMap{
	LabelDateFormat:         "2006-01-02",
	LabelDateFormatWithTime: "2006-01-02 15:04",

	LabelEmailFrom:              "From",
	LabelEmailSentOn:            "Sent on",
	LabelEmailTo:                "To",
	LabelEmailCc:                "Cc",
	LabelEmailBcc:               "Bcc",
	LabelEmailSignedBy:          "Signed by",
	LabelEmailSignedByOn:        "on",
	LabelEmailSubject:           "Subject",
	LabelEmailAttachments:       "Attachments",
	LabelEmailFollowUp:          "Follow up",
	LabelEmailFollowUpFlag:      "Follow up flag",
	LabelEmailFollowUpStatus:    "Follow up status",
	LabelEmailFollowUpCompleted: "Completed",
	LabelEmailCategories:        "Categories",
	LabelImportance:             "Importance",
	LabelImportanceHigh:         "High",

	LabelTaskSubject:            "Subject",
	LabelTaskStartDate:          "Start date",
	LabelTaskDueDate:            "Due date",
	LabelTaskDateCompleted:      "Date completed",
	LabelTaskStatus:             "Status",
	LabelTaskPercentageComplete: "Percentage complete",
	LabelTaskEstimatedEffort:    "Estimated effort",
	LabelTaskActualEffort:       "Actual effort",
	LabelTaskOwner:              "Owner",
	LabelTaskContacts:           "Contacts",
	LabelTaskCategories:         "Categories",
	LabelTaskCompanies:          "Companies",
	LabelTaskBillingInformation: "Billing information",
	LabelTaskMileage:            "Mileage",

	LabelAppointmentSubject:               "Subject",
	LabelAppointmentLocation:              "Location",
	LabelAppointmentStart:                 "Start",
	LabelAppointmentEnd:                   "End",
	LabelAppointmentRecurrenceType:        "Recurrence type",
	LabelAppointmentRecurrencePattern:     "Recurrence pattern",
	LabelAppointmentClientIntent:          "Status",
	LabelAppointmentOrganizer:             "Organizer",
	LabelAppointmentMandatoryParticipants: "Mandatory participants",
	LabelAppointmentOptionalParticipants:  "Optional participants",
	LabelAppointmentCategories:            "Categories",
	LabelAppointmentAttachments:           "Attachments",
}

func ptr[T any](v T) *T { return &v }

func at(s string) *time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func textContext() RenderContext { return NewRenderContext(false, false) }
func htmlContext() RenderContext { return NewRenderContext(true, false) }

func minimalEmail() *Email {
	return &Email{
		From:    Address{Name: "Alice", Email: "alice@example.com"},
		To:      []Address{{Name: "Bob", Email: "bob@example.com"}},
		Subject: "Quarterly numbers",
	}
}

func fullEmail() *Email {
	e := minimalEmail()
	e.SentOn = at("2024-03-01 09:30")
	e.Cc = []Address{{Email: "carol@example.com"}}
	e.Bcc = []Address{{Name: "Dave", Email: "dave@example.com"}}
	e.Importance = "High"
	e.Attachments = []Attachment{{Name: "report.pdf"}, {Name: "data.csv"}}
	e.FollowUp = &FollowUp{Request: "Follow up", Start: at("2024-03-02 08:00"), Due: at("2024-03-05 17:00")}
	e.Categories = []string{"Finance", "Q1"}
	return e
}
