package render

import "strings"

type appointmentEntry = entry[*Appointment]

var appointmentTemplate = []appointmentEntry{
	field(LabelAppointmentSubject, func(a *Appointment, _ scope) string { return a.Subject }),
	field(LabelAppointmentLocation, func(a *Appointment, _ scope) string { return a.Location }),
	blankLine[*Appointment](),
	field(LabelAppointmentStart, func(a *Appointment, s scope) string { return s.dateTime(a.Start) }),
	field(LabelAppointmentEnd, func(a *Appointment, s scope) string { return s.dateTime(a.End) }),
	blankLine[*Appointment](),
	field(LabelAppointmentRecurrenceType, func(a *Appointment, _ scope) string { return a.RecurrenceType }),
	field(LabelAppointmentRecurrencePattern, func(a *Appointment, _ scope) string { return a.RecurrencePattern }).Spacer(),
	field(LabelAppointmentClientIntent, func(a *Appointment, _ scope) string { return a.ClientIntent }),
	field(LabelAppointmentOrganizer, func(a *Appointment, s scope) string { return s.address(a.Organizer) }).Raw().Required(),
	field(LabelAppointmentMandatoryParticipants, func(a *Appointment, s scope) string {
		return s.addresses(a.MandatoryParticipants)
	}).Raw().Required(),
	field(LabelAppointmentOptionalParticipants, func(a *Appointment, s scope) string {
		return s.addresses(a.OptionalParticipants)
	}).Raw(),
	blankLine[*Appointment](),
	field(LabelAppointmentCategories, func(a *Appointment, _ scope) string { return strings.Join(a.Categories, "; ") }).Spacer(),
	field(LabelImportance, func(a *Appointment, _ scope) string { return a.Importance }).Spacer(),
	field(LabelAppointmentAttachments, func(a *Appointment, s scope) string { return s.attachments(a.Attachments) }).Raw().Spacer(),
}
