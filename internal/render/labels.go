package render

// LabelID identifies a localized display label. The string value doubles as the
// key in the locale tables shipped by internal/labels.
type LabelID string

// Labels resolves label identifiers to display strings for one locale.
// Implementations must be safe for concurrent reads.
type Labels interface {
	Label(id LabelID) string
}

// LabelMap is a fixed Labels table. Unknown identifiers resolve to the
// identifier itself.
type LabelMap map[LabelID]string

func (m LabelMap) Label(id LabelID) string {
	if s, ok := m[id]; ok {
		return s
	}
	return string(id)
}

// Formats. These resolve to Go time layouts rather than display text.
const (
	LabelDateFormat         LabelID = "format.date"
	LabelDateFormatWithTime LabelID = "format.dateTime"
)

// Email
const (
	LabelEmailFrom              LabelID = "email.from"
	LabelEmailSentOn            LabelID = "email.sentOn"
	LabelEmailTo                LabelID = "email.to"
	LabelEmailCc                LabelID = "email.cc"
	LabelEmailBcc               LabelID = "email.bcc"
	LabelEmailSignedBy          LabelID = "email.signedBy"
	LabelEmailSignedByOn        LabelID = "email.signedByOn"
	LabelEmailSubject           LabelID = "email.subject"
	LabelEmailAttachments       LabelID = "email.attachments"
	LabelEmailFollowUp          LabelID = "email.followUp"
	LabelEmailFollowUpFlag      LabelID = "email.followUpFlag"
	LabelEmailFollowUpStatus    LabelID = "email.followUpStatus"
	LabelEmailFollowUpCompleted LabelID = "email.followUpCompleted"
	LabelEmailCategories        LabelID = "email.categories"
)

// Importance
const (
	LabelImportance       LabelID = "importance"
	LabelImportanceLow    LabelID = "importance.low"
	LabelImportanceNormal LabelID = "importance.normal"
	LabelImportanceHigh   LabelID = "importance.high"
)

// Appointment
const (
	LabelAppointmentSubject               LabelID = "appointment.subject"
	LabelAppointmentLocation              LabelID = "appointment.location"
	LabelAppointmentStart                 LabelID = "appointment.start"
	LabelAppointmentEnd                   LabelID = "appointment.end"
	LabelAppointmentRecurrenceType        LabelID = "appointment.recurrenceType"
	LabelAppointmentRecurrencePattern     LabelID = "appointment.recurrencePattern"
	LabelAppointmentClientIntent          LabelID = "appointment.clientIntent"
	LabelAppointmentOrganizer             LabelID = "appointment.organizer"
	LabelAppointmentMandatoryParticipants LabelID = "appointment.mandatoryParticipants"
	LabelAppointmentOptionalParticipants  LabelID = "appointment.optionalParticipants"
	LabelAppointmentCategories            LabelID = "appointment.categories"
	LabelAppointmentAttachments           LabelID = "appointment.attachments"
)

// Contact
const (
	LabelContactDisplayName    LabelID = "contact.displayName"
	LabelContactSurName        LabelID = "contact.surName"
	LabelContactGivenName      LabelID = "contact.givenName"
	LabelContactJobTitle       LabelID = "contact.jobTitle"
	LabelContactDepartment     LabelID = "contact.department"
	LabelContactCompany        LabelID = "contact.company"
	LabelContactWorkAddress    LabelID = "contact.workAddress"
	LabelContactHomeAddress    LabelID = "contact.homeAddress"
	LabelContactOtherAddress   LabelID = "contact.otherAddress"
	LabelContactIMAddress      LabelID = "contact.imAddress"
	LabelContactBusinessPhone  LabelID = "contact.phone.business"
	LabelContactBusinessPhone2 LabelID = "contact.phone.business2"
	LabelContactAssistantPhone LabelID = "contact.phone.assistant"
	LabelContactCompanyPhone   LabelID = "contact.phone.companyMain"
	LabelContactHomePhone      LabelID = "contact.phone.home"
	LabelContactHomePhone2     LabelID = "contact.phone.home2"
	LabelContactMobilePhone    LabelID = "contact.phone.mobile"
	LabelContactCarPhone       LabelID = "contact.phone.car"
	LabelContactRadioPhone     LabelID = "contact.phone.radio"
	LabelContactBeeperPhone    LabelID = "contact.phone.beeper"
	LabelContactCallbackPhone  LabelID = "contact.phone.callback"
	LabelContactOtherPhone     LabelID = "contact.phone.other"
	LabelContactPrimaryPhone   LabelID = "contact.phone.primary"
	LabelContactTelex          LabelID = "contact.phone.telex"
	LabelContactTextPhone      LabelID = "contact.phone.textTelephone"
	LabelContactISDN           LabelID = "contact.phone.isdn"
	LabelContactBusinessFax    LabelID = "contact.fax.business"
	LabelContactHomeFax        LabelID = "contact.fax.home"
	LabelContactOtherFax       LabelID = "contact.fax.other"
	LabelContactPrimaryFax     LabelID = "contact.fax.primary"
	LabelContactEmail1Address  LabelID = "contact.email1.address"
	LabelContactEmail1Name     LabelID = "contact.email1.displayName"
	LabelContactEmail2Address  LabelID = "contact.email2.address"
	LabelContactEmail2Name     LabelID = "contact.email2.displayName"
	LabelContactEmail3Address  LabelID = "contact.email3.address"
	LabelContactEmail3Name     LabelID = "contact.email3.displayName"
	LabelContactBirthday       LabelID = "contact.birthday"
	LabelContactAnniversary    LabelID = "contact.anniversary"
	LabelContactSpouseName     LabelID = "contact.spouseName"
	LabelContactProfession     LabelID = "contact.profession"
	LabelContactAssistantName  LabelID = "contact.assistantName"
	LabelContactWebPage        LabelID = "contact.webPage"
)

// Task
const (
	LabelTaskSubject            LabelID = "task.subject"
	LabelTaskStartDate          LabelID = "task.startDate"
	LabelTaskDueDate            LabelID = "task.dueDate"
	LabelTaskDateCompleted      LabelID = "task.dateCompleted"
	LabelTaskStatus             LabelID = "task.status"
	LabelTaskPercentageComplete LabelID = "task.percentageComplete"
	LabelTaskEstimatedEffort    LabelID = "task.estimatedEffort"
	LabelTaskActualEffort       LabelID = "task.actualEffort"
	LabelTaskOwner              LabelID = "task.owner"
	LabelTaskContacts           LabelID = "task.contacts"
	LabelTaskCategories         LabelID = "task.categories"
	LabelTaskCompanies          LabelID = "task.companies"
	LabelTaskBillingInformation LabelID = "task.billingInformation"
	LabelTaskMileage            LabelID = "task.mileage"
)

// Importance is the priority level of an item.
type Importance int

const (
	ImportanceNone Importance = iota
	ImportanceLow
	ImportanceNormal
	ImportanceHigh
)

// ImportanceText returns the localized text for level, or "" for ImportanceNone.
func ImportanceText(labels Labels, level Importance) string {
	switch level {
	case ImportanceLow:
		return labels.Label(LabelImportanceLow)
	case ImportanceNormal:
		return labels.Label(LabelImportanceNormal)
	case ImportanceHigh:
		return labels.Label(LabelImportanceHigh)
	}
	return ""
}
