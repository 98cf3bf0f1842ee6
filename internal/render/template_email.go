package render

import "strings"

type emailEntry = entry[*Email]

var emailHead = []emailEntry{
	field(LabelEmailFrom, func(e *Email, s scope) string { return s.address(e.From) }).Raw().Required(),
	field(LabelEmailSentOn, func(e *Email, s scope) string { return s.dateTime(e.SentOn) }),
	field(LabelEmailTo, func(e *Email, s scope) string { return s.addresses(e.To) }).Raw().Required(),
	field(LabelEmailCc, func(e *Email, s scope) string { return s.addresses(e.Cc) }).Raw(),
	field(LabelEmailBcc, func(e *Email, s scope) string { return s.addresses(e.Bcc) }).Raw(),
}

var emailTail = []emailEntry{
	field(LabelEmailSubject, func(e *Email, _ scope) string { return e.Subject }).Required(),
	field(LabelImportance, func(e *Email, _ scope) string { return e.Importance }).Spacer(),
	field(LabelEmailAttachments, func(e *Email, s scope) string { return s.attachments(e.Attachments) }).Raw(),
	blankLine[*Email](),
	group(
		func(e *Email) bool { return e.FollowUp != nil },
		[]emailEntry{
			measure[*Email](LabelEmailFollowUpFlag),
			measure[*Email](LabelEmailFollowUpCompleted),
			field(LabelEmailFollowUp, func(e *Email, _ scope) string { return e.FollowUp.Request }),
			group(
				func(e *Email) bool { return e.FollowUp.Complete },
				[]emailEntry{
					field(LabelEmailFollowUpStatus, func(_ *Email, s scope) string {
						return s.label(LabelEmailFollowUpCompleted)
					}),
					field(LabelTaskDateCompleted, func(e *Email, s scope) string { return s.dateTime(e.FollowUp.CompletedAt) }),
				},
				[]emailEntry{
					field(LabelTaskStartDate, func(e *Email, s scope) string { return s.dateTime(e.FollowUp.Start) }),
					field(LabelTaskDueDate, func(e *Email, s scope) string { return s.dateTime(e.FollowUp.Due) }),
				},
			),
			blankLine[*Email](),
		},
		nil,
	),
	field(LabelEmailCategories, func(e *Email, _ scope) string { return strings.Join(e.Categories, "; ") }).Spacer(),
}

var signedBy = field(LabelEmailSignedBy, func(e *Email, s scope) string {
	signer := e.SignedBy
	if on := s.dateTime(e.SignedOn); on != "" && signer != "" {
		signer += " " + s.label(LabelEmailSignedByOn) + " " + on
	}
	return signer
}).Always()

var (
	emailTemplate       = concat(emailHead, emailTail)
	signedEmailTemplate = concat(emailHead, []emailEntry{signedBy}, emailTail)
)

func concat[T any](parts ...[]entry[T]) []entry[T] {
	var out []entry[T]
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
