package render

import (
	"strings"
	"time"
)

// ItemKind is the category of object being rendered.
type ItemKind int

const (
	KindUnknown ItemKind = iota
	KindEmail
	KindSignedEmail
	KindAppointment
	KindContact
	KindTask
	KindKeyed
)

var kindNames = map[ItemKind]string{
	KindUnknown:     "unknown",
	KindEmail:       "email",
	KindSignedEmail: "signed-email",
	KindAppointment: "appointment",
	KindContact:     "contact",
	KindTask:        "task",
	KindKeyed:       "keyed",
}

func (k ItemKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[KindUnknown]
}

// ParseKind maps a kind name back to its ItemKind. Unknown names yield KindUnknown.
func ParseKind(name string) ItemKind {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, s := range kindNames {
		if s == name {
			return k
		}
	}
	return KindUnknown
}

// Item is anything the renderer can build a header block for.
type Item interface {
	Kind() ItemKind
}

// Address is a sender or recipient. Either part may be empty.
type Address struct {
	Name  string
	Email string
}

// Attachment is one entry of an attachment list. Href is only used when
// hyperlinks are enabled; a Size of zero or less is not shown.
type Attachment struct {
	Name string
	Size int64
	Href string
}

// FollowUp is the flag/task state attached to an email.
type FollowUp struct {
	Request     string     `mapstructure:"FlagRequest"`
	Complete    bool       `mapstructure:"TaskComplete"`
	CompletedAt *time.Time `mapstructure:"TaskCompleteTime"`
	Start       *time.Time `mapstructure:"StartDate"`
	Due         *time.Time `mapstructure:"DueDate"`
}

// Email is a plain or signed mail message.
type Email struct {
	Signed      bool         `mapstructure:"Signed"`
	From        Address      `mapstructure:"EmailSender"`
	SentOn      *time.Time   `mapstructure:"SentOn"`
	To          []Address    `mapstructure:"EmailTo"`
	Cc          []Address    `mapstructure:"EmailCc"`
	Bcc         []Address    `mapstructure:"EmailBcc"`
	SignedBy    string       `mapstructure:"SignedBy"`
	SignedOn    *time.Time   `mapstructure:"SignedOn"`
	Subject     string       `mapstructure:"Subject"`
	Importance  string       `mapstructure:"ImportanceText"`
	Attachments []Attachment `mapstructure:"Attachments"`
	FollowUp    *FollowUp    `mapstructure:"-"`
	Categories  []string     `mapstructure:"Categories"`
}

func (e *Email) Kind() ItemKind {
	if e.Signed {
		return KindSignedEmail
	}
	return KindEmail
}

// Appointment is a calendar item or meeting request.
type Appointment struct {
	Subject               string       `mapstructure:"Subject"`
	Location              string       `mapstructure:"Location"`
	Start                 *time.Time   `mapstructure:"Start"`
	End                   *time.Time   `mapstructure:"End"`
	RecurrenceType        string       `mapstructure:"RecurrenceTypeText"`
	RecurrencePattern     string       `mapstructure:"RecurrencePatternText"`
	ClientIntent          string       `mapstructure:"ClientIntentText"`
	Organizer             Address      `mapstructure:"Organizer"`
	MandatoryParticipants []Address    `mapstructure:"MandatoryParticipants"`
	OptionalParticipants  []Address    `mapstructure:"OptionalParticipants"`
	Categories            []string     `mapstructure:"Categories"`
	Importance            string       `mapstructure:"ImportanceText"`
	Attachments           []Attachment `mapstructure:"Attachments"`
}

func (*Appointment) Kind() ItemKind { return KindAppointment }

// PhoneKind enumerates the contact number kinds in display order.
type PhoneKind int

const (
	PhoneBusiness PhoneKind = iota
	PhoneBusiness2
	PhoneAssistant
	PhoneCompanyMain
	PhoneHome
	PhoneHome2
	PhoneMobile
	PhoneCar
	PhoneRadio
	PhoneBeeper
	PhoneCallback
	PhoneOther
	PhonePrimary
	PhoneTelex
	PhoneTextTelephone
	PhoneISDN
	FaxBusiness
	FaxHome
	FaxOther
	FaxPrimary
)

// ContactEmail is one of the three e-mail slots of a contact.
type ContactEmail struct {
	Address     string
	DisplayName string
}

// Contact is an address book entry.
//
// Phones and Emails have one map key per slot and are decoded separately.
type Contact struct {
	DisplayName   string               `mapstructure:"DisplayName"`
	SurName       string               `mapstructure:"SurName"`
	GivenName     string               `mapstructure:"GivenName"`
	JobTitle      string               `mapstructure:"Function"`
	Department    string               `mapstructure:"Department"`
	Company       string               `mapstructure:"Company"`
	WorkAddress   string               `mapstructure:"WorkAddress"`
	HomeAddress   string               `mapstructure:"HomeAddress"`
	OtherAddress  string               `mapstructure:"OtherAddress"`
	IMAddress     string               `mapstructure:"InstantMessagingAddress"`
	Phones        map[PhoneKind]string `mapstructure:"-"`
	Emails        [3]ContactEmail      `mapstructure:"-"`
	Birthday      *time.Time           `mapstructure:"Birthday"`
	Anniversary   *time.Time           `mapstructure:"WeddingAnniversary"`
	SpouseName    string               `mapstructure:"SpouseName"`
	Profession    string               `mapstructure:"Profession"`
	AssistantName string               `mapstructure:"AssistantName"`
	WebPage       string               `mapstructure:"Html"`
}

func (*Contact) Kind() ItemKind { return KindContact }

// Task is a to-do item. PercentComplete is a fraction in [0, 1].
type Task struct {
	Subject            string     `mapstructure:"Subject"`
	Start              *time.Time `mapstructure:"StartDate"`
	Due                *time.Time `mapstructure:"DueDate"`
	Importance         string     `mapstructure:"ImportanceText"`
	Status             string     `mapstructure:"StatusText"`
	PercentComplete    *float64   `mapstructure:"PercentageComplete"`
	EstimatedEffort    string     `mapstructure:"EstimatedEffortText"`
	ActualEffort       string     `mapstructure:"ActualEffortText"`
	Owner              string     `mapstructure:"Owner"`
	Contacts           []string   `mapstructure:"Contacts"`
	Categories         []string   `mapstructure:"Categories"`
	Companies          []string   `mapstructure:"Companies"`
	BillingInformation string     `mapstructure:"BillingInformation"`
	Mileage            string     `mapstructure:"Mileage"`
}

func (*Task) Kind() ItemKind { return KindTask }

// KeyValue is one entry of a Keyed item.
type KeyValue struct {
	Key   string
	Value string
}

// Keyed is a loosely typed label/value dump rendered in insertion order.
type Keyed struct {
	Pairs []KeyValue
}

func (*Keyed) Kind() ItemKind { return KindKeyed }

// Add appends a pair and returns k for chaining.
func (k *Keyed) Add(key, value string) *Keyed {
	k.Pairs = append(k.Pairs, KeyValue{Key: key, Value: value})
	return k
}
