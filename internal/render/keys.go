package render

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// Map keys used by FromMap and ToMap. The names are a stable interchange
// contract with producers of loosely typed metadata.
const (
	KeySubject     = "Subject"
	KeyImportance  = "ImportanceText"
	KeyCategories  = "Categories"
	KeyAttachments = "Attachments"

	KeyEmailSender      = "EmailSender"
	KeyEmailSentOn      = "SentOn"
	KeyEmailTo          = "EmailTo"
	KeyEmailCc          = "EmailCc"
	KeyEmailBcc         = "EmailBcc"
	KeyEmailSigned      = "Signed"
	KeyEmailSignedBy    = "SignedBy"
	KeyEmailSignedOn    = "SignedOn"
	KeyFlagRequest      = "FlagRequest"
	KeyTaskComplete     = "TaskComplete"
	KeyTaskCompleteTime = "TaskCompleteTime"

	KeyLocation              = "Location"
	KeyStart                 = "Start"
	KeyEnd                   = "End"
	KeyRecurrenceType        = "RecurrenceTypeText"
	KeyRecurrencePattern     = "RecurrencePatternText"
	KeyClientIntent          = "ClientIntentText"
	KeyOrganizer             = "Organizer"
	KeyMandatoryParticipants = "MandatoryParticipants"
	KeyOptionalParticipants  = "OptionalParticipants"

	KeyDisplayName   = "DisplayName"
	KeySurName       = "SurName"
	KeyGivenName     = "GivenName"
	KeyFunction      = "Function"
	KeyDepartment    = "Department"
	KeyCompany       = "Company"
	KeyWorkAddress   = "WorkAddress"
	KeyHomeAddress   = "HomeAddress"
	KeyOtherAddress  = "OtherAddress"
	KeyIMAddress     = "InstantMessagingAddress"
	KeyBirthday      = "Birthday"
	KeyAnniversary   = "WeddingAnniversary"
	KeySpouseName    = "SpouseName"
	KeyProfession    = "Profession"
	KeyAssistantName = "AssistantName"
	KeyWebPage       = "Html"

	KeyTaskStartDate      = "StartDate"
	KeyTaskDueDate        = "DueDate"
	KeyTaskStatus         = "StatusText"
	KeyPercentageComplete = "PercentageComplete"
	KeyEstimatedEffort    = "EstimatedEffortText"
	KeyActualEffort       = "ActualEffortText"
	KeyOwner              = "Owner"
	KeyContacts           = "Contacts"
	KeyCompanies          = "Companies"
	KeyBillingInformation = "BillingInformation"
	KeyMileage            = "Mileage"
)

var phoneKeys = [...]string{
	PhoneBusiness:      "BusinessTelephoneNumber",
	PhoneBusiness2:     "BusinessTelephoneNumber2",
	PhoneAssistant:     "AssistantTelephoneNumber",
	PhoneCompanyMain:   "CompanyMainTelephoneNumber",
	PhoneHome:          "HomeTelephoneNumber",
	PhoneHome2:         "HomeTelephoneNumber2",
	PhoneMobile:        "CellularTelephoneNumber",
	PhoneCar:           "CarTelephoneNumber",
	PhoneRadio:         "RadioTelephoneNumber",
	PhoneBeeper:        "BeeperTelephoneNumber",
	PhoneCallback:      "CallbackTelephoneNumber",
	PhoneOther:         "OtherTelephoneNumber",
	PhonePrimary:       "PrimaryTelephoneNumber",
	PhoneTelex:         "TelexNumber",
	PhoneTextTelephone: "TextTelephone",
	PhoneISDN:          "ISDNNumber",
	FaxBusiness:        "BusinessFaxNumber",
	FaxHome:            "HomeFaxNumber",
	FaxOther:           "OtherFaxNumber",
	FaxPrimary:         "PrimaryFaxNumber",
}

var emailSlotKeys = [3][2]string{
	{"Email1EmailAddress", "Email1DisplayName"},
	{"Email2EmailAddress", "Email2DisplayName"},
	{"Email3EmailAddress", "Email3DisplayName"},
}

// ErrInvalidValue is returned by FromMap when a value has an unusable type.
var ErrInvalidValue = errors.New("invalid value")

// FromMap builds a typed item of kind from a string-keyed metadata map.
// Values may be typed (time.Time, Address, []Attachment) or in the generic
// form JSON and YAML decoders produce: RFC 3339 strings for times, maps for
// addresses and attachments, and plain strings for either, which set the
// display name. Nil and empty values are unset. Keyed items take every set
// entry, ordered by key.
func FromMap(kind ItemKind, m map[string]any) (Item, error) {
	var (
		item Item
		err  error
	)

	switch kind {
	case KindEmail, KindSignedEmail:
		e := &Email{}
		err = decodeFields(m, e)
		if _, ok := m[KeyFlagRequest]; ok && err == nil {
			e.FollowUp = &FollowUp{}
			err = decodeFields(m, e.FollowUp)
		}
		e.Signed = e.Signed || kind == KindSignedEmail
		item = e

	case KindAppointment:
		a := &Appointment{}
		err = decodeFields(m, a)
		item = a

	case KindContact:
		c := &Contact{}
		err = decodeFields(m, c)
		if err == nil {
			err = decodeContactSlots(m, c)
		}
		item = c

	case KindTask:
		t := &Task{}
		err = decodeFields(m, t)
		item = t

	case KindKeyed:
		values := map[string]string{}
		err = decodeFields(m, &values)
		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		k := &Keyed{}
		for _, key := range keys {
			k.Add(key, values[key])
		}
		item = k

	default:
		return nil, fmt.Errorf("decoding %s: %w", kind, ErrUnsupportedItemType)
	}

	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w: %w", kind, ErrInvalidValue, err)
	}
	return item, nil
}

// decodeContactSlots fills the per-slot phone numbers and e-mail addresses,
// which are stored under one map key each.
func decodeContactSlots(m map[string]any, c *Contact) error {
	slots := map[string]any{}
	for _, key := range phoneKeys {
		if v, ok := m[key]; ok {
			slots[key] = v
		}
	}
	for _, keys := range emailSlotKeys {
		for _, key := range keys {
			if v, ok := m[key]; ok {
				slots[key] = v
			}
		}
	}
	values := map[string]string{}
	if err := decodeFields(slots, &values); err != nil {
		return err
	}

	c.Phones = map[PhoneKind]string{}
	for i, key := range phoneKeys {
		if v := values[key]; v != "" {
			c.Phones[PhoneKind(i)] = v
		}
	}
	for i, keys := range emailSlotKeys {
		c.Emails[i] = ContactEmail{Address: values[keys[0]], DisplayName: values[keys[1]]}
	}
	return nil
}

func decodeFields(m map[string]any, out any) error {
	input := make(map[string]any, len(m))
	for key, v := range m {
		if v == nil || v == "" {
			continue
		}
		input[key] = v
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			metadataHook,
		),
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

var (
	addressType    = reflect.TypeOf(Address{})
	attachmentType = reflect.TypeOf(Attachment{})
)

// metadataHook covers the conversions mapstructure's weak typing does not:
// bare names for addresses and attachments, and readable text for times and
// booleans in keyed values.
func metadataHook(_, to reflect.Type, data any) (any, error) {
	if s, ok := data.(string); ok {
		switch to {
		case addressType:
			return Address{Name: s}, nil
		case attachmentType:
			return Attachment{Name: s}, nil
		}
		return data, nil
	}
	if to.Kind() != reflect.String {
		return data, nil
	}
	switch v := data.(type) {
	case time.Time:
		return v.Format(time.RFC3339), nil
	case bool:
		return strconv.FormatBool(v), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return data, nil
}

// ToMap flattens item into the map form accepted by FromMap. Empty values are
// left out.
func ToMap(item Item) (map[string]any, error) {
	if !supported(item) {
		return nil, fmt.Errorf("encoding: %w: %T", ErrUnsupportedItemType, item)
	}
	e := encoder{}

	switch it := item.(type) {
	case *Email:
		e.set(KeyEmailSigned, it.Signed)
		e.set(KeyEmailSender, it.From)
		e.set(KeyEmailSentOn, it.SentOn)
		e.set(KeyEmailTo, it.To)
		e.set(KeyEmailCc, it.Cc)
		e.set(KeyEmailBcc, it.Bcc)
		e.set(KeyEmailSignedBy, it.SignedBy)
		e.set(KeyEmailSignedOn, it.SignedOn)
		e.set(KeySubject, it.Subject)
		e.set(KeyImportance, it.Importance)
		e.set(KeyAttachments, it.Attachments)
		e.set(KeyCategories, it.Categories)
		if f := it.FollowUp; f != nil {
			e[KeyFlagRequest] = f.Request
			e.set(KeyTaskComplete, f.Complete)
			e.set(KeyTaskCompleteTime, f.CompletedAt)
			e.set(KeyTaskStartDate, f.Start)
			e.set(KeyTaskDueDate, f.Due)
		}

	case *Appointment:
		e.set(KeySubject, it.Subject)
		e.set(KeyLocation, it.Location)
		e.set(KeyStart, it.Start)
		e.set(KeyEnd, it.End)
		e.set(KeyRecurrenceType, it.RecurrenceType)
		e.set(KeyRecurrencePattern, it.RecurrencePattern)
		e.set(KeyClientIntent, it.ClientIntent)
		e.set(KeyOrganizer, it.Organizer)
		e.set(KeyMandatoryParticipants, it.MandatoryParticipants)
		e.set(KeyOptionalParticipants, it.OptionalParticipants)
		e.set(KeyCategories, it.Categories)
		e.set(KeyImportance, it.Importance)
		e.set(KeyAttachments, it.Attachments)

	case *Contact:
		e.set(KeyDisplayName, it.DisplayName)
		e.set(KeySurName, it.SurName)
		e.set(KeyGivenName, it.GivenName)
		e.set(KeyFunction, it.JobTitle)
		e.set(KeyDepartment, it.Department)
		e.set(KeyCompany, it.Company)
		e.set(KeyWorkAddress, it.WorkAddress)
		e.set(KeyHomeAddress, it.HomeAddress)
		e.set(KeyOtherAddress, it.OtherAddress)
		e.set(KeyIMAddress, it.IMAddress)
		for kind, number := range it.Phones {
			if int(kind) >= 0 && int(kind) < len(phoneKeys) {
				e.set(phoneKeys[kind], number)
			}
		}
		for i, keys := range emailSlotKeys {
			e.set(keys[0], it.Emails[i].Address)
			e.set(keys[1], it.Emails[i].DisplayName)
		}
		e.set(KeyBirthday, it.Birthday)
		e.set(KeyAnniversary, it.Anniversary)
		e.set(KeySpouseName, it.SpouseName)
		e.set(KeyProfession, it.Profession)
		e.set(KeyAssistantName, it.AssistantName)
		e.set(KeyWebPage, it.WebPage)

	case *Task:
		e.set(KeySubject, it.Subject)
		e.set(KeyTaskStartDate, it.Start)
		e.set(KeyTaskDueDate, it.Due)
		e.set(KeyImportance, it.Importance)
		e.set(KeyTaskStatus, it.Status)
		if it.PercentComplete != nil {
			e[KeyPercentageComplete] = *it.PercentComplete
		}
		e.set(KeyEstimatedEffort, it.EstimatedEffort)
		e.set(KeyActualEffort, it.ActualEffort)
		e.set(KeyOwner, it.Owner)
		e.set(KeyContacts, it.Contacts)
		e.set(KeyCategories, it.Categories)
		e.set(KeyCompanies, it.Companies)
		e.set(KeyBillingInformation, it.BillingInformation)
		e.set(KeyMileage, it.Mileage)

	case *Keyed:
		for _, kv := range it.Pairs {
			e.set(kv.Key, kv.Value)
		}
	}
	return e, nil
}

type encoder map[string]any

func (e encoder) set(key string, v any) {
	switch x := v.(type) {
	case string:
		if x == "" {
			return
		}
	case bool:
		if !x {
			return
		}
	case *time.Time:
		if x == nil || x.IsZero() {
			return
		}
		v = *x
	case Address:
		if x == (Address{}) {
			return
		}
	case []Address:
		if len(x) == 0 {
			return
		}
	case []Attachment:
		if len(x) == 0 {
			return
		}
	case []string:
		if len(x) == 0 {
			return
		}
	}
	e[key] = v
}
