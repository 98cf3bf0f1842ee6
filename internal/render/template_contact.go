package render

type contactEntry = entry[*Contact]

var phoneLabels = [...]LabelID{
	PhoneBusiness:      LabelContactBusinessPhone,
	PhoneBusiness2:     LabelContactBusinessPhone2,
	PhoneAssistant:     LabelContactAssistantPhone,
	PhoneCompanyMain:   LabelContactCompanyPhone,
	PhoneHome:          LabelContactHomePhone,
	PhoneHome2:         LabelContactHomePhone2,
	PhoneMobile:        LabelContactMobilePhone,
	PhoneCar:           LabelContactCarPhone,
	PhoneRadio:         LabelContactRadioPhone,
	PhoneBeeper:        LabelContactBeeperPhone,
	PhoneCallback:      LabelContactCallbackPhone,
	PhoneOther:         LabelContactOtherPhone,
	PhonePrimary:       LabelContactPrimaryPhone,
	PhoneTelex:         LabelContactTelex,
	PhoneTextTelephone: LabelContactTextPhone,
	PhoneISDN:          LabelContactISDN,
	FaxBusiness:        LabelContactBusinessFax,
	FaxHome:            LabelContactHomeFax,
	FaxOther:           LabelContactOtherFax,
	FaxPrimary:         LabelContactPrimaryFax,
}

var emailSlotLabels = [3][2]LabelID{
	{LabelContactEmail1Address, LabelContactEmail1Name},
	{LabelContactEmail2Address, LabelContactEmail2Name},
	{LabelContactEmail3Address, LabelContactEmail3Name},
}

func plain(get func(*Contact) string) func(*Contact, scope) string {
	return func(c *Contact, _ scope) string { return get(c) }
}

func phoneEntries() []contactEntry {
	out := make([]contactEntry, 0, len(phoneLabels))
	for i, label := range phoneLabels {
		kind := PhoneKind(i)
		out = append(out, field(label, plain(func(c *Contact) string { return c.Phones[kind] })))
	}
	return out
}

func emailEntries() []contactEntry {
	var out []contactEntry
	for slot, labels := range emailSlotLabels {
		out = append(out,
			field(labels[0], plain(func(c *Contact) string { return c.Emails[slot].Address })),
			field(labels[1], plain(func(c *Contact) string { return c.Emails[slot].DisplayName })),
		)
	}
	return out
}

var contactTemplate = concat(
	[]contactEntry{
		field(LabelContactDisplayName, plain(func(c *Contact) string { return c.DisplayName })),
		field(LabelContactSurName, plain(func(c *Contact) string { return c.SurName })),
		field(LabelContactGivenName, plain(func(c *Contact) string { return c.GivenName })),
		field(LabelContactJobTitle, plain(func(c *Contact) string { return c.JobTitle })),
		field(LabelContactDepartment, plain(func(c *Contact) string { return c.Department })),
		field(LabelContactCompany, plain(func(c *Contact) string { return c.Company })),
		blankLine[*Contact](),
		field(LabelContactWorkAddress, plain(func(c *Contact) string { return c.WorkAddress })),
		field(LabelContactHomeAddress, plain(func(c *Contact) string { return c.HomeAddress })),
		field(LabelContactOtherAddress, plain(func(c *Contact) string { return c.OtherAddress })),
		field(LabelContactIMAddress, plain(func(c *Contact) string { return c.IMAddress })),
		blankLine[*Contact](),
	},
	phoneEntries(),
	[]contactEntry{blankLine[*Contact]()},
	emailEntries(),
	[]contactEntry{
		blankLine[*Contact](),
		field(LabelContactBirthday, func(c *Contact, s scope) string { return s.date(c.Birthday) }),
		field(LabelContactAnniversary, func(c *Contact, s scope) string { return s.date(c.Anniversary) }),
		field(LabelContactSpouseName, plain(func(c *Contact) string { return c.SpouseName })),
		field(LabelContactProfession, plain(func(c *Contact) string { return c.Profession })),
		field(LabelContactAssistantName, plain(func(c *Contact) string { return c.AssistantName })),
		field(LabelContactWebPage, plain(func(c *Contact) string { return c.WebPage })),
		blankLine[*Contact](),
		blankLine[*Contact](),
	},
)
