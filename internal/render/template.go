package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Line is one entry of a Template: a field, or a blank separator when Blank is set.
type Line struct {
	Field HeaderField
	Blank bool
}

// Template is the ordered header layout for one item.
type Template struct {
	Kind  ItemKind
	Lines []Line
	// Width is the text-mode label column width; zero in HTML mode.
	Width int
	// Missing lists required fields whose value was empty.
	Missing []LabelID
}

// Render formats the template into a complete header block.
func (t Template) Render(rc RenderContext) string {
	var b strings.Builder
	b.WriteString(blockStart(rc))
	for _, l := range t.Lines {
		if l.Blank {
			b.WriteString(EmptyLine(rc))
			continue
		}
		b.WriteString(FormatField(l.Field, rc, t.Width))
	}
	b.WriteString(blockEnd(rc))
	return b.String()
}

// Labels returns the labels of the fields in t, in order.
func (t Template) Labels() []string {
	var out []string
	for _, l := range t.Lines {
		if !l.Blank {
			out = append(out, l.Field.Label)
		}
	}
	return out
}

// entry is one declarative template step. Exactly one of label, blank or when
// is set.
type entry[T any] struct {
	label LabelID
	value func(T, scope) string
	// raw values are already encoded for the active content type.
	raw bool
	// required implies always; strict renders fail when the value is empty.
	required bool
	always   bool
	// spacer adds a blank line after the field, only when the field was emitted.
	spacer bool

	blank bool
	// measured labels only count toward the text-mode width.
	measured bool

	when func(T) bool
	then []entry[T]
	els  []entry[T]
}

func field[T any](label LabelID, value func(T, scope) string) entry[T] {
	return entry[T]{label: label, value: value}
}

func blankLine[T any]() entry[T] {
	return entry[T]{blank: true}
}

func measure[T any](label LabelID) entry[T] {
	return entry[T]{label: label, measured: true}
}

func group[T any](when func(T) bool, then []entry[T], els []entry[T]) entry[T] {
	return entry[T]{when: when, then: then, els: els}
}

func (e entry[T]) Raw() entry[T]      { e.raw = true; return e }
func (e entry[T]) Always() entry[T]   { e.always = true; return e }
func (e entry[T]) Required() entry[T] { e.required = true; e.always = true; return e }
func (e entry[T]) Spacer() entry[T]   { e.spacer = true; return e }

// scope carries what value functions need besides the item itself.
type scope struct {
	rc     RenderContext
	labels Labels
}

func (s scope) label(id LabelID) string {
	return s.labels.Label(id)
}

func (s scope) dateTime(t *time.Time) string {
	return s.format(t, LabelDateFormatWithTime, "2006-01-02 15:04:05")
}

func (s scope) date(t *time.Time) string {
	return s.format(t, LabelDateFormat, "2006-01-02")
}

func (s scope) format(t *time.Time, layoutID LabelID, fallback string) string {
	if t == nil || t.IsZero() {
		return ""
	}
	layout := s.labels.Label(layoutID)
	if layout == "" || layout == string(layoutID) {
		layout = fallback
	}
	return t.Format(layout)
}

func (s scope) addresses(addrs []Address) string {
	return FormatAddresses(addrs, s.rc)
}

func (s scope) address(a Address) string {
	if a.Name == "" && a.Email == "" {
		return ""
	}
	return FormatAddress(a, s.rc)
}

func (s scope) attachments(atts []Attachment) string {
	return strings.Join(FormatAttachments(atts, s.rc), ", ")
}

func percent(fraction *float64) string {
	if fraction == nil {
		return ""
	}
	return strconv.FormatFloat(*fraction*100, 'f', -1, 64) + "%"
}

func evaluate[T any](entries []entry[T], item T, sc scope, out *Template) {
	for _, e := range entries {
		switch {
		case e.blank:
			out.Lines = append(out.Lines, Line{Blank: true})
		case e.measured:
		case e.when != nil:
			if e.when(item) {
				evaluate(e.then, item, sc, out)
			} else {
				evaluate(e.els, item, sc, out)
			}
		default:
			value := e.value(item, sc)
			if value == "" {
				if e.required {
					out.Missing = append(out.Missing, e.label)
				}
				if !e.always {
					continue
				}
			}
			out.Lines = append(out.Lines, Line{Field: HeaderField{
				Label:  sc.label(e.label),
				Value:  value,
				Encode: !e.raw,
				Always: e.always,
			}})
			if e.spacer {
				out.Lines = append(out.Lines, Line{Blank: true})
			}
		}
	}
}

// labelSet collects every label of entries on every branch.
func labelSet[T any](entries []entry[T], labels Labels) []string {
	var out []string
	for _, e := range entries {
		switch {
		case e.blank:
		case e.when != nil:
			out = append(out, labelSet(e.then, labels)...)
			out = append(out, labelSet(e.els, labels)...)
		default:
			out = append(out, labels.Label(e.label))
		}
	}
	return out
}

func build[T any](kind ItemKind, entries []entry[T], item T, rc RenderContext, labels Labels) Template {
	t := Template{Kind: kind}
	if !rc.HTML {
		t.Width = FieldWidth(labelSet(entries, labels))
	}
	evaluate(entries, item, scope{rc: rc, labels: labels}, &t)
	return t
}

// BuildTemplate produces the ordered header layout for item.
func BuildTemplate(item Item, rc RenderContext, labels Labels) (Template, error) {
	switch it := item.(type) {
	case *Email:
		if it == nil {
			break
		}
		if it.Signed {
			return build(KindSignedEmail, signedEmailTemplate, it, rc, labels), nil
		}
		return build(KindEmail, emailTemplate, it, rc, labels), nil
	case *Appointment:
		if it == nil {
			break
		}
		return build(KindAppointment, appointmentTemplate, it, rc, labels), nil
	case *Contact:
		if it == nil {
			break
		}
		return build(KindContact, contactTemplate, it, rc, labels), nil
	case *Task:
		if it == nil {
			break
		}
		return build(KindTask, taskTemplate, it, rc, labels), nil
	case *Keyed:
		if it == nil {
			break
		}
		return keyedTemplate(it), nil
	}
	return Template{}, fmt.Errorf("building header: %w: %T", ErrUnsupportedItemType, item)
}

// FullLabelSet returns the labels that determine the text-mode width for kind.
func FullLabelSet(kind ItemKind, labels Labels) ([]string, error) {
	switch kind {
	case KindEmail:
		return labelSet(emailTemplate, labels), nil
	case KindSignedEmail:
		return labelSet(signedEmailTemplate, labels), nil
	case KindAppointment:
		return labelSet(appointmentTemplate, labels), nil
	case KindContact:
		return labelSet(contactTemplate, labels), nil
	case KindTask:
		return labelSet(taskTemplate, labels), nil
	}
	return nil, fmt.Errorf("label set: %w: %s", ErrUnsupportedItemType, kind)
}

func keyedTemplate(k *Keyed) Template {
	t := Template{Kind: KindKeyed}
	for _, kv := range k.Pairs {
		if kv.Value == "" {
			continue
		}
		t.Lines = append(t.Lines, Line{Field: HeaderField{Label: kv.Key, Value: kv.Value}})
	}
	t.Lines = append(t.Lines, Line{Blank: true}, Line{Blank: true})
	return t
}
