// Package zone holds the record-set model for ZoneKeeper and the logic that
// turns a record set into a BIND-style zone file.
//
// A record set arrives from the editor UI as schemaless JSON: a map of
// record-type tags ("A", "MX", "Other TXT Records", ...) to lists of record
// objects. The shape is preserved as-is so that stored snapshots round-trip
// unknown tags and unknown keys untouched. Normalization produces a
// fully-defaulted view of each record which both validation and rendering
// consume, so the two stages can never disagree on defaults.
package zone

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is a single resource record exactly as it was submitted.
// Known keys are "name", "value", "ttl", "priority" and (inside
// "Other Records") "type"; everything else is carried along untouched.
type Record map[string]any

// RecordSet maps a record-type tag to its records. Tags the renderer does not
// recognize survive the snapshot round-trip but produce no zone-file output.
type RecordSet map[string][]Record

// Recognized record-type tags.
const (
	TypeA        = "A"
	TypeAAAA     = "AAAA"
	TypeCNAME    = "CNAME"
	TypeMX       = "MX"
	TypeTXT      = "TXT"
	TypeSPF      = "SPF"
	TypeOtherTXT = "Other TXT Records"
	TypeOther    = "Other Records"
)

// Apex is the zone-file shorthand for the zone root.
const Apex = "@"

// Normalized is the fully-defaulted form of a Record for one type tag.
// It is a value type; callers get their own copy and nothing is mutated.
type Normalized struct {
	// Name is the owner name, defaulted to the apex for every type except
	// CNAME, where an absent name stays empty. The empty CNAME name is a
	// long-standing quirk of the zone files we emit and is kept on purpose.
	Name string

	// Value is the record data as submitted. No defaulting is applied.
	Value string

	// HasValue reports whether the "value" key was present at all. The
	// TXT family only requires the key, so presence and content are
	// tracked separately.
	HasValue bool

	// TTL is the parsed TTL in decimal, or empty when the record carries
	// no TTL. Parsing strips every non-digit rune first, so "300s" and
	// "3 0 0" both normalize cleanly.
	TTL string

	// TTLOK is false when a non-empty raw TTL had nothing left after
	// stripping non-digits, or overflowed.
	TTLOK bool

	// RawTTL is the TTL exactly as submitted, for error messages.
	RawTTL string

	// Priority is the MX preference in decimal, defaulted to "10" when
	// absent or empty. Meaningless for other types.
	Priority string

	// PriorityOK is false when a non-empty raw priority did not parse as
	// a non-negative integer.
	PriorityOK bool

	// RawPriority is the priority exactly as submitted.
	RawPriority string

	// Type is the "type" key of an "Other Records" entry ("NS", ...).
	Type string
}

// Normalize produces the defaulted view of r for the given type tag.
func Normalize(tag string, r Record) Normalized {
	n := Normalized{
		Name:       asString(r["name"]),
		RawTTL:     asString(r["ttl"]),
		TTLOK:      true,
		Priority:   "10",
		PriorityOK: true,
		Type:       asString(r["type"]),
	}

	v, ok := r["value"]
	n.HasValue = ok
	n.Value = asString(v)

	if n.Name == "" && tag != TypeCNAME {
		n.Name = Apex
	}

	if n.RawTTL != "" {
		digits := stripNonDigits(n.RawTTL)
		sec, err := strconv.Atoi(digits)
		if digits == "" || err != nil {
			n.TTLOK = false
		} else {
			n.TTL = strconv.Itoa(sec)
		}
	}

	n.RawPriority = asString(r["priority"])
	if n.RawPriority != "" {
		pref, err := strconv.Atoi(n.RawPriority)
		if err != nil || pref < 0 {
			n.PriorityOK = false
		} else {
			n.Priority = strconv.Itoa(pref)
		}
	}

	return n
}

// SanitizeDomain maps a domain to the form used in artifact filenames:
// lowercase, with every rune outside [a-z0-9.-] replaced by '-'.
func SanitizeDomain(domain string) string {
	var b strings.Builder
	b.Grow(len(domain))
	for _, r := range strings.ToLower(domain) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// asString coerces a decoded JSON value to its textual form. Numbers are the
// common non-string case: editors happily send {"priority": 10}.
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
