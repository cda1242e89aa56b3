package zone

import (
	"strings"
	"time"
)

// Fixed zone-file constants. The SOA names are deliberately not derived from
// the input: the emitted file is a projection for operators, and downstream
// tooling rewrites the authority section before any name server sees it.
const (
	defaultTTL = "86400"

	soaTTL       = "3600"
	soaPrimary   = "ns1.zonekeeper.local."
	soaContact   = "hostmaster.zonekeeper.local."
	soaRefresh   = "28800"
	soaRetry     = "7200"
	soaExpire    = "604800"
	soaMinimum   = "3600"
	serialSuffix = "01"
)

// nowUTC is swapped out in tests that pin the SOA serial.
var nowUTC = func() time.Time { return time.Now().UTC() }

// Serial returns the SOA serial for the current UTC date. The two-digit
// suffix is fixed, so re-renders on the same day produce the same serial;
// kept for artifact compatibility rather than fixed to a monotonic scheme.
func Serial() string {
	return nowUTC().Format("20060102") + serialSuffix
}

// Render produces the zone-file text for domain from rs. It is deterministic
// for a given day and performs no validation: callers are expected to run
// Validate first, and garbage in means garbage out, not an error.
//
// Sections appear in a fixed order (A, AAAA, CNAME, MX, merged TXT, NS),
// each preceded by a comment header and emitted only when populated. The TXT
// section merges TXT, "Other TXT Records" and SPF entries, in that order.
// NS lines come from "Other Records" entries whose type key is "NS".
func Render(domain string, rs RecordSet) string {
	sections := []string{
		"$TTL " + defaultTTL + "\n$ORIGIN " + domain + ".",
		soaSection(),
	}

	for _, tag := range []string{TypeA, TypeAAAA, TypeCNAME, TypeMX} {
		var lines []string
		for _, r := range rs[tag] {
			lines = append(lines, recordLine(tag, tag, Normalize(tag, r)))
		}
		sections = appendSection(sections, tag, lines)
	}

	var txtLines []string
	for _, tag := range []string{TypeTXT, TypeOtherTXT, TypeSPF} {
		for _, r := range rs[tag] {
			n := Normalize(tag, r)
			n.Value = `"` + n.Value + `"`
			n.HasValue = true
			txtLines = append(txtLines, recordLine(tag, TypeTXT, n))
		}
	}
	sections = appendSection(sections, TypeTXT, txtLines)

	var nsLines []string
	for _, r := range rs[TypeOther] {
		n := Normalize(TypeOther, r)
		if n.Type == "NS" {
			nsLines = append(nsLines, recordLine(TypeOther, "NS", n))
		}
	}
	sections = appendSection(sections, "NS", nsLines)

	return strings.Join(sections, "\n\n")
}

func appendSection(sections []string, label string, lines []string) []string {
	if len(lines) == 0 {
		return sections
	}
	return append(sections, "; "+label+" Records\n"+strings.Join(lines, "\n"))
}

func soaSection() string {
	b := strings.Builder{}
	b.WriteString(Apex + "\t" + soaTTL + "\t IN \tSOA\t" + soaPrimary + "\t" + soaContact + "\t(\n")
	b.WriteString("\t\t" + Serial() + "\t; serial\n")
	b.WriteString("\t\t" + soaRefresh + "\t; refresh\n")
	b.WriteString("\t\t" + soaRetry + "\t; retry\n")
	b.WriteString("\t\t" + soaExpire + "\t; expire\n")
	b.WriteString("\t\t" + soaMinimum + " )\t; minimum")
	return b.String()
}

// recordLine lays out one record as name, TTL, class, type, value, with the
// MX preference squeezed in before the value. When an optional field is empty
// the first resulting double tab is collapsed to a single tab; later double
// tabs are left alone. That asymmetry matches the files we have always
// produced, and downstream diff tooling depends on byte-stable output.
func recordLine(tag, renderType string, n Normalized) string {
	fields := []string{n.Name, n.TTL, " IN ", renderType}
	if tag == TypeMX {
		fields = append(fields, n.Priority)
	}
	fields = append(fields, n.Value)
	return strings.Replace(strings.Join(fields, "\t"), "\t\t", "\t", 1)
}
