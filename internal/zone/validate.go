package zone

import (
	"fmt"
	"net/netip"
	"regexp"
)

// hostnameRE is a shape check only: it does not verify label lengths,
// leading/trailing hyphens, or the overall 255-octet limit. Callers must not
// rely on it for full hostname correctness.
var hostnameRE = regexp.MustCompile(`^[A-Za-z0-9.-]+$`)

// Validate checks a candidate record set and returns a list of human-readable
// problems, empty when the set is acceptable. It is a pure function: no I/O,
// no mutation of rs.
//
// Errors accumulate rather than short-circuiting, in a fixed order: A, AAAA,
// MX, CNAME, then the TXT family (TXT, SPF, Other TXT Records), and within a
// type by array index.
func Validate(rs RecordSet) []string {
	if rs == nil {
		return []string{"record set is not an object"}
	}

	var errs []string

	for i, r := range rs[TypeA] {
		n := Normalize(TypeA, r)
		if !n.HasValue || n.Value == "" {
			errs = append(errs, fmt.Sprintf("A[%d] value is missing", i))
		} else if !isIPv4(n.Value) {
			errs = append(errs, fmt.Sprintf("A[%d] value '%s' is not a valid IPv4 address", i, n.Value))
		}
		errs = appendTTLError(errs, TypeA, i, n)
	}

	for i, r := range rs[TypeAAAA] {
		n := Normalize(TypeAAAA, r)
		if !n.HasValue || n.Value == "" {
			errs = append(errs, fmt.Sprintf("AAAA[%d] value is missing", i))
		} else if !isIPv6(n.Value) {
			errs = append(errs, fmt.Sprintf("AAAA[%d] value '%s' is not a valid IPv6 address", i, n.Value))
		}
		errs = appendTTLError(errs, TypeAAAA, i, n)
	}

	for i, r := range rs[TypeMX] {
		n := Normalize(TypeMX, r)
		if !n.HasValue || n.Value == "" {
			errs = append(errs, fmt.Sprintf("MX[%d] value is missing", i))
		}
		if !n.PriorityOK {
			errs = append(errs, fmt.Sprintf("MX[%d] priority '%s' is not a valid priority", i, n.RawPriority))
		}
		errs = appendTTLError(errs, TypeMX, i, n)
	}

	for i, r := range rs[TypeCNAME] {
		n := Normalize(TypeCNAME, r)
		if !n.HasValue || n.Value == "" {
			errs = append(errs, fmt.Sprintf("CNAME[%d] value is missing", i))
		} else if !hostnameRE.MatchString(n.Value) {
			errs = append(errs, fmt.Sprintf("CNAME[%d] value '%s' is not a valid hostname", i, n.Value))
		}
		errs = appendTTLError(errs, TypeCNAME, i, n)
	}

	// The TXT family only requires the value key to exist; an empty string
	// is a legitimate TXT payload.
	for _, tag := range []string{TypeTXT, TypeSPF, TypeOtherTXT} {
		for i, r := range rs[tag] {
			n := Normalize(tag, r)
			if !n.HasValue {
				errs = append(errs, fmt.Sprintf("%s[%d] value is missing", tag, i))
			}
			errs = appendTTLError(errs, tag, i, n)
		}
	}

	if errs == nil {
		errs = []string{}
	}
	return errs
}

func appendTTLError(errs []string, tag string, i int, n Normalized) []string {
	if !n.TTLOK {
		errs = append(errs, fmt.Sprintf("%s[%d] ttl '%s' is not a valid TTL", tag, i, n.RawTTL))
	}
	return errs
}

func isIPv4(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is4()
}

func isIPv6(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is6()
}
