package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid probes the domain of a registration email for MX or
// address records, keeping obviously dead domains out of the OTP mail queue.
// A resolvable domain is no guarantee the mailbox exists.
func IsEmailDomainValid(email string) bool {
	domain, ok := emailDomain(email)
	if !ok {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}

func emailDomain(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return "", false
	}
	return email[at+1:], true
}
