package registration

import "github.com/dmitrymomot/regform/pkg/sanitizer"

// disposableDomains are throwaway mailbox providers rejected at sign-up.
var disposableDomains = []string{
	"tempmail.com",
	"10minutemail.com",
	"guerrillamail.com",
	"mailinator.com",
	"throwaway.email",
	"temp-mail.org",
	"fakeinbox.com",
	"trashmail.com",
	"getnada.com",
	"maildrop.cc",
	"yopmail.com",
	"mintemail.com",
	"sharklasers.com",
	"spam4.me",
	"tempr.email",
	"throwawaymail.com",
	"mohmal.com",
	"emailondeck.com",
	"guerrillamail.info",
	"dispostable.com",
	"disposableemailaddresses.com",
	"spamgourmet.com",
	"mytrashmail.com",
	"jetable.org",
	"mailcatch.com",
	"临时邮箱.com",
	"临时邮.com",
	"disposable.com",
	"mailnesia.com",
	"anonymbox.com",
	"33mail.com",
	"tmpeml.info",
}

var defaultDisposableSet = newDomainSet(disposableDomains)

// IsDisposableDomain reports whether domain belongs to the built-in list of
// disposable email providers. Matching is case-insensitive.
func IsDisposableDomain(domain string) bool {
	_, found := defaultDisposableSet[sanitizer.ToLower(domain)]
	return found
}

func newDomainSet(domains ...[]string) map[string]struct{} {
	size := 0
	for _, list := range domains {
		size += len(list)
	}
	set := make(map[string]struct{}, size)
	for _, list := range domains {
		for _, d := range list {
			if d = sanitizer.Apply(d, sanitizer.Trim, sanitizer.ToLower); d != "" {
				set[d] = struct{}{}
			}
		}
	}
	return set
}
