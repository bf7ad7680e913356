package validator

import (
	"net/mail"
	"net/url"
	"strings"
)

// Email validates an RFC 5322 address with a dotted domain.
func Email() Rule {
	return Rule{
		Check: stringRule(func(value string) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}

			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" {
				return false
			}

			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		}),
		Error: ValidationError{
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
		},
	}
}

// URL validates an absolute http(s) URL.
func URL() Rule {
	return Rule{
		Check: stringRule(func(value string) bool {
			u, err := url.Parse(value)
			if err != nil {
				return false
			}
			return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
		}),
		Error: ValidationError{
			Message:        "must be a valid URL",
			TranslationKey: "validation.url",
		},
	}
}
