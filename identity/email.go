package identity

import (
	"strings"

	"personal-crm/reconcile/matching"
)

// freeEmailDomains lists consumer email providers whose addresses are filed
// under email_personal when no origin hint is available.
var freeEmailDomains = map[string]struct{}{
	"gmail.com":      {},
	"googlemail.com": {},
	"yahoo.com":      {},
	"yahoo.co.uk":    {},
	"ymail.com":      {},
	"hotmail.com":    {},
	"hotmail.co.uk":  {},
	"outlook.com":    {},
	"live.com":       {},
	"msn.com":        {},
	"icloud.com":     {},
	"me.com":         {},
	"mac.com":        {},
	"aol.com":        {},
	"protonmail.com": {},
	"proton.me":      {},
	"pm.me":          {},
	"gmx.com":        {},
	"gmx.de":         {},
	"web.de":         {},
	"mail.com":       {},
	"zoho.com":       {},
	"fastmail.com":   {},
	"yandex.com":     {},
	"yandex.ru":      {},
	"qq.com":         {},
	"163.com":        {},
	"126.com":        {},
	"naver.com":      {},
}

// InferEmailSlot decides whether an email address belongs in the
// email_personal or email_work slot. An origin-system hint ("work", "other",
// "personal", "home") takes precedence over the domain. Without a hint,
// free-provider domains are personal and everything else is work.
//
// An address with no @ falls back to email_personal: unparseable input gets
// the safer default, while an unknown but well-formed domain is assumed to be
// corporate. The asymmetry is intentional; changing it would silently alter
// merge recommendations.
func InferEmailSlot(email, originHint string) ContactMethodSlot {
	switch strings.ToLower(strings.TrimSpace(originHint)) {
	case "work", "other":
		return ContactMethodSlotEmailWork
	case "personal", "home":
		return ContactMethodSlotEmailPersonal
	}

	addr := matching.NormalizeEmail(email)
	at := strings.LastIndex(addr, "@")
	if at < 0 || at == len(addr)-1 {
		return ContactMethodSlotEmailPersonal
	}

	domain := addr[at+1:]
	if _, ok := freeEmailDomains[domain]; ok {
		return ContactMethodSlotEmailPersonal
	}

	return ContactMethodSlotEmailWork
}
