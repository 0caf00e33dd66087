package entities

import "tradedesk.backend/pkg/validation"

func init() {
	plans := make([]string, len(Plans))
	for i, p := range Plans {
		plans[i] = string(p)
	}
	validation.MustRegisterEnum("plan", plans...)
	validation.MustRegisterEnum("substatus",
		string(SubscriberStatusActive), string(SubscriberStatusExpired), string(SubscriberStatusSuspended))
	validation.MustRegisterEnum("paystatus",
		string(PaymentStatusCompleted), string(PaymentStatusPending), string(PaymentStatusFailed))
	validation.MustRegisterEnum("refstatus",
		string(ReferralStatusActive), string(ReferralStatusInactive), string(ReferralStatusPending))
	validation.MustRegisterEnum("theme", string(ThemeDark), string(ThemeLight))
}
