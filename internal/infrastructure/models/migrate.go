package models

// All lists every model for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Account{},
		&Subscriber{},
		&Referral{},
		&Payment{},
		&Indicator{},
	}
}
