package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	MustRegisterEnum("tier", "Gold", "Silver")
}

type signUpForm struct {
	FirstName       string `json:"firstName" validate:"required" label:"First name"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type subscriberForm struct {
	TradingViewID string  `json:"tradingViewId" validate:"required,max=40"`
	PhoneEmail    string  `json:"phoneEmail" validate:"required,phoneemail"`
	Tier          string  `json:"tier" validate:"required,tier"`
	ExpiryDate    string  `json:"expiryDate" validate:"required,notpast"`
	UPI           string  `json:"upi" validate:"omitempty,upi"`
	Image         string  `json:"image" validate:"omitempty,imageurl"`
	Amount        float64 `json:"amount" validate:"gt=0"`
}

func withNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func validSubscriber() subscriberForm {
	return subscriberForm{
		TradingViewID: "tv_trader",
		PhoneEmail:    "trader@example.com",
		Tier:          "Gold",
		ExpiryDate:    "2026-10-18",
		UPI:           "trader.one@okaxis",
		Image:         "https://cdn.example.com/ind/rsi.png",
		Amount:        499,
	}
}

func TestValidate_AggregatesAllFields(t *testing.T) {
	errs := Validate(signUpForm{Password: "short", ConfirmPassword: "other"})
	require.Len(t, errs, 4)
	assert.Equal(t, "First name is required.", errs["firstName"])
	assert.Equal(t, "Email is required.", errs["email"])
	assert.Equal(t, "Password must be at least 8 characters.", errs["password"])
	assert.Equal(t, "Passwords do not match.", errs["confirmPassword"])
	assert.Contains(t, errs.Error(), "email: Email is required.")
}

func TestValidate_Valid(t *testing.T) {
	withNow(t, time.Date(2026, 10, 18, 15, 0, 0, 0, time.UTC))
	assert.Nil(t, Validate(validSubscriber()))
	assert.Nil(t, Validate(&signUpForm{
		FirstName: "Asha", Email: "asha@example.com", Password: "longenough", ConfirmPassword: "longenough",
	}))
}

func TestCustomRules(t *testing.T) {
	withNow(t, time.Date(2026, 10, 18, 15, 0, 0, 0, time.UTC))

	cases := []struct {
		name  string
		edit  func(*subscriberForm)
		field string
		want  string
	}{
		{"phone ok", func(f *subscriberForm) { f.PhoneEmail = "+919876543210" }, "phoneEmail", ""},
		{"phone too short", func(f *subscriberForm) { f.PhoneEmail = "12345" }, "phoneEmail", "Enter a valid email or phone number."},
		{"upi bad", func(f *subscriberForm) { f.UPI = "no-at-sign" }, "upi", "Enter a valid UPI ID (name@bank)."},
		{"date yesterday", func(f *subscriberForm) { f.ExpiryDate = "2026-10-17" }, "expiryDate", "Expiry date cannot be in the past."},
		{"date garbage", func(f *subscriberForm) { f.ExpiryDate = "soon" }, "expiryDate", "Expiry date cannot be in the past."},
		{"enum", func(f *subscriberForm) { f.Tier = "Bronze" }, "tier", "Tier must be one of: Gold, Silver."},
		{"image scheme", func(f *subscriberForm) { f.Image = "ftp://x.com/a.png" }, "image", "Enter a valid image URL."},
		{"image ext", func(f *subscriberForm) { f.Image = "https://x.com/a.exe" }, "image", "Enter a valid image URL."},
		{"amount", func(f *subscriberForm) { f.Amount = 0 }, "amount", "Amount must be greater than 0."},
		{"max", func(f *subscriberForm) { f.TradingViewID = string(make([]byte, 41)) }, "tradingViewId", "Trading view id must be at most 40 characters."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validSubscriber()
			tc.edit(&f)
			assert.Equal(t, tc.want, ValidateField(f, tc.field))
		})
	}
}

func TestNotPast_AcceptsTime(t *testing.T) {
	withNow(t, time.Date(2026, 10, 18, 23, 0, 0, 0, time.UTC))
	type form struct {
		When time.Time `json:"when" validate:"notpast"`
	}
	assert.Empty(t, ValidateField(form{When: time.Date(2026, 10, 18, 1, 0, 0, 0, time.UTC)}, "when"))
	assert.NotEmpty(t, ValidateField(form{When: time.Date(2026, 10, 17, 23, 59, 0, 0, time.UTC)}, "when"))
}

func TestRegisterEnum_AfterUse(t *testing.T) {
	_ = Get()
	assert.Error(t, RegisterEnum("late", "x"))
	assert.Panics(t, func() { MustRegisterEnum("late", "x") })
}

func TestFields(t *testing.T) {
	assert.Equal(t, []string{"firstName", "email", "password", "confirmPassword"}, Fields(&signUpForm{}))
	assert.Nil(t, Fields(42))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Trading view id", humanize("tradingViewId"))
	assert.Equal(t, "Email", humanize("email"))
}
