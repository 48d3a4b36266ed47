package categorize

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize_Default(t *testing.T) {
	c := Default()
	tests := []struct {
		desc string
		want string
	}{
		{"Chevron Gas", "Auto"},
		{"CHEVRON 0091234 SANTA ROSA CA", "Auto"},
		{"Payroll Deposit", "Deposits"},
		{"SAFEWAY #1234", "Groceries"},
		{"US BANK HOME MTG PAYMENT", "Mortgage"},
		{"PAYMENT THANK YOU", Transfers},
		{"INTEREST PURCHASES", InterestPaid},
		{"FINANCE CHARGE", "Bank Fees"},
		{"GODADDY.COM", "Web Hosting"},
		{"Adobe Creative Cloud", "Office Technology"},
		{"3KM Consulting", "3KM"},
		{"OVERDRAFT ITEM FEE", "Bank Fees"},
		{"ACH DEPOSIT ACME", "Deposits"},
		{"SOMETHING ODD 42", Unclassified},
		{"", Unclassified},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Categorize(tt.desc))
		})
	}
}

func TestCategorize_FeesAndCharges(t *testing.T) {
	// Bank Fees matches any "fee" or "charge" and is declared before Cash,
	// Interest Paid and Subscriptions.
	c := Default()
	for _, desc := range []string{
		"MONTHLY SERVICE FEE",
		"LATE FEE",
		"ANNUAL FEE",
		"RETURNED ITEM FEE",
		"CASH ADVANCE FEE",
		"PURCHASE INTEREST CHARGE",
	} {
		cat, _, ok := c.Match(desc)
		assert.True(t, ok, desc)
		assert.Equal(t, "Bank Fees", cat, desc)
	}
}

func TestCategorize_DeclaredOrderDecides(t *testing.T) {
	// "auto" (Auto) and "transfer" (Transfers) both match; Auto is declared first.
	assert.Equal(t, "Auto", Default().Categorize("AUTO TRANSFER TO SAVINGS"))

	c := New([]Rule{
		{Category: Transfers, Keywords: []string{"transfer"}},
		{Category: "Auto", Keywords: []string{"auto"}},
	})
	assert.Equal(t, Transfers, c.Categorize("AUTO TRANSFER TO SAVINGS"))
}

func TestCategorize_KeywordsLowercased(t *testing.T) {
	c := New([]Rule{{Category: "Coffee", Keywords: []string{"BLUE Bottle"}}})
	assert.Equal(t, "Coffee", c.Categorize("blue bottle oakland"))
}

func TestMatch(t *testing.T) {
	cat, kw, ok := Default().Match("STARBUCKS STORE 555")
	assert.True(t, ok)
	assert.Equal(t, "Restaurants", cat)
	assert.Equal(t, "starbucks", kw)

	cat, kw, ok = Default().Match("zzz")
	assert.False(t, ok)
	assert.Equal(t, Unclassified, cat)
	assert.Empty(t, kw)
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()
	require.NoError(t, ValidateRules(rules))
	assert.Len(t, rules, 39)

	names := Default().Categories()
	assert.Contains(t, names, Unclassified)
	for _, b := range BusinessCategories() {
		assert.Contains(t, names, b)
	}
	for _, r := range rules {
		if r.Category == Unclassified {
			assert.Empty(t, r.Keywords)
		}
	}
}

func TestValidateRules(t *testing.T) {
	assert.ErrorIs(t, ValidateRules([]Rule{{Category: " "}}), ErrInvalidRules)
	assert.ErrorIs(t, ValidateRules([]Rule{{Category: "A"}, {Category: "A"}}), ErrInvalidRules)
	assert.ErrorIs(t, ValidateRules([]Rule{{Category: "A", Keywords: []string{"ok", ""}}}), ErrInvalidRules)
	assert.ErrorIs(t, ValidateRules([]Rule{{Category: "A"}, {Category: Unclassified, Keywords: []string{"misc"}}}), ErrInvalidRules)
	assert.NoError(t, ValidateRules([]Rule{{Category: "A", Keywords: []string{"a"}}, {Category: "B"}}))
}

func TestSaveLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), RulesFile)
	rules := []Rule{
		{Category: "Coffee", Keywords: []string{"blue bottle", "peets"}},
		{Category: Unclassified},
	}
	require.NoError(t, SaveRules(path, rules))

	loaded, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, rules, loaded)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Coffee", c.Categorize("PEETS #12"))
}

func TestLoadRules_UnclassifiedKeywords(t *testing.T) {
	path := filepath.Join(t.TempDir(), RulesFile)
	require.NoError(t, SaveRules(path, []Rule{
		{Category: "Coffee", Keywords: []string{"peets"}},
		{Category: Unclassified, Keywords: []string{"misc"}},
	}))

	_, err := LoadRules(path)
	assert.ErrorIs(t, err, ErrInvalidRules)
	assert.ErrorContains(t, err, "Unclassified cannot have keywords")
}

func TestLoad_Fallbacks(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Auto", c.Categorize("chevron"))

	c, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Auto", c.Categorize("chevron"))

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, SaveRules(path, nil))
	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultRules(), rules)
}

func TestLoadRules_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.yaml")
	require.NoError(t, SaveRules(path, []Rule{{Category: "A"}, {Category: "A"}}))
	_, err := LoadRules(path)
	assert.ErrorIs(t, err, ErrInvalidRules)
}
