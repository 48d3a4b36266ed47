package categorize

// Category names the pipeline and the report refer to directly.
const (
	Unclassified = "Unclassified"
	Transfers    = "Transfers"
	InterestPaid = "Interest Paid"
)

// BusinessCategories are the tax-deductible categories summarized separately.
func BusinessCategories() []string {
	return []string{
		"Office Technology",
		"Office Supplies, Memberships & Subscriptions",
		"Web Hosting",
		"3KM",
	}
}

// DefaultRules returns the built-in keyword table. Order is match priority.
func DefaultRules() []Rule {
	return []Rule{
		{Category: "3KM", Keywords: []string{"3km"}},
		{Category: "Auto", Keywords: []string{"chevron", "shell", "mobil", "gas station", "auto", "car wash", "oil change", "tire", "mechanic", "valero", "exxon", "bp ", "citgo", "arco", "fastrak", "bridge toll"}},
		{Category: "Bank Fees", Keywords: []string{"fee", "charge", "overdraft", "annual membership fee", "atm fee"}},
		{Category: "Cash", Keywords: []string{"cash", "atm withdrawal"}},
		{Category: "Checks", Keywords: []string{"check"}},
		{Category: "Child Care and Camps", Keywords: []string{"child care", "daycare", "camp", "babysit"}},
		{Category: "Deposits", Keywords: []string{"deposit", "payroll", "salary", "wages", "income", "direct deposit", "tripleseat"}},
		{Category: "Donations", Keywords: []string{"donation", "charity", "church", "goodwill"}},
		{Category: "Education", Keywords: []string{"school", "university", "college", "tuition", "education", "srjc"}},
		{Category: "Entertainment", Keywords: []string{"movie", "theater", "concert", "entertainment", "netflix", "hulu", "spotify", "paramount"}},
		{Category: "Fines and Tickets", Keywords: []string{"fine", "ticket", "violation", "penalty"}},
		{Category: "Girl Scouts", Keywords: []string{"girl scout"}},
		{Category: "Gifts", Keywords: []string{"gift"}},
		{Category: "Groceries", Keywords: []string{"safeway", "grocery", "whole foods", "trader joe", "costco", "walmart", "target", "oliver", "wholefds"}},
		{Category: "Hardware", Keywords: []string{"home depot", "lowes", "hardware", "ace hardware", "mission ace"}},
		{Category: "Health and Beauty", Keywords: []string{"cvs", "walgreens", "pharmacy", "cosmetic", "salon", "spa", "beauty"}},
		{Category: "Health Supplements", Keywords: []string{"vitamin", "supplement", "gnc", "health store", "ryze"}},
		{Category: "Household", Keywords: []string{"household", "cleaning", "laundry", "detergent"}},
		{Category: "Insurance", Keywords: []string{"insurance", "protective life"}},
		{Category: InterestPaid, Keywords: []string{"interest", "finance charge", "purchase interest charge"}},
		{Category: "IRS", Keywords: []string{"irs", "tax payment", "internal revenue"}},
		{Category: "Medical and Dental Expenses", Keywords: []string{"doctor", "hospital", "medical", "dental", "dentist", "physician"}},
		{Category: "Mortgage", Keywords: []string{"mortgage", "us bank home mtg"}},
		{Category: "Office Technology", Keywords: []string{"microsoft", "adobe", "zoom", "google", "apple.com", "linkedin"}},
		{Category: "Office Supplies, Memberships & Subscriptions", Keywords: []string{"office", "supplies", "membership", "subscription", "staples"}},
		{Category: "Parking", Keywords: []string{"parking", "meter", "garage"}},
		{Category: "Pets", Keywords: []string{"pet", "vet", "veterinary", "petco", "pet food"}},
		{Category: "Postage", Keywords: []string{"usps", "fedex", "ups", "postage", "shipping"}},
		{Category: "Restaurants", Keywords: []string{"restaurant", "cafe", "bistro", "grill", "pizza", "burger", "taco", "chinese", "italian", "sushi", "starbucks", "dunkin", "lepe", "taqueria", "ozzies", "everest indian", "tatte bakery", "kelly", "salt and stone", "mombos pizza"}},
		{Category: "Solar Lease", Keywords: []string{"solar", "spruce power"}},
		{Category: "Storage", Keywords: []string{"storage", "storagepro"}},
		{Category: "Subscriptions", Keywords: []string{"subscription", "monthly", "annual"}},
		{Category: "Tax Return Preparation", Keywords: []string{"tax prep", "h&r block", "turbotax"}},
		{Category: Transfers, Keywords: []string{"transfer", "payment thank you", "ach electronic credit", "mobile deposit"}},
		{Category: "Travel", Keywords: []string{"hotel", "airline", "flight", "rental car", "uber", "lyft", "taxi", "hilton", "marriott", "travel", "logan expr", "commuter rail", "mbta"}},
		{Category: Unclassified},
		{Category: "Utilities", Keywords: []string{"electric", "gas", "water", "phone", "internet", "cable", "comcast", "pgande", "att"}},
		{Category: "Web Hosting", Keywords: []string{"godaddy", "aws", "amazon web services", "google cloud", "hosting"}},
		{Category: "Wine, Beer, Spirits", Keywords: []string{"wine", "beer", "spirits", "liquor", "alcohol", "totalwine"}},
	}
}
