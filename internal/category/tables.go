package category

// An empty value means the code is recognized but deliberately exports no
// category. That is different from a code missing from the table, which
// falls through to the ATM/interest checks.

// v1Table covers the original spending-category vocabulary.
var v1Table = map[string]string{
	"BILLS_AND_SERVICES": "",
	"EATING_OUT":         "Dining:Restaurants",
	"ENTERTAINMENT":      "Entertainment",
	"EXPENSES":           "Work Expenses",
	"GENERAL":            "",
	"GIFTS":              "Gifts",
	"GROCERIES":          "Groceries",
	"SHOPPING":           "Clothing",
	"HOLIDAYS":           "Travel",
	"PAYMENTS":           "",
	"TRANSPORT":          "Travel",
	"LIFESTYLE":          "",
}

// v2Table adds the categories introduced with the v2 transactions API.
var v2Table = merge(v1Table, map[string]string{
	"INCOME": "Income",
	"SAVING": "Saving",
})

// feedTable adds the categories introduced with the feed API.
var feedTable = merge(v2Table, map[string]string{
	"CHARITY": "Charity",
	"FAMILY":  "Family",
	"HOME":    "Home",
	"PETS":    "Pets",
})

func merge(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
