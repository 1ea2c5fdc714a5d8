package classify

// IncomePattern pairs a regular expression with the human-readable label
// reported when it matches. Patterns are tried in declared order; the first
// match wins.
type IncomePattern struct {
	Label string
	Regex string
}

// DefaultIncomePatterns returns the built-in income detection table.
func DefaultIncomePatterns() []IncomePattern {
	return []IncomePattern{
		{Label: "Payroll", Regex: `\bPAYROLL\b`},
		{Label: "Direct Deposit", Regex: `\b(DIRECTDEP|DIRECT\s*DEP|DIR\s*DEP)\b`},
		{Label: "Salary", Regex: `\b(SALARY|WAGES)\b`},
		{Label: "ACH Credit", Regex: `\bACH\s*(CREDIT|CR)\b`},
		{Label: "Employer Deposit", Regex: `\b(EMPLOYER|PAYCHECK|PAY\s*CHECK)\b`},
		{Label: "Tax Refund", Regex: `\b(TAX\s*REF|IRS\s*TREAS|STATE\s*TAX\s*REF|FED\s*TAX\s*REF)\b`},
		{Label: "Social Security", Regex: `\b(SOC\s*SEC|SOCIAL\s*SECURITY|SSA\s*TREAS)\b`},
		{Label: "Government Benefit", Regex: `\b(UNEMPLOYMENT|GOVT\s*BENEFIT|VA\s*BENEFIT|SNAP)\b`},
		{Label: "Pension", Regex: `\b(PENSION|ANNUITY|RETIREMENT\s*INCOME)\b`},
		{Label: "Dividend", Regex: `\b(DIVIDEND|DIV\s*PAYMENT)\b`},
		{Label: "Interest", Regex: `\b(INTEREST|INT\s*EARNED|INT\s*INCOME)\b`},
		{Label: "Capital Gain", Regex: `\b(CAPITAL\s*GAIN|STOCK\s*SALE|401K\s*DIST)\b`},
		{Label: "Refund", Regex: `\bREFUND\b`},
		{Label: "Rebate", Regex: `\bREBATE\b`},
		{Label: "Reimbursement", Regex: `\b(REIMB|REIMBURSEMENT)\b`},
		{Label: "Cashback", Regex: `\b(CASHBACK|CASH\s*BACK)\b`},
		{Label: "Bonus", Regex: `\b(BONUS|INCENTIVE|PERFORMANCE\s*PAY)\b`},
		{Label: "Commission", Regex: `\bCOMMISSION\b`},
		{Label: "Client Payment", Regex: `\b(PAYMENT\s*FROM|INVOICE|CLIENT\s*PAY|CUSTOMER\s*PAY)\b`},
		{Label: "Rental Income", Regex: `\b(RENT\s*INCOME|RENTAL\s*PAYMENT|TENANT)\b`},
		{Label: "Zelle Received", Regex: `\bZELLE\s*(FROM|PAYMENT\s*RECEIVED)\b`},
		{Label: "Venmo Received", Regex: `\bVENMO\s*(CASHOUT|FROM|PAYMENT\s*RECEIVED)\b`},
		{Label: "PayPal Transfer", Regex: `\bPAYPAL\s*(TRANSFER|DEPOSIT)\b`},
		{Label: "Treasury Payment", Regex: `\b(US\s*TREASURY|TREAS\s*\d+)\b`},
		{Label: "Deposit", Regex: `\b(DEPOSIT|CREDIT\s*MEMO)\b`},
	}
}

// DefaultCCPaymentPhrases returns the literal phrases that identify a credit
// card payment leg. Plain substring containment, no regex.
func DefaultCCPaymentPhrases() []string {
	return []string{
		"credit card payment",
		"credit crd payment",
		"cc payment",
		"card payment",
		"minimum payment",
		"statement balance",
		"autopay payment",
		"payment thank you",
		"pymt thank you",
		"e-payment",
	}
}

// CategoryPattern maps a spending category to the merchant-name substrings
// that identify it. Pattern order within a category is significant; category
// order carries no meaning beyond being deterministic.
type CategoryPattern struct {
	Name     string
	Keywords []string
}

// DefaultCategoryPatterns returns the built-in merchant category table.
func DefaultCategoryPatterns() []CategoryPattern {
	return []CategoryPattern{
		{Name: "Dining", Keywords: []string{
			"restaurant", "mcdonald", "chipotle", "starbucks", "doordash",
			"grubhub", "uber eats", "taco bell", "pizza", "cafe", "coffee",
			"burger", "sushi", "chick-fil-a", "dunkin",
		}},
		{Name: "Groceries", Keywords: []string{
			"whole foods", "trader joe", "safeway", "kroger", "aldi",
			"costco", "grocery", "supermarket", "wegmans", "publix",
			"food lion", "sprouts", "h-e-b", "instacart",
		}},
		{Name: "Shopping", Keywords: []string{
			"amazon", "target", "walmart", "best buy", "ebay", "etsy",
			"ikea", "home depot", "lowe's", "nordstrom", "macy",
		}},
		{Name: "Transportation", Keywords: []string{
			"uber", "lyft", "shell", "chevron", "exxon", "gas station",
			"parking", "transit", "metro", "toll", "amtrak",
		}},
		{Name: "Bills & Utilities", Keywords: []string{
			"electric", "water", "utility", "comcast", "xfinity", "verizon",
			"at&t", "t-mobile", "internet", "sewer", "energy",
		}},
		{Name: "Entertainment", Keywords: []string{
			"cinema", "movie", "theater", "ticketmaster", "steam",
			"playstation", "xbox", "nintendo", "concert", "amc",
		}},
		{Name: "Health & Fitness", Keywords: []string{
			"pharmacy", "cvs", "walgreens", "gym", "fitness", "medical",
			"dental", "doctor", "clinic", "hospital", "planet fitness",
		}},
		{Name: "Travel", Keywords: []string{
			"airline", "airbnb", "hotel", "marriott", "hilton", "delta air",
			"united air", "southwest air", "expedia", "booking.com",
		}},
		{Name: "Subscriptions", Keywords: []string{
			"netflix", "spotify", "hulu", "disney+", "youtube premium",
			"apple.com/bill", "icloud", "audible", "patreon", "substack",
		}},
		{Name: "Personal Care", Keywords: []string{
			"salon", "barber", "spa", "haircut", "nail", "massage",
		}},
		{Name: "Education", Keywords: []string{
			"tuition", "university", "college", "udemy", "coursera",
			"textbook", "school",
		}},
		{Name: "Insurance", Keywords: []string{
			"insurance", "geico", "state farm", "allstate", "progressive",
			"aetna", "premium payment",
		}},
		{Name: "Pets", Keywords: []string{
			"petco", "petsmart", "chewy", "veterinar", "pet food",
		}},
		{Name: "Home", Keywords: []string{
			"rent payment", "mortgage", "hoa", "property mgmt", "landlord",
		}},
	}
}
