package model

// Category is the closed set of leaf spending/income classifications an
// upstream categorizer may assign to a transaction. CategoryError is the
// sentinel for unclassifiable input and is never part of the leaf set.
type Category string

const (
	// Income
	CategorySalaryWages         Category = "salary_wages"
	CategoryBusinessRevenue     Category = "business_revenue"
	CategoryInterestIncome      Category = "interest_income"
	CategoryDividends           Category = "dividends"
	CategoryRefundReimbursement Category = "refund_reimbursement"
	CategoryGovernmentPayment   Category = "government_payment"
	CategoryOtherIncome         Category = "other_income"

	// Housing / facilities
	CategoryRent            Category = "rent"
	CategoryMortgage        Category = "mortgage"
	CategoryUtilities       Category = "utilities"
	CategoryTelecomInternet Category = "telecom_internet"

	// Operating / living expenses
	CategoryPayrollSalaries      Category = "payroll_salaries"
	CategoryProfessionalServices Category = "professional_services"
	CategoryOfficeSupplies       Category = "office_supplies"
	CategorySoftwareSubs         Category = "software_subscriptions"
	CategoryMarketing            Category = "marketing_advertising"
	CategoryVendorPayment        Category = "vendor_payment"
	CategoryGroceries            Category = "groceries"
	CategoryDining               Category = "dining"
	CategoryTransportation       Category = "transportation"
	CategoryTravelLodging        Category = "travel_lodging"
	CategoryHealthcare           Category = "healthcare_medical"
	CategoryInsurance            Category = "insurance"
	CategoryEducationTuition     Category = "education_tuition"
	CategoryChildcare            Category = "childcare"
	CategoryEntertainment        Category = "entertainment"
	CategoryPersonalCare         Category = "personal_care"
	CategoryCharityDonation      Category = "charity_donation"
	CategoryHomeMaintenance      Category = "home_maintenance"

	// Financing / debt
	CategoryLoanPayment       Category = "loan_payment"
	CategoryCreditCardPayment Category = "credit_card_payment"
	CategoryTaxPayment        Category = "tax_payment"
	CategoryBankFees          Category = "bank_fees"
	CategoryInterestExpense   Category = "interest_expense"

	// Capital / assets
	CategoryCapitalExpenditure Category = "capital_expenditure"
	CategoryInvestmentBuy      Category = "investment_buy"
	CategoryInvestmentSell     Category = "investment_sell"

	// Liquidity movements
	CategoryTransferIn  Category = "transfer_in"
	CategoryTransferOut Category = "transfer_out"
	CategoryCashDeposit Category = "cash_deposit"
	CategoryWithdrawal  Category = "withdrawal"

	// Fallbacks
	CategoryOther Category = "other"
	CategoryError Category = "error"
)

// RiskBucket is one of the 9 coarse groupings used for aggregate risk
// analysis.
type RiskBucket string

const (
	BucketIncome               RiskBucket = "income"
	BucketOperatingExpense     RiskBucket = "operating_expense"
	BucketDiscretionaryExpense RiskBucket = "discretionary_expense"
	BucketFinancing            RiskBucket = "financing"
	BucketTaxes                RiskBucket = "taxes"
	BucketCapital              RiskBucket = "capital"
	BucketFeesInterest         RiskBucket = "fees_interest"
	BucketLiquidityMovement    RiskBucket = "liquidity_movement"
	BucketOther                RiskBucket = "other"
)

// categoryBuckets is the canonical Category -> RiskBucket table. Bucket
// membership is always resolved through this table, never through state
// carried on a category or transaction. Every leaf category must have an
// entry; ValidateMapping enforces that at startup.
var categoryBuckets = map[Category]RiskBucket{
	CategorySalaryWages:         BucketIncome,
	CategoryBusinessRevenue:     BucketIncome,
	CategoryInterestIncome:      BucketIncome,
	CategoryDividends:           BucketIncome,
	CategoryRefundReimbursement: BucketIncome,
	CategoryGovernmentPayment:   BucketIncome,
	CategoryOtherIncome:         BucketIncome,
	CategoryInvestmentSell:      BucketIncome,

	CategoryRent:                 BucketOperatingExpense,
	CategoryMortgage:             BucketOperatingExpense,
	CategoryUtilities:            BucketOperatingExpense,
	CategoryTelecomInternet:      BucketOperatingExpense,
	CategoryPayrollSalaries:      BucketOperatingExpense,
	CategoryProfessionalServices: BucketOperatingExpense,
	CategoryOfficeSupplies:       BucketOperatingExpense,
	CategorySoftwareSubs:         BucketOperatingExpense,
	CategoryMarketing:            BucketOperatingExpense,
	CategoryVendorPayment:        BucketOperatingExpense,
	CategoryInsurance:            BucketOperatingExpense,
	CategoryHealthcare:           BucketOperatingExpense,
	CategoryHomeMaintenance:      BucketOperatingExpense,
	CategoryChildcare:            BucketOperatingExpense,
	CategoryEducationTuition:     BucketOperatingExpense,

	CategoryGroceries:       BucketDiscretionaryExpense,
	CategoryDining:          BucketDiscretionaryExpense,
	CategoryTransportation:  BucketDiscretionaryExpense,
	CategoryTravelLodging:   BucketDiscretionaryExpense,
	CategoryEntertainment:   BucketDiscretionaryExpense,
	CategoryPersonalCare:    BucketDiscretionaryExpense,
	CategoryCharityDonation: BucketDiscretionaryExpense,

	CategoryLoanPayment:       BucketFinancing,
	CategoryCreditCardPayment: BucketFinancing,
	CategoryInterestExpense:   BucketFinancing,

	CategoryTaxPayment: BucketTaxes,

	CategoryCapitalExpenditure: BucketCapital,
	CategoryInvestmentBuy:      BucketCapital,

	CategoryBankFees: BucketFeesInterest,

	CategoryTransferIn:  BucketLiquidityMovement,
	CategoryTransferOut: BucketLiquidityMovement,
	CategoryCashDeposit: BucketLiquidityMovement,
	CategoryWithdrawal:  BucketLiquidityMovement,

	CategoryOther: BucketOther,
	CategoryError: BucketOther,
}

// allCategories lists every category including the fallbacks, in table
// order.
var allCategories = []Category{
	CategorySalaryWages, CategoryBusinessRevenue, CategoryInterestIncome,
	CategoryDividends, CategoryRefundReimbursement, CategoryGovernmentPayment,
	CategoryOtherIncome,
	CategoryRent, CategoryMortgage, CategoryUtilities, CategoryTelecomInternet,
	CategoryPayrollSalaries, CategoryProfessionalServices, CategoryOfficeSupplies,
	CategorySoftwareSubs, CategoryMarketing, CategoryVendorPayment,
	CategoryGroceries, CategoryDining, CategoryTransportation,
	CategoryTravelLodging, CategoryHealthcare, CategoryInsurance,
	CategoryEducationTuition, CategoryChildcare, CategoryEntertainment,
	CategoryPersonalCare, CategoryCharityDonation, CategoryHomeMaintenance,
	CategoryLoanPayment, CategoryCreditCardPayment, CategoryTaxPayment,
	CategoryBankFees, CategoryInterestExpense,
	CategoryCapitalExpenditure, CategoryInvestmentBuy, CategoryInvestmentSell,
	CategoryTransferIn, CategoryTransferOut, CategoryCashDeposit,
	CategoryWithdrawal,
	CategoryOther, CategoryError,
}

// Categories returns every category except the error sentinel.
func Categories() []Category {
	out := make([]Category, 0, len(allCategories)-1)
	for _, c := range allCategories {
		if c != CategoryError {
			out = append(out, c)
		}
	}
	return out
}

// ParseCategory maps a raw string to a Category, resolving anything
// outside the closed set to the error sentinel.
func ParseCategory(s string) Category {
	c := Category(s)
	if _, ok := categoryBuckets[c]; !ok {
		return CategoryError
	}
	return c
}

// BucketOf resolves a category to its risk bucket. Unmapped categories
// fall back to BucketOther; bad upstream data is a quality signal, not a
// crash.
func BucketOf(c Category) RiskBucket {
	if b, ok := categoryBuckets[c]; ok {
		return b
	}
	return BucketOther
}

// ValidateMapping returns the categories missing from the bucket table.
// With a nil argument it checks every category except the error sentinel;
// the result must be empty for the mapping to be considered complete.
func ValidateMapping(categories []Category) []Category {
	if categories == nil {
		categories = Categories()
	}
	var missing []Category
	for _, c := range categories {
		if _, ok := categoryBuckets[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}
