// Package accounts maps Turkish uniform chart-of-accounts codes to their
// group and expected normal balance side. Pure lookup, no state.
package accounts

// Group is the chart-of-accounts class derived from the code's leading digit.
type Group string

const (
	GroupCurrentAssets        Group = "CURRENT_ASSETS"         // 1xx Dönen Varlıklar
	GroupFixedAssets          Group = "FIXED_ASSETS"           // 2xx Duran Varlıklar
	GroupShortTermLiabilities Group = "SHORT_TERM_LIABILITIES" // 3xx Kısa Vadeli Yabancı Kaynaklar
	GroupLongTermLiabilities  Group = "LONG_TERM_LIABILITIES"  // 4xx Uzun Vadeli Yabancı Kaynaklar
	GroupEquity               Group = "EQUITY"                 // 5xx Özkaynaklar
	GroupRevenue              Group = "REVENUE"                // 6xx Gelir Tablosu Hesapları
	GroupCost                 Group = "COST"                   // 7xx Maliyet Hesapları
	GroupExpense              Group = "EXPENSE"                // 8xx
	GroupOffBalance           Group = "OFF_BALANCE"            // 9xx Nazım Hesaplar
	GroupOther                Group = "OTHER"
)

// Side is the expected normal balance side of an account.
type Side string

const (
	SideDebit  Side = "DEBIT"
	SideCredit Side = "CREDIT"
)

// Root codes of the uniform chart that the rule catalogue refers to.
const (
	CodeKasa        = "100" // cash on hand
	CodeBankalar    = "102" // bank accounts
	CodeAlicilar    = "120" // trade receivables
	CodeOrtaklardan = "131" // receivables from shareholders
	CodeStoklar     = "15"  // inventory accounts 150-159
	CodeSaticilar   = "320" // trade payables (suppliers)
	CodeSermaye     = "500" // paid-in capital
	CodeSatislar    = "600" // domestic sales
	CodeSatisMaliye = "62"  // cost of goods sold 620-623
)

// GroupOf derives the chart group from the leading digit of the code.
func GroupOf(code string) Group {
	if code == "" {
		return GroupOther
	}
	switch code[0] {
	case '1':
		return GroupCurrentAssets
	case '2':
		return GroupFixedAssets
	case '3':
		return GroupShortTermLiabilities
	case '4':
		return GroupLongTermLiabilities
	case '5':
		return GroupEquity
	case '6':
		return GroupRevenue
	case '7':
		return GroupCost
	case '8':
		return GroupExpense
	case '9':
		return GroupOffBalance
	default:
		return GroupOther
	}
}

// NormalSideOf returns the expected balance side for an account code.
// Asset, cost and expense accounts carry debit balances; liability,
// equity and revenue accounts carry credit balances.
func NormalSideOf(code string) Side {
	switch GroupOf(code) {
	case GroupShortTermLiabilities, GroupLongTermLiabilities, GroupEquity, GroupRevenue:
		return SideCredit
	default:
		return SideDebit
	}
}

// HasRoot reports whether code belongs under the given root, matching on
// the leading characters only ("120" covers "120", "120.01.001", "120 01").
func HasRoot(code, root string) bool {
	return len(code) >= len(root) && code[:len(root)] == root
}
