package problemgen

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Line item names. Explanations look amounts up by these names.
const (
	ItemCurrentAssets      = "Current Assets"
	ItemCurrentLiabilities = "Current Liabilities"
	ItemTotalLiabilities   = "Total Liabilities"
	ItemTotalEquity        = "Total Equity"
	ItemRevenue            = "Revenue"
	ItemCOGS               = "Cost of Goods Sold"
	ItemNetIncome          = "Net Income"
	ItemAverageEquity      = "Average Shareholders' Equity"
	ItemAverageInventory   = "Average Inventory"
)

// variant carries everything type-specific about a ratio: its ranges, the
// way the second amount is derived from the drawn target, how the value is
// computed back from the amounts and how the worked solution is written.
type variant struct {
	name  string
	slug  string
	alias string

	formula   string
	tolerance float64
	precision int
	bands     []Band

	baseMin, baseMax     int64
	targetMin, targetMax float64

	scenario  func(company string) string
	data      func(base int64, target float64) []LineItem
	value     func(a, b int64) float64
	narrative func(v float64) string
	derive    func(a, b int64) []string
}

var variants = map[RatioType]variant{
	CurrentRatio: {
		name:      "Current Ratio",
		slug:      "current_ratio",
		alias:     "cr",
		formula:   "Current Ratio = Current Assets / Current Liabilities",
		tolerance: 0.05,
		precision: 2,
		bands: []Band{
			{BandGood, "≥ 2.0 - Excellent liquidity position"},
			{BandAverage, "1.5 - 1.9 - Adequate liquidity"},
			{BandPoor, "< 1.5 - Potential liquidity concerns"},
		},
		baseMin: 200000, baseMax: 1000000,
		targetMin: 0.8, targetMax: 3.0,
		scenario: func(company string) string {
			return fmt.Sprintf("You're analyzing the liquidity position of %s. Calculate the Current Ratio to assess their short-term financial health.", company)
		},
		data: func(assets int64, ratio float64) []LineItem {
			return []LineItem{
				{ItemCurrentAssets, assets},
				{ItemCurrentLiabilities, int64(float64(assets) / ratio)},
			}
		},
		value: quotient,
		narrative: func(v float64) string {
			return fmt.Sprintf("The current ratio measures a company's ability to pay short-term obligations. A ratio of %.2f means the company has $%.2f in current assets for every $1 of current liabilities.", v, v)
		},
		derive: func(assets, liabilities int64) []string {
			return []string{
				fmt.Sprintf("Current Assets / Current Liabilities = %s / %s", Dollars(assets), Dollars(liabilities)),
				fmt.Sprintf("= %.2f", quotient(assets, liabilities)),
			}
		},
	},
	DebtToEquity: {
		name:      "Debt-to-Equity Ratio",
		slug:      "debt_to_equity",
		alias:     "de",
		formula:   "Debt-to-Equity Ratio = Total Liabilities / Total Equity",
		tolerance: 0.05,
		precision: 2,
		bands: []Band{
			{BandGood, "≤ 1.0 - Conservative financing"},
			{BandAverage, "1.1 - 2.0 - Moderate leverage"},
			{BandPoor, "> 2.0 - High financial risk"},
		},
		baseMin: 300000, baseMax: 1500000,
		targetMin: 0.5, targetMax: 3.5,
		scenario: func(company string) string {
			return fmt.Sprintf("As a credit analyst, you need to evaluate the capital structure risk of %s. Calculate the Debt-to-Equity Ratio.", company)
		},
		data: func(equity int64, ratio float64) []LineItem {
			return []LineItem{
				{ItemTotalLiabilities, int64(float64(equity) * ratio)},
				{ItemTotalEquity, equity},
			}
		},
		value: quotient,
		narrative: func(v float64) string {
			return fmt.Sprintf("This ratio shows the proportion of debt financing relative to equity. A ratio of %.2f indicates the company uses %.2f times as much debt as equity.", v, v)
		},
		derive: func(liabilities, equity int64) []string {
			return []string{
				fmt.Sprintf("Total Liabilities / Total Equity = %s / %s", Dollars(liabilities), Dollars(equity)),
				fmt.Sprintf("= %.2f", quotient(liabilities, equity)),
			}
		},
	},
	GrossProfitMargin: {
		name:      "Gross Profit Margin",
		slug:      "gross_profit_margin",
		alias:     "gpm",
		formula:   "Gross Profit Margin = (Revenue - COGS) / Revenue",
		tolerance: 0.01,
		precision: 2,
		bands: []Band{
			{BandGood, "≥ 40% - Strong pricing power/cost control"},
			{BandAverage, "20% - 39% - Moderate efficiency"},
			{BandPoor, "< 20% - Weak margins, competitive pressures"},
		},
		baseMin: 800000, baseMax: 2000000,
		targetMin: 0.15, targetMax: 0.60,
		scenario: func(company string) string {
			return fmt.Sprintf("Evaluate %s's production efficiency and pricing strategy by calculating the Gross Profit Margin.", company)
		},
		data: func(revenue int64, margin float64) []LineItem {
			return []LineItem{
				{ItemRevenue, revenue},
				{ItemCOGS, int64(float64(revenue) * (1 - margin))},
			}
		},
		value: func(revenue, cogs int64) float64 {
			return quotient(revenue-cogs, revenue)
		},
		narrative: func(v float64) string {
			return fmt.Sprintf("Gross profit margin shows the percentage of revenue remaining after accounting for direct production costs. A %.1f%% margin means for every $1 of sales, the company keeps $%.2f as gross profit.", v*100, v)
		},
		derive: func(revenue, cogs int64) []string {
			gross := revenue - cogs
			m := quotient(gross, revenue)
			return []string{
				fmt.Sprintf("Gross Profit = Revenue - COGS = %s - %s = %s", Dollars(revenue), Dollars(cogs), Dollars(gross)),
				fmt.Sprintf("Gross Profit Margin = Gross Profit / Revenue = %s / %s", Dollars(gross), Dollars(revenue)),
				fmt.Sprintf("= %.2f or %.1f%%", m, m*100),
			}
		},
	},
	ReturnOnEquity: {
		name:      "Return on Equity",
		slug:      "return_on_equity",
		alias:     "roe",
		formula:   "Return on Equity = Net Income / Average Shareholders' Equity",
		tolerance: 0.01,
		precision: 2,
		bands: []Band{
			{BandGood, "≥ 15% - Excellent profitability"},
			{BandAverage, "8% - 14% - Reasonable returns"},
			{BandPoor, "< 8% - Poor use of equity"},
		},
		baseMin: 500000, baseMax: 2000000,
		targetMin: 0.05, targetMax: 0.35,
		scenario: func(company string) string {
			return fmt.Sprintf("As an investor, assess how efficiently %s generates profits from shareholders' investments. Calculate Return on Equity (ROE).", company)
		},
		data: func(equity int64, roe float64) []LineItem {
			return []LineItem{
				{ItemNetIncome, int64(float64(equity) * roe)},
				{ItemAverageEquity, equity},
			}
		},
		value: quotient,
		narrative: func(v float64) string {
			return fmt.Sprintf("ROE measures how effectively management uses shareholders' money to generate profits. A %.1f%% ROE means the company generates $%.2f profit for every $1 of equity.", v*100, v)
		},
		derive: func(netIncome, equity int64) []string {
			roe := quotient(netIncome, equity)
			return []string{
				fmt.Sprintf("Net Income / Average Shareholders' Equity = %s / %s", Dollars(netIncome), Dollars(equity)),
				fmt.Sprintf("= %.2f or %.1f%%", roe, roe*100),
			}
		},
	},
	InventoryTurnover: {
		name:      "Inventory Turnover",
		slug:      "inventory_turnover",
		alias:     "it",
		formula:   "Inventory Turnover = Cost of Goods Sold / Average Inventory",
		tolerance: 0.1,
		precision: 1,
		bands: []Band{
			{BandGood, "≥ 8 - Excellent inventory management"},
			{BandAverage, "4 - 7 - Reasonable turnover"},
			{BandPoor, "< 4 - Slow-moving inventory, potential obsolescence"},
		},
		baseMin: 600000, baseMax: 1800000,
		targetMin: 3, targetMax: 12,
		scenario: func(company string) string {
			return fmt.Sprintf("Analyze the inventory management efficiency of %s by calculating the Inventory Turnover Ratio.", company)
		},
		data: func(cogs int64, turnover float64) []LineItem {
			return []LineItem{
				{ItemCOGS, cogs},
				{ItemAverageInventory, int64(float64(cogs) / turnover)},
			}
		},
		value: quotient,
		narrative: func(v float64) string {
			return fmt.Sprintf("This ratio shows how many times a company sells and replaces its inventory during a period. A ratio of %.1f means the company turns over its inventory %.1f times per year.", v, v)
		},
		derive: func(cogs, inventory int64) []string {
			return []string{
				fmt.Sprintf("Cost of Goods Sold / Average Inventory = %s / %s", Dollars(cogs), Dollars(inventory)),
				fmt.Sprintf("= %.1f times", quotient(cogs, inventory)),
			}
		},
	},
}

// mustVariant returns the variant for t. An unknown type can only come from
// a programming error, so it panics rather than returning an error.
func mustVariant(t RatioType) variant {
	v, ok := variants[t]
	if !ok {
		panic(fmt.Sprintf("problemgen: unknown ratio type %d", int(t)))
	}
	return v
}

func quotient(a, b int64) float64 {
	return float64(a) / float64(b)
}

// Dollars formats an amount with thousands separators, e.g. "$1,250,000".
func Dollars(amount int64) string {
	return "$" + humanize.Comma(amount)
}
