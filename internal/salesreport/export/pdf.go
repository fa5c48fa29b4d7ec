package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	salesreportdomain "github.com/tradeloghq/tradelog/internal/salesreport/domain"
)

func formatPDF(snapshot *salesreportdomain.SalesSnapshot) ([]byte, error) {
	cfg := config.NewBuilder().Build()
	m := maroto.New(cfg)

	m.AddRow(10, text.NewCol(12, "Sales & Renewal Report", props.Text{
		Size:  14,
		Style: fontstyle.Bold,
		Align: align.Center,
	}))
	m.AddRow(6, text.NewCol(12, "Generated "+snapshot.GeneratedAt.Format(time.RFC1123), props.Text{
		Size:  8,
		Align: align.Center,
	}))

	addSummarySection(m, snapshot)
	addRenewalSection(m, snapshot)
	addTransactionTable(m, snapshot)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func addSummarySection(m core.Maroto, snapshot *salesreportdomain.SalesSnapshot) {
	m.AddRow(8, text.NewCol(12, "Summary", props.Text{Size: 11, Style: fontstyle.Bold, Top: 2}))

	rows := []core.Row{
		summaryRow("Total revenue", formatAmount(snapshot.TotalRevenue)),
		summaryRow("Total transactions", strconv.FormatInt(snapshot.TotalTransactions, 10)),
		summaryRow("Today", windowLine(snapshot.SalesToday)),
		summaryRow("This week", windowLine(snapshot.SalesWeek)),
		summaryRow("This month", windowLine(snapshot.SalesMonth)),
		summaryRow("PayPal", windowLine(snapshot.GatewayStats.PayPal)),
		summaryRow("Razorpay", windowLine(snapshot.GatewayStats.Razorpay)),
	}
	m.AddRows(rows...)
}

func addRenewalSection(m core.Maroto, snapshot *salesreportdomain.SalesSnapshot) {
	m.AddRow(8, text.NewCol(12, "Renewals", props.Text{Size: 11, Style: fontstyle.Bold, Top: 2}))
	m.AddRows(
		summaryRow("Due today", strconv.FormatInt(snapshot.Renewals.DueToday, 10)),
		summaryRow("Due this week", strconv.FormatInt(snapshot.Renewals.DueThisWeek, 10)),
		summaryRow("Missed (last 7 days)", strconv.FormatInt(snapshot.Renewals.Missed, 10)),
	)
}

func addTransactionTable(m core.Maroto, snapshot *salesreportdomain.SalesSnapshot) {
	m.AddRow(8, text.NewCol(12, "Transactions", props.Text{Size: 11, Style: fontstyle.Bold, Top: 2}))

	headerStyle := props.Text{Size: 8, Style: fontstyle.Bold}
	m.AddRow(6,
		text.NewCol(3, "Date", headerStyle),
		text.NewCol(3, "User", headerStyle),
		text.NewCol(2, "Amount", headerStyle),
		text.NewCol(2, "Gateway", headerStyle),
		text.NewCol(2, "Plan", headerStyle),
	)

	cellStyle := props.Text{Size: 8}
	for _, tx := range snapshot.AllTransactions {
		m.AddRow(5,
			text.NewCol(3, formatTxDate(tx.CreatedAt), cellStyle),
			text.NewCol(3, tx.UserName, cellStyle),
			text.NewCol(2, formatAmount(tx.Amount)+" "+tx.Currency, cellStyle),
			text.NewCol(2, tx.Gateway, cellStyle),
			text.NewCol(2, tx.PlanType, cellStyle),
		)
	}
}

func summaryRow(label, value string) core.Row {
	return row.New(6).Add(
		text.NewCol(4, label, props.Text{Size: 9}),
		text.NewCol(8, value, props.Text{Size: 9}),
	)
}

func windowLine(stats salesreportdomain.WindowStats) string {
	return fmt.Sprintf("%d transactions, %s", stats.Count, formatAmount(stats.Revenue))
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

func formatTxDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}
