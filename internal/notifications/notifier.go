// Package notifications composes and fans out the daily batch emails.
package notifications

import (
	"context"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"money-manager-server/internal/managers"
	"money-manager-server/internal/scheduler"
	"money-manager-server/internal/schemas"
	"money-manager-server/internal/stores"
)

const cellStyle = "border:1px solid #add;padding:8px;"

// Notifier runs the daily reminder and daily expense digest jobs. A failed
// dispatch for one profile is logged and never stops the fan-out.
type Notifier struct {
	ProfileStore *stores.ProfileStore
	ExpenseStore *stores.TransactionStore
	MailManager  managers.MailMgr
	Clock        scheduler.Clock
	Location     *time.Location
	FrontendURL  string
}

func NewNotifier(profileStore *stores.ProfileStore, expenseStore *stores.TransactionStore, mailManager managers.MailMgr, clock scheduler.Clock, location *time.Location, frontendURL string) *Notifier {
	return &Notifier{
		ProfileStore: profileStore,
		ExpenseStore: expenseStore,
		MailManager:  mailManager,
		Clock:        clock,
		Location:     location,
		FrontendURL:  frontendURL,
	}
}

// DailyReminder emails every profile a static prompt to record the day's
// income and expenses.
func (n *Notifier) DailyReminder(ctx context.Context) {
	log.Info("Sending daily income and expense reminder")

	profiles, err := n.ProfileStore.FindAll(ctx)
	if err != nil {
		log.WithError(err).Error("Could not load profiles for daily reminder")
		return
	}

	for i := range profiles {
		profile := &profiles[i]
		body := "Hi " + profile.FullName + ",<br><br>" +
			"This is a friendly reminder to add your income and expenses for today in Money Manager.<br><br>" +
			"<a href=\"" + n.FrontendURL + "\" style='display:inline-block;padding:10px 20px;background-color:#4CAF50;color:#fff;text-decoration:none;border-radius:5px;font-weight:bold;'>Go to Money Manager</a>" +
			"<br><br>Best regards,<br>Money Manager Team"

		if err := n.MailManager.Send(profile.Email, "Daily reminder: Add your income and expenses", body); err != nil {
			log.WithError(err).Warn("Daily reminder could not be sent to " + profile.Email)
		}
	}

	log.Info("Daily income and expense reminder has been sent")
}

// DailyExpenseDigest emails every profile with expenses dated today a
// summary table. Profiles without expenses today receive nothing.
func (n *Notifier) DailyExpenseDigest(ctx context.Context) {
	log.Info("Sending daily expense digest")

	profiles, err := n.ProfileStore.FindAll(ctx)
	if err != nil {
		log.WithError(err).Error("Could not load profiles for daily expense digest")
		return
	}

	today := n.Clock.Now().In(n.Location)
	for i := range profiles {
		profile := &profiles[i]
		expenses, err := n.ExpenseStore.FindByProfileOnDate(ctx, profile.ID, today)
		if err != nil {
			log.WithError(err).Warn("Could not load today's expenses for " + profile.Email)
			continue
		}
		if len(expenses) == 0 {
			continue
		}

		body := "Hi " + profile.FullName + ",<br/><br/> Here is a summary of your expenses for today:<br/><br/>" +
			digestTable(expenses) +
			"<br/><br/>Best regards,<br/>Money Manager Team"

		if err := n.MailManager.Send(profile.Email, "Your daily Expense Summary", body); err != nil {
			log.WithError(err).Warn("Daily expense digest could not be sent to " + profile.Email)
		}
	}

	log.Info("Daily expense digest has been sent")
}

func digestTable(expenses []schemas.Transaction) string {
	var table strings.Builder
	table.WriteString("<table style='border-collapse:collapse;width:100%;'>")
	table.WriteString("<tr style='background-color:#f2f2f2;'>" +
		"<th style='" + cellStyle + "'>Sl.No</th>" +
		"<th style='" + cellStyle + "'>Name</th>" +
		"<th style='" + cellStyle + "'>Amount</th>" +
		"<th style='" + cellStyle + "'>Category</th></tr>")

	for i := range expenses {
		expense := &expenses[i]
		categoryName := "N/A"
		if expense.CategoryID != nil && expense.CategoryName != "" {
			categoryName = expense.CategoryName
		}
		table.WriteString("<tr>")
		table.WriteString("<td style='" + cellStyle + "'>" + strconv.Itoa(i+1) + "</td>")
		table.WriteString("<td style='" + cellStyle + "'>" + expense.Name + "</td>")
		table.WriteString("<td style='" + cellStyle + "'>" + strconv.FormatFloat(expense.Amount, 'f', -1, 64) + "</td>")
		table.WriteString("<td style='" + cellStyle + "'>" + categoryName + "</td>")
		table.WriteString("</tr>")
	}

	table.WriteString("</table>")
	return table.String()
}
