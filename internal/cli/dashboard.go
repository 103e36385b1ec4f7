package cli

import (
	"context"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// Dashboard loads and prints the overview screen: headline counters, weekly
// reports, and the three attention lists. The five backend calls run in
// parallel; any failure fails the whole screen.
func (a *App) Dashboard(ctx context.Context) error {
	d, err := a.svc.LoadDashboard(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
		return err
	}

	var b strings.Builder

	b.WriteString(sectionStyle.Render("Overview"))
	b.WriteString(fmt.Sprintf("\n  Users: %d   Doctors: %d   Pharmacies: %d   Orders: %d   Revenue: %s\n",
		d.Overview.TotalUsers, d.Overview.TotalDoctors, d.Overview.TotalPharmacies,
		d.Overview.TotalOrders, d.Overview.Revenue.StringFixed(2)))

	b.WriteString(sectionStyle.Render("This week"))
	b.WriteString(fmt.Sprintf("\n  New users: %d   Orders: %d   Revenue: %s   Pending verifications: %d\n",
		d.Reports.NewUsersThisWeek, d.Reports.OrdersThisWeek,
		d.Reports.RevenueThisWeek.StringFixed(2), d.Reports.PendingVerification))

	b.WriteString(sectionStyle.Render("Pending verifications"))
	b.WriteString("\n")
	if len(d.PendingVerifications) == 0 {
		b.WriteString(dimStyle.Render("  none") + "\n")
	}
	for _, v := range d.PendingVerifications {
		b.WriteString(fmt.Sprintf("  %s  %s (%s)\n", v.ID, v.ApplicantName, v.Type))
	}

	b.WriteString(sectionStyle.Render("Open tickets"))
	b.WriteString("\n")
	if len(d.OpenTickets) == 0 {
		b.WriteString(dimStyle.Render("  none") + "\n")
	}
	for _, tk := range d.OpenTickets {
		b.WriteString(fmt.Sprintf("  %s  %s [%s]\n", tk.ID, tk.Subject, tk.Priority))
	}

	b.WriteString(sectionStyle.Render("Top doctors"))
	b.WriteString("\n")
	for i, doc := range d.TopDoctors {
		b.WriteString(fmt.Sprintf("  %d. %s (%s)  rating %.1f  %d appointments\n",
			i+1, doc.Name, doc.Specialization, doc.Rating, doc.Appointments))
	}

	fmt.Fprint(a.out, b.String())
	return nil
}
