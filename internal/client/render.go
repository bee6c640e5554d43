package client

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-bot-keeper/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

var clientHeaders = []string{"ID", "HOMESERVER", "ENABLED", "STARTED", "AUTOJOIN", "SYNC", "DISPLAY NAME", "REFS"}

func clientRow(c models.ClientView) []string {
	return []string{
		c.ID,
		c.Homeserver,
		strconv.FormatBool(c.Enabled),
		strconv.FormatBool(c.Started),
		strconv.FormatBool(c.Autojoin),
		strconv.FormatBool(c.Sync),
		c.DisplayName,
		strconv.Itoa(len(c.References)),
	}
}

func renderClients(w io.Writer, clients []models.ClientView) error {
	if len(clients) == 0 {
		_, err := fmt.Fprintln(w, helpStyle.Render("no clients registered"))
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(clientHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, c := range clients {
		t.Row(clientRow(c)...)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func renderClient(w io.Writer, c models.ClientView) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render(c.ID))
	b.WriteString("\n")
	for i, value := range clientRow(c)[1:] {
		fmt.Fprintf(&b, "%-14s %s\n", strings.ToLower(clientHeaders[i+1])+":", value)
	}
	fmt.Fprintf(&b, "%-14s %s\n", "avatar url:", c.AvatarURL)
	if c.AccessToken != "" {
		fmt.Fprintf(&b, "%-14s %s\n", "access token:", c.AccessToken)
	}
	if len(c.References) > 0 {
		fmt.Fprintf(&b, "%-14s %s\n", "referenced by:", strings.Join(c.References, ", "))
	}

	_, err := fmt.Fprintln(w, boxStyle.Render(strings.TrimRight(b.String(), "\n")))
	return err
}
