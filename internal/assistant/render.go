package assistant

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gitlab.com/dirk.krummacker/assistant/internal/model"
)

// table renders rows below a header with aligned columns and a leading 1-based index column.
func (a *Assistant) table(headers []string, rows [][]string) string {
	indexed := make([][]string, 0, len(rows))
	for i, row := range rows {
		indexed = append(indexed, append([]string{strconv.Itoa(i + 1)}, row...))
	}
	return a.render(append([]string{"#"}, headers...), indexed)
}

// contactsTable renders records with one column per attribute. Attributes that are not set leave
// their cell empty.
func (a *Assistant) contactsTable(records []*model.Record) string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		phones := record.Phones()
		values := make([]string, len(phones))
		for i, phone := range phones {
			values[i] = phone.String()
		}
		row := []string{record.Name().String(), strings.Join(values, "; "), "", "", ""}
		if email, set := record.Email(); set {
			row[2] = email.String()
		}
		if birthday, set := record.Birthday(); set {
			row[3] = birthday.String()
		}
		if address, set := record.Address(); set {
			row[4] = address.String()
		}
		rows = append(rows, row)
	}
	return a.table([]string{"Name", "Phones", "Email", "Birthday", "Address"}, rows)
}

// notesTable renders notes with their tags.
func (a *Assistant) notesTable(notes []*model.Note) string {
	rows := make([][]string, 0, len(notes))
	for _, note := range notes {
		tags := "No tags"
		if t := note.Tags(); len(t) > 0 {
			tags = strings.Join(t, ", ")
		}
		rows = append(rows, []string{note.Title(), note.Content(), tags})
	}
	return a.table([]string{"Title", "Content", "Tags"}, rows)
}

// helpGroups is the order of the groups in the help table.
var helpGroups = []string{"Contacts", "Birthdays", "Addresses", "Notes", "System"}

// help renders the commands grouped by area.
func (a *Assistant) help() string {
	var rows [][]string
	for _, group := range helpGroups {
		rows = append(rows, []string{group, ""})
		for _, c := range a.commands {
			if c.group == group {
				rows = append(rows, []string{"  " + c.usage, c.description})
			}
		}
	}
	return a.render([]string{"Command", "Description"}, rows)
}

// render writes a borderless table with left aligned columns separated by two spaces. Cells are
// never wrapped. Only the header line is colored.
func (a *Assistant) render(headers []string, rows [][]string) string {
	colored := make([]string, len(headers))
	for i, h := range headers {
		colored[i] = a.header.Sprint(h)
	}

	var buf bytes.Buffer
	t := tablewriter.NewWriter(&buf)
	t.SetHeader(colored)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetBorder(false)
	t.SetHeaderLine(false)
	t.SetRowSeparator("")
	t.SetColumnSeparator("")
	t.SetCenterSeparator("")
	t.SetTablePadding("  ")
	t.SetNoWhiteSpace(true)
	t.AppendBulk(rows)
	t.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
