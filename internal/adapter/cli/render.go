package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wspjoy2011/sql-repository-example/internal/usecase/user"
)

var tableHeaders = []string{"ID", "Email", "Name", "Surname", "Age"}

// renderTable writes users as a plain-text table with column widths sized
// to the widest cell. An empty slice prints a short notice instead.
func renderTable(out io.Writer, users []user.User) {
	if len(users) == 0 {
		fmt.Fprintln(out, "No users found.")
		return
	}

	widths := make([]int, len(tableHeaders))
	for i, header := range tableHeaders {
		widths[i] = len(header)
	}

	rows := make([][]string, len(users))
	for i, u := range users {
		rows[i] = []string{
			strconv.FormatInt(u.ID, 10),
			u.Email,
			u.Name,
			u.Surname,
			strconv.Itoa(u.Age),
		}
		for col, cell := range rows[i] {
			if len(cell) > widths[col] {
				widths[col] = len(cell)
			}
		}
	}

	columns := make([]string, len(tableHeaders))

	separator := make([]string, len(widths))
	for i, width := range widths {
		separator[i] = strings.Repeat("-", width)
	}
	separatorRow := strings.Join(separator, "-+-")

	for i, header := range tableHeaders {
		columns[i] = pad(header, widths[i])
	}

	fmt.Fprintln(out, separatorRow)
	fmt.Fprintln(out, strings.Join(columns, " | "))
	fmt.Fprintln(out, separatorRow)

	for _, row := range rows {
		for i, cell := range row {
			columns[i] = pad(cell, widths[i])
		}
		fmt.Fprintln(out, strings.Join(columns, " | "))
	}
	fmt.Fprintln(out, separatorRow)
}

// renderUser writes a single user as a one-line summary.
func renderUser(out io.Writer, u user.User) {
	fmt.Fprintf(out, "User found: id=%d email=%s name=%s surname=%s age=%d\n",
		u.ID, u.Email, u.Name, u.Surname, u.Age)
}

func pad(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return value + strings.Repeat(" ", width-len(value))
}
