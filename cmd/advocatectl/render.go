package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"advocate-directory/internal/delivery/dto"
	"advocate-directory/internal/query"
)

type pageView struct {
	Advocates   []dto.AdvocateResponse
	TotalItems  int
	TotalPages  int
	CurrentPage int
	PageSize    int
}

func renderPage(w io.Writer, v pageView) {
	if len(v.Advocates) == 0 {
		fmt.Fprintln(w, "No advocates found")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "FIRST NAME\tLAST NAME\tCITY\tDEGREE\tSPECIALTIES\tYEARS\tPHONE")
		for _, a := range v.Advocates {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
				a.FirstName, a.LastName, a.City, a.Degree,
				strings.Join(a.Specialties, "; "), a.YearsOfExperience, formatPhone(a.PhoneNumber))
		}
		tw.Flush()
	}

	first, last := query.ItemRange(v.CurrentPage, v.PageSize, v.TotalItems)
	fmt.Fprintf(w, "Showing %d to %d of %d results\n", first, last, v.TotalItems)
	if v.TotalPages > 1 {
		fmt.Fprintln(w, pageStrip(v.CurrentPage, v.TotalPages))
	}
}

// pageStrip renders the page numbers with the current page bracketed.
func pageStrip(current, totalPages int) string {
	items := query.PageNumbers(current, totalPages)
	parts := make([]string, 0, len(items)+2)
	if query.HasPrevious(current) {
		parts = append(parts, "<")
	}
	for _, item := range items {
		switch {
		case item.Ellipsis:
			parts = append(parts, "...")
		case item.Number == current:
			parts = append(parts, "["+strconv.Itoa(item.Number)+"]")
		default:
			parts = append(parts, strconv.Itoa(item.Number))
		}
	}
	if query.HasNext(current, totalPages) {
		parts = append(parts, ">")
	}
	return strings.Join(parts, " ")
}

// formatPhone renders ten-digit numbers as (555) 123-4567 and leaves anything else untouched.
func formatPhone(phone string) string {
	if len(phone) != 10 {
		return phone
	}
	return fmt.Sprintf("(%s) %s-%s", phone[:3], phone[3:6], phone[6:])
}
