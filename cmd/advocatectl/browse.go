package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"advocate-directory/internal/client"
	"advocate-directory/internal/domain/entity"

	"github.com/spf13/cobra"
)

const browseHelp = `type to search, or:
  :sort <field> [asc|desc]   sort by a column (":sort" alone clears it)
  :page <n>  :next  :prev    move between pages
  :size <n>                  change the page size
  :refresh                   retry the current query
  :quit                      leave`

func newBrowseCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactively search, sort and page through the directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var outMu sync.Mutex

			transport := client.NewHTTPTransport(root.baseURL, root.cfg.Client.Timeout)
			coordinator := client.NewCoordinator(transport, root.log,
				client.WithDebounce(root.cfg.Client.Debounce),
				client.WithSpinnerGrace(root.cfg.Client.SpinnerGrace),
				client.WithListener(func(s client.Snapshot) {
					outMu.Lock()
					defer outMu.Unlock()
					renderSnapshot(out, s)
				}),
			)
			defer coordinator.Close()

			fmt.Fprintln(out, browseHelp)
			coordinator.Start()
			return browseLoop(cmd.InOrStdin(), out, &outMu, coordinator)
		},
	}
}

func browseLoop(in io.Reader, out io.Writer, outMu *sync.Mutex, c *client.Coordinator) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, ":") {
			c.OnSearchChange(line)
			continue
		}

		fields := strings.Fields(line)
		current := c.Snapshot()
		switch fields[0] {
		case ":quit", ":q":
			return nil
		case ":refresh":
			c.Refresh()
		case ":next":
			if current.TotalPages == 0 || current.Params.Page < current.TotalPages {
				c.OnPageChange(current.Params.Page + 1)
			}
		case ":prev":
			if current.Params.Page > 1 {
				c.OnPageChange(current.Params.Page - 1)
			}
		case ":page":
			c.OnPageChange(intArg(fields, entity.DefaultPage))
		case ":size":
			c.OnPageSizeChange(intArg(fields, entity.DefaultPageSize))
		case ":sort":
			field, order := entity.SortFieldNone, entity.SortOrderAsc
			if len(fields) > 1 {
				field = entity.SortField(fields[1])
			}
			if len(fields) > 2 {
				order = entity.ParseSortOrder(fields[2])
			}
			c.OnSortChange(field, order)
		default:
			outMu.Lock()
			fmt.Fprintln(out, browseHelp)
			outMu.Unlock()
		}
	}
	return scanner.Err()
}

func intArg(fields []string, fallback int) int {
	if len(fields) < 2 {
		return fallback
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func renderSnapshot(w io.Writer, s client.Snapshot) {
	switch {
	case s.State == client.StateDebouncing:
		return
	case s.Error != "":
		fmt.Fprintf(w, "Oops, something went wrong! %s\n", s.Error)
	case s.IsLoading:
		fmt.Fprintln(w, "Loading advocates...")
	case s.State == client.StateResolved:
		renderPage(w, pageView{
			Advocates:   s.Advocates,
			TotalItems:  s.TotalItems,
			TotalPages:  s.TotalPages,
			CurrentPage: s.CurrentPage,
			PageSize:    s.PageSize,
		})
	}
}
