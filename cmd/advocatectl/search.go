package main

import (
	"advocate-directory/internal/client"
	"advocate-directory/internal/domain/entity"

	"github.com/spf13/cobra"
)

func newSearchCmd(root *rootOptions) *cobra.Command {
	var (
		page      int
		pageSize  int
		sortBy    string
		sortOrder string
	)

	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Run one directory query and print the page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := entity.AdvocateQuery{
				Page:      page,
				PageSize:  pageSize,
				SortField: entity.SortField(sortBy),
				SortOrder: entity.ParseSortOrder(sortOrder),
			}
			if len(args) == 1 {
				params.SearchTerm = args[0]
			}

			transport := client.NewHTTPTransport(root.baseURL, root.cfg.Client.Timeout)
			result, err := transport.FetchAdvocates(cmd.Context(), params.Normalize())
			if err != nil {
				return err
			}

			renderPage(cmd.OutOrStdout(), pageView{
				Advocates:   result.Data,
				TotalItems:  result.TotalItems,
				TotalPages:  result.TotalPages,
				CurrentPage: result.CurrentPage,
				PageSize:    result.PageSize,
			})
			return nil
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", entity.DefaultPage, "page number")
	cmd.Flags().IntVarP(&pageSize, "page-size", "n", entity.DefaultPageSize, "items per page")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "field to sort by (firstName, lastName, city, degree, specialties, yearsOfExperience, phoneNumber)")
	cmd.Flags().StringVar(&sortOrder, "sort-order", string(entity.SortOrderAsc), "asc or desc")
	return cmd
}
