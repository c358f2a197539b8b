package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/retail-sales-api/infrastructure/database/sqldb"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/internal/usecases/listing"
	"github.com/vfg2006/retail-sales-api/pkg/utils"
)

type explanation struct {
	Criteria domain.FilterCriteria `json:"criteria"`
	Count    repository.QuerySpec  `json:"count"`
	Data     repository.QuerySpec  `json:"data"`
}

func explainCmd() *cobra.Command {
	var rawQuery string

	cmd := &cobra.Command{
		Use:     "explain",
		Short:   "Mostra os filtros normalizados e as queries de uma listagem",
		Example: `  salesctl explain --query "regions=North,East&ageMin=40&ageMax=20&sort=amount:desc&page=2"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := explainQuery(rawQuery, cfg.Database.Driver)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&rawQuery, "query", "q", "", "query string de /api/sales")

	return cmd
}

// explainQuery não toca o banco: usa apenas o dialeto para os placeholders
func explainQuery(rawQuery, driver string) (string, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if err != nil {
		return "", fmt.Errorf("query string inválida: %w", err)
	}

	criteria := listing.NormalizeParams(values)

	queries, err := repository.NewSalesQueryBuilder(sqldb.PlaceholderFor(driver)).Build(criteria)
	if err != nil {
		return "", err
	}

	return utils.PrettyJson(explanation{
		Criteria: criteria,
		Count:    queries.Count,
		Data:     queries.Data,
	})
}
