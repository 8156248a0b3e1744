package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riverline/pagekit/config"
	"github.com/riverline/pagekit/db"
	q "github.com/riverline/pagekit/query"
	"github.com/riverline/pagekit/runtime"
)

var (
	flagLimit     int
	flagInclusive bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Pages through a table and prints each page as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		orm, err := db.Open(flagDSN)
		if err != nil {
			return err
		}

		source := db.NewSource(orm, flagTable)
		if flagInclusive {
			source = source.InclusiveBounds()
		}

		paginator := runtime.NewPaginator[map[string]any](source, recordCursors(), config.Limits())

		input := map[string]any{
			"limit":   flagLimit,
			"orderBy": []any{map[string]any{"created_at": "asc"}, map[string]any{"id": "asc"}},
		}

		for {
			response, err := paginator.List(cmd.Context(), input)
			if err != nil {
				return err
			}

			out, err := json.Marshal(response)
			if err != nil {
				return err
			}
			fmt.Println(string(out))

			pageInfo := response["pageInfo"].(map[string]any)
			if next, ok := pageInfo["hasNextPage"].(bool); !ok || !next {
				return nil
			}
			input["after"] = pageInfo["endCursor"]
		}
	},
}

func init() {
	listCmd.Flags().IntVar(&flagLimit, "limit", 10, "page size")
	listCmd.Flags().BoolVar(&flagInclusive, "inclusive", false, "use inclusive cursor bounds in the fetch")
}

func recordCursors() q.CursorPolicy[map[string]any] {
	return q.CursorPolicy[map[string]any]{
		Generate: func(record map[string]any) q.Cursor {
			return q.Cursor{record["created_at"], record["id"]}
		},
		Predicates: []q.Predicate{q.NotNil, q.NotNil},
	}
}
