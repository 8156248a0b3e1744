package cmd

import (
	"fmt"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/riverline/pagekit/db"
)

var flagCount int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Creates the demo table and fills it with records",
	RunE: func(cmd *cobra.Command, args []string) error {
		orm, err := db.Open(flagDSN)
		if err != nil {
			return err
		}

		ddl := fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS %s (id TEXT PRIMARY KEY, name TEXT NOT NULL, created_at TIMESTAMPTZ NOT NULL)",
			flagTable,
		)
		if err := orm.Exec(ddl).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		for i := 0; i < flagCount; i++ {
			row := map[string]any{
				"id":         ksuid.New().String(),
				"name":       fmt.Sprintf("record %d", i+1),
				"created_at": now.Add(time.Duration(i) * time.Second),
			}
			if err := orm.Table(flagTable).Create(row).Error; err != nil {
				return err
			}
		}

		fmt.Printf("seeded %d records into %s\n", flagCount, flagTable)
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&flagCount, "count", 100, "number of records to create")
}
