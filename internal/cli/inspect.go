package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jarretjeter/Spotify-Data-Loader/internal/dataset"
	"github.com/jarretjeter/Spotify-Data-Loader/internal/loader"
)

var inspectFlags struct {
	head int
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <csv-file>",
	Short: "Print the head and a per-column summary of a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dl, err := loader.New(args[0], dataset.Options{TrimSpace: true})
		if err != nil {
			return err
		}

		fr := dl.Frame()
		cols := fr.Columns()
		fmt.Println(strings.Join(cols, " | "))
		for _, row := range dl.Head(inspectFlags.head) {
			cells := make([]string, len(cols))
			for i, c := range cols {
				if row[c] == nil {
					cells[i] = "<nil>"
					continue
				}
				cells[i] = fmt.Sprintf("%v", row[c])
			}
			fmt.Println(strings.Join(cells, " | "))
		}
		fmt.Println()
		dl.Info(os.Stdout)
		return nil
	},
}

func init() {
	inspectCmd.Flags().IntVar(&inspectFlags.head, "head", 5, "number of leading rows to print")
	rootCmd.AddCommand(inspectCmd)
}
