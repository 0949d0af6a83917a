package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var plain bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded compiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			builds, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(builds) == 0 {
				fmt.Fprintln(out, "No builds recorded")
				return nil
			}

			rows := make([][]string, 0, len(builds))
			for _, b := range builds {
				rows = append(rows, []string{
					shortID(b.ID),
					b.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					b.Language,
					strconv.Itoa(b.Entries),
					strconv.Itoa(b.Blocks),
					strconv.FormatInt(b.Size, 10),
					filepath.Base(b.SourcePath),
					b.OutputPath,
				})
			}
			if plain || !isTerminal(out) {
				fmt.Fprint(out, renderTSV(rows))
				return nil
			}
			headers := []string{"ID", "Compiled", "Language", "Captions", "Blocks", "Bytes", "Source", "Output"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft, alignLeft}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum builds to show (0 for all)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print tab-separated rows even on a terminal")
	cmd.AddCommand(newHistoryClearCommand(ctx))
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded compiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d builds\n", removed)
			return nil
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
