package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTokensCommand(ctx *commandContext) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "tokens <source>",
		Short: "Show the caption directory a compile would produce",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, release, err := ctx.newCompiler()
			if err != nil {
				return err
			}
			defer release()

			res, err := svc.Plan(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			headers := []string{"Token", "CRC32", "Block", "Offset", "Length"}
			rows := make([][]string, 0, len(res.File.Entries))
			for _, e := range res.File.Entries {
				rows = append(rows, []string{
					e.Token,
					fmt.Sprintf("%08x", e.CRC32),
					strconv.FormatUint(uint64(e.Block), 10),
					strconv.FormatUint(uint64(e.Offset), 10),
					strconv.FormatUint(uint64(e.Length), 10),
				})
			}

			out := cmd.OutOrStdout()
			if plain || !isTerminal(out) {
				fmt.Fprint(out, renderTSV(rows))
				return nil
			}
			fmt.Fprintf(out, "%s (%s): %d captions in %d blocks, %d bytes -> %s\n",
				res.Language,
				res.LanguageTag,
				len(res.File.Entries),
				res.File.Header.BlockCount,
				res.File.Size(),
				res.Output,
			)
			fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print tab-separated rows even on a terminal")
	return cmd
}
