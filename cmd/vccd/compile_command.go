package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"vccd/internal/compiler"
)

func newCompileCommand(ctx *commandContext) *cobra.Command {
	var output string
	var force bool

	cmd := &cobra.Command{
		Use:   "compile <source>...",
		Short: "Compile caption sources into VCCD files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 && output != "" && !isDirectoryTarget(output) {
				return fmt.Errorf("--output must be a directory when compiling %d sources", len(args))
			}

			svc, release, err := ctx.newCompiler()
			if err != nil {
				return err
			}
			defer release()

			out := cmd.OutOrStdout()
			var errs []error
			for _, src := range args {
				res, err := svc.CompileFile(cmd.Context(), compiler.Request{
					Source: src,
					Output: output,
					Force:  force,
				})
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", src, err))
					continue
				}
				if res.Skipped {
					fmt.Fprintf(out, "Skipped %s (unchanged, %s)\n", src, res.Output)
					continue
				}
				fmt.Fprintf(out, "Compiled %s -> %s (%s, %d captions, %d blocks, %d bytes)\n",
					src,
					res.Output,
					res.Language,
					len(res.File.Entries),
					res.File.Header.BlockCount,
					res.File.Size(),
				)
			}
			return errors.Join(errs...)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file or directory (defaults to paths.output_dir)")
	cmd.Flags().BoolVar(&force, "force", false, "Compile even when the output is unchanged")
	return cmd
}

func isDirectoryTarget(path string) bool {
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
