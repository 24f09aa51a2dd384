// Command fna3dgen generates the FNA3D constant tables and their typed
// wrappers from sys/constants.yaml.
//
//	fna3dgen generate [--table sys/constants.yaml] [--root .]
//	fna3dgen check    [--table sys/constants.yaml] [--root .]
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
)

var errStale = errors.New("fna3dgen: generated files are out of date")

type options struct {
	table   string
	root    string
	verbose bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "fna3dgen",
		Short:         "Generate FNA3D constant tables and typed wrappers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.table, "table", "sys/constants.yaml", "constant table")
	cmd.PersistentFlags().StringVar(&opts.root, "root", ".", "module root")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "list written files")

	cmd.AddCommand(newGenerateCommand(opts))
	cmd.AddCommand(newCheckCommand(opts))
	return cmd
}

func newGenerateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write the generated files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			files, err := render(opts)
			if err != nil {
				return err
			}
			for _, path := range sortedKeys(files) {
				dst := filepath.Join(opts.root, path)
				if err := os.WriteFile(dst, files[path], 0o644); err != nil {
					return fmt.Errorf("write %s: %w", dst, err)
				}
				if opts.verbose {
					fmt.Fprintln(cmd.OutOrStdout(), dst)
				}
			}
			return nil
		},
	}
}

func newCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the table and fail if generated files are stale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			files, err := render(opts)
			if err != nil {
				return err
			}
			var stale []error
			for _, path := range sortedKeys(files) {
				dst := filepath.Join(opts.root, path)
				cur, err := os.ReadFile(dst)
				if err != nil || !bytes.Equal(cur, files[path]) {
					stale = append(stale, fmt.Errorf("%w: %s", errStale, dst))
				}
			}
			if len(stale) == 0 && opts.verbose {
				fmt.Fprintln(cmd.OutOrStdout(), "up to date")
			}
			return errors.Join(stale...)
		},
	}
}

func render(opts *options) (map[string][]byte, error) {
	t, err := loadTable(filepath.Join(opts.root, opts.table))
	if err != nil {
		return nil, err
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return generate(t)
}

func sortedKeys(m map[string][]byte) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
