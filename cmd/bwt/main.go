// Command bwt applies the Burrows-Wheeler Transform to files or stdin and
// reverses it again. Encoded output is stored as a small framed pair of the
// transformed bytes and the row index.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"bwtkit/bwt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

const encodedExtension = ".bwt"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "bwt",
		Short:        "Burrows-Wheeler Transform encoder and decoder",
		SilenceUsage: true,
	}

	root.AddCommand(newEncodeCmd(), newDecodeCmd())
	return root
}

func newEncodeCmd() *cobra.Command {
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "transform a file (or stdin) and write the framed result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, name, err := readInput(args)
			if err != nil {
				return err
			}

			transformed, index, err := bwt.Transform(input)
			if err != nil {
				return err
			}

			if toStdout || name == "" {
				return writeFrame(cmd.OutOrStdout(), transformed, index)
			}

			var buf bytes.Buffer
			if err := writeFrame(&buf, transformed, index); err != nil {
				return err
			}

			outName := encodedName(name)
			if err := os.WriteFile(outName, buf.Bytes(), 0o644); err != nil {
				return errors.Wrapf(err, "writing %s", outName)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d bytes, row %d\n", outName, len(transformed), index)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&toStdout, "stdout", "c", false, "write the frame to stdout")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	var (
		toStdout      bool
		stripSentinel bool
	)

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "reverse a framed transform back to the original bytes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, name, err := readInput(args)
			if err != nil {
				return err
			}

			transformed, index, err := readFrame(bytes.NewReader(input))
			if err != nil {
				return err
			}

			original, err := bwt.Inverse(transformed, index)
			if err != nil {
				return err
			}

			if stripSentinel && len(original) > 0 && original[len(original)-1] == bwt.Sentinel {
				original = original[:len(original)-1]
			}

			if toStdout || name == "" {
				_, err := cmd.OutOrStdout().Write(original)
				return err
			}

			outName := decodedName(name)
			if err := os.WriteFile(outName, original, 0o644); err != nil {
				return errors.Wrapf(err, "writing %s", outName)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d bytes\n", outName, len(original))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&toStdout, "stdout", "c", false, "write the original bytes to stdout")
	cmd.Flags().BoolVar(&stripSentinel, "strip-sentinel", false, "drop the trailing sentinel from the output")
	return cmd
}

// readInput returns the full input bytes and the file name they came from,
// or "" when reading stdin.
func readInput(args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", errors.Wrap(err, "reading stdin")
		}
		return input, "", nil
	}

	input, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", errors.Wrapf(err, "reading %s", args[0])
	}

	return input, args[0], nil
}

func encodedName(name string) string {
	if ext := filepath.Ext(name); ext != "" && ext != encodedExtension {
		return strings.TrimSuffix(name, ext) + encodedExtension
	}

	return name + encodedExtension
}

func decodedName(name string) string {
	if strings.HasSuffix(name, encodedExtension) {
		return strings.TrimSuffix(name, encodedExtension) + ".out"
	}

	return name + ".out"
}
