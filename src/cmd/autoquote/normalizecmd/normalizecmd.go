package normalizecmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"autoquote/src/internal/batch"
	"autoquote/src/internal/gbt"
	"autoquote/src/internal/parse"
)

// New returns the normalize command. A single string is passed with -t; batch
// input comes from --file or stdin, one citation per line, with per-line
// failures reported without aborting the rest.
func New() *cobra.Command {
	var (
		text   string
		file   string
		format string
	)
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Convert raw citation strings to GB/T 7714 references",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "text", "json", "yaml":
			default:
				return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
			}
			if strings.TrimSpace(text) != "" {
				return runSingle(cmd.OutOrStdout(), text, format)
			}
			input, err := readInput(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			return writeResults(cmd.OutOrStdout(), batch.Run(input), format)
		},
	}
	cmd.Flags().StringVarP(&text, "text", "t", "", "Single raw citation string to normalize")
	cmd.Flags().StringVarP(&file, "file", "f", "", "File with one citation per line (default: stdin)")
	cmd.Flags().StringVarP(&format, "format", "o", "text", "Output format: text, json or yaml")
	return cmd
}

func runSingle(w io.Writer, text, format string) error {
	entry, err := parse.Parse(text)
	if err != nil {
		return err
	}
	formatted, err := gbt.Format(entry)
	if err != nil {
		return err
	}
	if format == "text" {
		_, err = fmt.Fprintln(w, formatted)
		return err
	}
	return writeResults(w, []batch.Result{{Raw: strings.TrimSpace(text), Success: true, Type: string(entry.Kind()), GBT: formatted}}, format)
}

func readInput(stdin io.Reader, file string) (string, error) {
	if file == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func writeResults(w io.Writer, results []batch.Result, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(results)
	default:
		for _, r := range results {
			if r.Success {
				if _, err := fmt.Fprintln(w, r.GBT); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "error: %s\n", r.Error); err != nil {
				return err
			}
		}
		return nil
	}
}
