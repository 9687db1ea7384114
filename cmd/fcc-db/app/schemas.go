package app

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/N7DR/fcc-db/internal/cmd/output"
	"github.com/N7DR/fcc-db/pkg/uls"
)

// layoutInfo describes one record layout for structured output.
type layoutInfo struct {
	Kind        string `json:"kind" yaml:"kind"`
	File        string `json:"file,omitempty" yaml:"file,omitempty"`
	Fields      int    `json:"fields" yaml:"fields"`
	Description string `json:"description" yaml:"description"`
}

// fieldInfo describes one field position for structured output.
type fieldInfo struct {
	Position int    `json:"position" yaml:"position"`
	Name     string `json:"name" yaml:"name"`
}

// NewSchemasCommand creates the schemas command, which describes the
// record layouts the merge understands.
func (a *App) NewSchemasCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "schemas [kind]",
		Short: "Describe the ULS record layouts",
		Long: `Schemas lists the record layouts read from the FCC extract files, plus
the layout of the merged output. With a kind argument (for example "AM"
or "hd") it lists that layout's fields by position.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := output.ParseFormat(format); err != nil {
				return err
			}
			f := output.DetectFormat(format)

			if len(args) == 1 {
				schema, err := uls.Lookup(uls.Kind(strings.ToUpper(args[0])))
				if err != nil {
					return err
				}
				if f == output.FormatTable {
					return output.Print(cmd.OutOrStdout(), f, fieldTable(schema))
				}
				return output.Print(cmd.OutOrStdout(), f, fieldInfos(schema))
			}

			if f == output.FormatTable {
				return output.Print(cmd.OutOrStdout(), f, layoutTable())
			}
			return output.Print(cmd.OutOrStdout(), f, layoutInfos())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: table, json, yaml (default: table on a terminal, json otherwise)")

	return cmd
}

func layoutInfos() []layoutInfo {
	schemas := uls.Schemas()
	out := make([]layoutInfo, 0, len(schemas))
	for _, s := range schemas {
		out = append(out, layoutInfo{
			Kind:        string(s.Kind()),
			File:        s.File(),
			Fields:      s.NumFields(),
			Description: s.Description(),
		})
	}
	return out
}

func layoutTable() output.Table {
	infos := layoutInfos()
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		file := info.File
		if file == "" {
			file = "-"
		}
		rows = append(rows, []string{info.Kind, file, strconv.Itoa(info.Fields), info.Description})
	}
	return output.Table{
		Headers: []string{"Kind", "File", "Fields", "Description"},
		Rows:    rows,
	}
}

func fieldInfos(s *uls.Schema) []fieldInfo {
	names := s.FieldNames()
	out := make([]fieldInfo, 0, len(names))
	for i, name := range names {
		out = append(out, fieldInfo{Position: i, Name: name})
	}
	return out
}

func fieldTable(s *uls.Schema) output.Table {
	infos := fieldInfos(s)
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{strconv.Itoa(info.Position), info.Name})
	}
	return output.Table{
		Headers: []string{"Position", "Name"},
		Rows:    rows,
	}
}
