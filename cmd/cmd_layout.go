package cmd

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/moby/term"
	"github.com/nanovms/genboot/log"
	"github.com/nanovms/genboot/uboot"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/ttacon/chalk"
)

// LayoutCommand provides the layout command
func LayoutCommand(fs afero.Fs) *cobra.Command {
	var cmdLayout = &cobra.Command{
		Use:   "layout [yaml_file] <directory>",
		Short: "Show the memory occupied by every artifact the script loads",
		Args:  inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return layoutCommandHandler(cmd, fs, args)
		},
	}
	return cmdLayout
}

func layoutCommandHandler(cmd *cobra.Command, fs afero.Fs, args []string) error {
	config, in, err := loadInput(cmd, fs, args)
	if err != nil {
		return err
	}

	regions, err := uboot.NewCompiler(config, uboot.NewFileSizer(fs, in.Dir, nil)).Layout()
	if err != nil {
		return err
	}
	overlaps := uboot.Overlapping(regions)

	out := cmd.OutOrStdout()
	_, color := term.GetFdInfo(out)

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Name", "File", "Start", "End", "Size", "Overlaps"})
	if color {
		table.SetHeaderColor(
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
			tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor})
	}
	table.SetRowLine(true)
	for i, r := range regions {
		var row []string
		row = append(row, r.Name)
		row = append(row, r.File)
		row = append(row, uboot.Hex8(r.Start))
		row = append(row, uboot.Hex8(r.End()))
		row = append(row, humanize.IBytes(r.Size))
		row = append(row, overlapNames(regions, overlaps[i], color))
		table.Append(row)
	}
	table.Render()

	if len(overlaps) > 0 {
		log.Warnf("Warning: %d artifacts overlap in memory", len(overlaps))
	}
	return nil
}

func overlapNames(regions []uboot.Region, indexes []int, color bool) string {
	if len(indexes) == 0 {
		return ""
	}
	names := make([]string, len(indexes))
	for i, j := range indexes {
		names[i] = regions[j].Name
	}
	list := strings.Join(names, ", ")
	if color {
		return chalk.Red.Color(list)
	}
	return list
}
