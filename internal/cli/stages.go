package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/decker502/resignation/pkg/config"
	"github.com/decker502/resignation/pkg/game"
	"github.com/spf13/cobra"
)

func newStagesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "stages",
		Short:        "List the stage sequence",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := config.LoadContentTable(opts.contentPath, game.StageNames())
			if err != nil {
				return err
			}
			return printStages(cmd.OutOrStdout(), table)
		},
	}
}

func printStages(out io.Writer, table *config.ContentTable) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSTAGE\tFLAGS\tAUTO\tTITLE\tITEMS")
	for _, stage := range game.Stages() {
		content, _ := table.For(stage)

		flags := "-"
		switch {
		case stage.IsInitial():
			flags = "initial"
		case stage.IsTerminal():
			flags = "terminal"
		}
		auto := "-"
		if d, ok := stage.AutoAdvanceAfter(); ok {
			auto = d.String()
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n",
			stage.Ordinal(), stage, flags, auto, content.Title, len(content.Items))
	}
	return w.Flush()
}
