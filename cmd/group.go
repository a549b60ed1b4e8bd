package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spaceshare/spaceshare/core/model"
	coremon "github.com/spaceshare/spaceshare/core/monitoring"
	"github.com/spaceshare/spaceshare/pkg/export"
)

var (
	groupKinds []string
	groupJSON  bool
	groupChart string
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Print the ride groups without writing or sending anything",
	RunE:  printGroups,
}

func init() {
	groupCmd.Flags().StringSliceVarP(&groupKinds, "kind", "k", nil, "kinds to group: arrival, departure (default from config)")
	groupCmd.Flags().BoolVar(&groupJSON, "json", false, "print JSON instead of text")
	groupCmd.Flags().StringVar(&groupChart, "chart", "", "also write an HTML chart of the groups to this file")
	rootCmd.AddCommand(groupCmd)
}

func printGroups(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kinds := make([]model.Kind, 0, len(groupKinds))
	for _, s := range groupKinds {
		k, err := model.ParseKind(s)
		if err != nil {
			return err
		}
		kinds = append(kinds, k)
	}

	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(svc)
	defer coremon.Recover()

	g, err := svc.Group(ctx, kinds...)
	if err != nil {
		return report("group", err)
	}
	if groupChart != "" {
		if err := export.WriteGroupChartFile(groupChart, g.Results, g.Names); err != nil {
			return err
		}
	}
	reports := g.Reports()
	out := cmd.OutOrStdout()
	if groupJSON {
		return export.WriteGroupsJSON(out, reports)
	}
	for _, r := range reports {
		fmt.Fprintf(out, "%s: %d groups, %d split\n", r.Kind, len(r.Groups), r.Splits)
		for _, grp := range r.Groups {
			fmt.Fprintf(out, "  %3d  %.2fh  %v\n", grp.Label, grp.Spread, grp.Members)
		}
	}
	return nil
}
