package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spaceshare/spaceshare/core/assignlog"
	"github.com/spaceshare/spaceshare/core/model"
)

var (
	historyKind  string
	historyRun   string
	historySince time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored grouping runs",
	RunE:  listHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyKind, "kind", "", "only runs of this kind")
	historyCmd.Flags().StringVar(&historyRun, "run", "", "only the run with this id")
	historyCmd.Flags().DurationVar(&historySince, "since", 0, "only runs newer than this, e.g. 48h")
	rootCmd.AddCommand(historyCmd)
}

func listHistory(cmd *cobra.Command, args []string) error {
	q := assignlog.LogQuery{RunID: historyRun}
	if historyKind != "" {
		k, err := model.ParseKind(historyKind)
		if err != nil {
			return err
		}
		q.Kinds = []model.Kind{k}
	}
	if historySince > 0 {
		q.Start = time.Now().Add(-historySince)
	}

	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(svc)

	recs, err := svc.History(context.Background(), q)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, r := range recs {
		fmt.Fprintf(out, "%s  %s  %-9s  %d participants  %d groups  max %d/car  cut %.2fh\n",
			r.Timestamp.Format(time.RFC3339), r.RunID, r.Kind, len(r.Labels), len(r.Groups),
			r.Params.MaxPeoplePerCar, r.Params.MaxTimeDifference)
	}
	return nil
}
