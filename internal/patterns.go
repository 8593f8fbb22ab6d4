package internal

import (
	"fmt"
	"os"

	"github.com/consigcody94/repo-doctor/core/secscan"
	"github.com/consigcody94/repo-doctor/internal/contract"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintPatternTable renders the static secret pattern table so operators
// can see exactly which rules a scan applies.
func PrintPatternTable(cfg *contract.Config) error {
	var rows [][]string
	for _, pattern := range secscan.Table {
		rows = append(rows, []string{
			pattern.Name,
			contract.SeverityLabel(pattern.Severity, cfg.UseColors),
			string(pattern.Category),
			pattern.Regex.String(),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Pattern", "Severity", "Category", "Expression"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Printf("%d patterns registered\n", len(secscan.Table))
	return nil
}
