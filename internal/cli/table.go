package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/forPelevin/goalcut/internal/types"
)

func renderClipTable(clips []types.ManifestClip) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Highlight", "Window", "Keywords", "File"})
	for _, c := range clips {
		tw.AppendRow(table.Row{
			c.ID,
			fmt.Sprintf("%.2fs", c.HighlightSec),
			fmt.Sprintf("%.2f-%.2f", c.StartSec, c.EndSec),
			strings.Join(c.Keywords, ", "),
			c.File,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
