package cli

import (
	"encoding/json"
	"fmt"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-insights/internal/service/workbook"
)

type ScheduleCmd struct {
	Employee string `arg:"" help:"Employee identifier as it appears in the workbook."`
}

func (c *ScheduleCmd) Run(ctx *Context) error {
	req := schedule.ResolveScheduleRequest{Employee: c.Employee}
	if err := req.Validate(); err != nil {
		return err
	}

	sched := ctx.Resolver.Resolve(req.Employee)
	fmt.Fprintln(ctx.Out, titleStyle.Render(fmt.Sprintf("%s (%s)", c.Employee, sched.Category())))
	enc := json.NewEncoder(ctx.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(sched)
}

type ColumnCmd struct {
	Letters []string `arg:"" help:"Column letters, e.g. J AN."`
}

func (c *ColumnCmd) Run(ctx *Context) error {
	for _, letters := range c.Letters {
		idx, err := workbook.ColumnIndex(letters)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.Out, "%s\t%d\n", letters, idx)
	}
	return nil
}
