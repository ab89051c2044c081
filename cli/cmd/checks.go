package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/scenewright/sceneqc/cli/render"
	"github.com/scenewright/sceneqc/types"
)

// CheckInfo describes one validator for the checks listing.
type CheckInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// checkDescriptions maps validators to their one-line descriptions, in
// canonical execution order.
var checkDescriptions = map[types.Check]string{
	types.CheckReferences: "Composed layers and asset references that do not exist on disk",
	types.CheckMaterials:  "Meshes without an active bound material",
	types.CheckRender:     "Missing render settings, render products, or camera",
	types.CheckAttributes: "Attribute value counts disagreeing with interpolation and geometry",
}

// ChecksCommand returns the checks command, a read-only listing of the
// available validators.
func ChecksCommand() *cli.Command {
	return &cli.Command{
		Name:   "checks",
		Usage:  "List available QC validators",
		Flags:  OutputFlags(),
		Action: checksAction,
	}
}

func checksAction(c *cli.Context) error {
	if c.Bool("tui") {
		return cli.Exit("--tui is not supported for checks command", 1)
	}

	r, err := render.NewRenderer(c)
	if err != nil {
		return err
	}

	infos := make([]CheckInfo, 0, len(types.CheckOrder))
	for _, check := range types.CheckOrder {
		infos = append(infos, CheckInfo{
			Name:        string(check),
			Description: checkDescriptions[check],
		})
	}
	return r.Render(map[string]any{"checks": infos})
}
