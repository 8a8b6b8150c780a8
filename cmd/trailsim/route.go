package main

import (
	"fmt"

	"github.com/udisondev/trailfollow/internal/ai"
	"github.com/udisondev/trailfollow/internal/config"
	"github.com/udisondev/trailfollow/internal/model"
)

// buildRoute converts configured route entries into leader route steps.
func buildRoute(entries []config.RouteEntry) ([]ai.RouteStep, error) {
	route := make([]ai.RouteStep, 0, len(entries))
	for i, e := range entries {
		switch {
		case e.Step != nil:
			route = append(route, ai.MoveStep(model.StepCommand(*e.Step, e.TurnOK())))
		case len(e.Diagonal) == 2:
			route = append(route, ai.MoveStep(model.DiagonalCommand(e.Diagonal[0], e.Diagonal[1])))
		case len(e.Jump) == 2:
			route = append(route, ai.MoveStep(model.JumpCommand(e.Jump[0], e.Jump[1])))
		case e.Transfer != nil:
			route = append(route, ai.TransferStep(e.Transfer.MapID, e.Transfer.X, e.Transfer.Y))
		case e.Wait > 0:
			route = append(route, ai.WaitStep(e.Wait))
		default:
			return nil, fmt.Errorf("route[%d]: no action set", i)
		}
	}
	return route, nil
}
