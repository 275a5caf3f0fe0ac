package interfaces

import "gitlab.com/aoterocom/AODepthView/models"

type AlgoLogic interface {
	Name() string
	// Evaluate decides at most one order action for the given book and child orders.
	Evaluate(state models.AlgoState) models.Action
}
