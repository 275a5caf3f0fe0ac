package models

type SideType string

const (
	SideTypeBuy  SideType = "BUY"
	SideTypeSell SideType = "SELL"
)

// ChildOrder is an order placed by the algo. Orders are never filled here; they stay active until
// the algo cancels them.
type ChildOrder struct {
	ID       int64
	Side     SideType
	Price    float64
	Quantity float64
	Active   bool
}

type ActionType string

const (
	ActionNone   ActionType = "none"
	ActionCreate ActionType = "create"
	ActionCancel ActionType = "cancel"
)

// Action is the decision taken for one book snapshot.
type Action struct {
	Type     ActionType
	Side     SideType
	Price    float64
	Quantity float64
	OrderID  int64
	Reason   string
}

func NoAction(reason string) Action {
	return Action{Type: ActionNone, Reason: reason}
}

func CreateChildOrder(side SideType, quantity float64, price float64, reason string) Action {
	return Action{Type: ActionCreate, Side: side, Price: price, Quantity: quantity, Reason: reason}
}

func CancelChildOrder(order ChildOrder, reason string) Action {
	return Action{Type: ActionCancel, Side: order.Side, Price: order.Price, Quantity: order.Quantity,
		OrderID: order.ID, Reason: reason}
}

// AlgoState is what an algo sees when evaluating a snapshot.
type AlgoState struct {
	Depth       MarketDepth
	ChildOrders []ChildOrder
}

func (s AlgoState) ActiveChildOrders() []ChildOrder {
	var active []ChildOrder
	for _, order := range s.ChildOrders {
		if order.Active {
			active = append(active, order)
		}
	}
	return active
}
