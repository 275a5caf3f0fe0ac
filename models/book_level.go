package models

// BookLevel is one ranked row of the depth table: the bid and ask sides at the same depth.
type BookLevel struct {
	Level         int
	BidQuantity   float64
	Bid           float64
	Offer         float64
	OfferQuantity float64
}
