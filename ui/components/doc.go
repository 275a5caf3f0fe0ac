// Package components holds the market depth view units: a Panel that owns the table shell,
// one Row per book level and the two leaf cells. Rendering produces a view tree that the
// terminal and web renderers format; the only state kept between renders is the previous
// price of every PriceCell.
//
// A Panel and everything under it must be rendered from a single goroutine.
package components
