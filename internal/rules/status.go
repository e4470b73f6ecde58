// Package rules holds the business rules that do not touch storage: status
// derivation, quote pricing, trip classification and flight log arithmetic.
package rules

import "flightops360/hangar/internal/models/entities"

// DeriveItemStatus resolves the status of a MEL item or discrepancy being
// saved. prior is the stored status ("" when the item is new), input the
// status the caller supplied ("" when left to be derived).
//
// An explicit status wins. Otherwise a closed item stays closed, a deferred
// flag gives Deferred and anything else is Open. Closed always clears the
// deferred flag.
func DeriveItemStatus(prior, input entities.ItemStatus, isDeferred bool) (entities.ItemStatus, bool) {
	var status entities.ItemStatus
	switch {
	case input != "":
		status = input
	case prior == entities.StatusClosed:
		status = entities.StatusClosed
	case isDeferred:
		status = entities.StatusDeferred
	default:
		status = entities.StatusOpen
	}
	if status == entities.StatusClosed {
		isDeferred = false
	}
	return status, isDeferred
}
