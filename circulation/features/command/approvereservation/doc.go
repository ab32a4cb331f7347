// Package approvereservation implements the Approve Reservation use case.
//
// Approval is the point where a reservation starts holding a physical copy:
// the Pending -> Approved transition and the decrement of the book's
// available pool commit in one guarded unit. When two administrators race
// over the last copy, exactly one approval wins.
package approvereservation
