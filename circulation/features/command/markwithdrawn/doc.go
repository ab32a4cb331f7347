// Package markwithdrawn implements the Mark Reservation Withdrawn use case.
//
// Withdrawal is the only place where a loan comes into existence: the
// Approved -> Withdrawn transition and the insert of the Active loan commit
// in one guarded unit. The unique constraint on the loan's reservation
// reference plus the loan-exists pre-check make the operation idempotent.
package markwithdrawn
