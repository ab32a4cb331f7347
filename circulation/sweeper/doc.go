// Package sweeper implements the periodic lifecycle sweep: approved
// reservations past their expiration date are expired (releasing their held
// copies) and active loans past their due date are flagged late.
//
// The sweep is a scheduling convenience, not a correctness requirement.
// Renewal checks effective lateness against the due date itself, so nothing
// breaks when a sweep runs seldom or not at all.
package sweeper
