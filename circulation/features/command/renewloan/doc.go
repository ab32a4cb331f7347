// Package renewloan implements the Renew Loan use case.
//
// Renewal pushes the due date forward by one extension period, at most twice
// per loan. Eligibility is judged against the command's timestamp, not the
// stored status, so a loan that is overdue but not yet swept still cannot
// be renewed.
package renewloan
