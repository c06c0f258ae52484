// Package repository provides owner-scoped persistence for the journal
// entities.
//
// Every hunting-data operation takes the owning account id and filters on it,
// so a record owned by another account behaves exactly like a missing one.
// Deletes that must check or clear references run the check and the delete in
// one transaction.
package repository
