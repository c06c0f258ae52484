// Package entities defines the GORM models of the hunting journal.
//
// # Ownership
//
// Every Area, Stand, Firearm and Entry carries an AccountID. All owned tables
// reference accounts with ON DELETE CASCADE.
//
// # Referential rules
//
//   - Stand.AreaID and Entry.AreaID: ON DELETE RESTRICT
//   - Entry.StandID and Entry.FirearmID: ON DELETE SET NULL
//
// The repository layer enforces the same rules inside transactions so they
// also hold on engines that did not create the declared constraints.
//
// # Dates
//
// Calendar dates are stored as YYYY-MM-DD strings and times of day as HH:MM.
// Both sort lexicographically in chronological order.
package entities
