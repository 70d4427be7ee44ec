// Package transit contains the transit batch aggregate and its value objects.
//
// A Batch moves orders in one direction (MovementType) and walks a strictly
// linear lifecycle (Status). Orders join a batch as Items, which snapshot the
// order number and customer name at link time. Every status a batch reaches is
// recorded as a HistoryEntry.
//
// Batch ids are human readable (see ID) and derived from a per tenant, year and
// movement counter owned by the storage layer.
package transit
