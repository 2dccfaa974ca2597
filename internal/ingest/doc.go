// Package ingest normalizes raw complaint rows: it parses the loosely
// formatted timestamps people type into the form sheet and keeps the rows
// that belong to a given calendar day.
//
// Two layouts are recognized. A value with exactly three tokens whose first
// two tokens are two characters wide is read as month/day/year. Anything else
// with at least three tokens is read as day/month/year with an optional
// hour, minute and second. Field values are not range-checked; they roll over
// when converted to an instant, so "15/13/2023" lands in January 2024.
package ingest
