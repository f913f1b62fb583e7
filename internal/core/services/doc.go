// Package services implements the driving ports with the application's
// workflow logic: firm search and selection, website analysis
// submission and polling, document grading, AI visibility checks and
// report triggering.
//
// Services depend only on domain types and driven ports, never on
// adapters.
package services
