// Package services implements the driving ports on top of the driven
// Backend port: query submission, top-chunk explanation, and index
// maintenance.
package services
