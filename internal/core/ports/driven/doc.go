// Package driven defines the driven (outbound) port interfaces the core
// depends on. Adapters in internal/adapters/driven implement these.
package driven
