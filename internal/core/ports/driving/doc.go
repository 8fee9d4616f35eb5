// Package driving defines the driving (inbound) port interfaces through
// which the TUI and CLI adapters use the core services.
package driving
