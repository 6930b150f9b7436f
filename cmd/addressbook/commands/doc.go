// Package commands defines the addressbook CLI and wires dependencies for subcommands.
//
// Commands
//
//   - shell    Interactive command loop (default when no subcommand is given)
//   - exec     Run a single address book command line, e.g. exec markpaid 1 m/2024-01
//   - export   Write a fee report workbook (.xlsx) for a range of months
//
// # Implementation
//
// The root command loads configuration, opens the configured contact store,
// connects the optional AMQP publisher and builds the command service before
// any subcommand runs. Every subcommand shares that service, and Execute
// releases the publisher and the store once the command returns.
package commands
