// Package cli implements the corrosion-admin command line.
//
// Every subcommand builds one admin command, resolves the endpoint from the
// layered configuration and submits the command with corroadmin.Send. A
// termination signal cancels the in-flight command:
//
//	corrosion-admin --admin-path /var/run/corrosion/admin.sock cluster members -o table
//
// Configuration is read, lowest precedence first, from built-in defaults,
// corrosion-admin.yaml (or the file given with --config), CORRO_ADMIN_*
// environment variables and explicitly set flags.
package cli
