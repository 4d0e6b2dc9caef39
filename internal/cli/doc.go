// Package cli implements the frcopy command-line interface.
//
// Commands:
//
//	frcopy setup        - Guided setup of the deploy profile and remote plugin
//	frcopy code up      - Push the project code to the deploy host
//	frcopy db up        - Push the local database to the deploy host
//	frcopy version      - Print version information
//	frcopy completion   - Generate shell completion scripts
//
// Global flags (--dir, --verbose, --no-interaction, --no-color) can also be
// set through FRCOPY_* environment variables, e.g. FRCOPY_NO_INTERACTION=1.
//
// Every command returns an error instead of exiting. Execute maps errors to
// the process exit status: failures that were already shown to the operator
// exit 1 silently, other structured errors are printed first.
package cli
