// Package setup runs the one-shot guided setup of an App's deploy profile.
//
// The Orchestrator asks for the App name and deploy environment, resolves
// the App's region from DNS, writes the deploy profile and probes the local
// toolchain. When everything required is present it hands over to the
// Bootstrapper, which makes sure the helper is installed on the remote,
// runs it and pushes the database:
//
//	ProbeHelper -> ConfirmInstall -> RunCodeDeploy -> RunInstaller -> RunDbMigration -> Done
//
// Any failure moves straight to Failed. Nothing already done on the remote is
// rolled back; running setup again is the recovery path.
package setup
