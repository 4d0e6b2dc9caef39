package deploy

// RsyncArgs builds the arguments that mirror src to dest.
// With mirror set, files missing locally are deleted on the remote.
func RsyncArgs(src, dest string, excludes []string, mirror bool) []string {
	args := []string{"-az", "--human-readable"}
	if mirror {
		args = append(args, "--delete")
	}
	for _, pattern := range excludes {
		args = append(args, "--exclude="+pattern)
	}
	return append(args, src, dest)
}
