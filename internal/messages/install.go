package messages

// Installer messages.
const (
	// InstallStarted marks the start of self-installation.
	InstallStarted        = "initialization started"
	InstallAttempt        = "trying generator directory"
	InstallAttemptFailed  = "candidate failed"
	InstallLinked         = "generator linked"
	InstallAlreadyLinked  = "generator already linked"
	InstallExhausted      = "no candidate directory accepted the generator link"
	InstallNotWritableFmt = "directory %s is not writable: %w"
	InstallSymlinkFmt     = "symlink %s -> %s: %w"
	InstallSelfPathFailed = "cannot determine executable path: %w"
)
