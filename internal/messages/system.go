package messages

// System messages for the generator pipeline.
const (
	// ScopeNotSet indicates SYSTEMD_SCOPE is absent from the environment.
	ScopeNotSet        = "SYSTEMD_SCOPE is not set"
	ScopeMismatch      = "SYSTEMD_SCOPE does not match the invoked generator alias"
	ScopeResolveFailed = "cannot resolve executable path; privilege unspecified"
	ScopeInvokedAs     = "invoked as"
	ScopeResolved      = "resolved privilege"

	// DirsMissingFmt formats missing output directory errors.
	DirsMissingFmt = "path '%s' (%s) does not exist"
	DirsNotDirFmt  = "path '%s' (%s) is not a directory"
	DirsResolved   = "output directories"

	// SynthCreateParentFailedFmt formats parent directory creation failures.
	SynthCreateParentFailedFmt = "create parent of %s: %w"
	SynthWriteFailedFmt        = "write unit %s: %w"
	SynthEnvironment           = "environment"
	SynthSkipped               = "environment has no service; skipped"
	SynthWrote                 = "wrote unit"
	SynthUnchanged             = "unit unchanged"
	SynthChanged               = "unit changed"

	// FsutilWriteFileFmt formats atomic write failures.
	FsutilWriteFileFmt = "atomic write %s: %w"

	// FallbackNoCandidates indicates an empty candidate list.
	FallbackNoCandidates = "no candidates"
	FallbackAttemptFmt   = "%s: %w"

	// RunStarted marks the start of the synthesis run.
	RunStarted = "generator run started"
	RunDone    = "generator run finished"
)
