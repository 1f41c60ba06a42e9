package messages

// Manifest and template messages.
const (
	// ManifestReadFailedFmt formats manifest read failures.
	ManifestReadFailedFmt    = "read manifest %s: %w"
	ManifestInvalidFmt       = "invalid manifest %s: %w"
	ManifestHomeDirFailedFmt = "%w: %w"
	ManifestNotFoundFmt      = "%w: %w"
	ManifestNotFound         = "manifest not found"
	ManifestHomeDirUnknown   = "cannot determine home directory"
	ManifestCandidateSkipped = "manifest candidate skipped"
	ManifestLocated          = "manifest located"

	ManifestVersionNotIntegerFmt = "manifest version %v is not an integer, version %d assumed"
	ManifestVersionMissingFmt    = "manifest has no version, version %d assumed"
	ManifestVersionSupportedFmt  = "global manifest version %d"
	ManifestVersionUnsupported   = "manifest version is not yet supported"

	// TemplateReadFailedFmt formats template read failures.
	TemplateReadFailedFmt    = "read template %s: %w"
	TemplateNotRegularFmt    = "template %s is not a regular file"
	TemplateNotFoundFmt      = "%w: %w"
	TemplateNotFound         = "unit template not found"
	TemplateCandidateSkipped = "template candidate skipped"
	TemplateLocated          = "template located"
	TemplateParseFailedFmt   = "parse template %s: %w"
	TemplateRenderFailedFmt  = "render template %s for %s: %w"

	// LogLevelInvalidFmt reports an unknown log level override.
	LogLevelInvalidFmt = "ignoring %s=%q: expected debug, info, warn or error"
)
