package logging

// Field names for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldFormat     = "format"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldMode       = "mode"

	// Message fields.
	FieldEntry       = "entry"
	FieldLang        = "lang"
	FieldResourceID  = "resource_id"
	FieldSegments    = "segments"
	FieldGroups      = "groups"
	FieldExpanded    = "expanded"
	FieldDiagnostics = "diagnostics"
	FieldOffset      = "offset"

	// Configuration fields.
	FieldConfigSource = "config_source"
	FieldWorkers      = "workers"
	FieldMerge        = "merge_duplicates"

	// Statistics fields.
	FieldEntriesTotal  = "entries_total"
	FieldEntriesFailed = "entries_failed"
	FieldEntriesICU    = "entries_icu"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Plural table fields.
	FieldPluralTable = "plural_table"
	FieldLanguages   = "languages"
)
