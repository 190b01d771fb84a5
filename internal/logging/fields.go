package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Line operation fields.
	FieldLine       = "line"
	FieldOffset     = "offset"
	FieldViewOffset = "view_offset"
	FieldEditOffset = "edit_offset"
	FieldUnits      = "units"
	FieldCase       = "case"
	FieldStub       = "stub"
	FieldDisabled   = "disabled"

	// Runner fields.
	FieldJobs = "jobs"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesWithIssues = "files_with_issues"
	FieldLinesChecked    = "lines_checked"
	FieldViolations      = "violations"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
	FieldTable   = "table_version"

	// Pattern fields.
	FieldKind     = "kind"
	FieldCategory = "category"
)
