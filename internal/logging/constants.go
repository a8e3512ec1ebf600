package logging

// Standardized field names for structured logging. Keeping these in one
// place makes log output consistent and easy to filter.
const (
	FieldFile       = "file_path"
	FieldLine       = "line"
	FieldName       = "name"
	FieldCategory   = "category"
	FieldKeyword    = "keyword"
	FieldReason     = "reason"
	FieldCount      = "count"
	FieldRow        = "row"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
